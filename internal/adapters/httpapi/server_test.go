package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"jadwal/internal/application"
	"jadwal/internal/domain"
	"jadwal/internal/infrastructure/auth"
	"jadwal/internal/infrastructure/export"
	"jadwal/internal/infrastructure/i18n"
	"jadwal/internal/infrastructure/memory"
)

const demoPassword = "demo1234"

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Body    json.RawMessage `json:"body"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return newTestRouterWithChanges(t, nil)
}

func newTestRouterWithChanges(t *testing.T, changes Subscriber) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx := context.Background()
	logger := zap.NewNop()
	courses, rooms := memory.NewCourseRepository(), memory.NewRoomRepository()
	schedules, users := memory.NewScheduleRepository(), memory.NewUserRepository()
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, memory.Seed(ctx, courses, rooms, schedules, users, hasher, demoPassword))

	translator := i18n.NewTranslator("id", logger)
	scheduleSvc := application.NewScheduleService(schedules, courses, rooms, nil, translator, domain.DefaultCalendar(), logger)
	pdf := export.NewPDFRenderer(time.UTC)
	exportSvc := application.NewExportService(scheduleSvc, application.Renderers{
		List:  pdf,
		Grid:  pdf,
		Sheet: export.NewXLSXRenderer(),
	}, "Jadwal Uji")

	router, err := NewRouter(Deps{
		Schedules: scheduleSvc,
		Courses:   application.NewCourseService(courses),
		Rooms:     application.NewRoomService(rooms),
		Auth:      application.NewAuthService(users, hasher, auth.NewTokenManager("test-secret", time.Hour)),
		Export:    exportSvc,
		Localizer: translator,
		Logger:    logger,
		Changes:   changes,
	})
	require.NoError(t, err)
	return router
}

func do(t *testing.T, r http.Handler, method, path, token string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, body any) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if body != nil {
		require.NoError(t, json.Unmarshal(env.Body, body))
	}
	return env
}

func signIn(t *testing.T, r http.Handler, email string) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/auth/signin", "", gin.H{"email": email, "password": demoPassword})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var body struct {
		Session struct {
			Token string `json:"token"`
		} `json:"session"`
	}
	decode(t, w, &body)
	require.NotEmpty(t, body.Session.Token)
	return body.Session.Token
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRequired(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/schedules", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	var body struct {
		Code string `json:"code"`
	}
	env := decode(t, w, &body)
	assert.False(t, env.Success)
	assert.Equal(t, "unauthorized", body.Code)
	assert.Equal(t, "Silakan masuk terlebih dahulu.", env.Message)

	w = do(t, r, http.MethodGet, "/api/schedules", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignIn_WrongPassword(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodPost, "/api/auth/signin", "", gin.H{"email": "admin@university.ac.id", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignUpAndMe(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodPost, "/api/auth/signup", "", gin.H{
		"email": "siti@university.ac.id", "password": demoPassword, "name": "Siti",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/auth/signup", "", gin.H{
		"email": "siti@university.ac.id", "password": demoPassword, "name": "Siti",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	token := signIn(t, r, "siti@university.ac.id")
	w = do(t, r, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		User struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	decode(t, w, &body)
	assert.Equal(t, domain.RoleStudent, body.User.Role)
}

func TestSignUp_CannotGrantAdmin(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodPost, "/api/auth/signup", "", gin.H{
		"email": "mallory@example.com", "password": demoPassword, "name": "Mallory", "role": domain.RoleAdmin,
	})
	require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/auth/signin", "", gin.H{"email": "mallory@example.com", "password": demoPassword})
	assert.Equal(t, http.StatusUnauthorized, w.Code, "no account was created")

	admin := signIn(t, r, "admin@university.ac.id")
	w = do(t, r, http.MethodGet, "/api/schedules", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Schedules []json.RawMessage `json:"schedules"`
	}
	decode(t, w, &body)
	assert.Len(t, body.Schedules, 6)
}

func TestSignUp_LecturerAllowed(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodPost, "/api/auth/signup", "", gin.H{
		"email": "rina@university.ac.id", "password": demoPassword, "name": "Dr. Rina", "role": domain.RoleLecturer,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	token := signIn(t, r, "rina@university.ac.id")
	w = do(t, r, http.MethodPost, "/api/schedules/generate", token, gin.H{"mode": "replace"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListSchedules_MarksDemoConflicts(t *testing.T) {
	r := newTestRouter(t)
	token := signIn(t, r, "ahmad@university.ac.id")

	w := do(t, r, http.MethodGet, "/api/schedules", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Schedules []struct {
			ID          string `json:"id"`
			StartTime   string `json:"startTime"`
			HasConflict bool   `json:"hasConflict"`
		} `json:"schedules"`
	}
	decode(t, w, &body)
	require.Len(t, body.Schedules, 6)
	flagged := map[string]bool{}
	for _, s := range body.Schedules {
		flagged[s.ID] = s.HasConflict
	}
	assert.Equal(t, map[string]bool{
		"sch-1": true, "sch-2": true, "sch-3": false,
		"sch-4": true, "sch-5": true, "sch-6": false,
	}, flagged)
	assert.Equal(t, "07:00", body.Schedules[0].StartTime)

	w = do(t, r, http.MethodGet, "/api/schedules?day=Selasa", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &body)
	assert.Len(t, body.Schedules, 2)
}

func TestCheckConflicts_Localised(t *testing.T) {
	r := newTestRouter(t)
	token := signIn(t, r, "ahmad@university.ac.id")

	w := do(t, r, http.MethodGet, "/api/schedules/conflicts", token, nil, "Accept-Language", "en-US,en;q=0.8")
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Count     int `json:"count"`
		Conflicts []struct {
			EventID         string   `json:"eventId"`
			ConflictingWith []string `json:"conflictingWith"`
			Reason          string   `json:"reason"`
		} `json:"conflicts"`
	}
	decode(t, w, &body)
	assert.Equal(t, 4, body.Count)
	require.Len(t, body.Conflicts, 4)
	assert.Equal(t, "Time overlap with 1 other event", body.Conflicts[0].Reason)
}

func TestWriteRoutesRequireAdmin(t *testing.T) {
	r := newTestRouter(t)
	token := signIn(t, r, "budi@university.ac.id")

	w := do(t, r, http.MethodPost, "/api/courses", token, gin.H{"code": "CS999", "name": "Tugas Akhir"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = do(t, r, http.MethodDelete, "/api/schedules/sch-1", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateSchedule(t *testing.T) {
	r := newTestRouter(t)
	token := signIn(t, r, "admin@university.ac.id")

	w := do(t, r, http.MethodPost, "/api/schedules", token, gin.H{
		"courseId": "course-7", "roomId": "room-6", "day": "Thursday", "startTime": "7:00", "endTime": "08:40",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var errBody struct {
		Code string `json:"code"`
	}
	decode(t, w, &errBody)
	assert.Equal(t, "invalid_request", errBody.Code)

	w = do(t, r, http.MethodPost, "/api/schedules", token, gin.H{
		"courseId": "course-7", "roomId": "room-6", "day": "Kamis", "startTime": "09:00", "endTime": "08:00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/api/schedules", token, gin.H{
		"courseId": "missing", "roomId": "room-6", "day": "Kamis", "startTime": "07:00", "endTime": "08:40",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodPost, "/api/schedules", token, gin.H{
		"courseId": "course-7", "roomId": "room-6", "day": "Kamis", "startTime": "07:00", "endTime": "08:40",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var body struct {
		Schedule struct {
			ID          string `json:"id"`
			Day         string `json:"day"`
			CourseCode  string `json:"courseCode"`
			HasConflict bool   `json:"hasConflict"`
		} `json:"schedule"`
	}
	decode(t, w, &body)
	assert.Equal(t, "Thursday", body.Schedule.Day)
	assert.Equal(t, "MTK101", body.Schedule.CourseCode)
	assert.False(t, body.Schedule.HasConflict)

	w = do(t, r, http.MethodGet, "/api/schedules/"+body.Schedule.ID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateAndDeleteSchedule(t *testing.T) {
	r := newTestRouter(t)
	token := signIn(t, r, "admin@university.ac.id")

	// Moving sch-2 to the afternoon resolves the Monday clash.
	w := do(t, r, http.MethodPut, "/api/schedules/sch-2", token, gin.H{"startTime": "12:30", "endTime": "15:00"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/schedules/conflicts", token, nil)
	var body struct {
		Count int `json:"count"`
	}
	decode(t, w, &body)
	assert.Equal(t, 2, body.Count)

	w = do(t, r, http.MethodDelete, "/api/schedules/sch-4", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodGet, "/api/schedules/conflicts", token, nil)
	decode(t, w, &body)
	assert.Zero(t, body.Count)

	w = do(t, r, http.MethodDelete, "/api/schedules/sch-4", token, nil, "Accept-Language", "en")
	require.Equal(t, http.StatusNotFound, w.Code)
	env := decode(t, w, nil)
	assert.Equal(t, "Schedule not found.", env.Message)
}

func TestGenerate(t *testing.T) {
	r := newTestRouter(t)
	token := signIn(t, r, "admin@university.ac.id")

	w := do(t, r, http.MethodPost, "/api/schedules/generate", token, gin.H{"mode": "shuffle"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/api/schedules/generate", token, gin.H{"mode": "replace"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var body struct {
		Schedules     []json.RawMessage `json:"schedules"`
		Placed        int               `json:"placed"`
		Unplaced      []json.RawMessage `json:"unplaced"`
		ConflictCount int               `json:"conflictCount"`
	}
	decode(t, w, &body)
	assert.Equal(t, 8, body.Placed)
	assert.Len(t, body.Schedules, 8)
	assert.Empty(t, body.Unplaced)
	assert.Zero(t, body.ConflictCount)
}

func TestExport(t *testing.T) {
	r := newTestRouter(t)
	token := signIn(t, r, "admin@university.ac.id")

	w := do(t, r, http.MethodGet, "/api/schedules/export.pdf", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))

	w = do(t, r, http.MethodGet, "/api/schedules/export.pdf?view=table", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodGet, "/api/schedules/export.xlsx", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")

	// No calendar renderer configured.
	w = do(t, r, http.MethodGet, "/api/schedules/export.ics", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSlotsAndStats(t *testing.T) {
	r := newTestRouter(t)
	token := signIn(t, r, "ahmad@university.ac.id")

	w := do(t, r, http.MethodGet, "/api/slots", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var slots struct {
		Days  []string `json:"days"`
		Slots []struct {
			Start string `json:"start"`
		} `json:"slots"`
	}
	decode(t, w, &slots)
	assert.Len(t, slots.Days, 5)
	require.Len(t, slots.Slots, 14)
	assert.Equal(t, "07:00", slots.Slots[0].Start)

	w = do(t, r, http.MethodGet, "/api/schedules/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats struct {
		Stats struct {
			TotalSchedules    int `json:"totalSchedules"`
			ConflictSchedules int `json:"conflictSchedules"`
			TotalCourses      int `json:"totalCourses"`
			TotalRooms        int `json:"totalRooms"`
		} `json:"stats"`
	}
	decode(t, w, &stats)
	assert.Equal(t, 6, stats.Stats.TotalSchedules)
	assert.Equal(t, 4, stats.Stats.ConflictSchedules)
	assert.Equal(t, 8, stats.Stats.TotalCourses)
	assert.Equal(t, 6, stats.Stats.TotalRooms)
}
