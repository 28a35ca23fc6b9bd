// Package httpapi exposes the scheduling services over a JSON HTTP API.
package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jadwal/internal/domain"
	"jadwal/internal/domain/entities"
	"jadwal/internal/ports/input"
	"jadwal/internal/ports/output"
)

// Localizer translates messages and picks a locale from Accept-Language.
type Localizer interface {
	output.T
	Match(acceptLanguage string) string
}

// Subscriber hands out a feed of schedule changes.
type Subscriber interface {
	Subscribe() (<-chan entities.ChangeEvent, func())
}

type Deps struct {
	Schedules      input.ScheduleUseCase
	Courses        input.CourseUseCase
	Rooms          input.RoomUseCase
	Auth           input.AuthUseCase
	Export         input.ExportUseCase
	Localizer      Localizer
	Logger         *zap.Logger
	AllowedOrigins []string
	// Changes enables GET /api/schedules/stream when set.
	Changes Subscriber
}

type Server struct {
	schedules input.ScheduleUseCase
	courses   input.CourseUseCase
	rooms     input.RoomUseCase
	auth      input.AuthUseCase
	export    input.ExportUseCase
	localizer Localizer
	changes   Subscriber
	logger    *zap.Logger
}

// NewRouter builds the gin engine with every route mounted.
func NewRouter(d Deps) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("httpapi: %w", err)
	}
	s := &Server{
		schedules: d.Schedules,
		courses:   d.Courses,
		rooms:     d.Rooms,
		auth:      d.Auth,
		export:    d.Export,
		localizer: d.Localizer,
		changes:   d.Changes,
		logger:    d.Logger,
	}

	router := gin.New()
	router.Use(ginzap.GinzapWithConfig(d.Logger, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  []string{"/health"},
	}))
	router.Use(ginzap.RecoveryWithZap(d.Logger, true))

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "OPTIONS", "PUT", "DELETE", "POST"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "Accept-Language"},
		ExposeHeaders: []string{"Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	if len(d.AllowedOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = d.AllowedOrigins
	}
	router.Use(cors.New(corsConfig))
	router.Use(s.localeMiddleware())

	router.GET("/health", s.health)

	api := router.Group("/api")
	authGroup := api.Group("/auth")
	authGroup.POST("/signup", s.signUp)
	authGroup.POST("/signin", s.signIn)
	authGroup.GET("/me", s.authMiddleware(), s.me)

	protected := api.Group("", s.authMiddleware())
	admin := s.requireRole(domain.RoleAdmin)

	protected.GET("/slots", s.slots)

	courses := protected.Group("/courses")
	courses.GET("", s.listCourses)
	courses.GET("/:id", s.getCourse)
	courses.POST("", admin, s.createCourse)
	courses.PUT("/:id", admin, s.updateCourse)
	courses.DELETE("/:id", admin, s.deleteCourse)

	rooms := protected.Group("/rooms")
	rooms.GET("", s.listRooms)
	rooms.GET("/:id", s.getRoom)
	rooms.POST("", admin, s.createRoom)
	rooms.PUT("/:id", admin, s.updateRoom)
	rooms.DELETE("/:id", admin, s.deleteRoom)

	schedules := protected.Group("/schedules")
	schedules.GET("", s.listSchedules)
	schedules.GET("/conflicts", s.checkConflicts)
	schedules.GET("/stats", s.stats)
	schedules.GET("/export.pdf", s.exportPDF)
	schedules.GET("/export.xlsx", s.exportFile(input.ExportXLSX, "jadwal.xlsx"))
	schedules.GET("/export.ics", s.exportFile(input.ExportICS, "jadwal.ics"))
	schedules.POST("/generate", admin, s.generate)
	if s.changes != nil {
		schedules.GET("/stream", s.stream)
	}
	schedules.GET("/:id", s.getSchedule)
	schedules.POST("", admin, s.createSchedule)
	schedules.PUT("/:id", admin, s.updateSchedule)
	schedules.DELETE("/:id", admin, s.deleteSchedule)

	return router, nil
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Success: true, Body: gin.H{"status": "ok"}})
}
