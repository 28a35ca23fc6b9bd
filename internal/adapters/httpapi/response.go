package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"jadwal/internal/domain"
)

// Response is the envelope of every JSON reply.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Body    any    `json:"body,omitempty"`
}

var statusByCode = map[string]int{
	"schedule_not_found":     http.StatusNotFound,
	"course_not_found":       http.StatusNotFound,
	"room_not_found":         http.StatusNotFound,
	"user_not_found":         http.StatusNotFound,
	"invalid_time_range":     http.StatusBadRequest,
	"invalid_time":           http.StatusBadRequest,
	"invalid_day":            http.StatusBadRequest,
	"invalid_generate_mode":  http.StatusBadRequest,
	"invalid_role":           http.StatusBadRequest,
	"invalid_slot_calendar":  http.StatusBadRequest,
	"missing_required_field": http.StatusBadRequest,
	"unsupported_format":     http.StatusBadRequest,
	"unresolved_conflicts":   http.StatusConflict,
	"duplicate_code":         http.StatusConflict,
	"email_taken":            http.StatusConflict,
	"invalid_credentials":    http.StatusUnauthorized,
	"unauthorized":           http.StatusUnauthorized,
	"forbidden":              http.StatusForbidden,
}

func (s *Server) ok(c *gin.Context, status int, messageKey string, body any) {
	msg := ""
	if messageKey != "" {
		msg = s.localizer.T(locale(c), messageKey, nil)
	}
	c.JSON(status, Response{Success: true, Message: msg, Body: body})
}

// fail maps err to a status and a localised message and aborts the chain.
func (s *Server) fail(c *gin.Context, err error) {
	loc := locale(c)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) || isBindError(err) {
		c.AbortWithStatusJSON(http.StatusBadRequest, Response{
			Message: s.localizer.T(loc, "error.invalid_request", nil),
			Body:    gin.H{"code": "invalid_request", "detail": err.Error()},
		})
		return
	}

	code := domain.Code(err)
	status, known := statusByCode[code]
	if !known {
		s.logger.Error("❌ Erreur interne", zap.String("path", c.FullPath()), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, Response{
			Message: s.localizer.T(loc, "error.internal", nil),
			Body:    gin.H{"code": "internal"},
		})
		return
	}
	c.AbortWithStatusJSON(status, Response{
		Message: s.localizer.T(loc, "error."+code, nil),
		Body:    gin.H{"code": code},
	})
}

type bindError struct{ err error }

func (e bindError) Error() string { return e.err.Error() }
func (e bindError) Unwrap() error { return e.err }

func isBindError(err error) bool {
	var b bindError
	return errors.As(err, &b)
}

// bind decodes the JSON body into dst; decoding failures are reported as
// invalid requests rather than internal errors.
func bind(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return err
		}
		return bindError{err: err}
	}
	return nil
}
