package httpapi

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"jadwal/internal/domain"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// registerValidators adds the hhmm and weekday tags to gin's validator.
// The result of the first call is returned to every caller.
func registerValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin binding engine is not validator/v10")
			return
		}
		if err := v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			_, err := domain.ParseTimeOfDay(fl.Field().String())
			return err == nil
		}); err != nil {
			registerErr = fmt.Errorf("register hhmm: %w", err)
			return
		}
		if err := v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
			_, err := domain.ParseWeekday(fl.Field().String())
			return err == nil
		}); err != nil {
			registerErr = fmt.Errorf("register weekday: %w", err)
		}
	})
	return registerErr
}
