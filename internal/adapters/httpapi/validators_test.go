package httpapi

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidators(t *testing.T) {
	require.NoError(t, registerValidators())
	require.NoError(t, registerValidators(), "repeat calls report the first result")

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	for _, in := range []string{"07:00", "19:55", "08:40:00"} {
		assert.NoError(t, v.Var(in, "hhmm"), in)
	}
	for _, in := range []string{"+7:00", "-0:30", "07:00:zz", "07:00:99", "7:00", "24:00"} {
		assert.Error(t, v.Var(in, "hhmm"), in)
	}

	assert.NoError(t, v.Var("Senin", "weekday"))
	assert.Error(t, v.Var("Minggu", "weekday"))
}
