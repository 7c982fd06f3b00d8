package fields

import (
	"errors"
	"testing"

	"github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBlank(t *testing.T) {
	empty := ""
	filled := "x"

	assert.True(t, IsBlank(nil))
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("   "))
	assert.True(t, IsBlank(&empty))
	assert.True(t, IsBlank((*string)(nil)))
	assert.False(t, IsBlank(&filled))
	assert.False(t, IsBlank("Model S"))
	assert.False(t, IsBlank(float64(0)))
	assert.False(t, IsBlank(false))
}

func TestRequire_FirstMissingWins(t *testing.T) {
	payload := map[string]any{
		"name":  "Ada",
		"email": "",
	}

	err := Require(payload, []string{"name", "email", "phone"})
	require.Error(t, err)

	var validation *apperror.ValidationError
	require.True(t, errors.As(err, &validation))
	assert.Equal(t, "email", validation.Field)
	assert.Equal(t, "Missing required field: email", err.Error())
}

func TestRequire_AllPresent(t *testing.T) {
	payload := map[string]any{"amount": 1000.0, "term": "36"}
	assert.NoError(t, Require(payload, []string{"amount", "term"}))
}

func TestRequireStrings(t *testing.T) {
	err := RequireStrings(map[string]string{"email": "a@b.c", "password": " "}, []string{"email", "password"})

	var validation *apperror.ValidationError
	require.True(t, errors.As(err, &validation))
	assert.Equal(t, "password", validation.Field)

	assert.NoError(t, RequireStrings(map[string]string{"email": "a@b.c"}, []string{"email"}))
}
