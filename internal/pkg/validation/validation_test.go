package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Name  string `json:"name" validate:"required,max=10"`
	Email string `json:"email" validate:"required,email"`
	Kind  string `json:"kind" validate:"required,oneof=account attendance"`
}

func TestStruct_Valid(t *testing.T) {
	err := Struct(&sampleForm{Name: "Jane", Email: "jane@example.com", Kind: "account"})
	assert.NoError(t, err)
}

func TestStruct_ItemizesAllFailures(t *testing.T) {
	err := Struct(&sampleForm{Name: "", Email: "not-an-email", Kind: "wrong"})
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "name is required")
	assert.Contains(t, msg, "email must be a valid email address")
	assert.Contains(t, msg, "kind must be one of: account, attendance")
}

func TestStruct_MaxLength(t *testing.T) {
	err := Struct(&sampleForm{Name: "an extremely long name", Email: "jane@example.com", Kind: "account"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name must not exceed 10 characters")
}

func TestIsValidPassword(t *testing.T) {
	assert.False(t, IsValidPassword("short1!"))
	assert.False(t, IsValidPassword("lettersonly"))
	assert.False(t, IsValidPassword("12345678!"))
	assert.False(t, IsValidPassword("letters123"))
	assert.True(t, IsValidPassword("Str0ng!pass"))
	assert.True(t, IsValidPassword("abc123$%^"))
}
