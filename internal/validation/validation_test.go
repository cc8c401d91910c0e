package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMissing(t *testing.T) {
	assert.True(t, IsMissing(nil))
	assert.False(t, IsMissing(""))
	assert.False(t, IsMissing(0.0))
	assert.False(t, IsMissing(false))
}

func TestIsInvalidString(t *testing.T) {
	assert.True(t, IsInvalidString(nil))
	assert.True(t, IsInvalidString(42.0))
	assert.True(t, IsInvalidString(true))
	assert.True(t, IsInvalidString(""))
	assert.True(t, IsInvalidString("   "))
	assert.True(t, IsInvalidString("\t\n"))
	assert.False(t, IsInvalidString("yoga"))
	assert.False(t, IsInvalidString(" yoga ")) // trimmed form is non-empty
}

func TestIsInvalidInteger(t *testing.T) {
	assert.True(t, IsInvalidInteger(nil))
	assert.True(t, IsInvalidInteger("5"))
	assert.True(t, IsInvalidInteger(-1.0))
	assert.True(t, IsInvalidInteger(2.5))
	assert.False(t, IsInvalidInteger(0.0))
	assert.False(t, IsInvalidInteger(10.0)) // JSON 10 decodes as float64(10)
}

func TestIsInvalidURL(t *testing.T) {
	assert.True(t, IsInvalidURL(nil, "https"))
	assert.True(t, IsInvalidURL(123.0, "https")) // must not be coerced to string
	assert.True(t, IsInvalidURL("", "https"))
	assert.True(t, IsInvalidURL("http://example.com", "https"))
	assert.False(t, IsInvalidURL("https://example.com/live", "https"))
}

func TestConversions(t *testing.T) {
	assert.Equal(t, "abc", AsString("abc"))
	assert.Equal(t, 7, AsInt(7.0))
}
