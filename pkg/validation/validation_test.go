package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidUnits(t *testing.T) {
	assert.True(t, IsValidUnits("m"))
	assert.True(t, IsValidUnits("s"))
	assert.True(t, IsValidUnits("f"))
	assert.False(t, IsValidUnits("metric"))
	assert.False(t, IsValidUnits(""))
}

func TestIsHTTPURL(t *testing.T) {
	assert.True(t, IsHTTPURL("https://api.weatherstack.com"))
	assert.True(t, IsHTTPURL("http://api.weatherstack.com"))
	assert.False(t, IsHTTPURL("ftp://api.weatherstack.com"))
	assert.False(t, IsHTTPURL("api.weatherstack.com"))
}

func TestTrimAndValidate(t *testing.T) {
	trimmed, ok := TrimAndValidate("  Jakarta ")
	assert.True(t, ok)
	assert.Equal(t, "Jakarta", trimmed)

	_, ok = TrimAndValidate("   ")
	assert.False(t, ok)
	assert.False(t, IsNotEmpty("\t"))
}
