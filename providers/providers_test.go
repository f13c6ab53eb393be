package providers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"
)

func TestShouldRetry(t *testing.T) {
	for _, code := range []int{429, 500, 503, 504, 520, 529} {
		assert.True(t, ShouldRetry(code))
	}
	for _, code := range []int{200, 400, 401, 403, 404, 413, 501, 502} {
		assert.False(t, ShouldRetry(code))
	}
}

func TestNewError(t *testing.T) {
	err := NewError(http.StatusServiceUnavailable, "unavailable")
	var providerErr *ProviderError
	assert.True(t, errors.As(err, &providerErr))
	assert.Equal(t, http.StatusServiceUnavailable, providerErr.StatusCode())
	assert.Equal(t, "unavailable", providerErr.Body())
	assert.Equal(t, "provider api error (status 503): unavailable", err.Error())

	err = NewError(http.StatusBadRequest, `{"error": "bad"}`)
	assert.True(t, errors.As(err, &providerErr))
	assert.Equal(t, http.StatusBadRequest, providerErr.StatusCode())
	assert.Contains(t, err.Error(), "status 400")
}
