package apperrors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_StatusAndMessage(t *testing.T) {
	opErr := New("business not found", http.StatusNotFound)

	assert.Equal(t, "business not found", opErr.Error())
	assert.Equal(t, http.StatusNotFound, Status(opErr))
	assert.Equal(t, "business not found", Message(opErr))
	assert.True(t, IsOperational(opErr))
}

func TestError_NonOperationalCollapsesTo500(t *testing.T) {
	dbErr := errors.New("pq: connection refused")

	assert.Equal(t, http.StatusInternalServerError, Status(dbErr))
	assert.Equal(t, "Internal server error", Message(dbErr))
	assert.False(t, IsOperational(dbErr))
}

func TestError_SentinelComparableWithErrorsIs(t *testing.T) {
	sentinel := New("email already registered", http.StatusConflict)

	var err error = sentinel
	assert.True(t, errors.Is(err, sentinel))
}
