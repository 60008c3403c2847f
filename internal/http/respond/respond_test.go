package respond

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusConflict, "Email already exists")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":false,"message":"Email already exists"}`, rec.Body.String())
}

func TestMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	Message(rec, http.StatusCreated, "User registered successfully")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"User registered successfully"}`, rec.Body.String())
}
