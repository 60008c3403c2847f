package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ayush7932singh/HealthEase/internal/auth"
	"github.com/ayush7932singh/HealthEase/internal/middleware"
	"github.com/ayush7932singh/HealthEase/internal/storage/memory"
)

type testAPI struct {
	mux    *http.ServeMux
	store  *memory.Store
	tokens *auth.TokenManager
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	store := memory.New()
	tokens := auth.NewTokenManager("test-secret", "healthease")
	gate := middleware.RequireAuth(tokens, store)

	mux := http.NewServeMux()
	NewAuthHandler(store, tokens, bcrypt.MinCost).Register(mux, gate)
	NewDoctorHandler(store).Register(mux)
	NewAppointmentHandler(store).Register(mux, gate)
	NewDashboardHandler(store).Register(mux, gate)
	NewSeedHandler(store, store, "admin123", bcrypt.MinCost).Register(mux)
	NewStaticHandler(fstest.MapFS{
		"index.html":     {Data: []byte("<h1>HealthEase</h1>")},
		"dashboard.html": {Data: []byte("<h1>Dashboard</h1>")},
		"css/style.css":  {Data: []byte("body{}")},
	}).Register(mux)

	return &testAPI{mux: mux, store: store, tokens: tokens}
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.mux.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

// registerAndLogin creates a patient and returns a token for it.
func (a *testAPI) registerAndLogin(t *testing.T, email string) string {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Test Patient", "email": email, "password": "pa55word", "role": "patient",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = a.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": "pa55word"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out.Token
}
