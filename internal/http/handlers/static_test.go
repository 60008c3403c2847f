package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticPages(t *testing.T) {
	api := newTestAPI(t)

	cases := []struct {
		path   string
		status int
		body   string
	}{
		{"/", http.StatusOK, "<h1>HealthEase</h1>"},
		{"/dashboard.html", http.StatusOK, "<h1>Dashboard</h1>"},
		{"/css/style.css", http.StatusOK, "body{}"},
		{"/missing.html", http.StatusNotFound, ""},
		{"/css/", http.StatusNotFound, ""},
		{"/api/unknown", http.StatusNotFound, ""},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			rec := api.do(t, http.MethodGet, tc.path, "", nil)
			assert.Equal(t, tc.status, rec.Code)
			if tc.body != "" {
				assert.Equal(t, tc.body, rec.Body.String())
			}
		})
	}
}
