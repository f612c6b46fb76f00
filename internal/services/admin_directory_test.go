package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"applicant_review_system/internal/services"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestAdminDirectory_AdminCount(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected int
	}{
		{name: "counts admins", status: http.StatusOK, body: `{"success":true,"admins":[{"email":"a@x.com","role":"admin"},{"email":"b@x.com","role":"admin"},{"email":"c@x.com","role":"admin"},{"email":"d@x.com","role":"admin"}]}`, expected: 4},
		{name: "unsuccessful response", status: http.StatusOK, body: `{"success":false,"admins":[{"email":"a@x.com"}]}`, expected: 3},
		{name: "empty list", status: http.StatusOK, body: `{"success":true,"admins":[]}`, expected: 3},
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":"boom"}`, expected: 3},
		{name: "malformed body", status: http.StatusOK, body: `not json`, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			directory := services.NewAdminDirectory(server.URL, time.Second, 3, zap.NewNop().Sugar())

			assert.Equal(t, tt.expected, directory.AdminCount(context.Background()))
		})
	}
}

func TestAdminDirectory_NoURLUsesFallback(t *testing.T) {
	directory := services.NewAdminDirectory("", time.Second, 5, zap.NewNop().Sugar())

	assert.Equal(t, 5, directory.AdminCount(context.Background()))
}

func TestAdminDirectory_TimeoutUsesFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"success":true,"admins":[{"email":"a@x.com"}]}`))
	}))
	defer server.Close()

	directory := services.NewAdminDirectory(server.URL, 20*time.Millisecond, 3, zap.NewNop().Sugar())

	assert.Equal(t, 3, directory.AdminCount(context.Background()))
}
