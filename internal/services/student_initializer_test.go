package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"applicant_review_system/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentInitializer_Initialize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "row-1", body["rowKey"])
		_, _ = w.Write([]byte(`{"redpStatus":"pending","message":"Student with rowKey 'row-1' successfully initialized"}`))
	}))
	defer server.Close()

	result, err := services.NewStudentInitializer(server.URL, time.Second).Initialize(context.Background(), "row-1")

	require.NoError(t, err)
	assert.Equal(t, "pending", result.RedpStatus)
	assert.False(t, result.AlreadyInitialized)
}

func TestStudentInitializer_AlreadyInitializedIsSuccess(t *testing.T) {
	bodies := []string{
		`{"error":"Student with rowKey 'row-1' is already initialized with status 'pending'"}`,
		`{"error":"Student with rowKey 'row-1' already has email sent status"}`,
	}

	for _, body := range bodies {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(body))
		}))

		result, err := services.NewStudentInitializer(server.URL, time.Second).Initialize(context.Background(), "row-1")
		server.Close()

		require.NoError(t, err)
		assert.True(t, result.AlreadyInitialized)
	}
}

func TestStudentInitializer_Failure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal server error"}`))
	}))
	defer server.Close()

	_, err := services.NewStudentInitializer(server.URL, time.Second).Initialize(context.Background(), "row-1")

	var statusErr *services.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
}
