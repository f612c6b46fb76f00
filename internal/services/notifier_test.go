package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"applicant_review_system/internal/services"
	"applicant_review_system/internal/tally"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_Notify(t *testing.T) {
	var received map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	notifier := services.NewNotifier(server.URL, time.Second)
	err := notifier.Notify(context.Background(), services.Notification{
		Recipient: "Jane Doe",
		Address:   "jane@x.com",
		Verdict:   tally.VerdictApproved,
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"recipient": "Jane Doe", "address": "jane@x.com", "verdict": "Approved"}, received)
}

func TestNotifier_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer server.Close()

	err := services.NewNotifier(server.URL, time.Second).Notify(context.Background(), services.Notification{Verdict: tally.VerdictDenied})

	var statusErr *services.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
	assert.Equal(t, "unexpected status 502: upstream down", statusErr.Error())
}
