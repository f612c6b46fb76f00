package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"applicant_review_system/internal/announce"
	"applicant_review_system/internal/db/models"
	"applicant_review_system/internal/db/repositories"
	"applicant_review_system/internal/dispatch"
	"applicant_review_system/internal/services"
	"applicant_review_system/internal/tally"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type collaborators struct {
	mu            sync.Mutex
	notifications []services.Notification
	initialized   []string

	admins      *httptest.Server
	notifier    *httptest.Server
	initializer *httptest.Server
}

func newCollaborators(t *testing.T, adminCount int) *collaborators {
	c := &collaborators{}

	c.admins = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		admins := make([]map[string]string, 0, adminCount)
		for i := 0; i < adminCount; i++ {
			admins = append(admins, map[string]string{"email": "admin@x.com", "role": "admin"})
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "admins": admins})
	}))
	c.notifier = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var notification services.Notification
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&notification))
		c.mu.Lock()
		c.notifications = append(c.notifications, notification)
		c.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	c.initializer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		c.mu.Lock()
		c.initialized = append(c.initialized, body["rowKey"])
		c.mu.Unlock()
		_, _ = w.Write([]byte(`{"redpStatus":"pending","message":"ok"}`))
	}))

	t.Cleanup(func() {
		c.admins.Close()
		c.notifier.Close()
		c.initializer.Close()
	})

	return c
}

func newTestRouter(t *testing.T, adminCount int) (http.Handler, *repositories.InMemoryApplicantRepository, *collaborators) {
	logger := zap.NewNop().Sugar()
	c := newCollaborators(t, adminCount)

	applicants := repositories.NewInMemoryApplicantRepository()
	applicants.Put(&models.Applicant{
		PartitionKey: models.SignupPartition,
		RowKey:       "r1",
		FirstName:    "jane",
		LastName:     "doe",
		Email:        "jane@x.com",
		Version:      1,
	})

	initializer := services.NewStudentInitializer(c.initializer.URL, time.Second)
	notifier := services.NewNotifier(c.notifier.URL, time.Second)
	dispatcher := dispatch.NewDispatcher(initializer, notifier, repositories.NewInMemoryCommandRepository(), []announce.Announcer{}, logger)
	approvals := services.NewApprovalService(
		applicants,
		services.NewAdminDirectory(c.admins.URL, time.Second, tally.DefaultAdminCount, logger),
		dispatcher,
		tally.NewEngine(false),
		3,
		logger,
	)

	return NewRouter(approvals, services.NewStudentService(applicants, logger), logger), applicants, c
}

func vote(t *testing.T, handler http.Handler, body string) (int, map[string]interface{}) {
	req := httptest.NewRequest(http.MethodPost, "/api/add-approval", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	return w.Code, response
}

func TestHealthcheck(t *testing.T) {
	handler, _, _ := newTestRouter(t, 3)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "I'm alive", w.Body.String())
}

func TestTwoApprovalsReachVerdict(t *testing.T) {
	handler, _, c := newTestRouter(t, 3)

	status, body := vote(t, handler, `{"email":"a@x.com","partitionKey":"signup","rowKey":"r1","action":"approve"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, body["currentApprovalCount"])
	assert.Contains(t, body["message"], "Need 1 more approval(s)")
	assert.Empty(t, c.notifications)

	status, body = vote(t, handler, `{"email":"b@x.com","partitionKey":"signup","rowKey":"r1","action":"approve"}`)
	assert.Equal(t, http.StatusCreated, status)
	assert.EqualValues(t, 2, body["currentApprovalCount"])
	assert.Equal(t, true, body["isApprovalComplete"])

	c.mu.Lock()
	defer c.mu.Unlock()
	assert.Equal(t, []string{"r1"}, c.initialized)
	assert.Equal(t, []services.Notification{{Recipient: "Jane Doe", Address: "jane@x.com", Verdict: tally.VerdictApproved}}, c.notifications)
}

func TestSingleDenialReachesVerdict(t *testing.T) {
	handler, _, c := newTestRouter(t, 3)

	status, body := vote(t, handler, `{"email":"a@x.com","partitionKey":"signup","rowKey":"r1","action":"deny"}`)

	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, true, body["isDenialComplete"])

	c.mu.Lock()
	defer c.mu.Unlock()
	assert.Empty(t, c.initialized)
	assert.Equal(t, []services.Notification{{Recipient: "Jane Doe", Address: "jane@x.com", Verdict: tally.VerdictDenied}}, c.notifications)
}

func TestUnknownApplicant(t *testing.T) {
	handler, _, _ := newTestRouter(t, 3)

	status, body := vote(t, handler, `{"email":"a@x.com","partitionKey":"signup","rowKey":"nope"}`)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Entity not found in applicant records table", body["error"])
	assert.Equal(t, "signup", body["partitionKey"])
	assert.Equal(t, "nope", body["rowKey"])
}

func TestDuplicateApprovalLeavesRecordUntouched(t *testing.T) {
	handler, applicants, _ := newTestRouter(t, 6)

	status, _ := vote(t, handler, `{"email":"a@x.com","partitionKey":"signup","rowKey":"r1"}`)
	require.Equal(t, http.StatusOK, status)
	before, err := applicants.GetOne(context.Background(), "signup", "r1")
	require.NoError(t, err)

	status, _ = vote(t, handler, `{"email":"a@x.com","partitionKey":"signup","rowKey":"r1"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	after, err := applicants.GetOne(context.Background(), "signup", "r1")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSwitchVoteAndReadTally(t *testing.T) {
	handler, _, _ := newTestRouter(t, 6)

	vote(t, handler, `{"email":"a@x.com","partitionKey":"signup","rowKey":"r1"}`)
	vote(t, handler, `{"email":"b@x.com","partitionKey":"signup","rowKey":"r1"}`)
	status, body := vote(t, handler, `{"email":"a@x.com","partitionKey":"signup","rowKey":"r1","action":"deny"}`)

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body["message"], "Successfully changed from approval to denial.")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/applicants/signup/r1/votes", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var tallyBody map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&tallyBody))
	assert.Equal(t, "Current tally", tallyBody["message"])
	approvals := tallyBody["approvals"].(map[string]interface{})
	denials := tallyBody["denials"].(map[string]interface{})
	assert.Equal(t, "b@x.com", approvals["approval1"])
	assert.NotContains(t, approvals, "approval2")
	assert.Equal(t, "a@x.com", denials["denial1"])
}

func TestInitAndPopulateStudent(t *testing.T) {
	handler, _, _ := newTestRouter(t, 3)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/init-student", strings.NewReader(`{"rowKey":"r1"}`)))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/init-student", strings.NewReader(`{"rowKey":"r1"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already initialized")

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/populate-student", strings.NewReader(`{"rowKey":"r1","email":"student@school.edu"}`)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"redpStatus":"email sent"`)
}
