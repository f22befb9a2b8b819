package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/de-tools/cost-compass/pkg/models/api"
	"github.com/de-tools/cost-compass/pkg/services/advisor"
	"github.com/de-tools/cost-compass/pkg/services/aggregate"
	"github.com/de-tools/cost-compass/pkg/services/credentials"
	"github.com/de-tools/cost-compass/pkg/services/pipeline"
	"github.com/de-tools/cost-compass/pkg/services/synthetic"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	orchestrator := pipeline.NewOrchestrator(pipeline.Dependencies{
		Credentials: credentials.NewStore(filepath.Join(t.TempDir(), "credentials")),
		Gateway: func(ctx context.Context) (pipeline.Gateway, error) {
			return nil, errors.New("live data unavailable")
		},
		Generator: synthetic.NewGenerator(1),
		Advisor:   advisor.NewAdvisor(advisor.Settings{}),
		Estimator: aggregate.NewRandomEstimator(1),
	}, pipeline.Settings{})

	logger := zerolog.New(zerolog.NewTestWriter(t))
	webAPI := NewWebAPI(logger, Config{
		Addr:            ":8081",
		ShutdownTimeout: 10 * time.Second,
		Dependencies:    Dependencies{Orchestrator: orchestrator},
	})

	testServer := httptest.NewServer(webAPI.Router())
	t.Cleanup(testServer.Close)
	return testServer
}

func getState(t *testing.T, resp *http.Response) api.DashboardState {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")

	var state api.DashboardState
	require.NoError(t, json.Unmarshal(body, &state), "Failed to parse response")
	return state
}

func TestNewWebAPI_ShutdownTimeout(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	configured := NewWebAPI(logger, Config{Addr: ":8081", ShutdownTimeout: 3 * time.Second})
	assert.Equal(t, 3*time.Second, configured.shutdownTimeout)

	defaulted := NewWebAPI(logger, Config{Addr: ":8081"})
	assert.Equal(t, defaultShutdownTimeout, defaulted.shutdownTimeout)
}

func TestWebAPI_Endpoints(t *testing.T) {
	testServer := newTestServer(t)

	t.Run("GetDashboard", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/api/v1/dashboard")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		state := getState(t, resp)
		assert.Equal(t, "idle", state.Status)
		assert.False(t, state.AWSConnected)
	})

	t.Run("RefreshDashboard", func(t *testing.T) {
		resp, err := http.Post(testServer.URL+"/api/v1/dashboard/refresh", "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		state := getState(t, resp)
		assert.Equal(t, "ready", state.Status)
		require.NotNil(t, state.Snapshot)
		assert.Equal(t, "synthetic", state.Snapshot.Source)
		assert.Len(t, state.Snapshot.CostBreakdown, 7)
	})

	t.Run("ConnectRejectsIncompleteCredentials", func(t *testing.T) {
		payload := bytes.NewBufferString(`{"accessKeyId": "AKIAEXAMPLE"}`)
		resp, err := http.Post(testServer.URL+"/api/v1/aws/connect", "application/json", payload)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("ConnectAndDisconnect", func(t *testing.T) {
		payload := bytes.NewBufferString(
			`{"accessKeyId": "AKIAEXAMPLE", "secretAccessKey": "secret", "region": "us-east-1"}`)
		resp, err := http.Post(testServer.URL+"/api/v1/aws/connect", "application/json", payload)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		state := getState(t, resp)
		assert.True(t, state.AWSConnected)

		resp, err = http.Post(testServer.URL+"/api/v1/aws/disconnect", "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		state = getState(t, resp)
		assert.False(t, state.AWSConnected)
		assert.Equal(t, "ready", state.Status)
		require.NotNil(t, state.Snapshot)
		assert.Equal(t, "synthetic", state.Snapshot.Source)
	})
}
