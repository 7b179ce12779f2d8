package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-scheduler/config"
	"os-scheduler/internal/responses"
)

func TestMain(m *testing.M) {
	if os.Getenv("DEBUG_TESTS") == "" {
		logrus.SetLevel(logrus.WarnLevel)
	}
	os.Exit(m.Run())
}

func newTestApp() *fiber.App {
	return NewApp(&config.SchedulerConfig{Port: 0, LogLevel: "warn", RoundRobinTimeQuantum: 2})
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestFirstComeFirstServe(t *testing.T) {
	status, body := postJSON(t, newTestApp(), "/api/v1/fcfs",
		`{"processes":["A","B","C"],"arrival_times":[0,0,0],"burst_times":[4,3,2]}`)
	require.Equal(t, http.StatusOK, status, string(body))

	var response responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(body, &response))
	assert.Equal(t, "FCFS", response.Algorithm)
	require.Len(t, response.Details, 3)
	assert.Equal(t, 9, response.Details[2].FinishTime)
	assert.InDelta(t, 20.0/3, response.AverageTurnAroundTime, 1e-9)
	assert.InDelta(t, 11.0/3, response.AverageWaitingTime, 1e-9)
}

func TestRoundRobin_UsesConfiguredQuantum(t *testing.T) {
	status, body := postJSON(t, newTestApp(), "/api/v1/rr",
		`{"processes":["A","B"],"arrival_times":[0,0],"burst_times":[5,3]}`)
	require.Equal(t, http.StatusOK, status, string(body))

	var response responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(body, &response))
	assert.Equal(t, 2, response.TimeQuantum)
	assert.Len(t, response.GanttChart, 5)
}

func TestSchedule_AlgorithmFromBody(t *testing.T) {
	status, body := postJSON(t, newTestApp(), "/api/v1/schedule",
		`{"processes":["A","B"],"arrival_times":[0,1],"burst_times":[5,1],"algorithm":"SJF"}`)
	require.Equal(t, http.StatusOK, status, string(body))

	var response responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(body, &response))
	assert.Equal(t, "SJF", response.Algorithm)
	assert.Equal(t, 6, response.Details[1].FinishTime)
}

func TestValidationErrorsAreBadRequests(t *testing.T) {
	cases := map[string]struct {
		path, body, message string
	}{
		"mismatch": {
			"/api/v1/fcfs",
			`{"processes":["A","B"],"arrival_times":[0],"burst_times":[1,2]}`,
			"must match",
		},
		"quantum": {
			"/api/v1/rr",
			`{"processes":["A"],"arrival_times":[0],"burst_times":[1],"time_quantum":0}`,
			"time quantum must be a positive integer",
		},
		"priorities": {
			"/api/v1/priority",
			`{"processes":["A"],"arrival_times":[0],"burst_times":[1]}`,
			"priorities are required",
		},
		"algorithm": {
			"/api/v1/schedule",
			`{"processes":["A"],"arrival_times":[0],"burst_times":[1],"algorithm":"lottery"}`,
			"unknown scheduling algorithm",
		},
		"malformed": {
			"/api/v1/fcfs",
			`{"processes":`,
			"invalid request format",
		},
	}
	app := newTestApp()
	for name, tc := range cases {
		status, body := postJSON(t, app, tc.path, tc.body)
		assert.Equal(t, http.StatusBadRequest, status, name)
		var payload map[string]string
		require.NoError(t, json.Unmarshal(body, &payload), name)
		assert.Contains(t, payload["error"], tc.message, name)
	}
}

func TestAllAlgorithms(t *testing.T) {
	status, body := postJSON(t, newTestApp(), "/api/v1/all",
		`{"processes":["A","B"],"arrival_times":[0,0],"burst_times":[3,1],"priorities":[1,2],"time_quantum":1}`)
	require.Equal(t, http.StatusOK, status, string(body))

	var comparison responses.ComparisonResponse
	require.NoError(t, json.Unmarshal(body, &comparison))
	require.Len(t, comparison.Results, 4)
	assert.Equal(t, 1, comparison.Results[2].TimeQuantum)
}

func TestFormSubmission(t *testing.T) {
	form := url.Values{}
	form.Set("process", "P1,P2")
	form.Set("burst_time", "2,2")
	form.Set("arrival_time", "0,0")
	form.Set("algorithm", "Priority")
	form.Set("priority", "2,1")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedule", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err := newTestApp().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var response responses.ScheduleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	assert.Equal(t, "P2", response.GanttChart[0].Process)
}

func TestHealth(t *testing.T) {
	resp, err := newTestApp().Test(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
