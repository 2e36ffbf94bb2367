package logging

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggingWithLevel(t *testing.T) {
	logger, err := SetupLoggingWithLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.Level)

	_, err = SetupLoggingWithLevel("chatty")
	assert.Error(t, err)
}

func TestLogData_FieldsAndTimings(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logData := NewLogData(logger)

	logData.AddData("recommendationCount", 3)
	logData.AddTiming("analysisMs")()
	stop := logData.AddToExistingTiming("analysisMs")
	stop()
	logData.Log().Info("done")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, 3, entry.Data["recommendationCount"])
	assert.Contains(t, entry.Data, "analysisMs")
}

func TestGetLogData(t *testing.T) {
	assert.Nil(t, GetLogData(context.Background()))

	logData := NewLogData(SetupLogging())
	ctx := WithLogData(context.Background(), logData)
	assert.Same(t, logData, GetLogData(ctx))
}

func TestLogData_NilIsNoop(t *testing.T) {
	var logData *LogData

	assert.NotPanics(t, func() {
		logData.AddData("key", "value")
		logData.AddTiming("a")()
		logData.AddToExistingTiming("b")()
	})
}

func TestLoggingWrapper_SeparateLogDataPerRequest(t *testing.T) {
	logger, hook := test.NewNullLogger()
	var seen []*LogData

	handler := LoggingWrapper("Status", logger, func(w http.ResponseWriter, req *http.Request, logData *LogData) error {
		assert.Same(t, logData, GetLogData(req.Context()))
		seen = append(seen, logData)
		w.WriteHeader(http.StatusOK)
		return nil
	})

	for i := 0; i < 2; i++ {
		handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/status", nil))
	}

	require.Len(t, seen, 2)
	assert.NotSame(t, seen[0], seen[1])
	assert.Equal(t, "Handler.Status.Complete", hook.LastEntry().Message)
}

func TestLoggingWrapper_Error(t *testing.T) {
	logger, hook := test.NewNullLogger()

	handler := LoggingWrapper("Status", logger, func(w http.ResponseWriter, req *http.Request, logData *LogData) error {
		return errors.New("boom")
	})
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/status", nil))

	entry := hook.LastEntry()
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "Handler.Status.Error", entry.Message)
}

type pingOutput struct {
	Body struct {
		Traced bool `json:"traced"`
	}
}

func TestMiddleware(t *testing.T) {
	logger, hook := test.NewNullLogger()
	_, api := humatest.New(t)
	api.UseMiddleware(Middleware(logger))

	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
	}, func(ctx context.Context, input *struct{}) (*pingOutput, error) {
		out := &pingOutput{}
		if logData := GetLogData(ctx); logData != nil {
			logData.AddData("pinged", true)
			out.Body.Traced = true
		}
		return out, nil
	})

	resp := api.Get("/ping")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"traced":true`)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Handler.ping.Complete", entry.Message)
	assert.Equal(t, true, entry.Data["pinged"])
	assert.Equal(t, http.StatusOK, entry.Data["status"])
}
