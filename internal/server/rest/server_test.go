package rest

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/dmitrijs2005/vibetracker/internal/logging"
	"github.com/dmitrijs2005/vibetracker/internal/server/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_ErrorBodies(t *testing.T) {
	s := newTestServer(
		&fakeVibes{listErr: errors.New("db down")},
		&fakeGoals{},
		&fakeExporter{},
		fakePinger{},
	)

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"store failure hides cause", http.MethodGet, "/api/vibes", "", http.StatusInternalServerError, `{"error":"Failed to load vibes"}`},
		{"bad json", http.MethodPost, "/api/goals", `{`, http.StatusBadRequest, `{"error":"Invalid JSON body"}`},
		{"patch without id", http.MethodPatch, "/api/goals", `{"completed":true}`, http.StatusBadRequest, `{"error":"Missing goal ID"}`},
		{"unknown route", http.MethodGet, "/api/nothing", "", http.StatusNotFound, `{"error":"Not Found"}`},
		{"wrong method", http.MethodPut, "/api/vibes", "", http.StatusMethodNotAllowed, `{"error":"Method Not Allowed"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, s, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestRouter_HappyPaths(t *testing.T) {
	vs := &fakeVibes{
		listOut:   []*models.Vibe{},
		createOut: &models.Vibe{ID: "v1", Mood: "calm"},
	}
	s := newTestServer(vs, &fakeGoals{listOut: []*models.Goal{}}, &fakeExporter{}, fakePinger{})

	rec := serve(t, s, http.MethodGet, "/api/goals", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = serve(t, s, http.MethodPost, "/api/vibes", `{"mood":"calm"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "calm", vs.createIn.Mood)
	assert.Nil(t, vs.createIn.Note)

	rec = serve(t, s, http.MethodDelete, "/api/vibes?id=v1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v1", vs.deleteID)

	rec = serve(t, s, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, s, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestErrorHandler_LogsServerErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewJSONLogger(&buf, "debug")

	c, rec := newContext(http.MethodGet, "/api/vibes", nil)
	ErrorHandler(logger)(InternalServerError(msgLoadVibesFailed, errors.New("conn reset")), c)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to load vibes"}`, rec.Body.String())
	assert.Contains(t, buf.String(), "conn reset")

	buf.Reset()
	c, rec = newContext(http.MethodGet, "/api/vibes", nil)
	ErrorHandler(logger)(NotFound(msgVibeNotFound), c)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, buf.String())

	c, rec = newContext(http.MethodGet, "/", nil)
	ErrorHandler(logger)(errors.New("plain"), c)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
}

func TestLogHandlerFunc_RecordsFinalStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewJSONLogger(&buf, "info")
	s := NewHTTPServer("127.0.0.1:0", logger, &fakeVibes{}, &fakeGoals{}, &fakeExporter{}, fakePinger{}, WithLogLevel("off"))

	rec := serve(t, s, http.MethodDelete, "/api/goals?id=g1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"path":"/api/goals"`)

	buf.Reset()
	rec = serve(t, s, http.MethodPatch, "/api/goals", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, buf.String(), `"status":400`)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	s := NewHTTPServer("127.0.0.1:0", logging.NopLogger{}, &fakeVibes{}, &fakeGoals{}, &fakeExporter{}, fakePinger{},
		WithLogLevel("off"), WithShutdownTimeout(time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	s := NewHTTPServer("127.0.0.1:99999", logging.NopLogger{}, &fakeVibes{}, &fakeGoals{}, &fakeExporter{}, fakePinger{},
		WithLogLevel("off"))

	select {
	case err := <-runAsync(s):
		assert.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("expected Run to fail fast on an invalid address")
	}
}

func runAsync(s *HTTPServer) <-chan error {
	done := make(chan error, 1)
	go func() { done <- s.Run(context.Background()) }()
	return done
}

func TestSetLevel(t *testing.T) {
	e := echo.New()
	for _, lvl := range []string{"debug", "info", "warn", "", "error", "off", "loud"} {
		assert.NotPanics(t, func() { SetLevel(e, lvl) }, lvl)
	}
}
