package rest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrijs2005/vibetracker/internal/logging"
	"github.com/dmitrijs2005/vibetracker/internal/server/models"
	"github.com/dmitrijs2005/vibetracker/internal/server/services"
	"github.com/labstack/echo/v4"
)

// ---- fakes ----

type fakeVibes struct {
	listOut []*models.Vibe
	listErr error

	createIn  services.CreateVibeInput
	createOut *models.Vibe
	createErr error

	deleteID  string
	deleteErr error
}

func (f *fakeVibes) List(ctx context.Context) ([]*models.Vibe, error) {
	return f.listOut, f.listErr
}
func (f *fakeVibes) Create(ctx context.Context, in services.CreateVibeInput) (*models.Vibe, error) {
	f.createIn = in
	return f.createOut, f.createErr
}
func (f *fakeVibes) Delete(ctx context.Context, id string) error {
	f.deleteID = id
	return f.deleteErr
}

type fakeGoals struct {
	listOut []*models.Goal
	listErr error

	createIn  services.CreateGoalInput
	createOut *models.Goal
	createErr error

	updateID    string
	updateIn    services.UpdateGoalInput
	updateOut   *models.Goal
	updateErr   error
	updateCalls int

	deleteID  string
	deleteErr error
}

func (f *fakeGoals) List(ctx context.Context) ([]*models.Goal, error) {
	return f.listOut, f.listErr
}
func (f *fakeGoals) Create(ctx context.Context, in services.CreateGoalInput) (*models.Goal, error) {
	f.createIn = in
	return f.createOut, f.createErr
}
func (f *fakeGoals) SetCompleted(ctx context.Context, id string, in services.UpdateGoalInput) (*models.Goal, error) {
	f.updateCalls++
	f.updateID, f.updateIn = id, in
	return f.updateOut, f.updateErr
}
func (f *fakeGoals) Delete(ctx context.Context, id string) error {
	f.deleteID = id
	return f.deleteErr
}

type fakeExporter struct {
	out *services.ExportResult
	err error
}

func (f *fakeExporter) Export(ctx context.Context) (*services.ExportResult, error) {
	return f.out, f.err
}

type fakePinger struct{ err error }

func (f fakePinger) PingContext(ctx context.Context) error { return f.err }

// ---- helpers ----

func newContext(method, target string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// serve runs a request through the full router, error handler included.
func serve(t *testing.T, s *HTTPServer, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func newTestServer(vs VibeService, gs GoalService, ex Exporter, db Pinger) *HTTPServer {
	return NewHTTPServer("127.0.0.1:0", logging.NopLogger{}, vs, gs, ex, db, WithLogLevel("off"))
}

func statusOf(err error) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return http.StatusOK
}

func reasonOf(err error) string {
	if he, ok := err.(*echo.HTTPError); ok {
		if m, ok := he.Message.(ErrorMessage); ok {
			return m.Error
		}
	}
	return ""
}
