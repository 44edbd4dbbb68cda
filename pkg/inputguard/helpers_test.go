package inputguard_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fittrack/pkg/audit"
)

type recordingAuditor struct {
	mu     sync.Mutex
	events []audit.Event
}

func (a *recordingAuditor) Record(_ context.Context, e audit.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, e)
}

func (a *recordingAuditor) recorded() []audit.Event {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]audit.Event(nil), a.events...)
}

type echoResponse struct {
	Body          any               `json:"body"`
	Query         map[string]any    `json:"query"`
	Params        map[string]string `json:"params"`
	ContentLength int64             `json:"content_length"`
}

// echoHandler reports the request data as a handler behind the pipeline sees it.
func echoHandler(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)

	resp := echoResponse{
		Query:         map[string]any{},
		Params:        map[string]string{},
		ContentLength: r.ContentLength,
	}
	if len(raw) > 0 {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		if err := dec.Decode(&resp.Body); err != nil {
			resp.Body = string(raw)
		}
	}
	for k, v := range r.URL.Query() {
		if len(v) == 1 {
			resp.Query[k] = v[0]
		} else {
			resp.Query[k] = v
		}
	}
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		for i, k := range rctx.URLParams.Keys {
			resp.Params[k] = rctx.URLParams.Values[i]
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func newRouter(mw func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(mw)
		r.Post("/echo", echoHandler)
		r.Get("/echo", echoHandler)
		r.Get("/items/{ref}", echoHandler)
	})
	return r
}

func postJSON(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeEcho(t *testing.T, rec *httptest.ResponseRecorder) echoResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp echoResponse
	dec := json.NewDecoder(rec.Body)
	dec.UseNumber()
	require.NoError(t, dec.Decode(&resp))
	return resp
}

func decodeRejection(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func quietLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
