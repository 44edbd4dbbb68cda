package preview

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Result is what a contributor's content looks like after the request
// pipeline has cleaned it.
type Result struct {
	Ref   string              `json:"ref"`
	Body  any                 `json:"body,omitempty"`
	Query map[string][]string `json:"query,omitempty"`
}

type response struct {
	Data  any          `json:"data,omitempty"`
	Error *errorDetail `json:"error,omitempty"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Handle echoes the request data as the handler sees it. It is meant to sit
// behind the sanitization pipeline.
func Handle(w http.ResponseWriter, r *http.Request) {
	res := Result{Ref: chi.URLParam(r, "ref")}

	if q := r.URL.Query(); len(q) > 0 {
		res.Query = q
	}

	if isJSON(r.Header.Get("Content-Type")) {
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, response{Error: &errorDetail{Code: "BAD_REQUEST", Message: "Unable to read body"}})
			return
		}
		if len(bytes.TrimSpace(raw)) > 0 {
			dec := json.NewDecoder(bytes.NewReader(raw))
			dec.UseNumber()
			if err := dec.Decode(&res.Body); err != nil {
				writeJSON(w, http.StatusBadRequest, response{Error: &errorDetail{Code: "BAD_REQUEST", Message: "Body is not valid JSON"}})
				return
			}
		}
	}

	writeJSON(w, http.StatusOK, response{Data: res})
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
