package inputguard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Input sources, in the order every stage inspects them.
const (
	SourceBody   = "body"
	SourceQuery  = "query"
	SourceParams = "params"
)

type bodyKind int

const (
	bodyNone bodyKind = iota
	bodyJSON
	bodyForm
)

// Input holds the decoded user-supplied data of a request. Body is nil when
// the request has no body or a content type other than JSON or urlencoded
// form. Query and Params are nil when empty.
type Input struct {
	Body   any
	Query  map[string]any
	Params map[string]any

	kind bodyKind
}

type source struct {
	name  string
	value any
}

// sources lists the present sources in inspection order.
func (in Input) sources() []source {
	out := make([]source, 0, 3)
	if in.Body != nil {
		out = append(out, source{SourceBody, in.Body})
	}
	if in.Query != nil {
		out = append(out, source{SourceQuery, in.Query})
	}
	if in.Params != nil {
		out = append(out, source{SourceParams, in.Params})
	}
	return out
}

type inputContextKey struct{}

func withInput(ctx context.Context, in Input) context.Context {
	return context.WithValue(ctx, inputContextKey{}, in)
}

// InputFromContext returns the raw input captured by Sanitize before it was
// cleaned. Handlers normally read the cleaned request instead.
func InputFromContext(ctx context.Context) (Input, bool) {
	in, ok := ctx.Value(inputContextKey{}).(Input)
	return in, ok
}

// inputFor returns the raw snapshot stored by Sanitize or, when the stage
// runs on its own, reads the request.
func inputFor(r *http.Request, o *options) (Input, error) {
	if in, ok := InputFromContext(r.Context()); ok {
		return in, nil
	}
	return readInput(r, o.maxBodyBytes)
}

// readInput decodes the three sources of r. The body stream is replaced with
// an equivalent reader so later handlers can still consume it.
func readInput(r *http.Request, maxBytes int64) (Input, error) {
	var in Input

	if q := r.URL.Query(); len(q) > 0 {
		query, err := parseValues(q)
		if err != nil {
			return in, errors.Join(ErrMalformedQuery, err)
		}
		in.Query = query
	}
	in.Params = readParams(r)

	kind := detectBodyKind(r.Header.Get("Content-Type"))
	if kind == bodyNone || r.Body == nil || r.Body == http.NoBody {
		return in, nil
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBytes+1))
	_ = r.Body.Close()
	if err != nil {
		return in, errors.Join(ErrMalformedBody, err)
	}
	restoreBody(r, raw)
	if int64(len(raw)) > maxBytes {
		return in, ErrBodyTooLarge
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return in, nil
	}

	switch kind {
	case bodyJSON:
		body, err := decodeJSON(raw)
		if err != nil {
			return in, errors.Join(ErrMalformedBody, err)
		}
		in.Body = body
	case bodyForm:
		values, err := url.ParseQuery(string(raw))
		if err != nil {
			return in, errors.Join(ErrMalformedBody, err)
		}
		form, err := parseValues(values)
		if err != nil {
			return in, errors.Join(ErrMalformedBody, err)
		}
		in.Body = form
	}
	in.kind = kind

	return in, nil
}

func detectBodyKind(contentType string) bodyKind {
	if contentType == "" {
		return bodyNone
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return bodyNone
	}
	switch {
	case mediaType == "application/json", strings.HasSuffix(mediaType, "+json"):
		return bodyJSON
	case mediaType == "application/x-www-form-urlencoded":
		return bodyForm
	default:
		return bodyNone
	}
}

func decodeJSON(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON value")
	}
	return v, nil
}

func readParams(r *http.Request) map[string]any {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || len(rctx.URLParams.Keys) == 0 {
		return nil
	}
	params := make(map[string]any, len(rctx.URLParams.Keys))
	for i, key := range rctx.URLParams.Keys {
		params[key] = rctx.URLParams.Values[i]
	}
	return params
}

// writeInput replaces the request data of r with in. r must be a clone owned
// by the caller.
func writeInput(r *http.Request, in Input) error {
	if in.Query != nil {
		r.URL.RawQuery = encodeValues(in.Query).Encode()
	}

	if rctx := chi.RouteContext(r.Context()); rctx != nil && in.Params != nil {
		for i, key := range rctx.URLParams.Keys {
			if v, ok := in.Params[key].(string); ok {
				rctx.URLParams.Values[i] = v
			}
		}
	}

	switch in.kind {
	case bodyJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(in.Body); err != nil {
			return err
		}
		restoreBody(r, bytes.TrimRight(buf.Bytes(), "\n"))
	case bodyForm:
		m, _ := in.Body.(map[string]any)
		restoreBody(r, []byte(encodeValues(m).Encode()))
	}

	// Handlers must parse the cleaned data, not a cached copy of the raw one.
	r.Form = nil
	r.PostForm = nil

	return nil
}

func restoreBody(r *http.Request, data []byte) {
	r.Body = io.NopCloser(bytes.NewReader(data))
	r.ContentLength = int64(len(data))
	r.Header.Set("Content-Length", strconv.Itoa(len(data)))
	r.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	}
}
