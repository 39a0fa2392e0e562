package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"igf/internal/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
)

// RequestIDHeader carries the correlation id of a request.
const RequestIDHeader = "X-Request-ID"

type ctxKey struct{}

// RequestIDFromContext returns the id stored by RequestIDMiddleware.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// RequestIDMiddleware reuses the caller's X-Request-ID or assigns a new one.
func (con *Controller) RequestIDMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		id := req.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		res.Header().Set(RequestIDHeader, id)
		h.ServeHTTP(res, req.WithContext(context.WithValue(req.Context(), ctxKey{}, id)))
	})
}

// LoggingMiddleware logs every request with its status, size and duration.
func (con *Controller) LoggingMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		start := time.Now()
		data := &responseData{}
		lw := &loggingResponseWriter{ResponseWriter: res, responseData: data}

		h.ServeHTTP(lw, req)

		con.sugar.Infoln(
			"uri", req.RequestURI,
			"method", req.Method,
			"status", data.status,
			"size", data.size,
			"duration", time.Since(start),
			"request_id", RequestIDFromContext(req.Context()),
		)
	})
}

// MetricsMiddleware records request counts and latency per route pattern.
func (con *Controller) MetricsMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		start := time.Now()
		data := &responseData{}
		lw := &loggingResponseWriter{ResponseWriter: res, responseData: data}

		h.ServeHTTP(lw, req)

		route := "unmatched"
		if rctx := chi.RouteContext(req.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := data.status
		if status == 0 {
			status = http.StatusOK
		}
		metrics.RecordHTTPRequest(req.Method, route, status, time.Since(start))
	})
}

// GzipEncodeMiddleware compresses responses for clients that accept gzip.
func (con *Controller) GzipEncodeMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") {
			h.ServeHTTP(res, req)
			return
		}

		gz, err := gzip.NewWriterLevel(res, gzip.BestSpeed)
		if err != nil {
			con.sugar.Errorf("(GzipEncodeMiddleware) %s", err.Error())
			h.ServeHTTP(res, req)
			return
		}
		defer func() {
			if err := gz.Close(); err != nil {
				con.sugar.Errorf("(GzipEncodeMiddleware) close: %s", err.Error())
			}
		}()

		res.Header().Set("Content-Encoding", "gzip")
		res.Header().Add("Vary", "Accept-Encoding")
		h.ServeHTTP(gzipWriter{ResponseWriter: res, Writer: gz}, req)
	})
}

// GzipDecodeMiddleware transparently decompresses gzip-encoded request bodies.
func (con *Controller) GzipDecodeMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		if !strings.Contains(req.Header.Get("Content-Encoding"), "gzip") {
			h.ServeHTTP(res, req)
			return
		}

		gz, err := gzip.NewReader(req.Body)
		if err != nil {
			con.writeJSON(res, http.StatusBadRequest, errorEnvelope("Invalid gzip body"))
			return
		}
		defer func() {
			_ = gz.Close()
		}()

		req.Body = gz
		req.Header.Del("Content-Encoding")
		req.ContentLength = -1
		h.ServeHTTP(res, req)
	})
}
