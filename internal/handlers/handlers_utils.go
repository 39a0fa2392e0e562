package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"igf/internal/domain/models"
	"igf/internal/services"
)

// maxRequestBody bounds decoded JSON bodies.
const maxRequestBody = 1 << 20

type (
	responseData struct {
		status int
		size   int
	}

	loggingResponseWriter struct {
		http.ResponseWriter
		responseData *responseData
	}
)

// Write writes the response body and records its size.
func (r *loggingResponseWriter) Write(b []byte) (int, error) {
	if r.responseData.status == 0 {
		r.responseData.status = http.StatusOK
	}
	size, err := r.ResponseWriter.Write(b)
	r.responseData.size += size
	return size, err
}

// WriteHeader writes the status code and records it.
func (r *loggingResponseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	if r.responseData.status == 0 {
		r.responseData.status = statusCode
	}
}

// gzipWriter wraps http.ResponseWriter to compress the body.
type gzipWriter struct {
	http.ResponseWriter
	Writer io.Writer
}

// Write writes compressed data to the response.
func (w gzipWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

// WriteHeader drops Content-Length, which no longer matches the compressed body.
func (w gzipWriter) WriteHeader(statusCode int) {
	w.ResponseWriter.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(statusCode)
}

func decodeJSON(res http.ResponseWriter, req *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(res, req.Body, maxRequestBody)).Decode(v)
}

func (con *Controller) writeJSON(res http.ResponseWriter, status int, v any) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)
	if err := json.NewEncoder(res).Encode(v); err != nil {
		con.sugar.Errorf("write response error: %s", err.Error())
	}
}

// inputMessage returns the client-facing message of an input error, or fallback.
func inputMessage(err error, fallback string) string {
	var inErr *services.InputError
	if errors.As(err, &inErr) {
		return inErr.Message
	}
	return fallback
}

func authFailure(msg string) models.AuthResponse {
	return models.AuthResponse{Envelope: models.Envelope{Message: msg}}
}

func webhookFailure(status int, msg, response string) models.WebhookResponse {
	return models.WebhookResponse{
		Message: msg,
		WebhookResult: models.WebhookResult{
			Status:     status,
			StatusText: http.StatusText(status),
			Response:   response,
		},
	}
}

func isAPIPath(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/")
}

func errorEnvelope(msg string) models.Envelope {
	return models.Envelope{Message: msg}
}
