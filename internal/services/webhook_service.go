package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"igf/internal/domain/models"
)

// UserAgent identifies the proxy to webhook receivers.
const UserAgent = "IGF-App-Webhook-Proxy/1.0"

// maxResponseBody caps how much of a downstream response is relayed.
const maxResponseBody = 1 << 20

const unknownEvent = "unknown"

// Doer sends HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Delivery is what the downstream answered. Any status counts as delivered.
type Delivery struct {
	Status     int
	StatusText string
	Body       string
}

// WebhookService forwards caller payloads to caller-supplied URLs.
type WebhookService interface {
	// Deliver validates req, enriches the payload and POSTs it exactly once.
	// Validation failures wrap ErrInvalidInput; transport failures are *DeliveryError.
	Deliver(ctx context.Context, req models.WebhookRequest) (*Delivery, error)
}

type webhookServ struct {
	client  Doer
	timeout time.Duration
	now     func() time.Time
}

// NewWebhookService creates a WebhookService bounding every delivery by timeout.
func NewWebhookService(client Doer, timeout time.Duration) WebhookService {
	return &webhookServ{client: client, timeout: timeout, now: time.Now}
}

type webhookMetadata struct {
	Event string `json:"event"`
	Time  string `json:"time"`
}

func (s *webhookServ) Deliver(ctx context.Context, req models.WebhookRequest) (*Delivery, error) {
	if err := validate.Struct(req); err != nil || isNullPayload(req.Payload) {
		return nil, invalidInput("URL and payload are required")
	}
	target, err := parseWebhookURL(req.URL)
	if err != nil {
		return nil, invalidInput("Invalid webhook URL")
	}

	event := req.EventType
	if event == "" {
		event = unknownEvent
	}
	body, err := enrichPayload(req.Payload, webhookMetadata{Event: event, Time: models.FormatTimestamp(s.now())})
	if err != nil {
		return nil, invalidInput("Payload is not valid JSON")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), bytes.NewReader(body))
	if err != nil {
		return nil, &DeliveryError{Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, &DeliveryError{Err: s.describe(err)}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, &DeliveryError{Err: s.describe(err)}
	}

	return &Delivery{
		Status:     resp.StatusCode,
		StatusText: statusText(resp),
		Body:       string(respBody),
	}, nil
}

func (s *webhookServ) describe(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("request timed out after %s: %w", s.timeout, err)
	}
	return err
}

func isNullPayload(p json.RawMessage) bool {
	trimmed := bytes.TrimSpace(p)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// parseWebhookURL accepts only absolute http and https URLs with a host.
func parseWebhookURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, errors.New("missing host")
	}
	return u, nil
}

// enrichPayload sets "metadata" on an object payload, replacing any caller value.
// Other JSON values are wrapped as {"data": payload, "metadata": ...}.
func enrichPayload(payload json.RawMessage, meta webhookMetadata) ([]byte, error) {
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return nil, err
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(payload, &obj); err != nil || obj == nil {
		if !json.Valid(payload) {
			return nil, errors.New("invalid payload")
		}
		return json.Marshal(map[string]json.RawMessage{
			"data":     payload,
			"metadata": metaJSON,
		})
	}

	obj["metadata"] = metaJSON
	return json.Marshal(obj)
}

// statusText returns the reason phrase the downstream sent.
func statusText(resp *http.Response) string {
	text := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))
	text = strings.TrimSpace(text)
	if text == "" {
		return http.StatusText(resp.StatusCode)
	}
	return text
}
