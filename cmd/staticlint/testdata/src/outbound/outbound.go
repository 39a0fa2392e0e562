package outbound

import (
	"context"
	"net/http"
	"strings"
)

func bad() {
	_, _ = http.Get("http://example.com")                             // want "http.Get ignores cancellation"
	_, _ = http.Post("http://example.com", "text/plain", nil)         // want "http.Post ignores cancellation"
	_, _ = http.NewRequest(http.MethodGet, "http://example.com", nil) // want "http.NewRequest ignores cancellation"
	client := http.DefaultClient                                      // want "http.DefaultClient has no timeout"
	_ = client
}

func good(ctx context.Context, client *http.Client) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "http://example.com", strings.NewReader("{}"))
	if err != nil {
		return err
	}
	res, err := client.Do(req)
	if err != nil {
		return err
	}
	return res.Body.Close()
}

// methods named like the helpers are fine
func method(client *http.Client) {
	_, _ = client.Get("http://example.com")
}
