package payments

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"
)

const defaultRequestTimeout = 30 * time.Second

// Transport performs one HTTP exchange with the provider. Implementations own
// the timeout/cancellation policy; the gateway itself never retries and never
// imposes a deadline of its own.
type Transport interface {
	Do(ctx context.Context, method, url string, body []byte, headers map[string]string) (status int, respBody []byte, err error)
}

type netTransport struct {
	client *http.Client
}

// NewNetTransport returns the default net/http transport with a bounded
// client timeout.
func NewNetTransport() Transport {
	return &netTransport{client: &http.Client{Timeout: defaultRequestTimeout}}
}

func (t *netTransport) Do(ctx context.Context, method, url string, body []byte, headers map[string]string) (int, []byte, error) {
	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, respBody, nil
}
