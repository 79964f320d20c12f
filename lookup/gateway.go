package lookup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"

	"github.com/alovak/paystatus/lookup/models"
)

// ErrTimeout marks an upstream call that exceeded the client deadline,
// distinct from every other transport failure so callers can tell a slow
// vendor from a broken one.
var ErrTimeout = errors.New("upstream timeout")

// Gateway performs the single outbound lookup against the vendor API.
type Gateway struct {
	payoutURL string
	payinURL  string
	client    *http.Client
}

func NewGateway(cfg *Config) *Gateway {
	return &Gateway{
		payoutURL: strings.TrimRight(cfg.PayoutURL, "/"),
		payinURL:  strings.TrimRight(cfg.PayinURL, "/"),
		client:    &http.Client{Timeout: cfg.UpstreamTimeout},
	}
}

// Fetch looks up one merchant transaction id and decodes the body as JSON.
// A body that does not parse is wrapped as {"raw": <text>} so downstream
// stages always receive a JSON-shaped value.
func (g *Gateway) Fetch(ctx context.Context, orderID string, typ models.TransactionType) (int, any, error) {
	base := g.payoutURL
	if typ == models.Payin {
		base = g.payinURL
	}

	u, err := url.Parse(base)
	if err != nil {
		return 0, nil, fmt.Errorf("parse upstream url: %w", err)
	}
	q := u.Query()
	q.Set("merchantTransactionId", orderID)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, nil, fmt.Errorf("build upstream request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return 0, nil, ErrTimeout
		}
		return 0, nil, fmt.Errorf("upstream request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return 0, nil, ErrTimeout
		}
		return 0, nil, fmt.Errorf("read upstream body: %w", err)
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		decoded = map[string]any{"raw": string(body)}
	}

	return resp.StatusCode, decoded, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
