package lookup

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"github.com/alovak/paystatus/internal/fields"
	"github.com/alovak/paystatus/internal/sanitize"
	"github.com/alovak/paystatus/internal/status"
	"github.com/alovak/paystatus/lookup/models"
)

// Validation failures reported before any upstream call is made.
var (
	ErrEmptyBatch = errors.New("ids must be a non-empty list")
	ErrTooManyIDs = errors.New("too many ids")
)

// Field-name aliases the vendor uses across its response variants, in
// preference order. Processed-at prefers the update timestamp and falls
// back to the created-date chain.
var (
	statusKeys      = []string{"status"}
	txnIDKeys       = []string{"transactionId", "txnId", "id"}
	processedAtKeys = []string{"updatedAt", "updated_at", "createdAt", "created_at", "date_time", "date", "timestamp"}
	amountKeys      = []string{"amount", "totalAmount", "txnAmount", "balance"}
	merchantKeys    = []string{"merchantName"}
	currencyKeys    = []string{"currency", "ccy"}
)

const (
	defaultCurrency = "PKR"
	notAvailable    = "N/A"
)

// Service resolves merchant transaction ids against the vendor, one at a
// time. It holds no mutable state, so it is safe under concurrent requests.
type Service struct {
	gateway *Gateway
	logger  *slog.Logger
	maxBulk int
}

func NewService(gateway *Gateway, logger *slog.Logger, cfg *Config) *Service {
	return &Service{
		gateway: gateway,
		logger:  logger.With(slog.String("component", "lookup")),
		maxBulk: cfg.MaxBulkIDs,
	}
}

// Resolve looks up a single order id and assembles the normalized summary
// plus a sanitized copy of the full upstream payload. Gateway failures come
// back as errors; errors.Is(err, ErrTimeout) distinguishes a slow vendor.
func (s *Service) Resolve(ctx context.Context, orderID string, typ models.TransactionType) (*models.LookupResult, error) {
	code, raw, err := s.gateway.Fetch(ctx, orderID, typ)
	if err != nil {
		return nil, err
	}

	txn := FirstTransaction(raw, typ)
	rawStatus := fields.Pick(txn, statusKeys, nil)

	return &models.LookupResult{
		OK:         code >= 200 && code < 300,
		StatusCode: code,
		OrderID:    orderID,
		Type:       typ,
		Summary: models.Summary{
			Status:   status.Normalize(stringify(rawStatus)),
			TxnID:    fields.Pick(txn, txnIDKeys, notAvailable),
			Date:     fields.Pick(txn, processedAtKeys, notAvailable),
			Amount:   fields.Pick(txn, amountKeys, nil),
			Currency: fields.Pick(txn, currencyKeys, defaultCurrency),
			Merchant: merchantOf(txn),
		},
		Data: sanitize.Mask(raw),
	}, nil
}

// ResolveMany runs the single-id path once per non-blank id, strictly in
// input order. A failing id becomes its own entry and the loop moves on;
// nothing one id does can abort the batch or touch another id's entry.
func (s *Service) ResolveMany(ctx context.Context, ids []string, typ models.TransactionType) (*models.BulkResult, error) {
	if len(ids) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(ids) > s.maxBulk {
		return nil, fmt.Errorf("%w: at most %d ids per request", ErrTooManyIDs, s.maxBulk)
	}

	start := time.Now()
	batchID := uuid.New().String()
	results := make([]models.BulkEntry, 0, len(ids))

	for _, rawID := range ids {
		orderID := strings.TrimSpace(rawID)
		if orderID == "" {
			continue
		}
		results = append(results, s.resolveEntry(ctx, orderID, typ))
	}

	elapsed := time.Since(start)
	s.logger.Info("bulk lookup finished",
		slog.String("batch_id", batchID),
		slog.String("type", string(typ)),
		slog.Int("count", len(results)),
		slog.Duration("elapsed", elapsed),
	)

	return &models.BulkResult{
		OK:        true,
		Type:      typ,
		BatchID:   batchID,
		Count:     len(results),
		ElapsedMS: elapsed.Milliseconds(),
		Results:   results,
	}, nil
}

func (s *Service) resolveEntry(ctx context.Context, orderID string, typ models.TransactionType) models.BulkEntry {
	entry := models.BulkEntry{
		OrderID:     orderID,
		Type:        typ,
		TxnID:       notAvailable,
		ProcessedAt: notAvailable,
	}

	code, raw, err := s.gateway.Fetch(ctx, orderID, typ)
	switch {
	case errors.Is(err, ErrTimeout):
		entry.Status = models.StatusTimeout
		entry.StatusCode = http.StatusGatewayTimeout
		entry.Note = "TIMEOUT"
		return entry
	case err != nil:
		entry.Status = models.StatusError
		entry.StatusCode = http.StatusInternalServerError
		entry.Note = err.Error()
		return entry
	}

	entry.StatusCode = code

	txn := FirstTransaction(raw, typ)
	if len(txn) == 0 {
		entry.Status = models.StatusNotInBO
		entry.Note = "NOT_IN_BO"
		return entry
	}

	rawStatus := fields.Pick(txn, statusKeys, nil)
	entry.RawStatus = rawStatus
	entry.Status = status.Normalize(stringify(rawStatus))
	entry.TxnID = fields.Pick(txn, txnIDKeys, notAvailable)
	entry.ProcessedAt = fields.Pick(txn, processedAtKeys, notAvailable)
	entry.Note = annotate(raw, entry.Status, code)

	return entry
}

// annotate flags anomalies on an entry that did produce a transaction
// record; the first matching rule wins.
func annotate(raw any, st status.Canonical, code int) string {
	if !upstreamOK(raw) {
		return "Upstream not ok"
	}
	if st == status.Unknown {
		return "Unknown status"
	}
	if code != http.StatusOK {
		return fmt.Sprintf("HTTP %d", code)
	}
	return ""
}

// upstreamOK reads the vendor's own success indicator from the response
// body. Only an explicit false counts as not ok.
func upstreamOK(raw any) bool {
	obj, ok := raw.(map[string]any)
	if !ok {
		return true
	}

	for _, key := range []string{"success", "ok"} {
		if b, isBool := obj[key].(bool); isBool && !b {
			return false
		}
	}

	return true
}

// merchantOf prefers the provider-specific nested merchant object over the
// flat merchantName field.
func merchantOf(txn map[string]any) any {
	if nested, ok := txn["jazzCashMerchant"].(map[string]any); ok {
		if v := fields.Pick(nested, []string{"merchant_of"}, nil); v != nil {
			return v
		}
	}

	return fields.Pick(txn, merchantKeys, nil)
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
