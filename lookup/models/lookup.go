package models

import (
	"strings"

	"github.com/alovak/paystatus/internal/status"
)

// TransactionType selects both the upstream endpoint and the response shape
// the vendor uses for it.
type TransactionType string

const (
	Payout TransactionType = "payout"
	Payin  TransactionType = "payin"
)

// ParseTransactionType parses a caller-supplied type string. An empty value
// defaults to Payout; anything other than the two known types is rejected.
func ParseTransactionType(s string) (TransactionType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(Payout):
		return Payout, true
	case string(Payin):
		return Payin, true
	}

	return "", false
}

// Sentinel statuses for outcomes that never produced a vendor transaction
// record. NotInBO means the vendor does not know the id at all, which is
// distinct from a recognized transaction with an ambiguous status.
const (
	StatusNotInBO status.Canonical = "NOT_IN_BO"
	StatusTimeout status.Canonical = "TIMEOUT"
	StatusError   status.Canonical = "ERROR"
)

// Summary is the normalized per-transaction digest served to the UI.
// Resolved fields keep whatever JSON type the vendor used for them.
type Summary struct {
	Status   status.Canonical `json:"status"`
	TxnID    any              `json:"txn_id"`
	Date     any              `json:"date"`
	Amount   any              `json:"amount"`
	Currency any              `json:"currency"`
	Merchant any              `json:"merchant"`
}

// LookupResult is the single-lookup outcome: the summary plus the sanitized
// full upstream payload. StatusCode mirrors the upstream response.
type LookupResult struct {
	OK         bool            `json:"ok"`
	StatusCode int             `json:"status_code"`
	OrderID    string          `json:"order_id"`
	Type       TransactionType `json:"type"`
	Summary    Summary         `json:"summary"`
	Data       any             `json:"data"`
}

// BulkEntry is one id's outcome inside a bulk run. Note flags anomalies
// (NOT_IN_BO, TIMEOUT, an error message, or an annotation such as
// "Unknown status"); it is empty when nothing stands out.
type BulkEntry struct {
	OrderID     string           `json:"order_id"`
	Type        TransactionType  `json:"type"`
	Status      status.Canonical `json:"status"`
	RawStatus   any              `json:"raw_status"`
	TxnID       any              `json:"txn_id"`
	ProcessedAt any              `json:"processed_at"`
	StatusCode  int              `json:"status_code"`
	Note        string           `json:"note"`
}

// BulkResult aggregates a whole batch, one entry per non-blank requested id
// in input order.
type BulkResult struct {
	OK        bool            `json:"ok"`
	Type      TransactionType `json:"type"`
	BatchID   string          `json:"batch_id"`
	Count     int             `json:"count"`
	ElapsedMS int64           `json:"elapsed_ms"`
	Results   []BulkEntry     `json:"results"`
}
