package status

import "strings"

// Canonical is the normalized status vocabulary. Besides the four fixed
// values below, an unrecognized vendor status passes through uppercased so
// it stays visible to callers instead of collapsing into Unknown.
type Canonical string

const (
    Completed Canonical = "COMPLETED"
    Failed    Canonical = "FAILED"
    Pending   Canonical = "PENDING"
    Unknown   Canonical = "UNKNOWN"
)

// Normalize maps a raw vendor status to its canonical form. Matching is
// case- and whitespace-insensitive; the pass-through fallback keeps the
// original text verbatim, only uppercased.
func Normalize(raw string) Canonical {
    switch strings.ToLower(strings.TrimSpace(raw)) {
    case "":
        return Unknown
    case "success", "completed":
        return Completed
    case "failed", "reversed":
        return Failed
    case "pending", "inprogress", "processing":
        return Pending
    default:
        return Canonical(strings.ToUpper(raw))
    }
}
