package sanitize

// Masked replaces every secret value in the echoed payload.
const Masked = "***"

// secretKeys are field names whose values must never reach a caller,
// at any nesting depth.
var secretKeys = map[string]struct{}{
    "password":       {},
    "integritySalt":  {},
    "integrity_salt": {},
    "secret":         {},
    "salt":           {},
    "apiKey":         {},
    "api_key":        {},
}

// Mask walks a decoded JSON value and returns a copy with every value under
// a secret key replaced by Masked. The input is never mutated, so the same
// decoded payload stays safe to reuse for summary extraction.
func Mask(v any) any {
    switch val := v.(type) {
    case []any:
        out := make([]any, len(val))
        for i, item := range val {
            out[i] = Mask(item)
        }
        return out
    case map[string]any:
        out := make(map[string]any, len(val))
        for k, item := range val {
            if _, ok := secretKeys[k]; ok {
                out[k] = Masked
            } else {
                out[k] = Mask(item)
            }
        }
        return out
    default:
        return v
    }
}
