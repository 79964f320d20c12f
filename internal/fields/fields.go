package fields

// Pick resolves a value from a set of candidate field-name aliases, in
// priority order. A candidate counts only when it is present, not nil and
// not an empty string. A nil record yields def, which guards callers
// holding an absent transaction.
func Pick(rec map[string]any, keys []string, def any) any {
    for _, k := range keys {
        v, ok := rec[k]
        if !ok || v == nil {
            continue
        }
        if s, isStr := v.(string); isStr && s == "" {
            continue
        }
        return v
    }
    return def
}
