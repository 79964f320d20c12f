package fields

import "testing"

func TestPick_PriorityOrder(t *testing.T) {
    rec := map[string]any{"a": "first", "b": "second"}
    if got := Pick(rec, []string{"a", "b"}, "N/A"); got != "first" {
        t.Fatalf("got %v want first", got)
    }
}

func TestPick_SkipsNilAndEmpty(t *testing.T) {
    rec := map[string]any{"a": nil, "b": "", "c": "value"}
    if got := Pick(rec, []string{"a", "b", "c"}, "N/A"); got != "value" {
        t.Fatalf("got %v want value", got)
    }
}

func TestPick_Default(t *testing.T) {
    rec := map[string]any{"x": "y"}
    if got := Pick(rec, []string{"a", "b"}, "N/A"); got != "N/A" {
        t.Fatalf("got %v want N/A", got)
    }
}

func TestPick_NilRecord(t *testing.T) {
    if got := Pick(nil, []string{"a"}, "N/A"); got != "N/A" {
        t.Fatalf("got %v want N/A", got)
    }
}

func TestPick_KeepsNonStringZeroValues(t *testing.T) {
    // 0 and false are present values; only nil and "" count as absent.
    rec := map[string]any{"amount": float64(0), "flag": false}
    if got := Pick(rec, []string{"amount"}, "N/A"); got != float64(0) {
        t.Fatalf("got %v want 0", got)
    }
    if got := Pick(rec, []string{"flag"}, "N/A"); got != false {
        t.Fatalf("got %v want false", got)
    }
}
