package sanitize

import (
    "reflect"
    "testing"
)

func TestMask_NestedObjectsAndArrays(t *testing.T) {
    in := map[string]any{
        "a": map[string]any{
            "secret": "x",
            "b": []any{
                map[string]any{"password": "y"},
            },
        },
    }

    want := map[string]any{
        "a": map[string]any{
            "secret": Masked,
            "b": []any{
                map[string]any{"password": Masked},
            },
        },
    }

    if got := Mask(in); !reflect.DeepEqual(got, want) {
        t.Fatalf("got %v want %v", got, want)
    }
}

func TestMask_AllSecretKeys(t *testing.T) {
    in := map[string]any{
        "password":       "a",
        "integritySalt":  "b",
        "integrity_salt": "c",
        "secret":         "d",
        "salt":           "e",
        "apiKey":         "f",
        "api_key":        "g",
        "amount":         500,
    }

    out, ok := Mask(in).(map[string]any)
    if !ok {
        t.Fatalf("expected a map, got %T", Mask(in))
    }
    for k, v := range out {
        if k == "amount" {
            if v != 500 {
                t.Fatalf("amount changed: %v", v)
            }
            continue
        }
        if v != Masked {
            t.Fatalf("key %s not masked: %v", k, v)
        }
    }
}

func TestMask_ScalarsUnchanged(t *testing.T) {
    for _, v := range []any{nil, "text", 3.14, true} {
        if got := Mask(v); got != v {
            t.Fatalf("scalar %v changed to %v", v, got)
        }
    }
}

func TestMask_DoesNotMutateInput(t *testing.T) {
    in := map[string]any{
        "secret": "top",
        "list":   []any{map[string]any{"salt": "grain"}},
    }

    Mask(in)

    if in["secret"] != "top" {
        t.Fatalf("input mutated: %v", in["secret"])
    }
    inner := in["list"].([]any)[0].(map[string]any)
    if inner["salt"] != "grain" {
        t.Fatalf("nested input mutated: %v", inner["salt"])
    }
}
