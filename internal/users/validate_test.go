package users

import (
	"errors"
	"testing"
)

func TestNormalizeName_TrimsWhitespace(t *testing.T) {
	got, err := NormalizeName("  Alice  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Alice" {
		t.Fatalf("expected %q, got %q", "Alice", got)
	}
}

func TestNormalizeName_NoopOnClean(t *testing.T) {
	for _, s := range []string{"Alice", "a", "名前", "J.R.R.Tolkien"} {
		got, err := NormalizeName(s)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", s, err)
		}
		if got != s {
			t.Fatalf("trimming should be a no-op for %q, got %q", s, got)
		}
	}
}

func TestNormalizeName_Idempotent(t *testing.T) {
	first, err := NormalizeName("  Bob Smith\t")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := NormalizeName(first)
	if err != nil {
		t.Fatalf("unexpected error on second pass: %v", err)
	}
	if first != second {
		t.Fatalf("normalization not idempotent: %q vs %q", first, second)
	}
	// padding the already-normalized value yields the same result
	padded, err := NormalizeName("  " + first + "  ")
	if err != nil {
		t.Fatalf("unexpected error on padded value: %v", err)
	}
	if padded != first {
		t.Fatalf("padded value normalized to %q, want %q", padded, first)
	}
}

func TestNormalizeName_Absent(t *testing.T) {
	_, err := NormalizeName(nil)
	var mfe *MissingFieldError
	if !errors.As(err, &mfe) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if mfe.Field != "name" {
		t.Fatalf("expected field %q, got %q", "name", mfe.Field)
	}
}

func TestNormalizeName_EmptyAfterTrim(t *testing.T) {
	for _, s := range []string{"", "   ", "\t\n ", " \r\n"} {
		_, err := NormalizeName(s)
		var mfe *MissingFieldError
		if !errors.As(err, &mfe) {
			t.Fatalf("expected MissingFieldError for %q, got %v", s, err)
		}
		if mfe.Field != "name" {
			t.Fatalf("expected field %q, got %q", "name", mfe.Field)
		}
	}
}

func TestNormalizeName_WrongType(t *testing.T) {
	for _, v := range []any{42, 1.5, true, []string{"x"}, map[string]any{"name": "x"}} {
		_, err := NormalizeName(v)
		var ite *InvalidTypeError
		if !errors.As(err, &ite) {
			t.Fatalf("expected InvalidTypeError for %T, got %v", v, err)
		}
		if ite.Field != "name" {
			t.Fatalf("expected field %q, got %q", "name", ite.Field)
		}
	}
}
