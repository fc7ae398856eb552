package scan

import (
	"errors"
	"testing"
)

func TestArgsStringConsumesPositionals(t *testing.T) {
	args := Args{Positional: []any{"first-value", "second-value"}}

	got, err := args.String("ServiceCode")
	if err != nil {
		t.Fatalf("String() error = %v", err)
	}
	if got != "first-value" {
		t.Errorf("first key = %q, want %q", got, "first-value")
	}

	// A second required key must draw the next positional, not the same one.
	got, err = args.String("AttributeName")
	if err != nil {
		t.Fatalf("String() error = %v", err)
	}
	if got != "second-value" {
		t.Errorf("second key = %q, want %q", got, "second-value")
	}

	// Positionals exhausted.
	_, err = args.String("Extra")
	var missing *MissingArgsError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *MissingArgsError after exhaustion, got %v", err)
	}
}

func TestArgsStringKeywordDoesNotConsume(t *testing.T) {
	args := Args{
		Positional: []any{"positional-value"},
		Keyword:    map[string]any{"Bucket": "keyword-value"},
	}

	if got, _ := args.String("Bucket"); got != "keyword-value" {
		t.Errorf("keyword lookup = %q, want %q", got, "keyword-value")
	}

	// The keyword hit above must leave the positional available.
	if got, _ := args.String("Other"); got != "positional-value" {
		t.Errorf("positional fallback = %q, want %q", got, "positional-value")
	}
}

func TestArgsStringMistypedKeyword(t *testing.T) {
	args := Args{Keyword: map[string]any{"Count": 3}}
	_, err := args.String("Count")
	var missing *MissingArgsError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *MissingArgsError for mistyped keyword, got %v", err)
	}
	if missing.Key != "Count" {
		t.Errorf("Key = %q, want %q", missing.Key, "Count")
	}
}
