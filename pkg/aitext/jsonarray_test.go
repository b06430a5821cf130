package aitext

import (
	"errors"
	"testing"
)

func TestExtractJSONArrayFenced(t *testing.T) {
	got, err := ExtractJSONArray("```json\n[{\"a\":1}]\n```")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || string(got[0]) != `{"a":1}` {
		t.Fatalf("got %v", got)
	}
}

func TestExtractJSONArrayGenericFence(t *testing.T) {
	got, err := ExtractJSONArray("```\n[{\"a\":1},{\"b\":2}]\n```")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(got))
	}
}

func TestExtractJSONArrayWithPreamble(t *testing.T) {
	got, err := ExtractJSONArray(`Sure! Here you go: [{"a":1}] Hope that helps.`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || string(got[0]) != `{"a":1}` {
		t.Fatalf("got %v", got)
	}
}

func TestExtractJSONArrayNotJSON(t *testing.T) {
	_, err := ExtractJSONArray("not json at all")
	if err == nil {
		t.Fatal("expected error")
	}
	var malformed *MalformedOutputError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedOutputError, got %T", err)
	}
	if malformed.Raw != "not json at all" {
		t.Fatalf("raw text not preserved: %q", malformed.Raw)
	}
}

func TestExtractJSONArrayBracketsButInvalid(t *testing.T) {
	_, err := ExtractJSONArray("list: [not, valid json}")
	var malformed *MalformedOutputError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedOutputError, got %v", err)
	}
}

func TestExtractJSONArrayPlain(t *testing.T) {
	got, err := ExtractJSONArray(`  [{"text":"Q1","type":"essay"}]  `)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 element, got %d", len(got))
	}
}
