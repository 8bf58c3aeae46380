package domain

import (
	"encoding/json"
	"testing"
)

func TestOptionalUnmarshal(t *testing.T) {
	type patch struct {
		Title       Optional[string] `json:"title"`
		Description Optional[string] `json:"description"`
		Tags        Optional[[]string]
	}

	var p patch
	if err := json.Unmarshal([]byte(`{"title":"hello","description":null}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if v, ok := p.Title.Get(); !ok || v != "hello" {
		t.Errorf("title: got (%q, %v), want (hello, true)", v, ok)
	}
	if !p.Description.IsSet() || !p.Description.IsNull() {
		t.Error("description should be present and null")
	}
	if _, ok := p.Description.Get(); ok {
		t.Error("null field should not yield a value")
	}
	if p.Tags.IsSet() {
		t.Error("absent field should not be set")
	}
	if p.Tags.IsNull() {
		t.Error("absent field should not be null")
	}
}

func TestOptionalRoundTrip(t *testing.T) {
	out, err := json.Marshal(Some("x"))
	if err != nil || string(out) != `"x"` {
		t.Errorf("marshal Some: got %s, %v", out, err)
	}
	out, err = json.Marshal(Null[string]())
	if err != nil || string(out) != "null" {
		t.Errorf("marshal Null: got %s, %v", out, err)
	}
}
