package models

import (
	"encoding/json"
	"testing"
)

func TestSectionContent_DecodeShapes(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		kind SectionContentKind
	}{
		{"string", `"plain text"`, SectionContentText},
		{"string list", `["a", "b"]`, SectionContentList},
		{"object list", `[{"k": "v"}, {"k2": "v2"}]`, SectionContentItems},
		{"object", `{"aum": "$2B"}`, SectionContentObject},
		{"null", `null`, SectionContentNone},
	}

	for _, tc := range cases {
		var c SectionContent
		if err := json.Unmarshal([]byte(tc.raw), &c); err != nil {
			t.Errorf("%s: unmarshal: %v", tc.name, err)
			continue
		}
		if c.Kind != tc.kind {
			t.Errorf("%s: kind = %q, want %q", tc.name, c.Kind, tc.kind)
		}
	}
}

func TestSectionContent_RoundTripsBareValue(t *testing.T) {
	raw := `["first","second"]`
	var c SectionContent
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		t.Fatal(err)
	}
	out, err := json.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != raw {
		t.Errorf("round trip = %s, want %s", out, raw)
	}
}

func TestSectionContent_RejectsMixedArrays(t *testing.T) {
	var c SectionContent
	if err := json.Unmarshal([]byte(`[1, 2, 3]`), &c); err == nil {
		t.Error("numeric array accepted, want error")
	}
}
