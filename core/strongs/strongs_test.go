package strongs

import (
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		attr string
		want []string
	}{
		{"empty", "", nil},
		{"no match", "lemma text", nil},
		{"marker with prefix", "strong:H07225", []string{"H7225"}},
		{"marker case insensitive", "STRONG:h0430", []string{"H430"}},
		{"strongs variant", "strongs:G2316", []string{"G2316"}},
		{"greek lowercase", "strong:g26", nil}, // only 3-5 digit runs match
		{"no marker", "H3068", []string{"H3068"}},
		{"no prefix defaults hebrew", "strong:07225", []string{"H7225"}},
		{"bare digits default hebrew", "1254", []string{"H1254"}},
		{"leading zeros stripped", "strong:H0091", []string{"H91"}},
		{
			"multiple in order",
			"strong:H0853 strong:H8064",
			[]string{"H853", "H8064"},
		},
		{
			"duplicates preserved",
			"strong:H430 strong:H430",
			[]string{"H430", "H430"},
		},
		{
			"mixed systems",
			"strong:G2316 strong:H0430",
			[]string{"G2316", "H430"},
		},
		{"marker with space", "strong: H07225", []string{"H7225"}},
		{"two digits too short", "strong:H12", nil},
		{"five digits", "strong:H12345", []string{"H12345"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.attr)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %v, want %v", tt.attr, got, tt.want)
			}
		})
	}
}

func TestExtractPolicyOverride(t *testing.T) {
	greek := Policy{DefaultPrefix: "G"}
	got := greek.Extract("strong:2316")
	want := []string{"G2316"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract with Greek default = %v, want %v", got, want)
	}
}

func TestExtractPure(t *testing.T) {
	attr := "strong:H07225 strong:H0430"
	first := Extract(attr)
	second := Extract(attr)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Extract is not deterministic: %v vs %v", first, second)
	}
}
