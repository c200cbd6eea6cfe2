package gematria

import "testing"

func TestCompute(t *testing.T) {
	tests := []struct {
		text     string
		standard int
		reduced  int
	}{
		{"God", 26, 8},
		{"beginning", 81, 9},
		{"A", 1, 1},
		{"Z", 26, 8},
		{"I", 9, 9},
		{"R", 18, 9},
		{"", 0, 0},
		{"...", 0, 0},
		{"don't", 4 + 15 + 14 + 20, 8}, // 53 -> 5+3
		{"AMEN", 1 + 13 + 5 + 14, 6},   // 33 -> 3+3
	}

	for _, tt := range tests {
		v := Compute(tt.text)
		if v.Standard != tt.standard {
			t.Errorf("Compute(%q).Standard = %d, want %d", tt.text, v.Standard, tt.standard)
		}
		if v.Reduced != tt.reduced {
			t.Errorf("Compute(%q).Reduced = %d, want %d", tt.text, v.Reduced, tt.reduced)
		}
	}
}

func TestComputeOrdinalEqualsStandard(t *testing.T) {
	// Ordinal derives from alphabet position, never from a letter's index
	// within the word. The 9-letter word "beginning" would sum to 45 under
	// an index-based scheme; it must sum to 81.
	for _, text := range []string{"God", "beginning", "created", "heaven", "earth", "Written"} {
		v := Compute(text)
		if v.Standard != v.Ordinal {
			t.Errorf("Compute(%q): Standard %d != Ordinal %d", text, v.Standard, v.Ordinal)
		}
	}
	if v := Compute("beginning"); v.Ordinal != 81 {
		t.Errorf("Compute(beginning).Ordinal = %d, want 81", v.Ordinal)
	}
}

func TestComputeCaseInsensitive(t *testing.T) {
	if Compute("god") != Compute("GOD") {
		t.Error("case must not affect the encoding")
	}
}

func TestComputeNineStaysNine(t *testing.T) {
	// Digital-root reduction maps 9 and multiples of 9 to 9, never 0.
	if v := Compute("I"); v.Reduced != 9 {
		t.Errorf("Compute(I).Reduced = %d, want 9", v.Reduced)
	}
	if v := Compute("R"); v.Reduced != 9 { // R = 18
		t.Errorf("Compute(R).Reduced = %d, want 9", v.Reduced)
	}
}

func TestAdd(t *testing.T) {
	sum := Compute("God").Add(Compute("created"))
	want := Values{
		Standard: 26 + 56,
		Ordinal:  26 + 56,
		Reduced:  8 + Compute("created").Reduced,
	}
	if sum != want {
		t.Errorf("Add = %+v, want %+v", sum, want)
	}
}
