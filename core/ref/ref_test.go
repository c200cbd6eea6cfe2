package ref

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Ref
	}{
		{"Gen", Ref{Book: "Gen"}},
		{"Gen.1", Ref{Book: "Gen", Chapter: 1}},
		{"Gen.1.1", Ref{Book: "Gen", Chapter: 1, Verse: 1}},
		{"Rom.16.27", Ref{Book: "Rom", Chapter: 16, Verse: 27}},
		{"1John.3.16", Ref{Book: "1John", Chapter: 3, Verse: 16}},
		{"Ps.119.176", Ref{Book: "Ps", Chapter: 119, Verse: 176}},
		{"Gen.1.1a", Ref{Book: "Gen", Chapter: 1, Verse: 1, SubVerse: "a"}},
		{"Matt.5.3-12", Ref{Book: "Matt", Chapter: 5, Verse: 3, VerseEnd: 12}},
		{"  Gen.1.1  ", Ref{Book: "Gen", Chapter: 1, Verse: 1}},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.in, err)
			continue
		}
		if *got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.in, *got, tt.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "...", "1.2.3"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) expected error", in)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		ref  Ref
		want string
	}{
		{Ref{Book: "Gen"}, "Gen"},
		{Ref{Book: "Gen", Chapter: 1, Verse: 1}, "Gen.1.1"},
		{Ref{Book: "Matt", Chapter: 5, Verse: 3, VerseEnd: 12}, "Matt.5.3-12"},
		{Ref{Book: "Gen", Chapter: 1, Verse: 1, SubVerse: "b"}, "Gen.1.1b"},
	}
	for _, tt := range tests {
		if got := tt.ref.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{"Gen.1.1", "Rom.16.27", "Matt.5.3-12", "1John.3.16"} {
		r, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if r.String() != s {
			t.Errorf("round trip %q -> %q", s, r.String())
		}
	}
}

func TestIsVerse(t *testing.T) {
	r, _ := Parse("Gen.1.1")
	if !r.IsVerse() {
		t.Error("Gen.1.1 should be a single verse")
	}
	r, _ = Parse("Matt.5.3-12")
	if r.IsVerse() {
		t.Error("Matt.5.3-12 is a range, not a single verse")
	}
	r, _ = Parse("Gen.1")
	if r.IsVerse() {
		t.Error("Gen.1 is a chapter reference")
	}
}
