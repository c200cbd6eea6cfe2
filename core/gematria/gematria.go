// Package gematria computes numeric encodings of English text.
//
// Three variants are computed from the same letter-to-alphabet-position
// mapping (A=1 .. Z=26): standard, ordinal, and reduced (digital root).
// Standard and ordinal are identical under this simple scheme; both are
// kept in the record shape because downstream consumers address them
// independently.
package gematria

import "strings"

// Values holds the three numeric encodings of one text token.
type Values struct {
	Standard int `json:"standard"`
	Ordinal  int `json:"ordinal"`
	Reduced  int `json:"reduced"`
}

// Add returns the element-wise sum of v and other.
func (v Values) Add(other Values) Values {
	return Values{
		Standard: v.Standard + other.Standard,
		Ordinal:  v.Ordinal + other.Ordinal,
		Reduced:  v.Reduced + other.Reduced,
	}
}

// IsZero reports whether all three encodings are zero.
func (v Values) IsZero() bool {
	return v.Standard == 0 && v.Ordinal == 0 && v.Reduced == 0
}

// Compute maps a text token to its three numeric encodings.
//
// The token is Unicode-uppercased first; runes outside A-Z contribute
// nothing. Each letter adds its 1-based alphabet position to Standard and
// Ordinal; Reduced is the digital root of that sum ((sum-1) mod 9 + 1, so
// multiples of 9 stay 9, and a token with no letters stays 0).
func Compute(text string) Values {
	var v Values
	for _, r := range strings.ToUpper(text) {
		if r < 'A' || r > 'Z' {
			continue
		}
		value := int(r-'A') + 1
		v.Standard += value
		v.Ordinal += value
	}
	if v.Standard > 0 {
		v.Reduced = (v.Standard-1)%9 + 1
	}
	return v
}
