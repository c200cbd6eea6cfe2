// Package strongs extracts Strong's lexical reference codes from OSIS
// attribute values.
//
// OSIS word elements carry references in free-text attributes such as
// lemma="strong:H07225" or lemma="strongs:G2316"; some sources drop the
// marker or the system prefix entirely. Extraction normalizes every match
// to an uppercase prefix letter followed by the number without leading
// zeros ("H07225" -> "H7225").
package strongs

import (
	"regexp"
	"strconv"
	"strings"
)

// refPattern matches one reference token: an optional case-insensitive
// strong:/strongs: marker, an optional H/G system prefix, and 3-5 digits.
var refPattern = regexp.MustCompile(`(?i)(?:strongs?:\s*)?([HG])?(\d{3,5})`)

// Policy controls extraction behavior that is a source-domain convention
// rather than part of the OSIS markup itself.
type Policy struct {
	// DefaultPrefix is applied when a matched number carries no H/G
	// system letter. The CrossWire KJV source treats unprefixed codes as
	// Hebrew; that convention is known to be wrong for contextually Greek
	// codes and is kept overridable until the intended behavior is
	// settled.
	DefaultPrefix string
}

// DefaultPolicy is the CrossWire KJV convention: unprefixed codes are Hebrew.
var DefaultPolicy = Policy{DefaultPrefix: "H"}

// Extract returns the normalized reference codes found in attr using the
// default policy. See Policy.Extract.
func Extract(attr string) []string {
	return DefaultPolicy.Extract(attr)
}

// Extract scans attr for reference tokens and returns them normalized, in
// left-to-right order. Duplicates are preserved. A nil result means no
// references were found; empty input yields nil.
func (p Policy) Extract(attr string) []string {
	if attr == "" {
		return nil
	}

	var refs []string
	for _, m := range refPattern.FindAllStringSubmatch(attr, -1) {
		prefix := strings.ToUpper(m[1])
		if prefix == "" {
			prefix = p.DefaultPrefix
		}

		// Re-render the digit run without leading zeros.
		n, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		refs = append(refs, prefix+strconv.Itoa(n))
	}
	return refs
}
