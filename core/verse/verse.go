// Package verse defines the per-verse record model produced by the OSIS
// converter: word-level segmentation with lexical annotations, numeric
// text-encodings, and colophon metadata.
//
// All values are built once per parse pass and are immutable after
// assembly; verse stores receive finished records and never mutate them.
package verse

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/metaxiamultimedia/scriptures-go-source-crosswire-kjv/core/gematria"
)

// ColophonTypeSubscription identifies a book-closing subscription note,
// the only colophon type present in the KJV source.
const ColophonTypeSubscription = "subscription"

// Word is one rendered token within a verse (or an attached colophon).
type Word struct {
	// Position is the 1-based ordinal within the owning unit. Translator
	// insertions and tail-text tokens share the same running counter as
	// tagged words.
	Position int `json:"position"`

	// Text is the literal rendered token, punctuation attached.
	Text string `json:"text"`

	// Strongs holds normalized lexical reference codes ("H7225", "G2316").
	// Absent for translator insertions and most tail-text tokens.
	Strongs []string `json:"strongs,omitempty"`

	// Morphology is the opaque morphological code from the source, if any.
	Morphology string `json:"morphology,omitempty"`

	// Added marks translator-supplied text with no source-language token.
	Added bool `json:"added,omitempty"`

	// Colophon marks words belonging to an attached book subscription.
	Colophon bool `json:"colophon,omitempty"`

	// Attributes carries any remaining source attributes verbatim.
	Attributes map[string]string `json:"attributes,omitempty"`

	// Gematria holds the three numeric encodings of Text.
	Gematria gematria.Values `json:"gematria"`
}

// Metadata is emitted only when a colophon is attached to the verse.
type Metadata struct {
	HasColophon       bool   `json:"has_colophon"`
	ColophonType      string `json:"colophon_type"`
	ColophonWordRange [2]int `json:"colophon_word_range"`
}

// Verse is the persisted record for one (book, chapter, number) key.
type Verse struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Number  int    `json:"number"`

	// Text is the space-joined reconstruction with punctuation re-attached.
	// Colophon words are not part of the display text.
	Text string `json:"text"`

	// Words holds body words, followed by colophon words when attached.
	Words []*Word `json:"words"`

	// Gematria sums the encodings of body words only; attaching a
	// colophon never changes it.
	Gematria gematria.Values `json:"gematria"`

	Metadata *Metadata `json:"metadata,omitempty"`
}

// New assembles a finished verse record from its body words: display text
// joined with punctuation re-attachment, and the verse-level gematria total.
func New(book string, chapter, number int, words []*Word) *Verse {
	return &Verse{
		Book:     book,
		Chapter:  chapter,
		Number:   number,
		Text:     JoinWords(words),
		Words:    words,
		Gematria: Total(words),
	}
}

// Key returns the OSIS ID key for this verse ("Gen.1.1").
func (v *Verse) Key() string {
	return fmt.Sprintf("%s.%d.%d", v.Book, v.Chapter, v.Number)
}

// AttachColophon appends a book subscription to the verse. The colophon
// words are renumbered to continue after the last body word, flagged, and
// recorded in the verse metadata. The verse text and gematria total are
// left untouched.
func (v *Verse) AttachColophon(words []*Word) {
	if len(words) == 0 {
		return
	}

	last := 0
	if n := len(v.Words); n > 0 {
		last = v.Words[n-1].Position
	}

	first := last + 1
	for i, w := range words {
		w.Position = first + i
		w.Colophon = true
		v.Words = append(v.Words, w)
	}

	if v.Metadata == nil {
		v.Metadata = &Metadata{
			HasColophon:       true,
			ColophonType:      ColophonTypeSubscription,
			ColophonWordRange: [2]int{first, first + len(words) - 1},
		}
		return
	}
	// A further attachment extends the recorded range so it still covers
	// every colophon-flagged word.
	v.Metadata.ColophonWordRange[1] = first + len(words) - 1
}

// Total returns the element-wise gematria sum over words not flagged as
// colophon.
func Total(words []*Word) gematria.Values {
	var total gematria.Values
	for _, w := range words {
		if w.Colophon {
			continue
		}
		total = total.Add(w.Gematria)
	}
	return total
}

// IsPunctuationToken reports whether the token consists solely of
// punctuation characters. Such tokens are re-attached to the preceding
// word rather than counted as words of their own; the same rule is shared
// by verse-body tail text, colophon text, and display joining.
func IsPunctuationToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}

// JoinWords builds the display text: word texts joined with single
// spaces, with the space collapsed before any punctuation-only token.
// Colophon words are excluded.
func JoinWords(words []*Word) string {
	var sb strings.Builder
	for _, w := range words {
		if w.Colophon {
			continue
		}
		if sb.Len() > 0 && !IsPunctuationToken(w.Text) {
			sb.WriteByte(' ')
		}
		sb.WriteString(w.Text)
	}
	return sb.String()
}
