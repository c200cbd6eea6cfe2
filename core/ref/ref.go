// Package ref parses OSIS-style scripture references such as "Gen.1.1".
//
// Verse milestones in the source document identify themselves through
// osisID/sID/eID attribute values in this shape; the CLI accepts the same
// shape for verse lookups.
package ref

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Ref is a canonical scripture reference.
type Ref struct {
	// Book is the OSIS book ID (e.g. "Gen", "Rom", "1John").
	Book string `json:"book"`

	// Chapter is 1-indexed; 0 means a whole-book reference.
	Chapter int `json:"chapter,omitempty"`

	// Verse is 1-indexed; 0 means a whole-chapter reference.
	Verse int `json:"verse,omitempty"`

	// VerseEnd is the closing verse of a range, 0 when not a range.
	VerseEnd int `json:"verse_end,omitempty"`

	// SubVerse is a verse subdivision letter ("a", "b"), if present.
	SubVerse string `json:"sub_verse,omitempty"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type refGrammar struct {
	BookPrefix string       `@Int?`
	BookName   string       `@Ident`
	ChapterRef *chapterPart `( "." @@ )?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type chapterPart struct {
	Chapter  int        `@Int`
	VerseRef *versePart `( "." @@ )?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type versePart struct {
	Verse    int     `@Int`
	SubVerse *string `@SubVerse?`
	Range    *int    `( "-" @Int )?`
}

// Ident starts with an uppercase letter so single lowercase letters lex as
// SubVerse tokens instead.
var refLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[A-Z][A-Za-z]*`},
	{Name: "SubVerse", Pattern: `[a-z]`},
	{Name: "Punct", Pattern: `[.\-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var refParser = participle.MustBuild[refGrammar](
	participle.Lexer(refLexer),
	participle.Elide("Whitespace"),
)

// Parse parses an OSIS-style reference string. Supported shapes:
// "Gen", "Gen.1", "Gen.1.1", "Gen.1.1a", "Gen.1.1-3", "1John.3.16".
func Parse(s string) (*Ref, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty reference string")
	}

	parsed, err := refParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("invalid reference %q: %w", s, err)
	}

	r := &Ref{Book: parsed.BookPrefix + parsed.BookName}
	if parsed.ChapterRef != nil {
		r.Chapter = parsed.ChapterRef.Chapter
		if vp := parsed.ChapterRef.VerseRef; vp != nil {
			r.Verse = vp.Verse
			if vp.SubVerse != nil {
				r.SubVerse = *vp.SubVerse
			}
			if vp.Range != nil {
				r.VerseEnd = *vp.Range
			}
		}
	}
	return r, nil
}

// String renders the reference back in OSIS ID form.
func (r *Ref) String() string {
	var sb strings.Builder
	sb.WriteString(r.Book)
	if r.Chapter > 0 {
		sb.WriteString(".")
		sb.WriteString(strconv.Itoa(r.Chapter))
		if r.Verse > 0 {
			sb.WriteString(".")
			sb.WriteString(strconv.Itoa(r.Verse))
			sb.WriteString(r.SubVerse)
			if r.VerseEnd > 0 {
				sb.WriteString("-")
				sb.WriteString(strconv.Itoa(r.VerseEnd))
			}
		}
	}
	return sb.String()
}

// IsRange reports whether the reference spans multiple verses.
func (r *Ref) IsRange() bool {
	return r.VerseEnd > r.Verse && r.VerseEnd > 0
}

// IsVerse reports whether the reference names exactly one verse.
func (r *Ref) IsVerse() bool {
	return r.Chapter > 0 && r.Verse > 0 && !r.IsRange()
}
