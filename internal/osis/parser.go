// Package osis converts an OSIS XML encoding of the KJV into per-verse
// structured records: verse text, word segmentation, Strong's and
// morphology annotations, gematria encodings, and colophon metadata.
//
// The converter walks the raw tag stream and reconstructs verse and word
// boundaries from the interleaved markup: milestone verse markers, <w>
// word elements, <transChange> translator insertions, nested <note>
// elements whose content never becomes verse text, and book-final
// colophon divs that are attached to their owning verse after the full
// document has been consumed.
package osis

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/google/uuid"

	coreerrors "github.com/metaxiamultimedia/scriptures-go-source-crosswire-kjv/core/errors"
	"github.com/metaxiamultimedia/scriptures-go-source-crosswire-kjv/core/gematria"
	"github.com/metaxiamultimedia/scriptures-go-source-crosswire-kjv/core/ref"
	"github.com/metaxiamultimedia/scriptures-go-source-crosswire-kjv/core/strongs"
	"github.com/metaxiamultimedia/scriptures-go-source-crosswire-kjv/core/verse"
)

// Options controls a conversion pass.
type Options struct {
	// Strongs is the lexical-reference extraction policy. The zero value
	// selects the CrossWire default (unprefixed codes are Hebrew).
	Strongs strongs.Policy
}

// DroppedColophon reports a colophon that could not be attached because
// its book produced no verses. Dropping it is non-fatal but observable.
type DroppedColophon struct {
	Book  string `json:"book"`
	Words int    `json:"words"`
}

// Result is the outcome of one full conversion pass.
type Result struct {
	// RunID uniquely identifies this pass in reports and transcripts.
	RunID string `json:"run_id"`

	// Verses holds every assembled verse in document order.
	Verses []*verse.Verse `json:"-"`

	// Dropped lists colophons that had no owning verse.
	Dropped []DroppedColophon `json:"dropped,omitempty"`

	// Books is the number of distinct books parsed.
	Books int `json:"books"`

	// Words is the total number of word records across all verses,
	// colophon words included.
	Words int `json:"words"`
}

// parse mode: the machine is outside any verse, inside a verse body, or
// inside a book-final colophon div. Note suppression and the in-progress
// word buffer are orthogonal overlays.
type mode int

const (
	modeOutside mode = iota
	modeVerse
	modeColophon
)

// wordBuffer accumulates one open <w> or <transChange> element.
type wordBuffer struct {
	text  strings.Builder
	refs  []string
	morph string
	attrs map[string]string
	added bool
}

// pendingColophon is a parsed colophon awaiting attachment to its book's
// final verse once the whole document has been consumed.
type pendingColophon struct {
	book  string
	words []*verse.Word
}

// machine is the segmentation state threaded through every tag event.
// It is deliberately explicit so a synthetic event sequence can drive it
// in tests without any XML.
type machine struct {
	policy strongs.Policy

	mode      mode
	noteDepth int

	book    string // current book div osisID
	chapter int
	number  int

	pos   int // next word position within the current unit
	words []*verse.Word
	word  *wordBuffer

	// container-style verse open (no sID); closed by </verse> rather
	// than an eID milestone
	verseContainer bool

	divTypes  []string // open div type stack, for matching colophon ends
	verses    []*verse.Verse
	colophons []pendingColophon
	seenBooks map[string]bool
}

func newMachine(policy strongs.Policy) *machine {
	if policy.DefaultPrefix == "" {
		policy = strongs.DefaultPolicy
	}
	return &machine{policy: policy, seenBooks: make(map[string]bool)}
}

// Convert runs a full streaming pass over an OSIS document and returns
// the assembled verses. Malformed XML aborts the pass; nothing partial
// is returned.
func Convert(r io.Reader, opts Options) (*Result, error) {
	m := newMachine(opts.Strongs)

	dec := xml.NewDecoder(r)
	// Entity expansion stays off; the source is plain OSIS.
	dec.Entity = map[string]string{}

	// The decoder synthesizes an end token for self-closing elements at
	// the same input offset as its start token; a real end tag always
	// advances the offset. The machine needs the distinction to tell a
	// milestone marker's synthetic close from an actual container close.
	var lastOff int64
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &coreerrors.ParseError{
				Format:  "OSIS",
				Message: "malformed XML",
				Err:     err,
			}
		}

		off := dec.InputOffset()
		switch t := tok.(type) {
		case xml.StartElement:
			m.startElement(t.Name.Local, attrMap(t.Attr))
		case xml.CharData:
			m.charData(string(t))
		case xml.EndElement:
			m.endElement(t.Name.Local, off == lastOff)
		}
		lastOff = off
	}

	return m.finish()
}

func attrMap(attrs []xml.Attr) map[string]string {
	if len(attrs) == 0 {
		return nil
	}
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[a.Name.Local] = a.Value
	}
	return m
}

// startElement handles one open-tag event.
func (m *machine) startElement(name string, attrs map[string]string) {
	switch name {
	case "div":
		m.divTypes = append(m.divTypes, attrs["type"])
		switch attrs["type"] {
		case "book":
			if id := attrs["osisID"]; id != "" {
				m.book = id
			}
		case "colophon":
			m.enterColophon()
		}

	case "chapter":
		if r := markerRef(attrs); r != nil && r.Chapter > 0 {
			m.chapter = r.Chapter
		}

	case "verse":
		if attrs["eID"] != "" {
			m.closeVerse()
			return
		}
		r := markerRef(attrs)
		if r == nil {
			return
		}
		if m.mode == modeColophon {
			// A verse marker inside a colophon is not accepted.
			return
		}
		if m.mode == modeVerse {
			// An osisID-only milestone both ends the open verse and
			// starts the next; a nested sID start is not accepted.
			if attrs["sID"] != "" {
				return
			}
			m.closeVerse()
		}
		m.openVerse(r, attrs["sID"] == "")

	case "w":
		m.openWord(attrs, false)

	case "transChange":
		m.openWord(attrs, true)

	case "note":
		m.noteDepth++
	}
}

// charData handles one text event. While note suppression is active no
// text is captured anywhere, regardless of other state.
func (m *machine) charData(text string) {
	if m.noteDepth > 0 {
		return
	}
	if m.word != nil {
		m.word.text.WriteString(text)
		return
	}
	if m.mode == modeOutside {
		return
	}
	m.tailText(text)
}

// endElement handles one close-tag event. selfClosed marks the synthetic
// close of a self-closing element.
func (m *machine) endElement(name string, selfClosed bool) {
	switch name {
	case "div":
		if n := len(m.divTypes); n > 0 {
			top := m.divTypes[n-1]
			m.divTypes = m.divTypes[:n-1]
			if top == "colophon" {
				m.leaveColophon()
			}
		}
		m.closeOpenContainer(selfClosed)

	case "chapter":
		m.closeOpenContainer(selfClosed)

	case "verse":
		// Container-style verses close here. Milestone pairs close on
		// their eID marker, and an osisID-only milestone stays open
		// until the next marker, so its synthetic close is a no-op.
		if m.mode == modeVerse && m.verseContainer && !selfClosed {
			m.closeVerse()
		}

	case "w", "transChange":
		m.closeWord()

	case "note":
		if m.noteDepth > 0 {
			m.noteDepth--
		}
	}
}

// closeOpenContainer flushes a container or osisID-only milestone verse
// left open when its enclosing structural element ends.
func (m *machine) closeOpenContainer(selfClosed bool) {
	if selfClosed {
		return
	}
	if m.mode == modeVerse && m.verseContainer {
		m.closeVerse()
	}
}

// markerRef parses the reference attribute of a verse or chapter marker.
func markerRef(attrs map[string]string) *ref.Ref {
	id := attrs["osisID"]
	if id == "" {
		id = attrs["sID"]
	}
	if id == "" {
		return nil
	}
	r, err := ref.Parse(id)
	if err != nil {
		return nil
	}
	return r
}

func (m *machine) openVerse(r *ref.Ref, container bool) {
	m.mode = modeVerse
	m.verseContainer = container
	m.pos = 1
	m.words = nil
	if r.Book != "" {
		m.book = r.Book
	}
	if r.Chapter > 0 {
		m.chapter = r.Chapter
	}
	m.number = r.Verse
	m.seenBooks[m.book] = true
}

// closeVerse finalizes the buffered words into a verse record. A close
// with no open verse is ignored; well-formed input never produces one.
func (m *machine) closeVerse() {
	if m.mode != modeVerse {
		return
	}
	m.verses = append(m.verses, verse.New(m.book, m.chapter, m.number, m.words))
	m.mode = modeOutside
	m.verseContainer = false
	m.words = nil
	m.pos = 0
}

func (m *machine) enterColophon() {
	// A bare-osisID milestone verse has no closing marker; the colophon
	// div ends it the same way a div or chapter end does.
	m.closeOpenContainer(false)
	m.mode = modeColophon
	m.pos = 1
	m.words = nil
	m.seenBooks[m.book] = true
}

// leaveColophon records the buffered colophon words for post-pass
// attachment. An empty colophon produces nothing.
func (m *machine) leaveColophon() {
	if m.mode != modeColophon {
		return
	}
	if len(m.words) > 0 {
		m.colophons = append(m.colophons, pendingColophon{book: m.book, words: m.words})
	}
	m.mode = modeOutside
	m.words = nil
	m.pos = 0
}

// openWord begins buffering a <w> or <transChange> element. Word elements
// outside any verse or colophon, or inside a note, are not captured.
func (m *machine) openWord(attrs map[string]string, added bool) {
	if m.noteDepth > 0 || m.mode == modeOutside {
		return
	}

	wb := &wordBuffer{added: added}
	for k, v := range attrs {
		switch k {
		case "lemma":
			if !added {
				wb.refs = append(wb.refs, m.policy.Extract(v)...)
			}
		case "morph":
			wb.morph = v
		default:
			if wb.attrs == nil {
				wb.attrs = make(map[string]string)
			}
			wb.attrs[k] = v
		}
	}
	m.word = wb
}

// closeWord flushes the buffered element: slash markers (alternate
// rendering artifacts) are stripped and the remaining text splits on
// whitespace into one Word per token, each sharing the tag's attributes.
func (m *machine) closeWord() {
	wb := m.word
	if wb == nil {
		return
	}
	m.word = nil

	text := strings.ReplaceAll(wb.text.String(), "/", "")
	for _, token := range strings.Fields(text) {
		w := &verse.Word{
			Position:   m.pos,
			Text:       token,
			Morphology: wb.morph,
			Added:      wb.added,
			Attributes: wb.attrs,
			Gematria:   gematria.Compute(token),
		}
		if len(wb.refs) > 0 {
			w.Strongs = append([]string(nil), wb.refs...)
		}
		m.words = append(m.words, w)
		m.pos++
	}
}

// tailText handles character data between elements while a verse or
// colophon is active. Punctuation-only tokens are re-attached to the
// preceding word; anything else becomes a word of its own with no
// lexical reference.
func (m *machine) tailText(text string) {
	for _, token := range strings.Fields(text) {
		if verse.IsPunctuationToken(token) && len(m.words) > 0 {
			last := m.words[len(m.words)-1]
			last.Text += token
			continue
		}
		m.words = append(m.words, &verse.Word{
			Position: m.pos,
			Text:     token,
			Gematria: gematria.Compute(token),
		})
		m.pos++
	}
}

// finish runs the colophon attachment post-pass and assembles the result.
// Attachment needs global knowledge of each book's last verse, so it only
// runs once the whole event stream has been consumed.
func (m *machine) finish() (*Result, error) {
	// A trailing osisID-only milestone verse has no closing marker.
	if m.mode == modeVerse && m.verseContainer {
		m.closeVerse()
	}

	res := &Result{
		RunID:  uuid.NewString(),
		Verses: m.verses,
		Books:  len(m.seenBooks),
	}

	for _, col := range m.colophons {
		target := m.lastVerseOf(col.book)
		if target == nil {
			res.Dropped = append(res.Dropped, DroppedColophon{
				Book:  col.book,
				Words: len(col.words),
			})
			continue
		}
		target.AttachColophon(col.words)
	}

	for _, v := range m.verses {
		res.Words += len(v.Words)
	}
	return res, nil
}

// lastVerseOf returns the chronologically last parsed verse of a book.
func (m *machine) lastVerseOf(book string) *verse.Verse {
	for i := len(m.verses) - 1; i >= 0; i-- {
		if m.verses[i].Book == book {
			return m.verses[i]
		}
	}
	return nil
}
