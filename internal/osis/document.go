package osis

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	coreerrors "github.com/metaxiamultimedia/scriptures-go-source-crosswire-kjv/core/errors"
)

// DocumentInfo is the provenance metadata carried in an OSIS header.
type DocumentInfo struct {
	Work      string `json:"work"`
	Title     string `json:"title,omitempty"`
	Language  string `json:"language,omitempty"`
	RefSystem string `json:"ref_system,omitempty"`
	Publisher string `json:"publisher,omitempty"`
	Books     int    `json:"books"`
}

// Validate checks that data is well-formed XML. Entity expansion is
// disabled; the decoder never fetches external entities.
func Validate(data []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return &coreerrors.ParseError{Format: "XML", Message: "not well-formed", Err: err}
		}
	}
}

// Inspect extracts header metadata from an OSIS document without running
// a conversion pass.
func Inspect(data []byte) (*DocumentInfo, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, &coreerrors.ParseError{Format: "OSIS", Message: "parsing document", Err: err}
	}

	text := xmlquery.FindOne(doc, "//osisText")
	if text == nil {
		return nil, coreerrors.NewParse("OSIS", "", "no osisText element")
	}

	info := &DocumentInfo{
		Work:     text.SelectAttr("osisIDWork"),
		Language: text.SelectAttr("lang"),
	}
	if info.Language == "" {
		// xml:lang carries a namespace prefix; match on local name.
		for _, a := range text.Attr {
			if a.Name.Local == "lang" {
				info.Language = a.Value
				break
			}
		}
	}

	if work := xmlquery.FindOne(doc, "//header/work"); work != nil {
		if n := xmlquery.FindOne(work, "title"); n != nil {
			info.Title = n.InnerText()
		}
		if n := xmlquery.FindOne(work, "refSystem"); n != nil {
			info.RefSystem = n.InnerText()
		}
		if n := xmlquery.FindOne(work, "publisher"); n != nil {
			info.Publisher = n.InnerText()
		}
		if info.Language == "" {
			if n := xmlquery.FindOne(work, "language"); n != nil {
				info.Language = n.InnerText()
			}
		}
	}

	info.Books = countBooks(doc)
	return info, nil
}

// bookDivExpr counts book-level divs; compiled once to catch expression
// errors at startup rather than per call.
var bookDivExpr = xpath.MustCompile(`count(//div[@type='book'])`)

func countBooks(doc *xmlquery.Node) int {
	nav := xmlquery.CreateXPathNavigator(doc)
	v := bookDivExpr.Evaluate(nav)
	if f, ok := v.(float64); ok {
		return int(f)
	}
	return 0
}

// Summary renders a short human-readable description of the document.
func (i *DocumentInfo) Summary() string {
	title := i.Title
	if title == "" {
		title = i.Work
	}
	return fmt.Sprintf("%s (%s, %d books)", title, i.Language, i.Books)
}
