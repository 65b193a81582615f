package extract

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// DOCXAdapter returns the prose of word/document.xml. Formatting, tables and
// embedded objects are dropped; paragraphs and line breaks become newlines.
type DOCXAdapter struct{}

func (DOCXAdapter) Extract(ctx context.Context, data []byte) (Content, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, newError(KindMalformedDocument, FormatDOCX, errors.New("empty docx data"))
	}

	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, newError(KindMalformedDocument, FormatDOCX, err)
	}
	// In-memory packages have nothing to release; Close cannot fail here.
	defer doc.Close()

	text, err := stripDocxXML(doc.Editable().GetContent())
	if err != nil {
		return nil, newError(KindMalformedDocument, FormatDOCX, err)
	}
	return Text{Content: text}, nil
}

// stripDocxXML keeps the character data of <w:t> runs. Tabs and breaks only
// count inside a run; <w:tab> under <w:pPr><w:tabs> is a tab stop.
func stripDocxXML(raw string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var (
		buf    strings.Builder
		inText bool
		runs   int
	)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse document.xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "r":
				runs++
			}
		case xml.CharData:
			if inText {
				buf.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "r":
				runs--
			case "tab":
				if runs > 0 {
					buf.WriteString("\t")
				}
			case "br", "cr":
				if runs > 0 && buf.Len() > 0 {
					buf.WriteString("\n")
				}
			case "p":
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String()), nil
}
