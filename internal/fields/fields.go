// Package fields recovers contact details from unstructured résumé text.
//
// The heuristics are intentionally shallow: they seed the form with a best
// guess the user is expected to correct. Absence of a match is never an error.
package fields

import "regexp"

// Fields are the values recovered from a block of text. Missing values are "".
type Fields struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Extractor recovers Fields from normalized text.
type Extractor interface {
	Extract(text string) Fields
}

var (
	reEmail = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	rePhone = regexp.MustCompile(`(?:\+\d{1,2}\s?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)
	// Words are separated by spaces or tabs only so a name never runs onto
	// the next line.
	reName = regexp.MustCompile(`(?m)^(?:[A-Z][a-z]+[ \t]+)+[A-Z][a-z]+`)
)

type match struct {
	field string
	value string
	start int
}

func firstMatch(field string, re *regexp.Regexp, text string) (match, bool) {
	loc := re.FindStringIndex(text)
	if loc == nil {
		return match{}, false
	}
	return match{field: field, value: text[loc[0]:loc[1]], start: loc[0]}, true
}

// Heuristic is the default pattern-based Extractor.
type Heuristic struct{}

// Default is the shared stateless extractor.
var Default Extractor = Heuristic{}

// Extract runs the three searches independently over text.
func (Heuristic) Extract(text string) Fields {
	var out Fields
	if m, ok := firstMatch("name", reName, text); ok {
		out.Name = m.value
	}
	if m, ok := firstMatch("email", reEmail, text); ok {
		out.Email = m.value
	}
	if m, ok := firstMatch("phone", rePhone, text); ok {
		out.Phone = m.value
	}
	return out
}

// Extract runs the Default extractor.
func Extract(text string) Fields {
	return Default.Extract(text)
}
