package extract

import "strings"

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Normalize produces the canonical text the field extractor runs on: unix
// line endings, no surrounding whitespace. Internal content is left alone.
func Normalize(text string) string {
	if text == "" {
		return text
	}
	return strings.TrimSpace(lineEndings.Replace(text))
}
