package util

import (
	"errors"
	"strings"
	"unicode"
)

const maxFileNameLen = 128

var errInvalidFileName = errors.New("invalid file name")

// SanitizeFileName turns an upload's client-side name into a single safe path
// segment: separators become underscores, control characters are dropped and
// long names are cut from the front so the extension survives.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errInvalidFileName
	}
	s := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\':
			return '_'
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, strings.TrimSpace(name))
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errInvalidFileName
	}
	if runes := []rune(s); len(runes) > maxFileNameLen {
		s = string(runes[len(runes)-maxFileNameLen:])
	}
	return s, nil
}
