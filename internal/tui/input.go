package tui

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxInputLen caps the search query, in runes.
const maxInputLen = 200

// editRune applies one key to the search query: backspace drops the last
// rune, ctrl+w the last word, ctrl+u everything; any single printable rune
// is appended until maxInputLen. Other keys leave the query as is.
func editRune(text string, key string) string {
	switch key {
	case "backspace":
		_, size := utf8.DecodeLastRuneInString(text)
		return text[:len(text)-size]
	case "ctrl+w":
		trimmed := strings.TrimRightFunc(text, unicode.IsSpace)
		if i := strings.LastIndexFunc(trimmed, unicode.IsSpace); i >= 0 {
			return trimmed[:i+1]
		}
		return ""
	case "ctrl+u":
		return ""
	}
	r, size := utf8.DecodeRuneInString(key)
	if size != len(key) || r == utf8.RuneError || !unicode.IsPrint(r) {
		return text
	}
	if utf8.RuneCountInString(text) >= maxInputLen {
		return text
	}
	return text + key
}

// truncateToHeight keeps at most maxLines lines of s, including the
// newline that ends the last kept line. maxLines <= 0 keeps everything.
func truncateToHeight(s string, maxLines int) string {
	if maxLines <= 0 {
		return s
	}
	lines := strings.SplitAfterN(s, "\n", maxLines+1)
	if len(lines) <= maxLines {
		return s
	}
	return strings.Join(lines[:maxLines], "")
}
