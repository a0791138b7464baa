// Package locale holds the console and report captions in every supported language.
package locale

import (
	"golang.org/x/text/language"
)

// Captions maps a fixed caption key to display text.
type Captions map[string]string

// Get returns the caption for key, or the key itself when no caption exists.
func (c Captions) Get(key string) string {
	if v, ok := c[key]; ok {
		return v
	}
	return key
}

// Text groups the captions used on the console and in reports.
type Text struct {
	Lang   string
	CLI    Captions
	Report Captions
}

// Summary caption keys in display order.
var SummaryKeys = []string{
	"total_files",
	"total_size",
	"dup_files",
	"dup_size",
	"dup_percent",
	"time_passed",
}

var (
	supported = []language.Tag{language.English, language.Russian}
	matcher   = language.NewMatcher(supported)

	texts = map[language.Tag]Text{
		language.English: english,
		language.Russian: russian,
	}
)

// Languages lists the supported language codes.
func Languages() []string {
	codes := make([]string, 0, len(supported))
	for _, tag := range supported {
		codes = append(codes, tag.String())
	}
	return codes
}

// Lookup picks the closest supported language for a tag such as "en", "ru-RU" or
// "en-GB". Unknown or malformed tags fall back to English.
func Lookup(lang string) Text {
	_, index := language.MatchStrings(matcher, lang)
	return texts[supported[index]]
}
