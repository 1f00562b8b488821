package labels

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Lang is a supported UI language.
type Lang string

const (
	English Lang = "en"
	Hindi   Lang = "hi"
)

// Supported lists the languages every label table must cover, primary first.
var Supported = []Lang{English, Hindi}

var (
	supportedTags = []language.Tag{language.English, language.Hindi}
	matcher       = language.NewMatcher(supportedTags)
)

// Tag returns the BCP 47 tag for l.
func (l Lang) Tag() language.Tag {
	switch l {
	case Hindi:
		return language.Hindi
	default:
		return language.English
	}
}

// ParseLang accepts a BCP 47 tag ("hi", "hi-IN", "en-GB") and returns the
// supported language with the same base.
func ParseLang(s string) (Lang, error) {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("invalid language %q: %w", s, err)
	}
	base, _ := tag.Base()
	for i, t := range supportedTags {
		if b, _ := t.Base(); b == base {
			return Supported[i], nil
		}
	}
	return "", fmt.Errorf("unsupported language %q (allowed: en, hi)", s)
}

// Negotiate picks the best supported language for an Accept-Language header.
func Negotiate(acceptLanguage string, fallback Lang) Lang {
	if strings.TrimSpace(acceptLanguage) == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return fallback
	}
	return Supported[idx]
}
