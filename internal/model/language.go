package model

import (
	"strings"

	"golang.org/x/text/language"
)

// AutoDetectName is the picker label for automatic source detection
const AutoDetectName = "Auto Detect"

// AutoDetectCode is the code passed to engines for automatic detection
const AutoDetectCode = "auto"

// Language is a picker entry backed by a BCP 47 tag
type Language struct {
	Name string
	Tag  language.Tag
}

// AutoDetect may only ever be used as a source language
var AutoDetect = Language{Name: AutoDetectName, Tag: language.Und}

// Supported languages, in picker order
var (
	English    = Language{Name: "english", Tag: language.English}
	French     = Language{Name: "french", Tag: language.French}
	German     = Language{Name: "german", Tag: language.German}
	Spanish    = Language{Name: "spanish", Tag: language.Spanish}
	Hindi      = Language{Name: "hindi", Tag: language.Hindi}
	Italian    = Language{Name: "italian", Tag: language.Italian}
	Japanese   = Language{Name: "japanese", Tag: language.Japanese}
	Chinese    = Language{Name: "chinese", Tag: language.SimplifiedChinese}
	Arabic     = Language{Name: "arabic", Tag: language.Arabic}
	Russian    = Language{Name: "russian", Tag: language.Russian}
	Portuguese = Language{Name: "portuguese", Tag: language.Portuguese}
)

// SupportedLanguages is the closed set offered by the destination picker
var SupportedLanguages = []Language{
	English, French, German, Spanish, Hindi, Italian,
	Japanese, Chinese, Arabic, Russian, Portuguese,
}

// IsZero reports whether no language is set
func (l Language) IsZero() bool {
	return l.Name == ""
}

// IsAutoDetect reports whether l is the auto-detect pseudo language
func (l Language) IsAutoDetect() bool {
	return l.Name == AutoDetectName
}

// String returns the picker name
func (l Language) String() string {
	return l.Name
}

// Code returns the ISO 639-1 code ("en", "zh", ...) or "auto"
func (l Language) Code() string {
	if l.IsAutoDetect() || l.IsZero() {
		return AutoDetectCode
	}
	base, _ := l.Tag.Base()
	return base.String()
}

// LanguageByName looks up a picker entry by name, case-insensitively
func LanguageByName(name string) (Language, bool) {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, AutoDetectName) || strings.EqualFold(name, "auto-detect") || name == AutoDetectCode {
		return AutoDetect, true
	}
	for _, l := range SupportedLanguages {
		if strings.EqualFold(l.Name, name) {
			return l, true
		}
	}
	return Language{}, false
}

// SourceLanguageNames returns the source picker options
func SourceLanguageNames() []string {
	names := make([]string, 0, len(SupportedLanguages)+1)
	names = append(names, AutoDetectName)
	return append(names, DestinationLanguageNames()...)
}

// DestinationLanguageNames returns the destination picker options
func DestinationLanguageNames() []string {
	names := make([]string, 0, len(SupportedLanguages))
	for _, l := range SupportedLanguages {
		names = append(names, l.Name)
	}
	return names
}
