package model

import "strings"

// Language is a TheTVDB content language.
type Language struct {
	ID           int
	Name         string
	Abbreviation string
}

// DefaultLanguage is the language assumed when none is given.
var DefaultLanguage = Language{ID: 7, Name: "English", Abbreviation: "en"}

var languages = []Language{
	DefaultLanguage,
	{ID: 8, Name: "Svenska", Abbreviation: "sv"},
	{ID: 9, Name: "Norsk", Abbreviation: "no"},
	{ID: 10, Name: "Dansk", Abbreviation: "da"},
	{ID: 11, Name: "Suomeksi", Abbreviation: "fi"},
	{ID: 13, Name: "Nederlands", Abbreviation: "nl"},
	{ID: 14, Name: "Deutsch", Abbreviation: "de"},
	{ID: 15, Name: "Italiano", Abbreviation: "it"},
	{ID: 16, Name: "Español", Abbreviation: "es"},
	{ID: 17, Name: "Français", Abbreviation: "fr"},
	{ID: 18, Name: "Polski", Abbreviation: "pl"},
	{ID: 19, Name: "Magyar", Abbreviation: "hu"},
	{ID: 20, Name: "Ελληνικά", Abbreviation: "el"},
	{ID: 21, Name: "Türkçe", Abbreviation: "tr"},
	{ID: 22, Name: "русский язык", Abbreviation: "ru"},
	{ID: 24, Name: "עברית", Abbreviation: "he"},
	{ID: 25, Name: "日本語", Abbreviation: "ja"},
	{ID: 26, Name: "Português", Abbreviation: "pt"},
	{ID: 27, Name: "中文", Abbreviation: "zh"},
	{ID: 28, Name: "čeština", Abbreviation: "cs"},
	{ID: 30, Name: "Slovenski", Abbreviation: "sl"},
	{ID: 31, Name: "Hrvatski", Abbreviation: "hr"},
	{ID: 32, Name: "한국어", Abbreviation: "ko"},
}

// LanguageByAbbreviation looks up a language by its two letter code.
//
// Unknown codes return a Language carrying only the abbreviation and false.
func LanguageByAbbreviation(abbr string) (Language, bool) {
	abbr = strings.ToLower(strings.TrimSpace(abbr))
	for _, l := range languages {
		if l.Abbreviation == abbr {
			return l, true
		}
	}
	return Language{Abbreviation: abbr}, false
}

// Languages returns all known languages.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

func (l Language) String() string {
	if l.Name == "" {
		return l.Abbreviation
	}
	return l.Name + " (" + l.Abbreviation + ")"
}
