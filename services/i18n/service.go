// Package i18n holds the app's localization tables. Tables are loaded once
// at startup and frozen inside the service; there is no mutable global
// state to drift between screens.
package i18n

import (
	"fmt"

	"github.com/spf13/viper"
)

// Locale describes one supported UI language.
type Locale struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Flag string `json:"flag"`
}

// SupportedLocales lists the languages the app ships with.
var SupportedLocales = []Locale{
	{Code: "en", Name: "English", Flag: "🇺🇸"},
	{Code: "yo", Name: "Yoruba", Flag: "🇳🇬"},
	{Code: "ig", Name: "Igbo", Flag: "🇳🇬"},
	{Code: "ur", Name: "Urhobo", Flag: "🇳🇬"},
	{Code: "ha", Name: "Hausa", Flag: "🇳🇬"},
	{Code: "fr", Name: "French", Flag: "🇫🇷"},
	{Code: "zh", Name: "Chinese", Flag: "🇨🇳"},
	{Code: "sw", Name: "Swahili", Flag: "🇰🇪"},
	{Code: "zu", Name: "Zulu", Flag: "🇿🇦"},
	{Code: "tw", Name: "Twi", Flag: "🇬🇭"},
}

// Service resolves translation strings with fallback to the default locale.
type Service struct {
	defaultLocale string
	tables        map[string]map[string]string
}

// NewService deep-copies the given tables so later mutation of the input
// cannot leak into resolved translations.
func NewService(defaultLocale string, tables map[string]map[string]string) *Service {
	copied := make(map[string]map[string]string, len(tables))
	for locale, table := range tables {
		inner := make(map[string]string, len(table))
		for k, v := range table {
			inner[k] = v
		}
		copied[locale] = inner
	}
	return &Service{defaultLocale: defaultLocale, tables: copied}
}

// LoadTables reads locale tables from a YAML file of the shape
// locale -> key -> string.
func LoadTables(path string) (map[string]map[string]string, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("i18n: read %s: %w", path, err)
	}

	tables := make(map[string]map[string]string)
	for _, locale := range v.AllKeys() {
		// viper flattens nested keys as "locale.key".
		for i := 0; i < len(locale); i++ {
			if locale[i] == '.' {
				code, key := locale[:i], locale[i+1:]
				if tables[code] == nil {
					tables[code] = make(map[string]string)
				}
				tables[code][key] = v.GetString(locale)
				break
			}
		}
	}
	return tables, nil
}

// Lookup resolves a key for a locale, falling back to the default locale
// and finally to the key itself.
func (s *Service) Lookup(locale, key string) string {
	if table, ok := s.tables[locale]; ok {
		if v, ok := table[key]; ok {
			return v
		}
	}
	if table, ok := s.tables[s.defaultLocale]; ok {
		if v, ok := table[key]; ok {
			return v
		}
	}
	return key
}

// Table returns the locale's full table merged over the default locale.
func (s *Service) Table(locale string) map[string]string {
	merged := make(map[string]string)
	for k, v := range s.tables[s.defaultLocale] {
		merged[k] = v
	}
	for k, v := range s.tables[locale] {
		merged[k] = v
	}
	return merged
}

// Locales returns the supported language list.
func (s *Service) Locales() []Locale {
	out := make([]Locale, len(SupportedLocales))
	copy(out, SupportedLocales)
	return out
}
