// Package optics holds the illumination lesson: the lighting mode and
// display language state, and every piece of content derived from them.
package optics

import (
	"fmt"
	"strings"
)

// Mode is the lighting geometry being taught.
type Mode int

const (
	BrightField Mode = iota
	DarkField

	modeCount
)

// Modes lists every lighting mode in display order.
func Modes() []Mode {
	return []Mode{BrightField, DarkField}
}

// String returns the stable identifier used in config and flags.
func (m Mode) String() string {
	switch m {
	case BrightField:
		return "bright"
	case DarkField:
		return "dark"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return m >= BrightField && m < modeCount
}

// Other returns the opposite lighting mode.
func (m Mode) Other() Mode {
	if m == BrightField {
		return DarkField
	}
	return BrightField
}

// ParseMode accepts "bright", "dark" and the BRIGHT_FIELD/DARK_FIELD spellings.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bright", "bright_field", "bf":
		return BrightField, nil
	case "dark", "dark_field", "df":
		return DarkField, nil
	}
	return BrightField, fmt.Errorf("unknown lighting mode %q (want bright or dark)", s)
}

// Language selects which of the two string tables is displayed.
type Language int

const (
	English Language = iota
	Chinese

	languageCount
)

// String returns the language code.
func (l Language) String() string {
	switch l {
	case English:
		return "en"
	case Chinese:
		return "zh"
	default:
		return fmt.Sprintf("Language(%d)", int(l))
	}
}

// Valid reports whether l is one of the declared languages.
func (l Language) Valid() bool {
	return l >= English && l < languageCount
}

// Other returns the opposite language.
func (l Language) Other() Language {
	if l == English {
		return Chinese
	}
	return English
}

// ParseLanguage accepts "en" and "zh" (case-insensitive, region suffix ignored).
func ParseLanguage(s string) (Language, error) {
	code := strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	switch code {
	case "en":
		return English, nil
	case "zh":
		return Chinese, nil
	}
	return Chinese, fmt.Errorf("unknown language %q (want en or zh)", s)
}

// Text is one label in both languages. Declare it unkeyed inside this
// package so the compiler rejects a missing translation.
type Text struct {
	EN string
	ZH string
}

// In returns the label for lang.
func (t Text) In(lang Language) string {
	if lang == Chinese {
		return t.ZH
	}
	return t.EN
}
