package optics

// ViewModel is the lesson state: which lighting mode and language are shown.
// Everything displayed is derived from it through Content and Chrome.
type ViewModel struct {
	mode Mode
	lang Language
}

// NewViewModel creates a view model with the given starting state.
func NewViewModel(mode Mode, lang Language) *ViewModel {
	if !mode.Valid() {
		mode = BrightField
	}
	if !lang.Valid() {
		lang = Chinese
	}
	return &ViewModel{mode: mode, lang: lang}
}

// Mode returns the current lighting mode.
func (v *ViewModel) Mode() Mode {
	return v.mode
}

// Language returns the current display language.
func (v *ViewModel) Language() Language {
	return v.lang
}

// SetMode replaces the lighting mode. Values outside the enumeration are ignored.
func (v *ViewModel) SetMode(mode Mode) {
	if !mode.Valid() {
		return
	}
	v.mode = mode
}

// ToggleMode flips between bright and dark field.
func (v *ViewModel) ToggleMode() {
	v.mode = v.mode.Other()
}

// ToggleLanguage flips between English and Chinese.
func (v *ViewModel) ToggleLanguage() {
	v.lang = v.lang.Other()
}

// Content returns the lesson content for the current state.
func (v *ViewModel) Content() Content {
	return ContentFor(v.mode, v.lang)
}

// Chrome returns the mode-independent labels for the current language.
func (v *ViewModel) Chrome() Chrome {
	return ChromeFor(v.lang)
}
