package optics

import (
	"reflect"
	"testing"
	"unicode"
)

func hasHan(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}

func TestContentFor_AllCombinationsDefined(t *testing.T) {
	for _, mode := range Modes() {
		for _, lang := range []Language{English, Chinese} {
			c := ContentFor(mode, lang)

			if c.Mode != mode || c.Language != lang {
				t.Fatalf("ContentFor(%s, %s) reported (%s, %s)", mode, lang, c.Mode, c.Language)
			}
			for name, s := range map[string]string{
				"Title":          c.Title,
				"Description":    c.Description,
				"ModeLabel":      c.ModeLabel,
				"UsesHeading":    c.UsesHeading,
				"Output.Heading": c.Output.Heading,
				"Output.Caption": c.Output.Caption,
				"Diagram.Result": c.Diagram.Result,
				"Diagram.Camera": c.Diagram.Camera.Label.Text,
				"Diagram.Source": c.Diagram.Source.Label.Text,
			} {
				if s == "" {
					t.Errorf("%s/%s: %s is empty", mode, lang, name)
				}
			}

			if len(c.Uses) != 4 {
				t.Errorf("%s/%s: expected 4 uses, got %d", mode, lang, len(c.Uses))
			}
			suitable := 0
			for _, u := range c.Uses {
				if u.Text == "" {
					t.Errorf("%s/%s: empty use", mode, lang)
				}
				if u.Suitable {
					suitable++
				}
			}
			if suitable != 3 {
				t.Errorf("%s/%s: expected 3 suitable uses, got %d", mode, lang, suitable)
			}

			if lang == Chinese && !hasHan(c.Description) {
				t.Errorf("%s/zh: description is not Chinese: %q", mode, c.Description)
			}
			if lang == English && hasHan(c.Description) {
				t.Errorf("%s/en: description contains Chinese: %q", mode, c.Description)
			}
		}
	}
}

func TestContentFor_ModesDiffer(t *testing.T) {
	for _, lang := range []Language{English, Chinese} {
		bright := ContentFor(BrightField, lang)
		dark := ContentFor(DarkField, lang)

		if bright.Title == dark.Title {
			t.Errorf("%s: titles should differ, both %q", lang, bright.Title)
		}
		if reflect.DeepEqual(bright.Diagram.Rays, dark.Diagram.Rays) {
			t.Errorf("%s: ray layouts should differ per mode", lang)
		}
		if bright.Output.Background != ShadeLight || bright.Output.Feature != ShadeDark {
			t.Errorf("%s: bright field should show dark features on a light background", lang)
		}
		if dark.Output.Background != ShadeDark || dark.Output.Feature != ShadeLight || !dark.Output.Glow {
			t.Errorf("%s: dark field should show glowing light features on a dark background", lang)
		}
	}
}

func TestDiagram_RaysPerMode(t *testing.T) {
	tests := []struct {
		mode           Mode
		wantSolidLabel string
		wantDashLabel  string
	}{
		{BrightField, "Hits Flat", "Scatter (Misses Lens)"},
		{DarkField, "Diffused into Lens", "Reflects Away"},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			d := ContentFor(tt.mode, English).Diagram
			if len(d.Rays) != 2 {
				t.Fatalf("expected 2 rays, got %d", len(d.Rays))
			}

			var solid, dashed []Ray
			for _, r := range d.Rays {
				if len(r.Segments()) != 2 {
					t.Errorf("ray %q: expected 2 segments, got %d", r.Label.Text, len(r.Segments()))
				}
				if r.Dashed {
					dashed = append(dashed, r)
				} else {
					solid = append(solid, r)
				}
			}
			if len(solid) != 1 || len(dashed) != 1 {
				t.Fatalf("expected one solid and one dashed ray, got %d/%d", len(solid), len(dashed))
			}
			if solid[0].Label.Text != tt.wantSolidLabel {
				t.Errorf("solid label = %q, want %q", solid[0].Label.Text, tt.wantSolidLabel)
			}
			if dashed[0].Label.Text != tt.wantDashLabel {
				t.Errorf("dashed label = %q, want %q", dashed[0].Label.Text, tt.wantDashLabel)
			}
			if !solid[0].EntersLens() || dashed[0].EntersLens() {
				t.Error("only the solid ray should enter the lens")
			}

			if got := len(d.SurfaceSegments()); got != 4 {
				t.Errorf("expected 4 surface segments, got %d", got)
			}
			for _, p := range append(append([]Point{}, solid[0].Path...), dashed[0].Path...) {
				if p.X < 0 || p.X > CanvasWidth || p.Y < 0 || p.Y > CanvasHeight {
					t.Errorf("point %+v outside the canvas", p)
				}
			}
		})
	}
}

func TestDiagram_SourcePosition(t *testing.T) {
	bright := ContentFor(BrightField, English).Diagram.Source.At
	dark := ContentFor(DarkField, English).Diagram.Source.At

	if bright.Y >= surfaceY/2 {
		t.Errorf("bright field source should sit high, got y=%v", bright.Y)
	}
	if dark.Y <= surfaceY/2 || dark.X >= centerX {
		t.Errorf("dark field source should sit low and to the side, got %+v", dark)
	}
}

func TestContentFor_ReturnsIndependentCopies(t *testing.T) {
	first := ContentFor(DarkField, English)
	first.Diagram.Rays[0].Path[0] = Point{-1, -1}
	first.Diagram.Surface[0] = Point{-1, -1}

	second := ContentFor(DarkField, English)
	if second.Diagram.Rays[0].Path[0] == (Point{-1, -1}) {
		t.Error("mutating returned ray path leaked into the table")
	}
	if second.Diagram.Surface[0] == (Point{-1, -1}) {
		t.Error("mutating returned surface leaked into the table")
	}
}

func TestViewModel_ToggleModeTwiceRestoresContent(t *testing.T) {
	vm := NewViewModel(BrightField, English)
	before := vm.Content()

	vm.ToggleMode()
	if vm.Mode() != DarkField {
		t.Fatalf("expected dark field after one toggle, got %s", vm.Mode())
	}
	vm.ToggleMode()

	if !reflect.DeepEqual(before, vm.Content()) {
		t.Error("toggling mode twice should restore the original content")
	}
}

func TestViewModel_SetModeTwice(t *testing.T) {
	vm := NewViewModel(DarkField, Chinese)
	before := vm.Content()

	vm.SetMode(BrightField)
	vm.SetMode(DarkField)

	if !reflect.DeepEqual(before, vm.Content()) {
		t.Error("switching away and back should restore the original content")
	}

	vm.SetMode(Mode(7))
	if vm.Mode() != DarkField {
		t.Errorf("invalid mode should be ignored, got %s", vm.Mode())
	}
}

func TestViewModel_ToggleLanguageTwiceRestoresStrings(t *testing.T) {
	vm := NewViewModel(BrightField, Chinese)
	content := vm.Content()
	chrome := vm.Chrome()

	vm.ToggleLanguage()
	if vm.Language() != English {
		t.Fatalf("expected English after one toggle, got %s", vm.Language())
	}
	if vm.Chrome().AppTitle != "VisionOptics" {
		t.Errorf("unexpected English title %q", vm.Chrome().AppTitle)
	}
	vm.ToggleLanguage()

	if !reflect.DeepEqual(content, vm.Content()) {
		t.Error("toggling language twice should restore content strings")
	}
	if !reflect.DeepEqual(chrome, vm.Chrome()) {
		t.Error("toggling language twice should restore chrome strings")
	}
}

func TestNewViewModel_InvalidFallsBack(t *testing.T) {
	vm := NewViewModel(Mode(-1), Language(9))
	if vm.Mode() != BrightField {
		t.Errorf("expected bright field fallback, got %s", vm.Mode())
	}
	if vm.Language() != Chinese {
		t.Errorf("expected zh fallback, got %s", vm.Language())
	}
}

func TestChromeFor_AllFieldsSet(t *testing.T) {
	for _, lang := range []Language{English, Chinese} {
		v := reflect.ValueOf(ChromeFor(lang))
		checkStrings(t, lang.String(), v)
	}
}

func checkStrings(t *testing.T, prefix string, v reflect.Value) {
	t.Helper()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		name := prefix + "." + v.Type().Field(i).Name
		switch f.Kind() {
		case reflect.String:
			if f.String() == "" {
				t.Errorf("%s is empty", name)
			}
		case reflect.Struct:
			checkStrings(t, name, f)
		}
	}
}

func TestWelcomeMessage(t *testing.T) {
	if !hasHan(WelcomeMessage(Chinese)) {
		t.Errorf("zh welcome should be Chinese, got %q", WelcomeMessage(Chinese))
	}
	if WelcomeMessage(English) != ChromeFor(English).ChatWelcome {
		t.Error("welcome message should match chrome")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"bright", BrightField, false},
		{"BRIGHT_FIELD", BrightField, false},
		{" dark ", DarkField, false},
		{"DARK_FIELD", DarkField, false},
		{"df", DarkField, false},
		{"coaxial", BrightField, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in      string
		want    Language
		wantErr bool
	}{
		{"en", English, false},
		{"EN-us", English, false},
		{"zh", Chinese, false},
		{"zh_CN", Chinese, false},
		{"fr", Chinese, true},
		{"", Chinese, true},
	}
	for _, tt := range tests {
		got, err := ParseLanguage(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLanguage(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLanguage(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
