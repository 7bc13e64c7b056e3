package lesson

import (
	"strings"
	"testing"

	"visionoptics/pkg/optics"

	"charm.land/lipgloss/v2"
)

func TestRenderPlain_AllSections(t *testing.T) {
	for _, mode := range optics.Modes() {
		for _, lang := range []optics.Language{optics.English, optics.Chinese} {
			c := optics.ContentFor(mode, lang)
			ch := optics.ChromeFor(lang)
			out := RenderPlain(c, ch, 100)

			want := []string{
				ch.AppTitle,
				ch.Subtitle,
				c.Title,
				c.UsesHeading,
				c.Diagram.Heading,
				c.Output.Heading,
				ch.RealWorld.Title,
				ch.RealWorld.BrightHeader,
				ch.RealWorld.DarkHeader,
			}
			for _, u := range c.Uses {
				want = append(want, u.Text)
			}
			for _, s := range want {
				if !strings.Contains(out, s) {
					t.Errorf("%s/%s: lesson missing %q", mode, lang, s)
				}
			}
		}
	}
}

func TestRenderPlain_MarksActiveMode(t *testing.T) {
	c := optics.ContentFor(optics.DarkField, optics.English)
	out := RenderPlain(c, optics.ChromeFor(optics.English), 80)

	active := "[*] " + optics.ModeLabel(optics.DarkField, optics.English)
	inactive := "[ ] " + optics.ModeLabel(optics.BrightField, optics.English)
	if !strings.Contains(out, active) || !strings.Contains(out, inactive) {
		t.Fatalf("mode bar should mark dark field active:\n%s", out)
	}
}

func TestRender_FitsWidth(t *testing.T) {
	for _, width := range []int{40, 72, 110} {
		c := optics.ContentFor(optics.BrightField, optics.Chinese)
		out := Render(c, optics.ChromeFor(optics.Chinese), width)
		for i, line := range strings.Split(out, "\n") {
			if w := lipgloss.Width(line); w > width {
				t.Errorf("width %d: line %d is %d wide: %q", width, i, w, line)
			}
		}
	}
}

func TestRender_SideBySideOnWidePanes(t *testing.T) {
	c := optics.ContentFor(optics.BrightField, optics.English)
	ch := optics.ChromeFor(optics.English)

	wide := RenderPlain(c, ch, 100)
	narrow := RenderPlain(c, ch, 60)

	if strings.Count(wide, "\n") >= strings.Count(narrow, "\n") {
		t.Error("wide layout should be shorter than the stacked layout")
	}
}

func TestPane_SetLessonKeepsOffset(t *testing.T) {
	p := NewPane()
	p.SetSize(60, 10)
	p.SetLesson(optics.ContentFor(optics.BrightField, optics.English), optics.ChromeFor(optics.English))

	p.ScrollDown()
	p.ScrollDown()
	p.ScrollDown()
	if p.Offset() != 3 {
		t.Fatalf("expected offset 3, got %d", p.Offset())
	}

	p.SetLesson(optics.ContentFor(optics.DarkField, optics.English), optics.ChromeFor(optics.English))
	if p.Offset() != 3 {
		t.Errorf("switching lessons should keep the offset, got %d", p.Offset())
	}

	p.GotoTop()
	if p.Offset() != 0 {
		t.Errorf("expected offset 0 after GotoTop, got %d", p.Offset())
	}
}

func TestPane_ViewBeforeSize(t *testing.T) {
	p := NewPane()
	if p.View() != "Loading..." {
		t.Errorf("unexpected view before sizing: %q", p.View())
	}
}
