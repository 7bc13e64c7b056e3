package optics

// Shade is a simulated camera intensity.
type Shade int

const (
	ShadeDark Shade = iota
	ShadeLight
)

// SimulatedOutput describes what the camera sees under one mode.
type SimulatedOutput struct {
	Heading    string
	Background Shade
	Feature    Shade
	// Glow marks features that light up against a dark field.
	Glow    bool
	Caption string
}

// Use is one line of the best-for list.
type Use struct {
	Text     string
	Suitable bool
}

// Content is everything the lesson shows for one (mode, language) pair.
type Content struct {
	Mode        Mode
	Language    Language
	Title       string
	Description string
	ModeLabel   string
	Diagram     Diagram
	Output      SimulatedOutput
	UsesHeading string
	Uses        []Use
}

type useSpec struct {
	text     Text
	suitable bool
}

type modeSpec struct {
	label      Text
	title      Text
	desc       Text
	background Shade
	feature    Shade
	glow       bool
	caption    Text
	uses       [4]useSpec
}

var (
	outputHeading = Text{"Camera Output", "相机成像效果"}
	usesHeading   = Text{"Best For Detecting", "适用场景"}
)

var modes = [modeCount]modeSpec{
	BrightField: {
		label: Text{"Bright Field", "亮视野"},
		title: Text{"Bright Field Logic", "亮视野 (Bright Field)"},
		desc: Text{
			"Light source is high/coaxial. Light hits the flat surface and reflects directly into the lens (specular reflection), making the background bright. Defects scatter light sideways, appearing dark.",
			"原理：光源位于相机与物体之间。光线垂直照射到平坦表面后，直接反射进入镜头（镜面反射），因此背景是白色的。而凹凸不平的特征（如刻字、划痕）会将光线散射到侧面，无法进入镜头，呈现为黑色。",
		},
		background: ShadeLight,
		feature:    ShadeDark,
		caption:    Text{"Bright Background, Dark Features", "背景亮 (白色)，特征暗 (黑色)"},
		uses: [4]useSpec{
			{Text{"Flatness inspection", "表面平整度检测"}, true},
			{Text{"Dark spots / Deep pits", "明显的黑点 / 深坑"}, true},
			{Text{"Presence/Absence", "有无检测 (Presence)"}, true},
			{Text{"Tiny surface scratches", "细微划痕 (不适用)"}, false},
		},
	},
	DarkField: {
		label: Text{"Dark Field", "暗视野"},
		title: Text{"Dark Field Logic", "暗视野 (Dark Field) / 低角度照明"},
		desc: Text{
			"Light source is at a low angle (0-30°). Light hitting the flat surface reflects away from the lens. Only when light hits an edge or scratch does it deflect UP into the lens, making the defect shine brightly.",
			"原理：光源以极低的角度（通常 0°~30°）照射物体。大部分光线照射到平坦表面后，像打水漂一样反射离开，不进镜头。只有遇到突起、边缘、划痕时，光线才会发生改变方向，反射进入镜头。背景呈黑色，特征呈亮白色。",
		},
		background: ShadeDark,
		feature:    ShadeLight,
		glow:       true,
		caption:    Text{"Dark Background, Bright Features", "背景暗 (黑色)，特征亮 (白色)"},
		uses: [4]useSpec{
			{Text{"Surface Scratches", "表面细微划痕 (最常用)"}, true},
			{Text{"Embossed/Engraved Text", "OCR 字符识别 / 浮雕字"}, true},
			{Text{"Edge defects", "边缘轮廓检测"}, true},
			{Text{"Color changes on flat surfaces", "平坦区域的颜色变化"}, false},
		},
	},
}

// ModeLabel returns the button label for mode.
func ModeLabel(mode Mode, lang Language) string {
	return modes[mode].label.In(lang)
}

// ContentFor builds the lesson content for a mode and language. Invalid
// values fall back to bright field and Chinese, the application defaults.
func ContentFor(mode Mode, lang Language) Content {
	if !mode.Valid() {
		mode = BrightField
	}
	if !lang.Valid() {
		lang = Chinese
	}
	spec := modes[mode]

	uses := make([]Use, 0, len(spec.uses))
	for _, u := range spec.uses {
		uses = append(uses, Use{Text: u.text.In(lang), Suitable: u.suitable})
	}

	return Content{
		Mode:        mode,
		Language:    lang,
		Title:       spec.title.In(lang),
		Description: spec.desc.In(lang),
		ModeLabel:   spec.label.In(lang),
		Diagram:     diagramFor(mode, lang),
		Output: SimulatedOutput{
			Heading:    outputHeading.In(lang),
			Background: spec.background,
			Feature:    spec.feature,
			Glow:       spec.glow,
			Caption:    spec.caption.In(lang),
		},
		UsesHeading: usesHeading.In(lang),
		Uses:        uses,
	}
}
