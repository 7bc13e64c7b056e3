package optics

// Logical canvas of the ray diagram. Coordinates grow right and down.
const (
	CanvasWidth  = 400.0
	CanvasHeight = 300.0

	centerX    = CanvasWidth / 2
	surfaceY   = 250.0
	cameraY    = 60.0
	dentWidth  = 40.0
	dentDepth  = 15.0
	dentLeft   = centerX - dentWidth/2
	dentRight  = centerX + dentWidth/2
	dentBottom = surfaceY + dentDepth
)

// Point is a position on the logical canvas.
type Point struct {
	X, Y float64
}

// Segment is a straight piece of a ray or outline.
type Segment struct {
	From, To Point
}

// Anchor says which part of a label sits on its point.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Tone is the colour role of a label.
type Tone int

const (
	ToneBright Tone = iota // white, on a ray that reaches the lens
	ToneMuted              // grey, on a ray that misses the lens
	ToneSurface
	ToneDefect
	ToneCamera
	ToneSource
)

// Label is positioned diagram text.
type Label struct {
	Text   string
	At     Point
	Anchor Anchor
	Tone   Tone
}

// Ray is a hand-authored light path. Dashed rays miss the lens.
type Ray struct {
	Path   []Point
	Dashed bool
	Label  Label
}

// Segments returns the ray as consecutive line segments.
func (r Ray) Segments() []Segment {
	if len(r.Path) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(r.Path)-1)
	for i := 1; i < len(r.Path); i++ {
		segs = append(segs, Segment{From: r.Path[i-1], To: r.Path[i]})
	}
	return segs
}

// EntersLens reports whether the ray ends in the camera.
func (r Ray) EntersLens() bool {
	return !r.Dashed
}

// Fixture is the camera or the light source. Its label sits to the right
// of the fixture glyph.
type Fixture struct {
	At    Point
	Label Label
}

// Diagram describes everything drawn in the ray diagram for one mode.
type Diagram struct {
	Heading    string
	LegendRay  string
	LegendPart string
	Surface    []Point
	Camera     Fixture
	Source     Fixture
	Rays       []Ray
	Features   []Label
	Result     string
}

// SurfaceSegments returns the inspected surface outline as segments.
func (d Diagram) SurfaceSegments() []Segment {
	return Ray{Path: d.Surface}.Segments()
}

type labelSpec struct {
	text   Text
	at     Point
	anchor Anchor
	tone   Tone
}

func (l labelSpec) localize(lang Language) Label {
	return Label{Text: l.text.In(lang), At: l.at, Anchor: l.anchor, Tone: l.tone}
}

type raySpec struct {
	path   []Point
	dashed bool
	label  labelSpec
}

type diagramSpec struct {
	source labelSpec
	rays   [2]raySpec
	result Text
}

var surfaceOutline = []Point{
	{20, surfaceY},
	{dentLeft, surfaceY},
	{centerX, dentBottom},
	{dentRight, surfaceY},
	{CanvasWidth - 20, surfaceY},
}

var (
	diagramHeading = Text{"PHYSICAL RAY DIAGRAM", "物理光路示意图"}
	legendRay      = Text{"Light Ray", "光线路径"}
	legendPart     = Text{"Object", "被测物体"}

	cameraLabel = labelSpec{Text{"Camera (Sensor)", "相机 (接收端)"}, Point{centerX + 12, 12}, AnchorStart, ToneCamera}

	featureLabels = []labelSpec{
		{Text{"Flat Surface", "平坦表面"}, Point{centerX - 80, surfaceY + 20}, AnchorMiddle, ToneSurface},
		{Text{"Defect/Text", "缺陷/刻字"}, Point{centerX, surfaceY + 35}, AnchorMiddle, ToneDefect},
	}
)

// diagrams is indexed by Mode. The array length pins one entry per mode.
var diagrams = [modeCount]diagramSpec{
	BrightField: {
		source: labelSpec{Text{"High Angle Source", "同轴/高角度光源"}, Point{centerX + 12, 88}, AnchorStart, ToneSource},
		rays: [2]raySpec{
			{
				path:  []Point{{centerX - 60, 100}, {centerX - 60, surfaceY}, {centerX - 10, cameraY + 20}},
				label: labelSpec{Text{"Hits Flat", "照射平坦处"}, Point{centerX - 80, surfaceY - 40}, AnchorEnd, ToneBright},
			},
			{
				path:   []Point{{centerX - 10, 100}, {centerX - 10, dentBottom - 5}, {centerX + 80, surfaceY - 60}},
				dashed: true,
				label:  labelSpec{Text{"Scatter (Misses Lens)", "杂散光 (不进镜头)"}, Point{centerX + 90, surfaceY - 60}, AnchorStart, ToneMuted},
			},
		},
		result: Text{
			"Result: Flat reflects light IN. Defect reflects light OUT.",
			"结论：平坦反光强 (白)，缺陷反光跑偏 (黑)",
		},
	},
	DarkField: {
		source: labelSpec{Text{"Low Angle Source", "低角度光源"}, Point{22, surfaceY - 55}, AnchorStart, ToneSource},
		rays: [2]raySpec{
			{
				path:   []Point{{50, surfaceY - 40}, {centerX - 50, surfaceY}, {CanvasWidth - 50, surfaceY - 100}},
				dashed: true,
				label:  labelSpec{Text{"Reflects Away", "反射光 (不进镜头)"}, Point{CanvasWidth - 50, surfaceY - 105}, AnchorMiddle, ToneMuted},
			},
			{
				path:  []Point{{50, surfaceY - 30}, {dentLeft + 5, surfaceY + 2}, {centerX, cameraY + 20}},
				label: labelSpec{Text{"Diffused into Lens", "漫反射进镜头"}, Point{centerX + 10, cameraY + 50}, AnchorStart, ToneBright},
			},
		},
		result: Text{
			"Result: Flat reflects light OUT. Defect catches light IN.",
			"结论：平坦反光跑偏 (黑)，缺陷把光“勾”进镜头 (白)",
		},
	},
}

func diagramFor(mode Mode, lang Language) Diagram {
	spec := diagrams[mode]

	rays := make([]Ray, 0, len(spec.rays))
	for _, r := range spec.rays {
		rays = append(rays, Ray{
			Path:   append([]Point(nil), r.path...),
			Dashed: r.dashed,
			Label:  r.label.localize(lang),
		})
	}

	features := make([]Label, 0, len(featureLabels))
	for _, l := range featureLabels {
		features = append(features, l.localize(lang))
	}

	source := spec.source.localize(lang)
	return Diagram{
		Heading:    diagramHeading.In(lang),
		LegendRay:  legendRay.In(lang),
		LegendPart: legendPart.In(lang),
		Surface:    append([]Point(nil), surfaceOutline...),
		Camera:     Fixture{At: Point{centerX, 12}, Label: cameraLabel.localize(lang)},
		Source:     Fixture{At: Point{source.At.X - 12, source.At.Y}, Label: source},
		Rays:       rays,
		Features:   features,
		Result:     spec.result.In(lang),
	}
}
