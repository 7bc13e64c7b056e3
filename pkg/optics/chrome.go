package optics

// Chrome holds the labels around the lesson that do not depend on the mode.
type Chrome struct {
	AppTitle      string
	Subtitle      string
	Intro         string
	LanguageName  string
	Tagline       string
	RealWorld     RealWorld
	ChatHeading   string
	ChatTitle     string
	ChatHint      string
	ChatWelcome   string
	ChatPending   string
	ChatDisabled  string
	ChatYou       string
	ChatTutor     string
	KeyHints      string
	ChatKeyHints  string
	CopiedNotice  string
	ModeHeading   string
	DiagramFooter string
}

// RealWorld is the coin and chip walkthrough.
type RealWorld struct {
	Title        string
	Intro        string
	BrightHeader string
	BrightText   string
	DarkHeader   string
	DarkText     string
}

type chromeSpec struct {
	appTitle     Text
	subtitle     Text
	intro        Text
	languageName Text
	tagline      Text

	rwTitle        Text
	rwIntro        Text
	rwBrightHeader Text
	rwBrightText   Text
	rwDarkHeader   Text
	rwDarkText     Text

	chatHeading  Text
	chatTitle    Text
	chatHint     Text
	chatWelcome  Text
	chatPending  Text
	chatDisabled Text
	chatYou      Text
	chatTutor    Text

	keyHints      Text
	chatKeyHints  Text
	copiedNotice  Text
	modeHeading   Text
	diagramFooter Text
}

var chrome = chromeSpec{
	appTitle:     Text{"VisionOptics", "机器视觉光学"},
	subtitle:     Text{"Illumination Logic", "照明的核心逻辑"},
	intro:        Text{"Master the core physics of machine vision: The battle between Bright Field and Dark Field.", "掌握机器视觉打光最底层的物理逻辑：亮视野 vs 暗视野。"},
	languageName: Text{"English", "中文"},
	tagline:      Text{"INTERACTIVE LEARNING", "INTERACTIVE LEARNING"},

	rwTitle: Text{"Real-world Application", "实际应用案例"},
	rwIntro: Text{
		"The Coin & Chip Example: When inspecting a coin or a microchip, the background is often reflective.",
		"图例分析（截图中的硬币和芯片）：",
	},
	rwBrightHeader: Text{"In Bright Field:", "亮视野下："},
	rwBrightText: Text{
		"The flat metal acts like a mirror, blinding the camera with white glare. The text is hard to read because it blends in or just looks messy.",
		"平坦的金属表面像镜子一样，将光线直接反射进相机，导致背景过曝（全白）。特征难以辨认。",
	},
	rwDarkHeader: Text{"In Dark Field:", "暗视野下："},
	rwDarkText: Text{
		"The flat mirror-like surface reflects light *away* from the camera (Black background). However, the raised edges of the '5 cents' or 'LM386' text catch the low-angle light and redirect it into the lens. The result? Crystal clear, glowing text.",
		"背景漆黑，但“5分”、“LM386”字样轮廓非常清晰高亮。这是因为平坦表面将光反射走，而字体的边缘将低角度的光“折射”进了相机。",
	},

	chatHeading: Text{"Have questions? Ask AI", "遇到问题？问问 AI 助教"},
	chatTitle:   Text{"AI Optics Consultant", "AI 光学顾问"},
	chatHint:    Text{"Ex: Why is low angle good for scratches?", "例如：为什么低角度适合检测划痕？"},
	chatWelcome: Text{
		"Hi! I'm your Optics Tutor. Ask me anything about lighting angles, reflection, or detection techniques.",
		"你好！我是你的光学助教。关于打光角度、明暗视野或检测难题，尽管问我。",
	},
	chatPending:  Text{"Thinking...", "思考中..."},
	chatDisabled: Text{"Waiting for the tutor...", "等待助教回复..."},
	chatYou:      Text{"You", "你"},
	chatTutor:    Text{"Tutor", "助教"},

	keyHints:      Text{"b/d mode | l language | tab chat | ↑/↓ scroll | q quit", "b/d 切换视野 | l 语言 | tab 对话 | ↑/↓ 滚动 | q 退出"},
	chatKeyHints:  Text{"enter send | esc back | ctrl+y copy | ctrl+l language", "enter 发送 | esc 返回 | ctrl+y 复制 | ctrl+l 语言"},
	copiedNotice:  Text{"Transcript copied", "对话已复制"},
	modeHeading:   Text{"Lighting Mode", "照明方式"},
	diagramFooter: Text{"solid = into lens, dotted = misses lens", "实线 = 进入镜头，虚线 = 不进镜头"},
}

// ChromeFor returns the mode-independent labels for lang.
func ChromeFor(lang Language) Chrome {
	if !lang.Valid() {
		lang = Chinese
	}
	c := chrome
	return Chrome{
		AppTitle:     c.appTitle.In(lang),
		Subtitle:     c.subtitle.In(lang),
		Intro:        c.intro.In(lang),
		LanguageName: c.languageName.In(lang),
		Tagline:      c.tagline.In(lang),
		RealWorld: RealWorld{
			Title:        c.rwTitle.In(lang),
			Intro:        c.rwIntro.In(lang),
			BrightHeader: c.rwBrightHeader.In(lang),
			BrightText:   c.rwBrightText.In(lang),
			DarkHeader:   c.rwDarkHeader.In(lang),
			DarkText:     c.rwDarkText.In(lang),
		},
		ChatHeading:   c.chatHeading.In(lang),
		ChatTitle:     c.chatTitle.In(lang),
		ChatHint:      c.chatHint.In(lang),
		ChatWelcome:   c.chatWelcome.In(lang),
		ChatPending:   c.chatPending.In(lang),
		ChatDisabled:  c.chatDisabled.In(lang),
		ChatYou:       c.chatYou.In(lang),
		ChatTutor:     c.chatTutor.In(lang),
		KeyHints:      c.keyHints.In(lang),
		ChatKeyHints:  c.chatKeyHints.In(lang),
		CopiedNotice:  c.copiedNotice.In(lang),
		ModeHeading:   c.modeHeading.In(lang),
		DiagramFooter: c.diagramFooter.In(lang),
	}
}

// WelcomeMessage is the tutor's greeting in lang.
func WelcomeMessage(lang Language) string {
	return chrome.chatWelcome.In(lang)
}
