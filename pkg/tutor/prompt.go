package tutor

import (
	"strings"

	"visionoptics/pkg/optics"
)

var (
	languageInstruction = optics.Text{
		EN: "Reply in English.",
		ZH: "Reply in Simplified Chinese. Explain concepts using standard Machine Vision terminology in Chinese.",
	}
	emptyReply = optics.Text{
		EN: "I couldn't generate a response regarding optics at the moment.",
		ZH: "抱歉，我现在无法回答光学问题。",
	}
	errorReply = optics.Text{
		EN: "Error connecting to the Optics AI Tutor. Please check your API key.",
		ZH: "连接 AI 导师失败，请检查 API 密钥。",
	}
)

// SystemPrompt returns the persona and answering rules for lang.
func SystemPrompt(lang optics.Language) string {
	var sb strings.Builder
	sb.WriteString("You are an expert Professor of Machine Vision and Optics.\n")
	sb.WriteString("Your goal is to explain lighting techniques to students simply and clearly.\n\n")
	sb.WriteString("Current Topic: Bright Field vs. Dark Field Lighting.\n\n")
	sb.WriteString("Rules:\n")
	sb.WriteString("1. " + languageInstruction.In(lang) + "\n")
	sb.WriteString("2. Keep answers concise (under 150 words) unless asked for detail.\n")
	sb.WriteString("3. Use analogies (e.g., \"like a mirror\" or \"like driving in fog\").\n")
	sb.WriteString("4. Focus on the physics of reflection (Angle of Incidence = Angle of Reflection).\n")
	sb.WriteString("5. Formatting: Use bullet points for clarity.")
	return sb.String()
}

// EmptyReply is returned when the model answers with no visible text.
func EmptyReply(lang optics.Language) string {
	return emptyReply.In(lang)
}

// ErrorReply is returned when the tutor cannot be reached.
func ErrorReply(lang optics.Language) string {
	return errorReply.In(lang)
}
