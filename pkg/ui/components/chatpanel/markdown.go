package chatpanel

import (
	"strings"
	"unicode/utf8"

	"visionoptics/pkg/ui/components/utils"

	"github.com/mattn/go-runewidth"
)

const bulletMarker = "• "

type markdownToken struct {
	text  string
	bold  bool
	space bool // preceded by whitespace in the source
}

// renderMarkdown turns the small markdown subset the tutor produces (bold,
// bullets, numbered lists, headings, fenced code, pipe tables) into styled
// lines no wider than width.
func renderMarkdown(content string, width int) []string {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	normalized = sanitizeContent(normalized)
	for _, br := range []string{"<br>", "<br/>", "<br />"} {
		normalized = strings.ReplaceAll(normalized, br, "\n")
	}
	rawLines := strings.Split(normalized, "\n")

	var rendered []string
	inCode := false

	for i := 0; i < len(rawLines); i++ {
		line := strings.ReplaceAll(rawLines[i], "\t", "    ")
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inCode = !inCode
			continue
		}

		if inCode {
			rendered = append(rendered, renderCodeLine(line, width)...)
			continue
		}

		if isTableRow(line) {
			var rows [][]string
			for i < len(rawLines) && isTableRow(rawLines[i]) {
				if cells := splitTableRow(rawLines[i]); len(cells) > 0 {
					rows = append(rows, cells)
				}
				i++
			}
			i--

			header := false
			if len(rows) > 1 && isSeparatorRow(rows[1]) {
				header = true
				rows = append(rows[:1], rows[2:]...)
			}
			rendered = append(rendered, renderTable(rows, header, width)...)
			continue
		}

		rendered = append(rendered, renderMarkdownLine(line, width)...)
	}

	if len(rendered) == 0 {
		return []string{""}
	}
	return rendered
}

func renderMarkdownLine(line string, width int) []string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return []string{""}
	}

	if heading, ok := headingText(trimmed); ok {
		return wrapTokens(tokenizeBoldWords("**"+heading+"**"), width)
	}

	indent := utils.PadPlain("", leadingIndent(line))
	if marker, body, ok := listItem(trimmed); ok {
		hang := strings.Repeat(" ", runewidth.StringWidth(marker))
		wrapped := wrapTokens(tokenizeBoldWords(body), width-len(indent)-len(hang))
		for i := range wrapped {
			if i == 0 {
				wrapped[i] = indent + textStyle.Render(marker) + wrapped[i]
			} else {
				wrapped[i] = indent + hang + wrapped[i]
			}
		}
		return wrapped
	}

	tokens := tokenizeBoldWords(trimmed)
	if len(tokens) == 0 {
		return []string{""}
	}
	return wrapTokens(tokens, width)
}

// headingText strips ATX heading markers.
func headingText(line string) (string, bool) {
	if !strings.HasPrefix(line, "#") {
		return "", false
	}
	text := strings.TrimLeft(line, "#")
	if text == line || !strings.HasPrefix(text, " ") {
		return "", false
	}
	return strings.TrimSpace(text), true
}

// listItem recognises "* x", "- x", "• x" and "1. x" items and returns the
// marker to draw in front of the body.
func listItem(line string) (marker, body string, ok bool) {
	for _, prefix := range []string{"* ", "- ", bulletMarker} {
		if strings.HasPrefix(line, prefix) {
			return bulletMarker, strings.TrimSpace(line[len(prefix):]), true
		}
	}

	digits := 0
	for digits < len(line) && line[digits] >= '0' && line[digits] <= '9' {
		digits++
	}
	if digits > 0 && digits <= 3 && strings.HasPrefix(line[digits:], ". ") {
		return line[:digits+2], strings.TrimSpace(line[digits+2:]), true
	}
	return "", "", false
}

// leadingIndent keeps nested lists nested, in steps of two cells.
func leadingIndent(line string) int {
	spaces := len(line) - len(strings.TrimLeft(line, " "))
	if spaces > 8 {
		spaces = 8
	}
	return spaces / 2 * 2
}

func tokenizeBoldWords(line string) []markdownToken {
	var tokens []markdownToken
	bold := false
	space := false

	for len(line) > 0 {
		idx := strings.Index(line, "**")
		segment := line
		if idx >= 0 {
			segment = line[:idx]
		}
		for i, word := range strings.Fields(segment) {
			lead := i > 0 || (len(tokens) > 0 && (space || strings.HasPrefix(segment, " ")))
			tokens = append(tokens, markdownToken{text: word, bold: bold, space: lead})
		}
		space = strings.HasSuffix(segment, " ") || (segment == "" && space)
		if idx < 0 {
			break
		}
		bold = !bold
		line = line[idx+2:]
	}

	return tokens
}

// wrapTokens lays tokens out on lines of at most width cells. A token wider
// than the remaining space fills it and carries on to the next line, so text
// without spaces (Chinese) still wraps cleanly.
func wrapTokens(tokens []markdownToken, width int) []string {
	if width <= 0 {
		width = 1
	}

	var lines []string
	var lineTokens []markdownToken
	lineWidth := 0

	flush := func() {
		if len(lineTokens) == 0 {
			lines = append(lines, "")
			return
		}
		lines = append(lines, renderTokenLine(lineTokens))
		lineTokens = nil
		lineWidth = 0
	}

	for _, token := range tokens {
		text := token.text
		sep := 0
		if token.space && lineWidth > 0 {
			sep = 1
		}

		for text != "" {
			textWidth := runewidth.StringWidth(text)
			if lineWidth+sep+textWidth <= width {
				lineTokens = append(lineTokens, markdownToken{text: text, bold: token.bold, space: sep == 1})
				lineWidth += sep + textWidth
				break
			}

			avail := width - lineWidth - sep
			if textWidth <= width && lineWidth > 0 && isLatin(text) {
				flush()
				sep = 0
				continue
			}

			head := utils.TrimToWidth(text, avail)
			if head == "" {
				if lineWidth > 0 {
					flush()
					sep = 0
					continue
				}
				_, size := utf8.DecodeRuneInString(text)
				head = text[:size]
			}
			lineTokens = append(lineTokens, markdownToken{text: head, bold: token.bold, space: sep == 1})
			text = text[len(head):]
			flush()
			sep = 0
		}
	}

	if len(lineTokens) > 0 {
		flush()
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// isLatin reports whether text has no double-width runes, i.e. it should
// move to the next line whole rather than being split.
func isLatin(text string) bool {
	return runewidth.StringWidth(text) == utf8.RuneCountInString(text)
}

func renderTokenLine(tokens []markdownToken) string {
	var sb strings.Builder
	for i, token := range tokens {
		if i > 0 && token.space {
			sb.WriteString(textStyle.Render(" "))
		}
		if token.bold {
			sb.WriteString(boldStyle.Render(token.text))
		} else {
			sb.WriteString(textStyle.Render(token.text))
		}
	}
	return sb.String()
}

func renderTable(rows [][]string, header bool, width int) []string {
	if width <= 0 || len(rows) == 0 {
		return []string{""}
	}

	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	for i := range rows {
		if len(rows[i]) < cols {
			padded := make([]string, cols)
			copy(padded, rows[i])
			rows[i] = padded
		}
	}

	colWidths := make([]int, cols)
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}

	maxContent := width - (3*cols + 1)
	if maxContent < cols {
		var rendered []string
		for _, row := range rows {
			rendered = append(rendered, textStyle.Render(utils.TrimToWidth(strings.Join(row, " | "), width)))
		}
		return rendered
	}

	colWidths = fitColumnWidths(colWidths, maxContent)

	var rendered []string
	for rowIndex, row := range rows {
		line := utils.TrimToWidth(buildTableLine(row, colWidths), width)
		if header && rowIndex == 0 {
			rendered = append(rendered, boldStyle.Render(line))
			rendered = append(rendered, textStyle.Render(buildTableSeparator(colWidths)))
			continue
		}
		rendered = append(rendered, textStyle.Render(line))
	}
	return rendered
}

func buildTableLine(row []string, widths []int) string {
	var sb strings.Builder
	sb.WriteString("|")
	for i, cell := range row {
		if i >= len(widths) {
			break
		}
		sb.WriteString(" ")
		sb.WriteString(utils.PadPlain(utils.TrimToWidth(cell, widths[i]), widths[i]))
		sb.WriteString(" |")
	}
	return sb.String()
}

func buildTableSeparator(widths []int) string {
	var sb strings.Builder
	sb.WriteString("|")
	for _, w := range widths {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", max(w, 1)))
		sb.WriteString(" |")
	}
	return sb.String()
}

// fitColumnWidths shrinks the widest column until the row fits.
func fitColumnWidths(widths []int, maxContent int) []int {
	out := make([]int, len(widths))
	total := 0
	for i, w := range widths {
		out[i] = max(w, 1)
		total += out[i]
	}

	for total > maxContent {
		widest := 0
		for i, w := range out {
			if w > out[widest] {
				widest = i
			}
		}
		if out[widest] <= 1 {
			break
		}
		out[widest]--
		total--
	}
	return out
}

func renderCodeLine(line string, width int) []string {
	if width <= 0 {
		return []string{line}
	}
	if line == "" {
		return []string{codeStyle.Render(utils.PadPlain("", width))}
	}

	var lines []string
	for line != "" {
		part := utils.TrimToWidth(line, width)
		if part == "" {
			_, size := utf8.DecodeRuneInString(line)
			part = line[:size]
		}
		lines = append(lines, codeStyle.Render(utils.PadPlain(part, width)))
		line = line[len(part):]
	}
	return lines
}

func isTableRow(line string) bool {
	if strings.Count(line, "|") < 2 {
		return false
	}
	cells := splitTableRow(line)
	if len(cells) < 2 {
		return false
	}
	for _, cell := range cells {
		if cell != "" {
			return true
		}
	}
	return false
}

func splitTableRow(line string) []string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")
	parts := strings.Split(trimmed, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func isSeparatorRow(cells []string) bool {
	if len(cells) == 0 {
		return false
	}
	for _, cell := range cells {
		clean := strings.Trim(strings.TrimSpace(cell), ":")
		if len(clean) < 3 || strings.Trim(clean, "-") != "" {
			return false
		}
	}
	return true
}

// sanitizeContent drops control characters a model reply could smuggle into
// the terminal.
func sanitizeContent(content string) string {
	if content == "" {
		return content
	}
	var sb strings.Builder
	sb.Grow(len(content))
	for _, r := range content {
		if r == '\n' || r == '\t' {
			sb.WriteRune(r)
			continue
		}
		if r < 0x20 || r == 0x7f {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
