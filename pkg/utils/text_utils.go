package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
//
// 换行规则:
//   - 在空白处断行，保留单词完整
//   - 单个单词（或没有空白的整段文本）超过最大宽度时按字符强制断行
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}
	if measureTextWidth(textStr, font) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	currentLine := ""
	for _, word := range strings.Fields(textStr) {
		testLine := word
		if currentLine != "" {
			testLine = currentLine + " " + word
		}
		if measureTextWidth(testLine, font) <= maxWidth {
			currentLine = testLine
			continue
		}

		if currentLine != "" {
			lines = append(lines, currentLine)
			currentLine = ""
		}
		if measureTextWidth(word, font) <= maxWidth {
			currentLine = word
			continue
		}

		// 单词本身超宽，按字符切分
		pieces := breakRunes(word, font, maxWidth)
		lines = append(lines, pieces[:len(pieces)-1]...)
		currentLine = pieces[len(pieces)-1]
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}
	if len(lines) == 0 {
		lines = []string{textStr}
	}
	return lines
}

// breakRunes 按字符切分，每段不超过 maxWidth（单个字符超宽时独占一行）
func breakRunes(s string, font *text.GoTextFace, maxWidth float64) []string {
	var out []string
	current := ""
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		test := current + string(r)
		if current != "" && measureTextWidth(test, font) > maxWidth {
			out = append(out, current)
			current = string(r)
			continue
		}
		current = test
	}
	return append(out, current)
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}
	width, _ := text.Measure(textStr, font, 0)
	return width
}
