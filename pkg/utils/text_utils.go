package utils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// truncationMark 超出行数时追加在最后一行末尾
const truncationMark = "..."

// WrapText 在空格处把文本折成不超过 maxWidth 像素宽的多行
//
// 单词本身超宽时独占一行，不拆分。maxLines > 0 时最多返回 maxLines 行，
// 被截掉的内容在最后一行用 "..." 表示。
func WrapText(str string, face *text.GoTextFace, maxWidth float64, maxLines int) []string {
	return wrapWords(str, maxWidth, maxLines, func(s string) float64 {
		return MeasureText(s, face)
	})
}

func wrapWords(str string, maxWidth float64, maxLines int, measure func(string) float64) []string {
	words := strings.Fields(str)
	if len(words) == 0 || maxWidth <= 0 {
		return []string{str}
	}

	lines := make([]string, 0, 2)
	line := words[0]
	for _, w := range words[1:] {
		if next := line + " " + w; measure(next) <= maxWidth {
			line = next
			continue
		}
		lines = append(lines, line)
		line = w
	}
	lines = append(lines, line)

	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
		lines[maxLines-1] += truncationMark
	}
	return lines
}

// MeasureText 返回文本在 face 下的像素宽度，face 为 nil 时为 0
func MeasureText(str string, face *text.GoTextFace) float64 {
	if str == "" || face == nil {
		return 0
	}
	w, _ := text.Measure(str, face, 0)
	return w
}
