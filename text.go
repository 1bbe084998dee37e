package rgui

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TextMeasurer reports the advance width of a string drawn at a font size.
// Backends that rasterize text implement it so layout code can fit strings
// into widgets.
type TextMeasurer interface {
	MeasureText(text string, size float64) float64
}

// MonoMeasurer approximates every rune as Advance * size wide.
type MonoMeasurer struct {
	Advance float64
}

// DefaultMeasurer suits the built-in 8x8 bitmap font.
var DefaultMeasurer TextMeasurer = MonoMeasurer{Advance: 1}

func (m MonoMeasurer) MeasureText(text string, size float64) float64 {
	return float64(utf8.RuneCountInString(text)) * m.Advance * size
}

// TextWrapMode specifies how text should be wrapped.
type TextWrapMode int

const (
	// WrapModeWord wraps at word boundaries (default for Latin text).
	WrapModeWord TextWrapMode = iota
	// WrapModeChar wraps at character boundaries (for CJK or dense text).
	WrapModeChar
	// WrapModeAuto detects text type and chooses appropriate mode.
	WrapModeAuto
)

// WrapText splits text into lines no wider than maxWidth. A single word
// wider than maxWidth gets a line of its own.
func WrapText(m TextMeasurer, text string, size, maxWidth float64, mode TextWrapMode) []string {
	if maxWidth <= 0 {
		return []string{text}
	}
	if mode == WrapModeAuto {
		if containsCJK(text) {
			mode = WrapModeChar
		} else {
			mode = WrapModeWord
		}
	}
	if mode == WrapModeChar {
		return wrapByChar(m, text, size, maxWidth)
	}
	return wrapByWord(m, text, size, maxWidth)
}

func wrapByWord(m TextMeasurer, text string, size, maxWidth float64) []string {
	var lines []string
	var line string
	for _, word := range strings.Fields(text) {
		next := word
		if line != "" {
			next = line + " " + word
		}
		if line != "" && m.MeasureText(next, size) > maxWidth {
			lines = append(lines, line)
			line = word
			continue
		}
		line = next
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

func wrapByChar(m TextMeasurer, text string, size, maxWidth float64) []string {
	var lines []string
	var line []rune
	for _, r := range text {
		next := append(line, r)
		if len(line) > 0 && m.MeasureText(string(next), size) > maxWidth {
			lines = append(lines, string(line))
			line = []rune{r}
			continue
		}
		line = next
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines
}

func containsCJK(text string) bool {
	for _, r := range text {
		if unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul) {
			return true
		}
	}
	return false
}

// TruncateText shortens text to fit maxWidth, ending it with "..".
func TruncateText(m TextMeasurer, text string, size, maxWidth float64) string {
	return TruncateTextWithSuffix(m, text, size, maxWidth, "..")
}

// TruncateTextWithSuffix shortens text rune by rune until it and suffix fit
// maxWidth. Text that already fits is returned unchanged; if nothing fits,
// the result is empty.
func TruncateTextWithSuffix(m TextMeasurer, text string, size, maxWidth float64, suffix string) string {
	if m.MeasureText(text, size) <= maxWidth {
		return text
	}
	target := maxWidth - m.MeasureText(suffix, size)
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if m.MeasureText(string(runes), size) <= target {
			return string(runes) + suffix
		}
	}
	if target >= 0 {
		return suffix
	}
	return ""
}
