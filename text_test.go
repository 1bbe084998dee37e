package rgui_test

import (
	"reflect"
	"testing"

	"github.com/go-theft-auto/rgui"
)

func TestWrapText(t *testing.T) {
	m := rgui.MonoMeasurer{Advance: 1}
	tests := []struct {
		name     string
		text     string
		maxWidth float64
		mode     rgui.TextWrapMode
		want     []string
	}{
		{"words", "the quick brown fox", 9, rgui.WrapModeWord, []string{"the quick", "brown fox"}},
		{"long word alone", "a extraordinary b", 5, rgui.WrapModeWord, []string{"a", "extraordinary", "b"}},
		{"chars", "abcdefg", 3, rgui.WrapModeChar, []string{"abc", "def", "g"}},
		{"auto cjk", "日本語です", 2, rgui.WrapModeAuto, []string{"日本", "語で", "す"}},
		{"no limit", "a b", 0, rgui.WrapModeWord, []string{"a b"}},
		{"blank", "   ", 4, rgui.WrapModeWord, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rgui.WrapText(m, tt.text, 1, tt.maxWidth, tt.mode)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WrapText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncateText(t *testing.T) {
	m := rgui.MonoMeasurer{Advance: 1}
	tests := []struct {
		text     string
		maxWidth float64
		want     string
	}{
		{"short", 10, "short"},
		{"truncated", 6, "trun.."},
		{"tiny", 2, ".."},
		{"none", 1, ""},
	}
	for _, tt := range tests {
		if got := rgui.TruncateText(m, tt.text, 1, tt.maxWidth); got != tt.want {
			t.Errorf("TruncateText(%q, %v) = %q, want %q", tt.text, tt.maxWidth, got, tt.want)
		}
	}
}
