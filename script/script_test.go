package script

import (
	"testing"
)

func TestCharDirection(t *testing.T) {
	tests := []struct {
		name string
		char rune
		want Direction
	}{
		{"Arabic alif", 'ا', RTL},
		{"Arabic baa", 'ب', RTL},
		{"Arabic lam", 'ل', RTL},
		{"Hebrew alef", 'א', RTL},
		{"Latin A", 'A', LTR},
		{"Latin z", 'z', LTR},
		{"Space", ' ', Neutral},
		{"Latin digit", '7', Neutral},
		{"Period", '.', Neutral},
		{"Comma", ',', Neutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CharDirection(tt.char)
			if got != tt.want {
				t.Errorf("CharDirection(%q U+%04X) = %v, want %v",
					tt.char, tt.char, got, tt.want)
			}
		})
	}
}

func TestDetectDirection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Direction
	}{
		{"empty", "", Neutral},
		{"arabic sentence", "الفصل الأول في التاريخ", RTL},
		{"latin sentence", "Chapter one of history", LTR},
		{"digits only", "12345", Neutral},
		{"punctuation only", "...!?", Neutral},
		{"mostly arabic with latin word", "مدينة Cairo القديمة", RTL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectDirection(tt.text); got != tt.want {
				t.Errorf("DetectDirection(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestLanguageRTL(t *testing.T) {
	if !Arabic.RTL() {
		t.Error("Arabic should be RTL")
	}
	if !ArabicEnglish.RTL() {
		t.Error("ArabicEnglish should be RTL")
	}
	if English.RTL() {
		t.Error("English should not be RTL")
	}
}

func TestLetterRatio(t *testing.T) {
	tests := []struct {
		name string
		text string
		lang Language
		min  float64
		max  float64
	}{
		{"empty", "", Arabic, 0, 0},
		{"all arabic", "باب", Arabic, 0.99, 1.0},
		{"arabic with spaces", "باب الكتاب", Arabic, 0.8, 0.95},
		{"no arabic", "hello world", Arabic, 0, 0},
		{"latin for english", "hello", English, 0.99, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LetterRatio(tt.text, tt.lang)
			if got < tt.min || got > tt.max {
				t.Errorf("LetterRatio(%q, %s) = %f, want in [%f, %f]",
					tt.text, tt.lang, got, tt.min, tt.max)
			}
		})
	}
}

func TestIsTashkeel(t *testing.T) {
	if !IsTashkeel('َ') { // fatha
		t.Error("fatha should be tashkeel")
	}
	if !IsTashkeel('ّ') { // shadda
		t.Error("shadda should be tashkeel")
	}
	if IsTashkeel('ب') {
		t.Error("baa is not tashkeel")
	}
}

func TestIsArabicDigit(t *testing.T) {
	if !IsArabicDigit('٣') {
		t.Error("٣ should be an Arabic-Indic digit")
	}
	if IsArabicDigit('3') {
		t.Error("3 is a Latin digit")
	}
}

func TestMixedContent(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"pure arabic", "الفصل الأول", false},
		{"pure latin", "plain english", false},
		{"arabic plus latin", "كتاب book", true},
		{"email", "contact: info@example.com", true},
		{"url", "زوروا https://example.com", true},
		{"www", "www.example.org", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MixedContent(tt.text); got != tt.want {
				t.Errorf("MixedContent(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
