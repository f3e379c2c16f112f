package normalize

import (
	"strings"
	"testing"

	"github.com/maktaba/kitab/script"
)

func TestLine(t *testing.T) {
	n := New(DefaultConfig(script.Arabic))

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"spaces unified", "كتاب   التاريخ\tالقديم", "كتاب التاريخ القديم"},
		{"nbsp unified", "كتاب التاريخ", "كتاب التاريخ"},
		{"dots collapse", "انتهى الفصل...", "انتهى الفصل…"},
		{"directional marks trimmed", "‏الفصل الأول‎", "الفصل الأول"},
		{"bom trimmed", "\uFEFFمقدمة", "مقدمة"},
		{"whitespace only", "   \t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Line(tt.in); got != tt.want {
				t.Errorf("Line(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLineFolding(t *testing.T) {
	n := New(Config{Language: script.Arabic, FoldLetters: true})
	if got := n.Line("أحمد إلى المستشفى"); got != "احمد الي المستشفي" {
		t.Errorf("folded line = %q", got)
	}
}

func TestLineStripDiacritics(t *testing.T) {
	n := New(Config{Language: script.Arabic, StripDiacritics: true})
	if got := n.Line("كَتَبَ"); got != "كتب" {
		t.Errorf("diacritic strip = %q, want %q", got, "كتب")
	}
}

func TestPage(t *testing.T) {
	n := New(DefaultConfig(script.Arabic))

	raw := "الفصل الأول\n\n\n12\nكان يا ما كان\n- 7 -\n...\n\nفي قديم الزمان\n"
	want := "الفصل الأول\n\nكان يا ما كان\n\nفي قديم الزمان"
	if got := n.Page(raw); got != want {
		t.Errorf("Page() = %q, want %q", got, want)
	}
}

func TestPageEmpty(t *testing.T) {
	n := New(DefaultConfig(script.Arabic))
	if got := n.Page(""); got != "" {
		t.Errorf("Page(\"\") = %q, want empty", got)
	}
}

func TestPageKeepNoiseLines(t *testing.T) {
	n := New(Config{Language: script.Arabic, KeepNoiseLines: true})
	got := n.Page("نص\n42\nنص آخر")
	if !strings.Contains(got, "42") {
		t.Errorf("noise line dropped despite KeepNoiseLines: %q", got)
	}
}

// Normalization must be a fixed point: cleaning already-clean text is a no-op.
func TestPageIdempotent(t *testing.T) {
	inputs := []string{
		"الفصل الأول\n\n\nكان يا ما كان...\n12\nوالسلام عليكم   ورحمة الله",
		"plain latin text\n\nwith two paragraphs",
		"",
		"٣\n٤\nنص حقيقي",
	}
	for _, cfg := range []Config{
		DefaultConfig(script.Arabic),
		{Language: script.Arabic, FoldLetters: true, StripDiacritics: true},
	} {
		n := New(cfg)
		for _, in := range inputs {
			once := n.Page(in)
			twice := n.Page(once)
			if once != twice {
				t.Errorf("not idempotent for %q: first %q, second %q", in, once, twice)
			}
		}
	}
}

func TestIsNoiseLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"", false},
		{"12", true},
		{"٣٤٥", true},
		{"- 7 -", true},
		{"...", true},
		{"*", true},
		{"الفصل", false},
		{"chapter 3", false},
		{"ص 12", false},
	}
	for _, tt := range tests {
		if got := IsNoiseLine(tt.line); got != tt.want {
			t.Errorf("IsNoiseLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestReshape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"isolated alef", "ا", "ﺍ"},
		{"muhammad", "محمد", "ﻣﺤﻤﺪ"},
		{"lam alef isolated", "لا", "ﻻ"},
		{"lam alef after joiner", "كلا", "ﻛﻼ"},
		{"non arabic untouched", "hello 123", "hello 123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reshape(tt.in); got != tt.want {
				t.Errorf("Reshape(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Presentation forms are not base letters, so reshaping its own output must
// change nothing.
func TestReshapeFixedPoint(t *testing.T) {
	in := "الفصل الأول من كتاب التاريخ"
	once := Reshape(in)
	if twice := Reshape(once); twice != once {
		t.Errorf("Reshape not stable: %q then %q", once, twice)
	}
}

func TestReshapeTashkeelTransparent(t *testing.T) {
	// beh + shadda + yeh: the shadda must not break the beh-yeh join.
	got := Reshape("بّي")
	want := "ﺑّﻲ"
	if got != want {
		t.Errorf("Reshape with tashkeel = %q, want %q", got, want)
	}
}

func TestDisplay(t *testing.T) {
	// A pure-RTL line comes out as the reshaped text reversed.
	in := "اب"
	want := "ﺏﺍ"
	if got := Display(in); got != want {
		t.Errorf("Display(%q) = %q, want %q", in, got, want)
	}
}

func TestDisplayLeavesMixedContent(t *testing.T) {
	for _, in := range []string{
		"كتاب book",
		"info@example.com",
		"https://example.com/كتب",
		"plain latin",
		"",
	} {
		if got := Display(in); got != in {
			t.Errorf("Display(%q) = %q, want unchanged", in, got)
		}
	}
}
