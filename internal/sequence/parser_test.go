package sequence

import "testing"

func TestParserRecognizesLabel(t *testing.T) {
	p := NewParser("TRCP")

	tests := []struct {
		name  string
		text  string
		label int
	}{
		{"simple", "TRCP 7: thou shalt plead", 7},
		{"multi digit", "TRCP 142: a longer rule", 142},
		{"body contains numbers", "TRCP 3: see rule 99 for details", 3},
		{"extra spacing", "TRCP  12: padded", 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, ok := p.Parse(tt.text)
			if !ok {
				t.Fatalf("expected label in %q", tt.text)
			}
			if label != tt.label {
				t.Fatalf("expected label %d, got %d", tt.label, label)
			}
		})
	}
}

func TestParserIsTotal(t *testing.T) {
	p := NewParser("TRCP")

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"no prefix", "I love cats"},
		{"prefix not at start", "see TRCP 7: elsewhere"},
		{"prefix without number", "TRCP seven: spelled out"},
		{"prefix without colon", "TRCP 7 is my favorite"},
		{"negative number", "TRCP -3: nope"},
		{"random bytes", "\x00\xff\xfe garbage"},
		{"number elsewhere in body", "today 7: things happened"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if label, ok := p.Parse(tt.text); ok {
				t.Fatalf("expected no label in %q, got %d", tt.text, label)
			}
		})
	}
}

func TestParserIdempotent(t *testing.T) {
	p := NewParser("TRCP")
	const text = "TRCP 21: same answer every time"

	l1, ok1 := p.Parse(text)
	l2, ok2 := p.Parse(text)
	if l1 != l2 || ok1 != ok2 {
		t.Fatalf("parse not idempotent: (%d,%v) vs (%d,%v)", l1, ok1, l2, ok2)
	}
}

func TestParserQuotesPrefix(t *testing.T) {
	// A prefix containing regexp metacharacters must be matched literally.
	p := NewParser("Rule.1")
	if _, ok := p.Parse("RuleX1 4: sneaky"); ok {
		t.Fatal("metacharacter in prefix matched literally-different text")
	}
	if label, ok := p.Parse("Rule.1 4: proper"); !ok || label != 4 {
		t.Fatalf("expected label 4, got %d (ok=%v)", label, ok)
	}
}

func TestParserOverflowingLabel(t *testing.T) {
	p := NewParser("TRCP")
	if label, ok := p.Parse("TRCP 99999999999999999999: huge"); ok {
		t.Fatalf("expected overflowing label to be unrecognized, got %d", label)
	}
}
