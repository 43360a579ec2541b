package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tokenTexts(text string) []string {
	var out []string
	for _, t := range tokenize(text) {
		out = append(out, t.text)
	}
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"plain words", "Python and Go", []string{"Python", "and", "Go"}},
		{"symbols stay inside words", "C++ C# Node.js", []string{"C++", "C#", "Node.js"}},
		{"leading dot kept before letters", "using .NET daily", []string{"using", ".NET", "daily"}},
		{"trailing period peeled", "We use Node.js.", []string{"We", "use", "Node.js", "."}},
		{"separators split", "CI/CD,Docker;K8s", []string{"CI", "/", "CD", ",", "Docker", ";", "K8s"}},
		{"parentheses split", "languages (Java, Kotlin)", []string{"languages", "(", "Java", ",", "Kotlin", ")"}},
		{"colon peeled", "Skills: Go", []string{"Skills", ":", "Go"}},
		{"possessive split", "Python's ecosystem", []string{"Python", "'s", "ecosystem"}},
		{"hyphen kept", "front-end work", []string{"front-end", "work"}},
		{"unicode whitespace", "Go\u2003Rust", []string{"Go", "Rust"}},
		{"empty", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tokenTexts(tt.input))
		})
	}
}

func TestTokenize_Offsets(t *testing.T) {
	text := "Built (Go) APIs"
	for _, tok := range tokenize(text) {
		assert.Equal(t, tok.text, text[tok.start:tok.end])
	}
}
