package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var slugSamples = []string{
	"",
	"Hello, World!",
	"  leading and trailing  ",
	"Hello, World!  Foo",
	"Sunshine ECD Centre (Soweto)",
	"Crèche Él Niño",
	"a -- b",
	"---",
	"!!!",
	"   ",
	"under_score & co",
	"Tab\tand\nnewline",
	"no\u00a0break\u2003em\u3000ideographic",
	"MiXeD CaSe 123",
	"ΣΊΣΥΦΟΣ",
	"-already-a-slug-",
}

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "", expected: ""},
		{input: "Hello, World!", expected: "hello-world"},
		{input: "Hello, World!  Foo", expected: "hello-world-foo"},
		{input: "  leading and trailing  ", expected: "-leading-and-trailing-"},
		{input: "Sunshine ECD Centre (Soweto)", expected: "sunshine-ecd-centre-soweto"},
		{input: "Crèche Él Niño", expected: "crche-l-nio"},
		{input: "a -- b", expected: "a-b"},
		{input: "---", expected: "-"},
		{input: "!!!", expected: ""},
		{input: "   ", expected: "-"},
		{input: "under_score & co", expected: "under_score-co"},
		{input: "Tab\tand\nnewline", expected: "tab-and-newline"},
		{input: "no\u00a0break\u2003em\u3000ideographic", expected: "no-break-em-ideographic"},
		{input: "MiXeD CaSe 123", expected: "mixed-case-123"},
		{input: "ΣΊΣΥΦΟΣ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateSlug(tt.input))
		})
	}
}

func TestGenerateSlug_Idempotent(t *testing.T) {
	for _, s := range slugSamples {
		once := GenerateSlug(s)
		assert.Equal(t, once, GenerateSlug(once), "input %q", s)
	}
}

func TestFormatter_GenerateSlugTrimEdges(t *testing.T) {
	trimming := newFormatter(t, WithSlugTrimEdges(true))
	keeping := newFormatter(t)

	tests := []struct {
		input    string
		trimmed  string
		retained string
	}{
		{input: "  leading and trailing  ", trimmed: "leading-and-trailing", retained: "-leading-and-trailing-"},
		{input: "---", trimmed: "", retained: "-"},
		{input: "(Soweto) Branch!", trimmed: "soweto-branch", retained: "soweto-branch"},
		{input: "Hello, World!", trimmed: "hello-world", retained: "hello-world"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.trimmed, trimming.GenerateSlug(tt.input))
			assert.Equal(t, tt.retained, keeping.GenerateSlug(tt.input))
		})
	}

	for _, s := range slugSamples {
		once := trimming.GenerateSlug(s)
		assert.Equal(t, once, trimming.GenerateSlug(once), "input %q", s)
	}
}
