package classnames

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge_Inputs(t *testing.T) {
	tests := []struct {
		name     string
		inputs   []any
		expected string
	}{
		{name: "nothing", inputs: nil, expected: ""},
		{name: "single string", inputs: []any{"px-2 py-1"}, expected: "px-2 py-1"},
		{name: "extra whitespace", inputs: []any{"  block \n mt-2 "}, expected: "block mt-2"},
		{name: "slices", inputs: []any{[]string{"shadow", "text-white"}, []any{"underline", []any{"italic"}}}, expected: "shadow text-white underline italic"},
		{name: "conditional map", inputs: []any{"btn", map[string]bool{"btn-active": true, "btn-disabled": false, "a-first": true}}, expected: "btn a-first btn-active"},
		{name: "falsy values ignored", inputs: []any{nil, false, true, "card", 42}, expected: "card"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Merge(tt.inputs...))
		})
	}
}

func TestMerge_Conflicts(t *testing.T) {
	tests := []struct {
		name     string
		inputs   []any
		expected string
	}{
		{name: "same utility group", inputs: []any{"px-2 py-1 bg-red-500", "bg-primary"}, expected: "px-2 py-1 bg-primary"},
		{name: "shorthand overrides axes", inputs: []any{"px-2 py-1", "p-4"}, expected: "p-4"},
		{name: "axis keeps earlier shorthand", inputs: []any{"p-4", "px-2"}, expected: "p-4 px-2"},
		{name: "variants separate", inputs: []any{"bg-white hover:bg-gray-100", "bg-secondary"}, expected: "hover:bg-gray-100 bg-secondary"},
		{name: "variant order normalized", inputs: []any{"md:hover:p-2", "hover:md:p-4"}, expected: "hover:md:p-4"},
		{name: "font size vs text colour", inputs: []any{"text-sm text-gray-600", "text-lg"}, expected: "text-gray-600 text-lg"},
		{name: "text colour override", inputs: []any{"text-sm text-gray-600", "text-primary-foreground"}, expected: "text-sm text-primary-foreground"},
		{name: "display keywords", inputs: []any{"hidden md:block", "flex"}, expected: "md:block flex"},
		{name: "font weight vs family", inputs: []any{"font-sans font-medium", "font-bold"}, expected: "font-sans font-bold"},
		{name: "rounded clears sides", inputs: []any{"rounded-lg rounded-t-none", "rounded"}, expected: "rounded"},
		{name: "rounded side after shorthand", inputs: []any{"rounded-lg", "rounded-t-none"}, expected: "rounded-lg rounded-t-none"},
		{name: "border width vs colour", inputs: []any{"border border-gray-200", "border-2 border-primary"}, expected: "border-2 border-primary"},
		{name: "negative margin", inputs: []any{"-mt-2", "mt-4"}, expected: "mt-4"},
		{name: "important kept apart", inputs: []any{"!p-2", "p-4"}, expected: "!p-2 p-4"},
		{name: "unknown classes only dedupe", inputs: []any{"card card-body", "card"}, expected: "card-body card"},
		{name: "size clears width and height", inputs: []any{"w-4 h-4", "size-8"}, expected: "size-8"},
		{name: "inset axes are independent", inputs: []any{"inset-x-0 inset-y-0"}, expected: "inset-x-0 inset-y-0"},
		{name: "inset axis keeps other sides", inputs: []any{"top-0 inset-x-0"}, expected: "top-0 inset-x-0"},
		{name: "inset axis clears its sides", inputs: []any{"left-2 right-2 top-0", "inset-x-0"}, expected: "top-0 inset-x-0"},
		{name: "inset clears axes", inputs: []any{"inset-x-0 top-2", "inset-4"}, expected: "inset-4"},
		{name: "background colour vs size", inputs: []any{"bg-primary bg-cover"}, expected: "bg-primary bg-cover"},
		{name: "background repeat and position", inputs: []any{"bg-no-repeat bg-center bg-white", "bg-repeat-x"}, expected: "bg-center bg-white bg-repeat-x"},
		{name: "background image", inputs: []any{"bg-gradient-to-r bg-primary", "bg-none"}, expected: "bg-primary bg-none"},
		{name: "justify content vs items", inputs: []any{"justify-between justify-items-center"}, expected: "justify-between justify-items-center"},
		{name: "justify self override", inputs: []any{"justify-self-start justify-end", "justify-self-end"}, expected: "justify-end justify-self-end"},
		{name: "text colour vs overflow", inputs: []any{"text-primary text-ellipsis"}, expected: "text-primary text-ellipsis"},
		{name: "truncate vs text-clip", inputs: []any{"truncate text-primary", "text-clip"}, expected: "text-primary text-clip"},
		{name: "text wrap keyword", inputs: []any{"text-wrap text-sm", "text-nowrap"}, expected: "text-sm text-nowrap"},
		{name: "border axis clears sides", inputs: []any{"border-l-4 border-x-2"}, expected: "border-x-2"},
		{name: "border axis keeps other axis", inputs: []any{"border-t-2 border-l-4", "border-y"}, expected: "border-l-4 border-y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Merge(tt.inputs...))
		})
	}
}
