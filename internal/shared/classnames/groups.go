package classnames

import "strings"

var keywordGroups = map[string]string{
	"block": "display", "inline-block": "display", "inline": "display",
	"flex": "display", "inline-flex": "display", "grid": "display",
	"inline-grid": "display", "table": "display", "contents": "display",
	"flow-root": "display", "hidden": "display",

	"static": "position", "fixed": "position", "absolute": "position",
	"relative": "position", "sticky": "position",

	"visible": "visibility", "invisible": "visibility", "collapse": "visibility",

	"rounded": "rounded", "shadow": "shadow", "border": "border-w",
	"underline": "text-decoration", "line-through": "text-decoration", "no-underline": "text-decoration",
	"uppercase": "text-transform", "lowercase": "text-transform", "capitalize": "text-transform", "normal-case": "text-transform",
	"truncate": "text-overflow", "text-ellipsis": "text-overflow", "text-clip": "text-overflow",
	"text-wrap": "text-wrap", "text-nowrap": "text-wrap", "text-balance": "text-wrap", "text-pretty": "text-wrap",
}

// prefixGroups is matched in order; longer prefixes come first.
var prefixGroups = []struct {
	prefix string
	group  string
}{
	{"min-w-", "min-w"}, {"min-h-", "min-h"}, {"max-w-", "max-w"}, {"max-h-", "max-h"},
	{"size-", "size"}, {"w-", "w"}, {"h-", "h"},
	{"px-", "px"}, {"py-", "py"}, {"pt-", "pt"}, {"pr-", "pr"}, {"pb-", "pb"}, {"pl-", "pl"}, {"ps-", "ps"}, {"pe-", "pe"}, {"p-", "p"},
	{"mx-", "mx"}, {"my-", "my"}, {"mt-", "mt"}, {"mr-", "mr"}, {"mb-", "mb"}, {"ml-", "ml"}, {"ms-", "ms"}, {"me-", "me"}, {"m-", "m"},
	{"gap-x-", "gap-x"}, {"gap-y-", "gap-y"}, {"gap-", "gap"},
	{"inset-x-", "inset-x"}, {"inset-y-", "inset-y"}, {"inset-", "inset"}, {"top-", "top"}, {"right-", "right"}, {"bottom-", "bottom"}, {"left-", "left"},
	{"overflow-x-", "overflow-x"}, {"overflow-y-", "overflow-y"}, {"overflow-", "overflow"},
	{"items-", "align-items"}, {"self-", "align-self"},
	{"justify-items-", "justify-items"}, {"justify-self-", "justify-self"}, {"justify-", "justify-content"},
	{"leading-", "leading"}, {"tracking-", "tracking"},
	{"opacity-", "opacity"}, {"z-", "z"}, {"shadow-", "shadow"},
}

var conflictingGroups = map[string][]string{
	"p":          {"px", "py", "pt", "pr", "pb", "pl", "ps", "pe"},
	"px":         {"pr", "pl", "ps", "pe"},
	"py":         {"pt", "pb"},
	"m":          {"mx", "my", "mt", "mr", "mb", "ml", "ms", "me"},
	"mx":         {"mr", "ml", "ms", "me"},
	"my":         {"mt", "mb"},
	"gap":        {"gap-x", "gap-y"},
	"inset":      {"inset-x", "inset-y", "top", "right", "bottom", "left"},
	"inset-x":    {"left", "right"},
	"inset-y":    {"top", "bottom"},
	"size":       {"w", "h"},
	"overflow":   {"overflow-x", "overflow-y"},
	"rounded":    {"rounded-t", "rounded-r", "rounded-b", "rounded-l", "rounded-s", "rounded-e", "rounded-tl", "rounded-tr", "rounded-br", "rounded-bl"},
	"rounded-t":  {"rounded-tl", "rounded-tr"},
	"rounded-r":  {"rounded-tr", "rounded-br"},
	"rounded-b":  {"rounded-br", "rounded-bl"},
	"rounded-l":  {"rounded-tl", "rounded-bl"},
	"border-w":   {"border-w-t", "border-w-r", "border-w-b", "border-w-l", "border-w-x", "border-w-y", "border-w-s", "border-w-e"},
	"border-w-x": {"border-w-l", "border-w-r", "border-w-s", "border-w-e"},
	"border-w-y": {"border-w-t", "border-w-b"},
}

var fontSizes = map[string]bool{
	"xs": true, "sm": true, "base": true, "lg": true, "xl": true,
	"2xl": true, "3xl": true, "4xl": true, "5xl": true, "6xl": true,
	"7xl": true, "8xl": true, "9xl": true,
}

var textAlignments = map[string]bool{
	"left": true, "center": true, "right": true, "justify": true, "start": true, "end": true,
}

var fontWeights = map[string]bool{
	"thin": true, "extralight": true, "light": true, "normal": true, "medium": true,
	"semibold": true, "bold": true, "extrabold": true, "black": true,
}

var roundedSides = map[string]bool{
	"t": true, "r": true, "b": true, "l": true, "s": true, "e": true,
	"tl": true, "tr": true, "br": true, "bl": true,
}

var borderSides = map[string]bool{
	"t": true, "r": true, "b": true, "l": true, "x": true, "y": true, "s": true, "e": true,
}

var bgGroups = map[string]string{
	"auto": "bg-size", "cover": "bg-size", "contain": "bg-size",
	"repeat": "bg-repeat", "no-repeat": "bg-repeat", "repeat-x": "bg-repeat",
	"repeat-y": "bg-repeat", "repeat-round": "bg-repeat", "repeat-space": "bg-repeat",
	"fixed": "bg-attachment", "local": "bg-attachment", "scroll": "bg-attachment",
	"center": "bg-position", "top": "bg-position", "bottom": "bg-position",
	"left": "bg-position", "right": "bg-position", "left-top": "bg-position",
	"left-bottom": "bg-position", "right-top": "bg-position", "right-bottom": "bg-position",
	"none": "bg-image",
}

var borderStyles = map[string]bool{
	"solid": true, "dashed": true, "dotted": true, "double": true, "none": true,
}

// utilityGroup returns the conflict group of a Tailwind utility, or "" when
// the utility is not recognized.
func utilityGroup(utility string) string {
	if g, ok := keywordGroups[utility]; ok {
		return g
	}

	if rest, ok := strings.CutPrefix(utility, "text-"); ok {
		switch {
		case fontSizes[rest]:
			return "font-size"
		case textAlignments[rest]:
			return "text-align"
		default:
			return "text-color"
		}
	}
	if rest, ok := strings.CutPrefix(utility, "font-"); ok {
		if fontWeights[rest] {
			return "font-weight"
		}
		return "font-family"
	}
	if rest, ok := strings.CutPrefix(utility, "flex-"); ok {
		switch rest {
		case "row", "row-reverse", "col", "col-reverse":
			return "flex-direction"
		case "wrap", "wrap-reverse", "nowrap":
			return "flex-wrap"
		default:
			return "flex"
		}
	}
	if rest, ok := strings.CutPrefix(utility, "rounded-"); ok {
		side, _, _ := strings.Cut(rest, "-")
		if roundedSides[side] {
			return "rounded-" + side
		}
		return "rounded"
	}
	if rest, ok := strings.CutPrefix(utility, "border-"); ok {
		return borderGroup(rest)
	}
	if rest, ok := strings.CutPrefix(utility, "bg-"); ok {
		return bgGroup(rest)
	}

	for _, pg := range prefixGroups {
		if strings.HasPrefix(utility, pg.prefix) {
			return pg.group
		}
	}
	return ""
}

// bgGroup separates background colours from the other bg-* utilities.
func bgGroup(rest string) string {
	if g, ok := bgGroups[rest]; ok {
		return g
	}
	switch {
	case strings.HasPrefix(rest, "gradient-"):
		return "bg-image"
	case strings.HasPrefix(rest, "clip-"):
		return "bg-clip"
	case strings.HasPrefix(rest, "origin-"):
		return "bg-origin"
	case strings.HasPrefix(rest, "blend-"):
		return "bg-blend"
	}
	return "bg-color"
}

func borderGroup(rest string) string {
	if borderStyles[rest] {
		return "border-style"
	}
	if isWidth(rest) {
		return "border-w"
	}
	side, tail, hasTail := strings.Cut(rest, "-")
	if borderSides[side] && (!hasTail || isWidth(tail)) {
		return "border-w-" + side
	}
	return "border-color"
}

func isWidth(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
