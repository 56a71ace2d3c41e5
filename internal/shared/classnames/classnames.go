// Package classnames joins conditional CSS class lists and resolves
// conflicting Tailwind utilities so that the last one wins.
package classnames

import (
	"slices"
	"strings"
)

// Merge flattens inputs into one class string.
//
// Accepted inputs are string (split on whitespace), []string, []any,
// map[string]bool (keys whose value is true, in sorted order) and nil or
// bool, which contribute nothing. Other values are ignored.
//
// When two utilities belong to the same group under the same variants,
// only the later one is kept: Merge("px-2 py-1", "p-4") == "p-4".
func Merge(inputs ...any) string {
	classes := collect(nil, inputs)
	return strings.Join(resolve(classes), " ")
}

func collect(dst []string, inputs []any) []string {
	for _, in := range inputs {
		switch v := in.(type) {
		case string:
			dst = append(dst, strings.Fields(v)...)
		case []string:
			for _, s := range v {
				dst = append(dst, strings.Fields(s)...)
			}
		case []any:
			dst = collect(dst, v)
		case map[string]bool:
			keys := make([]string, 0, len(v))
			for k, on := range v {
				if on {
					keys = append(keys, k)
				}
			}
			slices.Sort(keys)
			for _, k := range keys {
				dst = append(dst, strings.Fields(k)...)
			}
		}
	}
	return dst
}

// resolve walks the classes backwards so that later classes claim their
// group first; earlier classes in a claimed group are dropped.
func resolve(classes []string) []string {
	claimed := make(map[string]struct{}, len(classes))
	kept := make([]string, 0, len(classes))

	for i := len(classes) - 1; i >= 0; i-- {
		class := classes[i]
		prefix, group := parse(class)

		key := prefix + group
		if _, ok := claimed[key]; ok {
			continue
		}
		claimed[key] = struct{}{}
		for _, c := range conflictingGroups[group] {
			claimed[prefix+c] = struct{}{}
		}
		kept = append(kept, class)
	}

	slices.Reverse(kept)
	return kept
}

// parse splits a class into its normalized variant prefix and utility group.
// Classes without a known group fall into a group of their own, so only
// exact duplicates collapse.
func parse(class string) (prefix, group string) {
	parts := strings.Split(class, ":")
	utility := parts[len(parts)-1]
	variants := parts[:len(parts)-1]
	slices.Sort(variants)

	important := strings.HasPrefix(utility, "!")
	utility = strings.TrimPrefix(utility, "!")

	var b strings.Builder
	for _, v := range variants {
		b.WriteString(v)
		b.WriteByte(':')
	}
	if important {
		b.WriteByte('!')
	}

	if g := utilityGroup(strings.TrimPrefix(utility, "-")); g != "" {
		return b.String(), g
	}
	return b.String(), "class:" + utility
}
