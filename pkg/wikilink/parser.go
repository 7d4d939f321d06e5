// Package wikilink extracts [[Title]] reference markers from note content.
package wikilink

import "regexp"

// A reference opens with [[ and is closed by the first following ]].
// The text between is taken literally: no nesting, no escaping. The
// lazy quantifier is what gives the "first ]] wins" behavior.
var referencePattern = regexp.MustCompile(`\[\[(.+?)\]\]`)

// ExtractReferences returns the referenced titles in order of first
// appearance. Duplicates are kept; resolution decides what to do with
// them. Empty content yields an empty slice, never nil handling at the
// call site.
func ExtractReferences(content string) []string {
	refs := make([]string, 0)
	if content == "" {
		return refs
	}
	for _, match := range referencePattern.FindAllStringSubmatch(content, -1) {
		refs = append(refs, match[1])
	}
	return refs
}
