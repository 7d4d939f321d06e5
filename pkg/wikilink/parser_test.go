package wikilink

import (
	"reflect"
	"testing"
)

func TestExtractReferences(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "two references",
			content: "See [[Alpha]] and [[Beta]] docs",
			want:    []string{"Alpha", "Beta"},
		},
		{
			name:    "no references",
			content: "no links here",
			want:    []string{},
		},
		{
			name:    "empty content",
			content: "",
			want:    []string{},
		},
		{
			name:    "title with spaces",
			content: "refer to [[Project Plan]] before the meeting",
			want:    []string{"Project Plan"},
		},
		{
			name:    "duplicates kept in order",
			content: "[[Alpha]] then [[Beta]] then [[Alpha]] again",
			want:    []string{"Alpha", "Beta", "Alpha"},
		},
		{
			name:    "first closing bracket wins",
			content: "[[Alpha]] trailing ]]",
			want:    []string{"Alpha"},
		},
		{
			name:    "single bracket inside reference",
			content: "[[a]b]] rest",
			want:    []string{"a]b"},
		},
		{
			name:    "unclosed reference ignored",
			content: "dangling [[Alpha and nothing else",
			want:    []string{},
		},
		{
			name:    "empty brackets ignored",
			content: "empty [[]] marker",
			want:    []string{},
		},
		{
			name:    "adjacent references",
			content: "[[One]][[Two]]",
			want:    []string{"One", "Two"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractReferences(tt.content)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractReferences(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}
