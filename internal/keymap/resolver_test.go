//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionNextPage, []string{"right", "l"}, "Next page", "flip"},
		{ActionPrevPage, []string{"left", "h"}, "Previous page", "flip"},
	}

	r := NewResolver(bindings)

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"right", ActionNextPage},
		{"l", ActionNextPage},
		{"h", ActionPrevPage},
		{"z", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			result := r.Resolve(tt.key)
			if result != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, result, tt.expected)
			}
		})
	}
}

func TestResolver_FirstContextWins(t *testing.T) {
	r := ForContexts("scroll", "flip")

	// "g" is first page in flip but unbound in scroll, "p" is prev section in scroll.
	if action := r.Resolve("g"); action != ActionFirstPage {
		t.Errorf("Resolve('g') = %q, want %q", action, ActionFirstPage)
	}
	if action := r.Resolve("p"); action != ActionPrevSection {
		t.Errorf("Resolve('p') = %q, want %q", action, ActionPrevSection)
	}

	dup := NewResolver([]Binding{
		{ActionNextSection, []string{"n"}, "Next section", "scroll"},
		{ActionNextPage, []string{"n"}, "Next page", "flip"},
	})
	if action := dup.Resolve("n"); action != ActionNextSection {
		t.Errorf("Resolve('n') = %q, want %q", action, ActionNextSection)
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver(Bindings)

	quitKeys := r.KeysFor(ActionQuit)
	if !slices.Contains(quitKeys, "q") || !slices.Contains(quitKeys, "ctrl+c") {
		t.Errorf("KeysFor(ActionQuit) = %v, expected to contain 'q' and 'ctrl+c'", quitKeys)
	}
	if keys := r.KeysFor(Action("unknown")); keys != nil {
		t.Errorf("KeysFor(unknown) = %v, want nil", keys)
	}
}

func TestResolver_DeduplicatesKeys(t *testing.T) {
	bindings := []Binding{
		{ActionRemoveAttach, []string{"x", "delete"}, "Remove", "media"},
		{ActionRemoveAttach, []string{"x"}, "Remove", "flip"},
	}

	keys := NewResolver(bindings).KeysFor(ActionRemoveAttach)
	if len(keys) != 2 {
		t.Errorf("KeysFor = %v, want 2 unique keys", keys)
	}
}

func TestDedupe(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"no duplicates", []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"with duplicates", []string{"a", "b", "a", "c", "b"}, []string{"a", "b", "c"}},
		{"empty slice", []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := dedupe(tt.input)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("dedupe(%v) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}
