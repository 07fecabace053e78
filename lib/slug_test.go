package lib

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Basic Product", "basic-product"},
		{"punctuation and digits", "Men's T-Shirt!! 2024", "mens-t-shirt-2024"},
		{"surrounding whitespace", "  Multi   Space  ", "multi-space"},
		{"already a slug", "already-a-slug", "already-a-slug"},
		{"hyphen runs collapse", "a -- b", "a-b"},
		{"leading trailing hyphens", "--trim me--", "trim-me"},
		{"unicode stripped", "Café au Lait", "caf-au-lait"},
		{"only invalid chars", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Men's T-Shirt!! 2024", "  Multi   Space  ", "Plain", "a--b--c"}
	for _, input := range inputs {
		once := Slugify(input)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}
