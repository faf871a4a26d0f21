package slug

import "testing"

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Electronics", "electronics"},
		{"spaces", "Apple iPhone 14", "apple-iphone-14"},
		{"punctuation", "Kids' Toys & Games", "kids-toys-games"},
		{"leading trailing", "  Home Decor  ", "home-decor"},
		{"already slugged", "mens-fashion", "mens-fashion"},
		{"symbol run", "50% -- off!!", "50-off"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Make(tt.input); got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
