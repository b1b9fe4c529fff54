package repository

import "testing"

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain name", "Submersible Pump", "Submersible Pump"},
		{"percent", "HP-100%", `HP-100\%`},
		{"underscore", "HP_2000", `HP\_2000`},
		{"backslash", `HP\2000`, `HP\\2000`},
		{"mixed", `%_\`, `\%\_\\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeLike(tt.input); got != tt.want {
				t.Errorf("escapeLike(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
