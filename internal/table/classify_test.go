package table

import "testing"

func TestIsSeparatorLine(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"|---|---|", true},
		{"|---+---|", true},
		{"  |-----|  ", true},
		{"| --- |", true},
		{"|-", true},
		{"|a|b|", false},
		{"|---|b|", false},
		{"|   |   |", false},
		{"---", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsSeparatorLine(tt.input); got != tt.want {
			t.Errorf("IsSeparatorLine(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsTableLine(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"| a | b |", true},
		{"| a", true},
		{"\t| a |", true},
		{"  |", true},
		{"a | b", false},
		{"", false},
		{"* heading", false},
	}

	for _, tt := range tests {
		if got := IsTableLine(tt.input); got != tt.want {
			t.Errorf("IsTableLine(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsTableRow(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"| a |", true},
		{"  | a |  ", true},
		{"||", true},
		{"| a", false},
		{"|", false},
		{"a |", false},
	}

	for _, tt := range tests {
		if got := IsTableRow(tt.input); got != tt.want {
			t.Errorf("IsTableRow(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIndent(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"| a |", ""},
		{"  | a |", "  "},
		{" \t| a |", " \t"},
		{"   ", "   "},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Indent(tt.input); got != tt.want {
			t.Errorf("Indent(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
