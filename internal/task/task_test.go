package task

import "testing"

func TestIsHeading(t *testing.T) {
	cases := []struct {
		input    string
		expected bool
	}{
		{"* Heading 1", true},
		{"  * Heading 2", true},
		{"*** Deep", true},
		{"*bold* text", false},
		{"Normal text", false},
		{"", false},
	}

	for _, c := range cases {
		if got := IsHeading(c.input); got != c.expected {
			t.Errorf("IsHeading(%q) = %v, want %v", c.input, got, c.expected)
		}
	}
}

func TestRotate_NotHeading(t *testing.T) {
	input := "This is a normal line"

	if got := Rotate(input, false); got != input {
		t.Errorf("Rotate(%q) = %q, non-heading lines should not be modified", input, got)
	}
}

func TestRotate_Forward(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"* TODO Heading 1", "* DONE Heading 1"},
		{"* DONE Heading 1", "* Heading 1"},
		{"* Heading 1", "* TODO Heading 1"},
		{"  * TODO Heading 2", "  * DONE Heading 2"},
		{"  * DONE Heading 2", "  * Heading 2"},
		{"  * Heading 2", "  * TODO Heading 2"},
		{"** TODOLIST review", "** TODO TODOLIST review"},
		{"* TODO", "* DONE "},
	}

	for _, c := range cases {
		if got := Rotate(c.input, false); got != c.expected {
			t.Errorf("Rotate(%q, false) = %q, want %q", c.input, got, c.expected)
		}
	}
}

func TestRotate_Reverse(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"* TODO Heading 1", "* Heading 1"},
		{"* DONE Heading 1", "* TODO Heading 1"},
		{"* Heading 1", "* DONE Heading 1"},
		{"  * TODO Heading 2", "  * Heading 2"},
		{"  * DONE Heading 2", "  * TODO Heading 2"},
		{"  * Heading 2", "  * DONE Heading 2"},
	}

	for _, c := range cases {
		if got := Rotate(c.input, true); got != c.expected {
			t.Errorf("Rotate(%q, true) = %q, want %q", c.input, got, c.expected)
		}
	}
}

func TestRotate_FullCycle(t *testing.T) {
	line := "* Write report"

	for i := 0; i < 3; i++ {
		line = Rotate(line, false)
	}

	if line != "* Write report" {
		t.Errorf("three forward rotations gave %q, want the original heading", line)
	}
}

func TestState(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"* TODO a", StateTodo},
		{"* DONE a", StateDone},
		{"* a", ""},
		{"plain", ""},
	}

	for _, c := range cases {
		if got := State(c.input); got != c.expected {
			t.Errorf("State(%q) = %q, want %q", c.input, got, c.expected)
		}
	}
}
