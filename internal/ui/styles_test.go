package ui

import "testing"

func TestConfigureAccent(t *testing.T) {
	defer ConfigureAccent(defaultAccent)

	ConfigureAccent("#FF8800")
	if got := AccentColor(); got != "#FF8800" {
		t.Errorf("AccentColor = %q, want #FF8800", got)
	}

	// Empty keeps the current color.
	ConfigureAccent("")
	if got := AccentColor(); got != "#FF8800" {
		t.Errorf("AccentColor after empty = %q, want #FF8800", got)
	}
}

func TestMarkdownStyleFollowsAccent(t *testing.T) {
	defer ConfigureAccent(defaultAccent)

	ConfigureAccent("#FF8800")
	style := remindMarkdownStyle()
	if style.Heading.Color == nil || *style.Heading.Color != "#FF8800" {
		t.Errorf("heading color = %v, want the configured accent", style.Heading.Color)
	}
}
