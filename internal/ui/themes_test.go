package ui

import "testing"

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme("dark") })

	tests := []struct {
		name     string
		theme    string
		wantName string
	}{
		{"dark theme", "dark", "dark"},
		{"light theme", "light", "light"},
		{"no color theme", "none", "none"},
		{"unknown falls back to dark", "solarized", "dark"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetTheme(tt.theme)
			if got := GetCurrentTheme().Name; got != tt.wantName {
				t.Errorf("GetCurrentTheme().Name = %q, want %q", got, tt.wantName)
			}
		})
	}
}

func TestInitTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme("dark") })

	t.Run("noColor flag disables colors", func(t *testing.T) {
		InitTheme(true)
		if GetCurrentTheme().Name != "none" {
			t.Error("InitTheme(true) should select the no-color theme")
		}
		if ColorGreen() != "" || ColorReset() != "" {
			t.Error("no-color theme should have empty escape codes")
		}
	})

	t.Run("NO_COLOR environment disables colors", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		InitTheme(false)
		if GetCurrentTheme().Name != "none" {
			t.Error("NO_COLOR should select the no-color theme")
		}
	})
}

func TestGetCurrentTUITheme(t *testing.T) {
	t.Cleanup(func() { SetTheme("dark") })

	SetTheme("none")
	if GetCurrentTUITheme() != NoColorTUITheme {
		t.Error("no-color theme should map to NoColorTUITheme")
	}

	SetTheme("dark")
	if GetCurrentTUITheme() != DarkTUITheme {
		t.Error("dark theme should map to DarkTUITheme")
	}
}
