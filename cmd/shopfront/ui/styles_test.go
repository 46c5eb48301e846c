package ui

import (
	"strings"
	"testing"
)

func TestThemeByName(t *testing.T) {
	if !ThemeByName("dark").IsDark {
		t.Error("dark theme should be dark")
	}
	if ThemeByName("light").IsDark {
		t.Error("light theme should be light")
	}
}

func TestDetectTheme(t *testing.T) {
	t.Run("COLORFGBG dark background", func(t *testing.T) {
		t.Setenv("COLORFGBG", "15;0")
		t.Setenv("SHOPFRONT_DARK_MODE", "")
		if !DetectTheme().IsDark {
			t.Error("expected dark theme for background index 0")
		}
	})

	t.Run("COLORFGBG light background", func(t *testing.T) {
		t.Setenv("COLORFGBG", "0;15")
		t.Setenv("SHOPFRONT_DARK_MODE", "")
		if DetectTheme().IsDark {
			t.Error("expected light theme for background index 15")
		}
	})

	t.Run("SHOPFRONT_DARK_MODE forces dark", func(t *testing.T) {
		t.Setenv("COLORFGBG", "")
		t.Setenv("SHOPFRONT_DARK_MODE", "1")
		if !DetectTheme().IsDark {
			t.Error("expected dark theme")
		}
	})
}

func TestRenderDivider(t *testing.T) {
	s := NewStyles(LightTheme())
	out := s.RenderDivider(10)
	if !strings.Contains(out, "─") {
		t.Errorf("expected divider runes, got %q", out)
	}
}
