package ui

import (
	"strings"
	"testing"
)

func TestSimpleTableView(t *testing.T) {
	table := NewSimpleTable("Products", []string{"ID", "Name"})
	table.AddRow("1", "Mug")
	table.AddRow("2", "Pen")

	out := table.View(NewStyles(LightTheme()))
	for _, want := range []string{"Products", "ID", "Name", "Mug", "Pen"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q", want)
		}
	}
}

func TestSimpleTableEmptyRendersNothing(t *testing.T) {
	table := NewSimpleTable("Products", []string{"ID", "Name"})
	if out := table.View(NewStyles(LightTheme())); out != "" {
		t.Errorf("empty table should render nothing, got %q", out)
	}
}
