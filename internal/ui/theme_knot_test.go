package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
)

func TestUseKnotTheme(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	UseKnotTheme(0.75)
	UseKnotTheme(0.5)
	UseKnotTheme(-1)

	want := theme.Size(theme.SizeNameInlineIcon) * 0.5
	if got := knotSize(); got != want {
		t.Fatalf("knotSize() = %v, want %v", got, want)
	}
	kt, ok := a.Settings().Theme().(knotTheme)
	if !ok {
		t.Fatalf("theme is %T, want knotTheme", a.Settings().Theme())
	}
	if _, nested := kt.Theme.(knotTheme); nested {
		t.Fatal("knot theme wrapped itself")
	}
}
