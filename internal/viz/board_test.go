package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/sortviz/internal/anim"
	"github.com/san-kum/sortviz/internal/stage"
)

func TestBlend(t *testing.T) {
	tests := []struct {
		t    float64
		want string
	}{
		{0, "#000000"},
		{1, "#ffffff"},
		{-1, "#000000"},
		{0.5, "#7f7f7f"},
	}
	for _, tt := range tests {
		got := Blend("#000000", "#ffffff", tt.t)
		if string(got) != tt.want {
			t.Errorf("Blend(%v) = %s, want %s", tt.t, got, tt.want)
		}
	}
}

func TestRenderBoardPlain(t *testing.T) {
	geo := stage.DefaultGeometry()
	geo.Pitch = 4
	geo.Baseline = 0
	geo.IndexRow = 1
	geo.PointerRow = 2
	st := stage.New(geo, stage.Timing{})
	st.AddSlot(anim.SlotElement, 3, "3")
	st.AddSlot(anim.SlotElement, 1, "1")
	st.AddSlot(anim.SlotIndex, 0, "0")
	st.AddSlot(anim.SlotIndex, 1, "1")
	st.AddSlot(anim.SlotPointer, 1, "i")
	st.Layout()

	out := Board{CellWidth: 3, Theme: ThemeMinimal, Plain: true}.Render(st)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 rows, got %d:\n%s", len(lines), out)
	}
	if lines[0] != " 3   1 " {
		t.Errorf("element row %q", lines[0])
	}
	if strings.TrimRight(lines[1], " ") != " 0   1" {
		t.Errorf("index row %q", lines[1])
	}
	if !strings.Contains(lines[2], "↑i") || strings.Index(lines[2], "↑") < 4 {
		t.Errorf("pointer row %q", lines[2])
	}
}

func TestRenderBoardRaisedSlot(t *testing.T) {
	st := stage.New(stage.DefaultGeometry(), stage.Timing{})
	id := st.AddSlot(anim.SlotElement, 9, "9")
	st.Layout()
	board := Board{CellWidth: 3, Plain: true}

	before := board.Render(st)
	if !strings.HasSuffix(before, " 9 ") || !strings.HasPrefix(before, "\n") {
		t.Errorf("resting element should be on the baseline row:\n%q", before)
	}

	st.Raise(id, true).Start(func() {})
	after := board.Render(st)
	if after != " 9 " {
		t.Errorf("raised element should be on the top row, got %q", after)
	}
}

func TestRenderSource(t *testing.T) {
	out := RenderSource([]string{"a", "b", "c"}, 2, ThemeMinimal, true)
	want := "   1 a\n▸  2 b\n   3 c"
	if out != want {
		t.Errorf("got\n%q\nwant\n%q", out, want)
	}
}

func TestNextTheme(t *testing.T) {
	seen := map[string]bool{}
	th := Themes[0]
	for range Themes {
		seen[th.Name] = true
		th = NextTheme(th)
	}
	if len(seen) != len(Themes) || th.Name != Themes[0].Name {
		t.Error("NextTheme should cycle through every theme")
	}
	if GetTheme("nope").Name != ThemeCyberpunk.Name {
		t.Error("unknown theme should fall back to the default")
	}
}
