package export

import (
	"strings"
	"testing"

	"github.com/san-kum/sortviz/internal/anim"
	"github.com/san-kum/sortviz/internal/stage"
	"github.com/san-kum/sortviz/internal/viz"
)

func TestSceneToSVG(t *testing.T) {
	st := stage.New(stage.DefaultGeometry(), stage.DefaultTiming())
	a := anim.New(st, anim.NopHost{}, anim.Options{})
	a.ShowArray([]int{3, 1, 2})
	if err := a.AddPointers("i"); err != nil {
		t.Fatal(err)
	}
	st.Layout()

	svg := SceneToSVG(st, viz.GetTheme("minimal"), 3, 10)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatalf("not an svg document:\n%s", svg)
	}
	// background plus one per element
	if got := strings.Count(svg, "<rect"); got != 4 {
		t.Errorf("rect count = %d, want 4", got)
	}
	// element labels, index labels, pointer name
	if got := strings.Count(svg, "<text"); got != 7 {
		t.Errorf("text count = %d, want 7", got)
	}
	if got := strings.Count(svg, "<path"); got != 1 {
		t.Errorf("pointer marker count = %d, want 1", got)
	}
	for _, want := range []string{">3</text>", ">1</text>", ">2</text>", ">i</text>"} {
		if !strings.Contains(svg, want) {
			t.Errorf("missing %q", want)
		}
	}
}

func TestSceneToSVGEscapesLabels(t *testing.T) {
	st := stage.New(stage.DefaultGeometry(), stage.DefaultTiming())
	st.AddSlot(anim.SlotPointer, 0, "<lo>")
	st.Layout()

	svg := SceneToSVG(st, viz.GetTheme(""), 3, 10)
	if !strings.Contains(svg, "&lt;lo&gt;") {
		t.Errorf("label not escaped:\n%s", svg)
	}
}

func TestSeriesToSVG(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		points int
	}{
		{"empty", nil, 0},
		{"single", []float64{4}, 0},
		{"flat", []float64{2, 2, 2}, 3},
		{"rising", []float64{1, 5, 7, 3}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svg := SeriesToSVG(tt.values, 200, 100, "#00ff88")
			if tt.points == 0 {
				if svg != "" {
					t.Errorf("want empty output, got %q", svg)
				}
				return
			}
			if got := strings.Count(svg, " L") + 1; got != tt.points {
				t.Errorf("points = %d, want %d", got, tt.points)
			}
			if !strings.Contains(svg, `stroke="#00ff88"`) {
				t.Error("stroke color missing")
			}
		})
	}
}
