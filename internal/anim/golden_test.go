package anim

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func formatEntries(entries []Entry) string {
	var b strings.Builder
	for i, e := range entries {
		fmt.Fprintf(&b, "%02d %-8s %s\n", i, e.Phase, e.Op)
	}
	return b.String()
}

func TestQueueTraces(t *testing.T) {
	tests := []struct {
		name      string
		algorithm string
		input     []int
	}{
		{"bubble_2_1", "bubbleSort", []int{2, 1}},
		{"insertion_2_1", "insertionSort", []int{2, 1}},
		{"selection_3_1_2", "selectionSort", []int{3, 1, 2}},
	}

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _, _ := newTestAnimator(false)
			require.NoError(t, a.Sort(tt.algorithm, tt.input))
			g.Assert(t, tt.name, []byte(formatEntries(a.Entries())))
		})
	}
}

func TestEffectTrace(t *testing.T) {
	a, r, _ := newTestAnimator(true)
	require.NoError(t, a.BubbleSort([]int{2, 1}))

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "bubble_2_1_effects", []byte(strings.Join(r.log, "\n")+"\n"))
}
