package config

import (
	"math/rand"
	"sort"
)

// Presets are named input arrays.
var Presets = map[string][]int{
	"scenario":   {1, 1, 2, 4, 5, 3},
	"reversed":   {5, 4, 3, 2, 1},
	"sorted":     {1, 2, 3, 4, 5},
	"duplicates": {3, 1, 3, 2, 1, 2},
	"single":     {7},
	"empty":      {},
}

// GetPreset returns a copy of the named preset.
func GetPreset(name string) ([]int, bool) {
	in, ok := Presets[name]
	if !ok {
		return nil, false
	}
	return append([]int{}, in...), true
}

// ListPresets returns the preset names in order, plus "random".
func ListPresets() []string {
	names := make([]string, 0, len(Presets)+1)
	for name := range Presets {
		names = append(names, name)
	}
	names = append(names, "random")
	sort.Strings(names)
	return names
}

// RandomInput returns n values in [1, 2n] drawn from a generator seeded
// with seed, so equal seeds give equal arrays.
func RandomInput(n int, seed int64) []int {
	if n <= 0 {
		return []int{}
	}
	rng := rand.New(rand.NewSource(seed))
	out := make([]int, n)
	for i := range out {
		out[i] = 1 + rng.Intn(2*n)
	}
	return out
}
