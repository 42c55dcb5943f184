package algo

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed source/*.txt
var sources embed.FS

// Algorithm describes one instrumented sort as the animator sees it.
type Algorithm struct {
	Name     string
	Title    string
	Pointers []string
	Source   string
	Run      func(a []int, h Hooks)
}

// Lines returns the source listing split into lines, numbered from 1 by the
// caller's convention (Lines()[0] is line 1).
func (a Algorithm) Lines() []string {
	return strings.Split(strings.TrimRight(a.Source, "\n"), "\n")
}

type Registry struct {
	algorithms map[string]Algorithm
	aliases    map[string]string
}

func NewRegistry() *Registry {
	r := &Registry{
		algorithms: make(map[string]Algorithm),
		aliases:    make(map[string]string),
	}

	r.register(Algorithm{
		Name:     "selectionSort",
		Title:    "selection sort",
		Pointers: []string{"i", "m"},
		Run:      SelectionSort,
	}, "selection")
	r.register(Algorithm{
		Name:     "bubbleSort",
		Title:    "bubble sort",
		Pointers: []string{"j"},
		Run:      BubbleSort,
	}, "bubble")
	r.register(Algorithm{
		Name:     "insertionSort",
		Title:    "insertion sort",
		Pointers: []string{"i"},
		Run:      InsertionSort,
	}, "insertion")
	r.register(Algorithm{
		Name:     "quickSort",
		Title:    "quick sort",
		Pointers: []string{"i", "j"},
		Run: func(a []int, h Hooks) {
			QuickSort(a, 0, len(a)-1, h)
		},
	}, "quick")

	return r
}

func (r *Registry) register(alg Algorithm, aliases ...string) {
	src, err := sources.ReadFile("source/" + alg.Name + ".txt")
	if err != nil {
		panic(fmt.Sprintf("algo: missing source listing for %s: %v", alg.Name, err))
	}
	alg.Source = string(src)
	r.algorithms[alg.Name] = alg
	for _, a := range aliases {
		r.aliases[a] = alg.Name
	}
}

func (r *Registry) Get(name string) (Algorithm, error) {
	if canonical, ok := r.aliases[name]; ok {
		name = canonical
	}
	alg, ok := r.algorithms[name]
	if !ok {
		return Algorithm{}, fmt.Errorf("unknown algorithm: %s (available: %s)", name, strings.Join(r.List(), ", "))
	}
	return alg, nil
}

// List returns the canonical algorithm names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.algorithms))
	for name := range r.algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultRegistry = NewRegistry()

// Lookup resolves an algorithm in the built-in registry.
func Lookup(name string) (Algorithm, error) {
	return defaultRegistry.Get(name)
}

// Names lists the built-in algorithms.
func Names() []string {
	return defaultRegistry.List()
}
