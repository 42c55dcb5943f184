package algo

// Hooks receives the structural operations of an instrumented sort in the
// order they happen. Any hook may be nil.
type Hooks struct {
	Swap    func(i, j int)
	Raise   func(i int, stay bool)
	Shift   func(i, j int, fromFloating bool)
	Lower   func(i int)
	Pointer func(name string, i int)
	Track   func(line int)
}

func (h Hooks) swap(i, j int) {
	if h.Swap != nil {
		h.Swap(i, j)
	}
}

func (h Hooks) raise(i int, stay bool) {
	if h.Raise != nil {
		h.Raise(i, stay)
	}
}

func (h Hooks) shift(i, j int, fromFloating bool) {
	if h.Shift != nil {
		h.Shift(i, j, fromFloating)
	}
}

func (h Hooks) lower(i int) {
	if h.Lower != nil {
		h.Lower(i)
	}
}

func (h Hooks) pointer(name string, i int) {
	if h.Pointer != nil {
		h.Pointer(name, i)
	}
}

func (h Hooks) track(line int) {
	if h.Track != nil {
		h.Track(line)
	}
}
