package algo

// Source line numbers of the embedded listings. Track markers refer to these.
const (
	selectionLineOuter = 3
	selectionLineInit  = 4
	selectionLineMin   = 7
	selectionLineSwap  = 10
	selectionLineEnd   = 12

	bubbleLineOuter   = 3
	bubbleLineCompare = 5
	bubbleLineSwap    = 6
	bubbleLineEnd     = 10

	insertionLineOuter = 3
	insertionLineBase  = 4
	insertionLineShift = 7
	insertionLinePlace = 10
	insertionLineEnd   = 12

	quickLinePartition = 5
	quickLineSwap      = 13
	quickLinePivot     = 15
	quickLineEnd       = 18
)

// SelectionSort repeatedly selects the minimum of the unsorted suffix and
// swaps it to the front. Every outer iteration reports its exchange, including
// the ones where the minimum is already in place.
func SelectionSort(a []int, h Hooks) {
	n := len(a)
	if n < 2 {
		return
	}
	for i := 0; i < n-1; i++ {
		h.track(selectionLineOuter)
		h.pointer("i", i)
		h.track(selectionLineInit)
		h.pointer("m", i)
		m := i
		for j := i + 1; j < n; j++ {
			if a[j] < a[m] {
				m = j
				h.track(selectionLineMin)
				h.pointer("m", m)
			}
		}
		h.track(selectionLineSwap)
		a[i], a[m] = a[m], a[i]
		h.swap(i, m)
	}
	h.track(selectionLineEnd)
}

// BubbleSort compares adjacent elements and exchanges them when out of order.
// The largest element of the unsorted prefix settles at its end each round.
func BubbleSort(a []int, h Hooks) {
	n := len(a)
	if n < 2 {
		return
	}
	for i := n - 1; i > 0; i-- {
		h.track(bubbleLineOuter)
		for j := 0; j < i; j++ {
			h.pointer("j", j)
			h.track(bubbleLineCompare)
			if a[j] > a[j+1] {
				h.track(bubbleLineSwap)
				a[j], a[j+1] = a[j+1], a[j]
				h.swap(j, j+1)
			}
		}
	}
	h.track(bubbleLineEnd)
}

// InsertionSort lifts a[i] out of the row, shifts every greater predecessor
// one place right and drops the lifted element into the gap.
func InsertionSort(a []int, h Hooks) {
	n := len(a)
	if n < 2 {
		return
	}
	for i := 1; i < n; i++ {
		h.track(insertionLineOuter)
		h.pointer("i", i)
		h.track(insertionLineBase)
		base := a[i]
		h.raise(i, true)

		j := i - 1
		for j >= 0 && a[j] > base {
			h.track(insertionLineShift)
			h.shift(j, j+1, false)
			a[j+1] = a[j]
			j--
		}
		h.track(insertionLinePlace)
		a[j+1] = base
		h.shift(i, j+1, true)
		h.lower(i)
	}
	h.track(insertionLineEnd)
}

// QuickSort sorts a[left:right+1] with a Hoare partition around a[left].
// Exchanges of an element with itself are not reported.
func QuickSort(a []int, left, right int, h Hooks) {
	if left >= right {
		return
	}
	quickSort(a, left, right, h)
	h.track(quickLineEnd)
}

func quickSort(a []int, left, right int, h Hooks) {
	if left >= right {
		return
	}
	h.track(quickLinePartition)
	i, j := left, right
	h.pointer("i", i)
	h.pointer("j", j)
	for i < j {
		for i < j && a[j] >= a[left] {
			j--
		}
		h.pointer("j", j)
		for i < j && a[i] <= a[left] {
			i++
		}
		h.pointer("i", i)
		if i != j {
			h.track(quickLineSwap)
			a[i], a[j] = a[j], a[i]
			h.swap(i, j)
		}
	}
	if i != left {
		h.track(quickLinePivot)
		a[i], a[left] = a[left], a[i]
		h.swap(left, i)
	}
	quickSort(a, left, i-1, h)
	quickSort(a, i+1, right, h)
}
