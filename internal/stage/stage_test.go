package stage_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/anim"
	"github.com/san-kum/sortviz/internal/stage"
)

const frame = 16 * time.Millisecond

var _ = Describe("Stage", func() {
	var (
		st  *stage.Stage
		geo stage.Geometry
	)

	BeforeEach(func() {
		geo = stage.DefaultGeometry()
		st = stage.New(geo, stage.DefaultTiming())
	})

	Describe("layout", func() {
		It("places elements, index labels and pointers on their rows", func() {
			e0 := st.AddSlot(anim.SlotElement, 7, "7")
			e1 := st.AddSlot(anim.SlotElement, 3, "3")
			i1 := st.AddSlot(anim.SlotIndex, 1, "1")
			p := st.AddSlot(anim.SlotPointer, 0, "i")
			q := st.AddSlot(anim.SlotPointer, 1, "j")
			st.Layout()

			Expect(st.Position(e0)).To(Equal(anim.Point{X: 0, Y: geo.Baseline}))
			Expect(st.Position(e1)).To(Equal(anim.Point{X: geo.Pitch, Y: geo.Baseline}))
			Expect(st.Position(i1)).To(Equal(anim.Point{X: geo.Pitch, Y: geo.IndexRow}))
			Expect(st.Position(p)).To(Equal(anim.Point{X: 0, Y: geo.PointerRow}))
			Expect(st.Position(q)).To(Equal(anim.Point{X: geo.Pitch, Y: geo.PointerRow + geo.RowGap}))
			Expect(st.Label(e1)).To(Equal("3"))
			Expect(st.Kind(q)).To(Equal(anim.SlotPointer))
		})

		It("holds WhenReady callbacks until Layout", func() {
			called := 0
			st.WhenReady(func() { called++ })
			Expect(called).To(BeZero())

			st.Layout()
			Expect(called).To(Equal(1))

			st.WhenReady(func() { called++ })
			Expect(called).To(Equal(2))
		})

		It("closes the barrier again on Clear", func() {
			st.AddSlot(anim.SlotElement, 1, "1")
			st.Layout()
			st.Clear()

			Expect(st.Ready()).To(BeFalse())
			Expect(st.Slots()).To(BeEmpty())
		})

		It("places slots added after layout immediately", func() {
			st.Layout()
			p := st.AddSlot(anim.SlotPointer, 2, "m")
			Expect(st.Position(p).X).To(Equal(2 * geo.Pitch))
		})
	})

	Describe("effects", func() {
		var id anim.SlotID

		BeforeEach(func() {
			id = st.AddSlot(anim.SlotElement, 5, "5")
			st.AddSlot(anim.SlotElement, 6, "6")
			st.Layout()
		})

		It("does nothing until advanced", func() {
			done := false
			st.Shift(id, 1).Start(func() { done = true })
			Expect(st.Active()).To(Equal(1))
			Expect(st.Position(id).X).To(BeZero())

			st.Advance(frame)
			Expect(st.Position(id).X).To(BeNumerically(">", 0))
			Expect(st.Position(id).X).To(BeNumerically("<", geo.Pitch))
			Expect(done).To(BeFalse())

			st.Drain(frame)
			Expect(done).To(BeTrue())
			Expect(st.Position(id).X).To(Equal(geo.Pitch))
			Expect(st.Active()).To(BeZero())
		})

		It("lowers a raised slot back to the height it was raised from", func() {
			st.Raise(id, true).Start(func() {})
			st.Drain(frame)
			Expect(st.Position(id).Y).To(Equal(geo.Baseline - geo.RaiseHigh))

			st.Lower(id).Start(func() {})
			st.Drain(frame)
			Expect(st.Position(id).Y).To(Equal(geo.Baseline))
		})

		It("uses the low lane when not high", func() {
			st.Raise(id, false).Start(func() {})
			st.Drain(frame)
			Expect(st.Position(id).Y).To(Equal(geo.Baseline - geo.RaiseLow))
		})

		It("fades the highlight in and out", func() {
			st.Select(id).Start(func() {})
			st.Drain(frame)
			Expect(st.Highlight(id)).To(Equal(1.0))

			st.Unselect(id).Start(func() {})
			st.Advance(frame)
			Expect(st.Highlight(id)).To(BeNumerically("~", 0.5, 0.5))
			st.Drain(frame)
			Expect(st.Highlight(id)).To(BeZero())
		})

		It("reads the start position when the effect starts", func() {
			first := st.Shift(id, 1)
			second := st.Shift(id, 1)
			first.Start(func() { second.Start(func() {}) })
			st.Drain(frame)
			Expect(st.Position(id).X).To(Equal(2 * geo.Pitch))
		})

		It("never completes a cancelled effect", func() {
			done := false
			e := st.Shift(id, 3)
			e.Start(func() { done = true })
			st.Advance(frame)
			e.Cancel()
			st.Drain(frame)
			Expect(done).To(BeFalse())
			Expect(st.Active()).To(BeZero())
		})

		It("finishes sooner at higher speed", func() {
			st.Pause(time.Second).Start(func() {})
			slow := st.Drain(100 * time.Millisecond)

			st.SetSpeed(4)
			st.Pause(time.Second).Start(func() {})
			fast := st.Drain(100 * time.Millisecond)
			Expect(fast).To(BeNumerically("<", slow))
		})

		It("completes zero-length effects inside Start", func() {
			instant := stage.New(geo, stage.Timing{})
			slot := instant.AddSlot(anim.SlotElement, 1, "1")
			instant.Layout()
			done := false
			instant.Shift(slot, 2).Start(func() { done = true })
			Expect(done).To(BeTrue())
			Expect(instant.Position(slot).X).To(Equal(2 * geo.Pitch))
		})
	})

	Describe("driving an animator", func() {
		var a *anim.Animator

		BeforeEach(func() {
			a = anim.New(st, anim.NopHost{}, anim.Options{TrackDelay: 20 * time.Millisecond})
		})

		row := func() []int {
			n := 0
			for _, id := range st.Slots() {
				if st.Kind(id) == anim.SlotElement {
					n++
				}
			}
			out := make([]int, n)
			for _, id := range st.Slots() {
				if st.Kind(id) == anim.SlotElement {
					out[int(st.Position(id).X/geo.Pitch)] = st.Value(id)
				}
			}
			return out
		}

		DescribeTable("sorts the drawn row",
			func(name string, input []int, want []int) {
				Expect(a.Sort(name, input)).To(Succeed())
				Expect(a.Busy()).To(BeFalse())

				st.Layout()
				Expect(a.Busy()).To(BeTrue())
				st.Drain(frame)

				Expect(a.Done()).To(BeTrue())
				Expect(row()).To(Equal(want))
			},
			Entry("selection", "selectionSort", []int{5, 4, 3, 2, 1}, []int{1, 2, 3, 4, 5}),
			Entry("bubble", "bubbleSort", []int{3, 1, 2}, []int{1, 2, 3}),
			Entry("insertion", "insertionSort", []int{1, 1, 2, 4, 5, 3}, []int{1, 1, 2, 3, 4, 5}),
			Entry("quick", "quickSort", []int{4, 7, 1, 9, 3, 3}, []int{1, 3, 3, 4, 7, 9}),
		)

		It("restores the recorded step exactly", func() {
			Expect(a.InsertionSort([]int{3, 1, 2})).To(Succeed())
			st.Layout()
			st.Drain(frame)
			final := anim.Capture(st)

			Expect(a.PreviousStep()).To(Succeed())
			steps := a.Steps()
			Expect(anim.Capture(st).Equal(steps[len(steps)-2].Snapshot)).To(BeTrue())

			Expect(a.NextStep()).To(Succeed())
			Expect(a.NextStep()).To(MatchError(anim.ErrBusy))
			st.Drain(frame)
			Expect(anim.Capture(st).Equal(final)).To(BeTrue())
		})
	})
})
