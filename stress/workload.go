package stress

import (
	"hop.computer/seq/config"
	"hop.computer/seq/pkg/forwardlist"
	"hop.computer/seq/pkg/list"
	"hop.computer/seq/pkg/readers"
	"hop.computer/seq/pkg/vector"
)

// workload drives one container through fill and drain cycles.
type workload interface {
	name() string
	fill(n int, next func(i int) int) error
	drain(n int) error
	sort()
	len() int
	values() []int
}

func newWorkload(name string, cfg *config.StressConfig) workload {
	seed := cfg.Seed
	switch name {
	case config.ForwardList:
		return &forwardListWorkload{l: forwardlist.Of(seed...)}
	case config.List:
		w := &listWorkload{l: list.Of(seed...)}
		if cfg.RandomSeed != 0 {
			w.coin = readers.NewDeterministicCoinFlipper(cfg.RandomSeed, 1)
		}
		return w
	case config.Vector:
		return &vectorWorkload{v: vector.Of(seed...)}
	}
	return nil
}

// forwardListWorkload inserts after BeforeBegin and pops from the front.
type forwardListWorkload struct {
	l *forwardlist.ForwardList[int]
}

func (w *forwardListWorkload) name() string { return config.ForwardList }

func (w *forwardListWorkload) fill(n int, next func(i int) int) error {
	for i := 0; i < n; i++ {
		if _, err := w.l.InsertAfter(w.l.BeforeBegin(), next(i)); err != nil {
			return err
		}
	}
	return nil
}

func (w *forwardListWorkload) drain(n int) error {
	for i := 0; i < n; i++ {
		if err := w.l.PopFront(); err != nil {
			return err
		}
	}
	return nil
}

func (w *forwardListWorkload) sort()         { forwardlist.Sort(w.l) }
func (w *forwardListWorkload) len() int      { return w.l.Len() }
func (w *forwardListWorkload) values() []int { return w.l.Values() }

// listWorkload inserts before Begin and pops from the front. With a coin it
// inserts at either end and remembers how many went to the back.
type listWorkload struct {
	l    *list.List[int]
	coin *readers.DeterministicCoinFlipper
	back int
}

func (w *listWorkload) name() string { return config.List }

func (w *listWorkload) fill(n int, next func(i int) int) error {
	for i := 0; i < n; i++ {
		if w.coin != nil && w.coin.Flip() {
			w.l.PushBack(next(i))
			w.back++
			continue
		}
		if _, err := w.l.Insert(w.l.Begin(), next(i)); err != nil {
			return err
		}
	}
	return nil
}

func (w *listWorkload) drain(n int) error {
	for i := 0; i < n; i++ {
		pop := w.l.PopFront
		if w.back > 0 {
			pop = w.l.PopBack
			w.back--
		}
		if _, err := pop(); err != nil {
			return err
		}
	}
	return nil
}

func (w *listWorkload) sort()         { list.Sort(w.l) }
func (w *listWorkload) len() int      { return w.l.Len() }
func (w *listWorkload) values() []int { return w.l.Values() }

// vectorWorkload works at the back; front insertion would make a round
// quadratic in n.
type vectorWorkload struct {
	v *vector.Vector[int]
}

func (w *vectorWorkload) name() string { return config.Vector }

func (w *vectorWorkload) fill(n int, next func(i int) int) error {
	w.v.Reserve(w.v.Len() + n)
	for i := 0; i < n; i++ {
		w.v.PushBack(next(i))
	}
	return nil
}

func (w *vectorWorkload) drain(n int) error {
	for i := 0; i < n; i++ {
		if _, err := w.v.PopBack(); err != nil {
			return err
		}
	}
	return nil
}

func (w *vectorWorkload) sort()         { vector.Sort(w.v) }
func (w *vectorWorkload) len() int      { return w.v.Len() }
func (w *vectorWorkload) values() []int { return w.v.Values() }
