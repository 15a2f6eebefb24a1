package vector

import (
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"hop.computer/seq/common"
	"hop.computer/seq/pkg/must"
)

func errorIs(err, target error) is.Comparison {
	return func() is.Result {
		if errors.Is(err, target) {
			return is.ResultSuccess
		}
		if err == nil {
			return is.ResultFailure("expected " + target.Error() + ", got nil")
		}
		return is.ResultFailure("expected " + target.Error() + ", got " + err.Error())
	}
}

func TestZeroValue(t *testing.T) {
	var v Vector[int]
	assert.Check(t, v.Empty())
	assert.Equal(t, 0, v.Cap())
	assert.Check(t, must.Do(v.Begin().Equal(v.End())))

	v.PushBack(1)
	v.PushBack(2)
	assert.DeepEqual(t, []int{1, 2}, v.Values())
}

func TestConstructors(t *testing.T) {
	v := WithSize[int](3)
	assert.DeepEqual(t, []int{0, 0, 0}, v.Values())
	assert.Equal(t, 3, v.Cap())

	assert.DeepEqual(t, []string{"a", "a"}, Repeat(2, "a").Values())
	assert.Check(t, Repeat(-1, "a").Empty())
	assert.DeepEqual(t, []int{3, 4}, FromSeq(Of(3, 4).All()).Values())

	var back []int
	for x := range Of(1, 2, 3).Backward() {
		back = append(back, x)
	}
	assert.DeepEqual(t, []int{3, 2, 1}, back)
}

func TestAt(t *testing.T) {
	v := Of(10, 20, 30)
	assert.Equal(t, 20, must.Do(v.At(1)))
	_, err := v.At(3)
	assert.Check(t, errorIs(err, common.ErrOutOfBounds))
	_, err = v.At(-1)
	assert.Check(t, errorIs(err, common.ErrOutOfBounds))

	assert.NilError(t, v.Set(0, 11))
	*must.Do(v.Ref(2)) = 33
	assert.DeepEqual(t, []int{11, 20, 33}, v.Values())
	assert.Check(t, errorIs(v.Set(5, 0), common.ErrOutOfBounds))

	assert.Equal(t, 11, must.Do(v.Front()))
	assert.Equal(t, 33, must.Do(v.Back()))
	_, err = New[int]().Front()
	assert.Check(t, errorIs(err, common.ErrOutOfBounds))
	_, err = New[int]().Back()
	assert.Check(t, errorIs(err, common.ErrOutOfBounds))
}

func TestFrontBackMatchIndexes(t *testing.T) {
	v := Of(4, 8, 15, 16, 23, 42)
	assert.Equal(t, must.Do(v.At(0)), must.Do(v.Front()))
	assert.Equal(t, must.Do(v.At(v.Len()-1)), must.Do(v.Back()))
}

func TestGrowth(t *testing.T) {
	var v Vector[int]
	var caps []int
	for i := 0; i < 10; i++ {
		v.PushBack(i)
		if len(caps) == 0 || caps[len(caps)-1] != v.Cap() {
			caps = append(caps, v.Cap())
		}
	}
	assert.DeepEqual(t, []int{1, 2, 3, 4, 6, 9, 13}, caps)
	assert.DeepEqual(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, v.Values())
}

func TestReserveShrink(t *testing.T) {
	v := Of(1, 2, 3)
	v.Reserve(10)
	assert.Equal(t, 10, v.Cap())
	v.Reserve(2)
	assert.Equal(t, 10, v.Cap())
	assert.DeepEqual(t, []int{1, 2, 3}, v.Values())

	v.ShrinkToFit()
	assert.Equal(t, 3, v.Cap())
	v.ShrinkToFit()
	assert.Equal(t, 3, v.Cap())
	assert.DeepEqual(t, []int{1, 2, 3}, v.Values())
}

func TestReallocateBelowSize(t *testing.T) {
	v := Of(1, 2, 3)
	err := v.reallocate(2)
	assert.Check(t, errorIs(err, common.ErrAllocationInvariant))
	assert.Equal(t, 3, v.Cap())
	assert.DeepEqual(t, []int{1, 2, 3}, v.Values())
}

func TestReallocateTrace(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()
	level := logrus.GetLevel()
	logrus.SetLevel(logrus.TraceLevel)
	defer logrus.SetLevel(level)

	v := Of(1, 2)
	v.Reserve(8)

	entry := hook.LastEntry()
	assert.Assert(t, entry != nil)
	assert.Equal(t, "reallocating buffer", entry.Message)
	assert.Equal(t, 2, entry.Data["from"])
	assert.Equal(t, 8, entry.Data["to"])
	assert.Equal(t, "vector", entry.Data["container"])
}

func TestInsertScenario(t *testing.T) {
	v := Of(1, 2, 3, 4, 5)
	it := must.Do(v.Insert(v.Begin().Add(2), 99))
	assert.Equal(t, 2, it.Pos())
	assert.Equal(t, 99, must.Do(it.Value()))
	assert.DeepEqual(t, []int{1, 2, 99, 3, 4, 5}, v.Values())
	assert.Equal(t, 6, v.Len())
}

func TestInsert(t *testing.T) {
	v := New[int]()
	must.Do(v.Insert(v.End(), 1))
	must.Do(v.Insert(v.Begin(), 0))
	must.Do(v.InsertN(v.End(), 3, 7))
	assert.DeepEqual(t, []int{0, 1, 7, 7, 7}, v.Values())

	first := must.Do(v.InsertValues(v.Begin().Add(1), 5, 6))
	assert.Equal(t, 1, first.Pos())
	assert.DeepEqual(t, []int{0, 5, 6, 1, 7, 7, 7}, v.Values())

	// inserting a vector's own contents
	must.Do(v.InsertValues(v.Begin(), v.buf[:2]...))
	assert.DeepEqual(t, []int{0, 5, 0, 5, 6, 1, 7, 7, 7}, v.Values())

	_, err := v.Insert(v.End().Add(1), 0)
	assert.Check(t, errorIs(err, common.ErrOutOfBounds))
	_, err = v.Insert(v.Begin().Sub(1), 0)
	assert.Check(t, errorIs(err, common.ErrOutOfBounds))
	_, err = v.Insert(Of(1).Begin(), 0)
	assert.Check(t, errorIs(err, common.ErrBadIterator))
	_, err = v.InsertN(v.End(), -1, 0)
	assert.Check(t, errorIs(err, common.ErrOutOfBounds))
	assert.Equal(t, 9, v.Len())
}

func TestInsertEraseInverse(t *testing.T) {
	for i := 0; i <= 4; i++ {
		v := Of(1, 2, 3, 4)
		it := must.Do(v.Insert(v.Begin().Add(i), 42))
		must.Do(v.Erase(it))
		assert.DeepEqual(t, []int{1, 2, 3, 4}, v.Values())
	}
}

func TestErase(t *testing.T) {
	v := Of(1, 2, 3, 4, 5)
	it := must.Do(v.Erase(v.Begin().Add(1)))
	assert.Equal(t, 3, must.Do(it.Value()))
	assert.DeepEqual(t, []int{1, 3, 4, 5}, v.Values())

	_, err := v.Erase(v.End())
	assert.Check(t, errorIs(err, common.ErrOutOfBounds))

	it = must.Do(v.EraseRange(v.Begin().Add(1), v.Begin().Add(3)))
	assert.Equal(t, 5, must.Do(it.Value()))
	assert.DeepEqual(t, []int{1, 5}, v.Values())
	// vacated slots are zeroed
	assert.DeepEqual(t, []int{1, 5, 0, 0, 0}, v.buf)

	_, err = v.EraseRange(v.End(), v.Begin())
	assert.Check(t, errorIs(err, common.ErrOutOfBounds))
	_, err = v.EraseRange(v.Begin(), v.End().Add(1))
	assert.Check(t, errorIs(err, common.ErrOutOfBounds))
	assert.Equal(t, 2, v.Len())
}

func TestEraseEverything(t *testing.T) {
	v := Of(1, 2, 3)
	must.Do(v.EraseRange(v.Begin(), v.End()))
	assert.Equal(t, 0, v.Len())
	assert.Check(t, v.Empty())
	assert.Check(t, must.Do(v.Begin().Equal(v.End())))
}

func TestResizePop(t *testing.T) {
	v := Of(1, 2)
	assert.NilError(t, v.Resize(4, 9))
	assert.DeepEqual(t, []int{1, 2, 9, 9}, v.Values())
	assert.NilError(t, v.Resize(1, 0))
	assert.DeepEqual(t, []int{1}, v.Values())
	assert.Check(t, errorIs(v.Resize(-1, 0), common.ErrOutOfBounds))

	assert.Equal(t, 1, must.Do(v.PopBack()))
	_, err := v.PopBack()
	assert.Check(t, errorIs(err, common.ErrOutOfBounds))

	v = Of(1, 2, 3)
	v.Clear()
	assert.Check(t, v.Empty())
	assert.Equal(t, 3, v.Cap())
}

func TestIterators(t *testing.T) {
	v := Of(10, 20, 30, 40)
	b, e := v.Begin(), v.End()

	assert.Equal(t, 4, must.Do(e.Diff(b)))
	assert.Equal(t, -1, must.Do(b.Compare(e)))
	assert.Equal(t, 1, must.Do(e.Compare(b)))
	assert.Check(t, must.Do(b.Less(e)))
	assert.Check(t, must.Do(b.Add(4).Equal(e)))
	assert.Check(t, must.Do(e.Sub(4).Equal(b)))
	assert.Check(t, must.Do(b.Next().Prev().Equal(b)))

	assert.Equal(t, 30, must.Do(b.Index(2)))
	_, err := b.Index(4)
	assert.Check(t, errorIs(err, common.ErrOutOfBounds))
	_, err = e.Value()
	assert.Check(t, errorIs(err, common.ErrOutOfBounds))
	_, err = Iterator[int]{}.Value()
	assert.Check(t, errorIs(err, common.ErrOutOfBounds))

	assert.NilError(t, b.Next().Set(21))
	assert.Equal(t, 21, must.Do(v.At(1)))

	// positions survive reallocation
	v.Reserve(100)
	assert.Equal(t, 21, must.Do(b.Index(1)))

	other := Of(10, 20, 30, 40)
	_, err = b.Equal(other.Begin())
	assert.Check(t, errorIs(err, common.ErrBadIterator))
	_, err = b.Diff(other.Begin())
	assert.Check(t, errorIs(err, common.ErrBadIterator))
	_, err = b.Less(other.Begin())
	assert.Check(t, errorIs(err, common.ErrBadIterator))
}

func TestCopyIsolation(t *testing.T) {
	v := Of(1, 2, 3)
	c := v.Clone()
	assert.NilError(t, c.Set(0, 100))
	c.PushBack(4)
	assert.DeepEqual(t, []int{1, 2, 3}, v.Values())
	assert.DeepEqual(t, []int{100, 2, 3, 4}, c.Values())

	d := Of(9, 9, 9, 9)
	d.CopyFrom(v)
	assert.DeepEqual(t, []int{1, 2, 3}, d.Values())
	assert.NilError(t, d.Set(1, 0))
	assert.Equal(t, 2, must.Do(v.At(1)))

	d.Assign(5)
	assert.DeepEqual(t, []int{5}, d.Values())
}

func TestMove(t *testing.T) {
	v := Of(1, 2, 3)
	old := v.Begin()
	m := v.Move()
	assert.DeepEqual(t, []int{1, 2, 3}, m.Values())
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, v.Cap())
	assert.Check(t, must.Do(v.Begin().Equal(v.End())))
	_, err := old.Value()
	assert.Check(t, errorIs(err, common.ErrOutOfBounds))

	v.PushBack(7)
	assert.DeepEqual(t, []int{7}, v.Values())

	n := Of(0)
	n.Take(m)
	assert.DeepEqual(t, []int{1, 2, 3}, n.Values())
	assert.Check(t, m.Empty())

	n.Swap(v)
	assert.DeepEqual(t, []int{7}, n.Values())
	assert.DeepEqual(t, []int{1, 2, 3}, v.Values())
}

func TestSort(t *testing.T) {
	v := Of(5, 3, 9, 1, 3)
	Sort(v)
	assert.DeepEqual(t, []int{1, 3, 3, 5, 9}, v.Values())
	RSort(v)
	assert.DeepEqual(t, []int{9, 5, 3, 3, 1}, v.Values())

	type pair struct{ k, tag int }
	p := Of(pair{2, 0}, pair{1, 0}, pair{2, 1}, pair{1, 1})
	p.SortFunc(func(a, b pair) bool { return a.k < b.k })
	assert.DeepEqual(t, []pair{{1, 0}, {1, 1}, {2, 0}, {2, 1}}, p.Values(), gocmp.AllowUnexported(pair{}))
	p.RSortFunc(func(a, b pair) bool { return a.k < b.k })
	assert.DeepEqual(t, []pair{{2, 0}, {2, 1}, {1, 0}, {1, 1}}, p.Values(), gocmp.AllowUnexported(pair{}))
}

func TestReverse(t *testing.T) {
	v := Of(1, 2, 3)
	v.Reserve(5)
	v.Reverse()
	assert.DeepEqual(t, []int{3, 2, 1}, v.Values())
	assert.Equal(t, 5, v.Cap())
	v.Reverse()
	assert.DeepEqual(t, []int{1, 2, 3}, v.Values())
}

func TestSplit(t *testing.T) {
	v := Of(1, 2, 3, 2, 5)
	left, right, found := Split(v, 2)
	assert.Check(t, found)
	assert.DeepEqual(t, []int{1}, left.Values())
	assert.DeepEqual(t, []int{3, 2, 5}, right.Values())
	assert.Equal(t, 5, v.Len())

	left, right, found = Split(v, 7)
	assert.Check(t, !found)
	assert.DeepEqual(t, []int{1, 2, 3, 2, 5}, left.Values())
	assert.Check(t, right.Empty())

	left, right, found = v.SplitFunc(func(x int) bool { return x > 4 })
	assert.Check(t, found)
	assert.DeepEqual(t, []int{1, 2, 3, 2}, left.Values())
	assert.Check(t, right.Empty())
}

func TestSearch(t *testing.T) {
	v := Of(1, 2, 3, 2)
	v.Reserve(10)
	assert.Check(t, Contains(v, 3))
	assert.Check(t, !Contains(v, 0))
	assert.Equal(t, 2, Count(v, 2))
	assert.Equal(t, 0, Count(v, 0))
	assert.Equal(t, 1, Index(v, 2))
	assert.Equal(t, -1, Index(v, 0))
	assert.Check(t, v.ContainsFunc(func(x int) bool { return x > 2 }))
	assert.Equal(t, 3, v.CountFunc(func(x int) bool { return x < 3 }))
}

func TestConcat(t *testing.T) {
	a := Of(1, 2)
	a.Reserve(10)
	b := Of(3)
	c := Concat(a, b)
	assert.DeepEqual(t, []int{1, 2, 3}, c.Values())
	assert.Equal(t, 3, c.Cap())
	assert.NilError(t, c.Set(0, 0))
	assert.Equal(t, 1, must.Do(a.Front()))
	assert.Check(t, Concat(New[int](), New[int]()).Empty())
}
