package vector

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"golang.org/x/exp/slices"
)

func TestProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)
	values := gen.SliceOf(gen.IntRange(-100, 100))

	properties.Property("insert then erase restores contents", prop.ForAll(
		func(xs []int, at int, x int) bool {
			v := Of(xs...)
			i := at % (len(xs) + 1)
			it, err := v.Insert(v.Begin().Add(i), x)
			if err != nil {
				return false
			}
			if _, err := v.Erase(it); err != nil {
				return false
			}
			return slices.Equal(xs, v.Values())
		},
		values, gen.IntRange(0, 1000), gen.Int(),
	))

	properties.Property("size never exceeds capacity", prop.ForAll(
		func(xs []int) bool {
			var v Vector[int]
			for _, x := range xs {
				v.PushBack(x)
				if v.Len() > v.Cap() {
					return false
				}
			}
			return slices.Equal(xs, v.Values())
		},
		values,
	))

	properties.Property("sort then rsort", prop.ForAll(
		func(xs []int) bool {
			v := Of(xs...)
			Sort(v)
			if !slices.IsSorted(v.Values()) {
				return false
			}
			RSort(v)
			got := v.Values()
			for i := 1; i < len(got); i++ {
				if got[i] > got[i-1] {
					return false
				}
			}
			return true
		},
		values,
	))

	properties.Property("reverse twice is identity", prop.ForAll(
		func(xs []int) bool {
			v := Of(xs...)
			v.Reverse()
			v.Reverse()
			return slices.Equal(xs, v.Values())
		},
		values,
	))

	properties.Property("concat length and order", prop.ForAll(
		func(xs, ys []int) bool {
			c := Concat(Of(xs...), Of(ys...))
			return c.Len() == len(xs)+len(ys) && slices.Equal(append(append([]int(nil), xs...), ys...), c.Values())
		},
		values, values,
	))

	properties.TestingRun(t)
}
