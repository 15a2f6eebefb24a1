package vector

import (
	"hop.computer/seq/common"
)

// openGap shifts [i, Len) right by n, reallocating first if the buffer is too
// small, and returns with Len grown by n. The caller fills [i, i+n).
func (v *Vector[T]) openGap(i, n int) {
	v.mustGrow(v.size + n)
	copy(v.buf[i+n:v.size+n], v.buf[i:v.size])
	v.size += n
}

// Insert writes x at pos, shifting the elements at and after pos one slot to
// the right. pos may be End. It returns the position of x.
func (v *Vector[T]) Insert(pos Iterator[T], x T) (Iterator[T], error) {
	i, err := v.index(pos, true)
	if err != nil {
		return pos, err
	}
	v.openGap(i, 1)
	v.buf[i] = x
	return v.Begin().Add(i), nil
}

// InsertN writes n copies of x at pos and returns the position of the first.
func (v *Vector[T]) InsertN(pos Iterator[T], n int, x T) (Iterator[T], error) {
	i, err := v.index(pos, true)
	if err != nil {
		return pos, err
	}
	if n < 0 {
		return pos, common.OutOfBounds("negative count %d", n)
	}
	v.openGap(i, n)
	for j := i; j < i+n; j++ {
		v.buf[j] = x
	}
	return v.Begin().Add(i), nil
}

// InsertValues writes xs at pos, keeping their order, and returns the position
// of the first.
func (v *Vector[T]) InsertValues(pos Iterator[T], xs ...T) (Iterator[T], error) {
	i, err := v.index(pos, true)
	if err != nil {
		return pos, err
	}
	// xs may alias the live elements, so take a copy before shifting.
	vals := append([]T(nil), xs...)
	v.openGap(i, len(vals))
	copy(v.buf[i:], vals)
	return v.Begin().Add(i), nil
}

// Erase removes the element at pos, shifting the rest left, and returns the
// position now holding the element that followed it.
func (v *Vector[T]) Erase(pos Iterator[T]) (Iterator[T], error) {
	i, err := v.index(pos, false)
	if err != nil {
		return pos, err
	}
	v.closeGap(i, i+1)
	return v.Begin().Add(i), nil
}

// EraseRange removes [first, last) and returns the position now holding the
// element that followed the range.
func (v *Vector[T]) EraseRange(first, last Iterator[T]) (Iterator[T], error) {
	i, err := v.index(first, true)
	if err != nil {
		return first, err
	}
	j, err := v.index(last, true)
	if err != nil {
		return first, err
	}
	if i > j {
		return first, common.OutOfBounds("range start %d after range end %d", i, j)
	}
	v.closeGap(i, j)
	return v.Begin().Add(i), nil
}

func (v *Vector[T]) closeGap(i, j int) {
	if i == j {
		return
	}
	n := copy(v.buf[i:], v.buf[j:v.size])
	clear(v.buf[i+n : v.size])
	v.size = i + n
}
