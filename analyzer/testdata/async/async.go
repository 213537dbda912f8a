package async

import "context"

type Iterator[T any] interface {
	Next(ctx context.Context) bool
	Value() T
}

type Iterable[T any] interface {
	AsyncIterator() Iterator[T]
}

// StreamIter advances under a context and is carried by value.
type StreamIter struct {
	xs []int
	i  int
}

func (it *StreamIter) Next(_ context.Context) bool { it.i++; return it.i <= len(it.xs) }

func (it *StreamIter) Value() int { return it.xs[it.i-1] }

type Stream struct{ xs []int }

func (s Stream) AsyncIter() StreamIter { return StreamIter{xs: s.xs} }

func (s Stream) AsyncIterator() Iterator[int] {
	it := s.AsyncIter()

	return &it
}

// Cursor always hands out its iterator through the interface.
type Cursor struct{ xs []int }

func (c Cursor) AsyncIterator() Iterator[int] { return &StreamIter{xs: c.xs} }

var pending Iterable[int] = Stream{} // want `Iterator of 'Stream' is boxed when stored as 'Iterable\[int\]' \(ib:async\)`

var Results Iterable[int] = Stream{} // exported destination

var already Iterable[int] = Cursor{} // source iterator is reference-kind

func locals() {
	var rows Iterable[int] = Stream{} // want `Iterator of 'Stream' is boxed when stored as 'Iterable\[int\]' \(ib:async\)`
	_ = rows

	var reuse Iterable[int]
	reuse = Stream{} // want `Iterator of 'Stream' is boxed when stored as 'Iterable\[int\]' \(ib:async\)`
	_ = reuse
}

// syncIter satisfies the synchronous protocol, which is checked first.
type syncIter struct{ i int }

func (it *syncIter) Next() bool { it.i++; return it.i < 3 }

func (it *syncIter) Value() int { return it.i }

type Mixed struct{ xs []int }

func (Mixed) Iter() syncIter { return syncIter{} }

func (m Mixed) AsyncIterator() Iterator[int] { return &StreamIter{xs: m.xs} }

var mixed Iterable[int] = Mixed{} // want `Iterator of 'Mixed' is boxed when stored as 'Iterable\[int\]' \(ib:sync\)`
