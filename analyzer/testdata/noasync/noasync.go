package noasync

import "context"

type AsyncIterator[T any] interface {
	Next(ctx context.Context) bool
	Value() T
}

type AsyncIterable[T any] interface {
	AsyncIterator() AsyncIterator[T]
}

type StreamIter struct {
	xs []int
	i  int
}

func (it *StreamIter) Next(_ context.Context) bool { it.i++; return it.i <= len(it.xs) }

func (it *StreamIter) Value() int { return it.xs[it.i-1] }

type Stream struct{ xs []int }

func (s Stream) AsyncIter() StreamIter { return StreamIter{xs: s.xs} }

func (s Stream) AsyncIterator() AsyncIterator[int] {
	it := s.AsyncIter()

	return &it
}

// With async checks disabled, the async pattern is not a finding.
var pending AsyncIterable[int] = Stream{}

type Iterator[T any] interface {
	Next() bool
	Value() T
}

type Iterable[T any] interface {
	Iterator() Iterator[T]
}

type syncIter struct{ i int }

func (it *syncIter) Next() bool { it.i++; return it.i < 3 }

func (it *syncIter) Value() int { return it.i }

type boxedIter struct{ i int }

func (it *boxedIter) Next() bool { it.i++; return it.i < 3 }

func (it *boxedIter) Value() int { return it.i }

type Slice struct{}

func (Slice) Iter() syncIter { return syncIter{} }

func (Slice) Iterator() Iterator[int] { return &boxedIter{} }

// Sync checks stay active.
var hidden Iterable[int] = Slice{} // want `Iterator of 'Slice' is boxed when stored as 'Iterable\[int\]' \(ib:sync\)`
