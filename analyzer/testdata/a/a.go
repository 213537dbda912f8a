package a

type Iterator[T any] interface {
	Next() bool
	Value() T
}

type Iterable[T any] interface {
	Iterator() Iterator[T]
}

// SliceIter iterates over ints without allocation.
type SliceIter struct {
	xs []int
	i  int
}

func (it *SliceIter) Next() bool { it.i++; return it.i <= len(it.xs) }

func (it *SliceIter) Value() int { return it.xs[it.i-1] }

// Slice iterates cheaply through Iter and satisfies Iterable for callers
// that need the interface.
type Slice struct{ xs []int }

func (s Slice) Iter() SliceIter { return SliceIter{xs: s.xs} }

func (s Slice) Iterator() Iterator[int] {
	it := s.Iter()

	return &it
}

// Boxed always hands out its iterator through the interface.
type Boxed struct{ xs []int }

func (b Boxed) Iterator() Iterator[int] { return &SliceIter{xs: b.xs} }

var hidden Iterable[int] = Slice{} // want `Iterator of 'Slice' is boxed when stored as 'Iterable\[int\]' \(ib:sync\)`

var Shared Iterable[int] = Slice{} // exported destination

var already Iterable[int] = Boxed{} // source iterator is reference-kind

var fast Slice = Slice{} // destination iterator is value-kind

func locals() {
	var rows Iterable[int] = Slice{} // want `Iterator of 'Slice' is boxed when stored as 'Iterable\[int\]' \(ib:sync\)`
	_ = rows

	var reuse Iterable[int]
	reuse = Slice{} // want `Iterator of 'Slice' is boxed when stored as 'Iterable\[int\]' \(ib:sync\)`
	_ = reuse

	var keep Slice
	keep = Slice{xs: nil}
	_ = keep
}

type row struct {
	items Iterable[int]
	Items Iterable[int]
	cheap Slice
}

func literals() {
	_ = row{items: Slice{}} // want `Iterator of 'Slice' is boxed when stored as 'Iterable\[int\]' \(ib:sync\)`
	_ = row{Items: Slice{}}
	_ = row{cheap: Slice{}}

	r := row{}
	r.items = Slice{} // want `Iterator of 'Slice' is boxed when stored as 'Iterable\[int\]' \(ib:sync\)`
	r.Items = Slice{}
	_ = r
}

func indexed() {
	m := make(map[int]Iterable[int])
	m[0] = Slice{} // want `Iterator of 'Slice' is boxed when stored as 'Iterable\[int\]' \(ib:sync\)`
}

func multi() {
	var a, b Iterable[int]
	a, b = Slice{}, Slice{} // want `Iterator of 'Slice' is boxed when stored as 'Iterable\[int\]' \(ib:sync\)` `Iterator of 'Slice' is boxed when stored as 'Iterable\[int\]' \(ib:sync\)`
	_, _ = a, b
}

func tuples() {
	var a, b Iterable[int]
	a, b = pair() // tuple assignments carry no per-destination source type
	_, _ = a, b
}

func pair() (Iterable[int], Iterable[int]) { return Boxed{}, Boxed{} }

func suppressed() {
	var rows Iterable[int] = Slice{} //nolint:iterbox
	_ = rows
}
