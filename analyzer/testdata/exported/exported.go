package exported

type Iterator[T any] interface {
	Next() bool
	Value() T
}

type Iterable[T any] interface {
	Iterator() Iterator[T]
}

type SliceIter struct {
	xs []int
	i  int
}

func (it *SliceIter) Next() bool { it.i++; return it.i <= len(it.xs) }

func (it *SliceIter) Value() int { return it.xs[it.i-1] }

type Slice struct{ xs []int }

func (s Slice) Iter() SliceIter { return SliceIter{xs: s.xs} }

func (s Slice) Iterator() Iterator[int] {
	it := s.Iter()

	return &it
}

var Shared Iterable[int] = Slice{} // want `Iterator of 'Slice' is boxed when stored as 'Iterable\[int\]' \(ib:sync\)`

type Row struct {
	Items Iterable[int]
}

func literal() {
	_ = Row{Items: Slice{}} // want `Iterator of 'Slice' is boxed when stored as 'Iterable\[int\]' \(ib:sync\)`
}

func assigned() {
	var r Row
	r.Items = Slice{} // want `Iterator of 'Slice' is boxed when stored as 'Iterable\[int\]' \(ib:sync\)`
	_ = r
}
