package a

// almostIter is missing the current-element accessor, so it is not an
// iterator and Almost's iteration resolves through the interface getter.
type almostIter struct{}

func (almostIter) Next() bool { return false }

type Almost struct{}

func (Almost) Iter() almostIter { return almostIter{} }

func (Almost) Iterator() Iterator[int] { return &SliceIter{} }

var partial Iterable[int] = Almost{} // reference-kind after fall-through

// PairIter uses the combined move-next shape and needs no accessor.
type PairIter struct {
	xs []int
	i  int
}

func (p *PairIter) Next() (int, bool) {
	if p.i >= len(p.xs) {
		return 0, false
	}

	p.i++

	return p.xs[p.i-1], true
}

type Pairs struct{ xs []int }

func (p Pairs) Iter() PairIter { return PairIter{xs: p.xs} }

func (p Pairs) Iterator() Iterator[int] { return &SliceIter{xs: p.xs} }

var pairs Iterable[int] = Pairs{} // want `Iterator of 'Pairs' is boxed when stored as 'Iterable\[int\]' \(ib:sync\)`
