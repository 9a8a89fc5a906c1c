package parse

import "iter"

// Pull returns an iterator applying p repeatedly over src until the end of
// the input.
func Pull[T any](p Parser[T], src string) iter.Seq2[T, error] {
	return PullUntil(p, EOI, src)
}

// PullUntil applies p repeatedly over src. When p fails the iterator stops
// quietly if end matches at that position, and otherwise yields the error
// and stops. A match that consumes nothing also stops the iterator, with
// end's error unless end matches there.
func PullUntil[T, U any](p Parser[T], end Parser[U], src string) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		cur := NewCursor(src)
		for {
			r, err := p.Parse(cur)
			if err != nil {
				if _, eerr := end.Parse(cur); eerr == nil {
					return
				}
				var zero T
				yield(zero, err)
				return
			}
			if !yield(r.Value, nil) {
				return
			}
			if r.Next.Offset() == cur.Offset() {
				if _, eerr := end.Parse(r.Next); eerr != nil {
					var zero T
					yield(zero, eerr.Cont(r.Hint))
				}
				return
			}
			cur = r.Next
		}
	}
}
