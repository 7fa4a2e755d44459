package utils

// Move returns a new slice with the element at from removed and reinserted at
// to. The result is always a permutation of the input: same elements, same
// length, only positions change. Out-of-range indexes return a copy of the
// input unchanged. Persisting the resulting order is the caller's concern.
func Move[T any](items []T, from, to int) []T {
	out := make([]T, len(items))
	copy(out, items)

	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}

	moved := out[from]
	out = append(out[:from], out[from+1:]...)

	rest := make([]T, 0, len(items))
	rest = append(rest, out[:to]...)
	rest = append(rest, moved)
	rest = append(rest, out[to:]...)
	return rest
}
