package jikan

// MergeReviews concatenates review pages in order, keeping the first
// occurrence of each mal_id.
func MergeReviews(pages ...[]Review) []Review {
	return mergeByID(func(r Review) int { return r.MalID }, pages...)
}

// MergeEpisodes concatenates episode pages in order, keeping the first
// occurrence of each mal_id.
func MergeEpisodes(pages ...[]Episode) []Episode {
	return mergeByID(func(e Episode) int { return e.MalID }, pages...)
}

func mergeByID[T any](id func(T) int, pages ...[]T) []T {
	n := 0
	for _, p := range pages {
		n += len(p)
	}
	out := make([]T, 0, n)
	seen := make(map[int]struct{}, n)
	for _, p := range pages {
		for _, v := range p {
			k := id(v)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}
