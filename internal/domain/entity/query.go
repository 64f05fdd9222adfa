package entity

// filterArticles returns the articles accepted by keep, preserving order.
// The result is never nil.
func filterArticles(articles []*Article, keep func(*Article) bool) []*Article {
	out := make([]*Article, 0)
	for _, a := range articles {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

// distinct drops repeated values, keeping the first occurrence of each.
func distinct[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}

// project maps every article through fn, preserving order.
func project[T any](articles []*Article, fn func(*Article) T) []T {
	out := make([]T, 0, len(articles))
	for _, a := range articles {
		out = append(out, fn(a))
	}
	return out
}
