package util

// InPlaceFilter keeps the elements of s for which p returns true, reusing the backing array
func InPlaceFilter[T any](s *[]T, p func(T) bool) {
	kept := (*s)[:0]

	for _, item := range *s {
		if p(item) {
			kept = append(kept, item)
		}
	}

	var zero T
	for i := len(kept); i < len(*s); i++ {
		(*s)[i] = zero
	}

	*s = kept
}
