package utils

// Paginate slices the list in place according to skip/limit and returns the
// 1-based page number. Callers report the total from before slicing.
func Paginate[T any](list *[]T, skip, limit int) int {
	total := len(*list)
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 0
	}

	start := skip
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	*list = (*list)[start:end]

	if limit > 0 {
		return skip/limit + 1
	}
	return 1
}
