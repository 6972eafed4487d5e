package postgres

// clampPage normaliza limit/offset para LIMIT/OFFSET.
func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
