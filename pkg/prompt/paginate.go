package prompt

// window computes the visible slice of list indices for one rendered
// frame. The active row is kept near the middle of the page once the
// list scrolls. With loop enabled the window wraps through the full
// list, separators included; otherwise it clamps at the edges.
func window(total, active, pageSize int, loop bool) []int {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if total <= pageSize {
		rows := make([]int, total)
		for i := range rows {
			rows[i] = i
		}
		return rows
	}

	half := pageSize / 2
	rows := make([]int, pageSize)

	if loop {
		start := ((active-half)%total + total) % total
		for i := range rows {
			rows[i] = (start + i) % total
		}
		return rows
	}

	start := active - half
	if start < 0 {
		start = 0
	}
	if start > total-pageSize {
		start = total - pageSize
	}
	for i := range rows {
		rows[i] = start + i
	}
	return rows
}

const defaultPageSize = 7
