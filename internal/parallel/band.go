package parallel

// Band is a half-open row range [Start, Start+Rows).
type Band struct {
	Start, Rows int
}

// Split divides rows into at most n contiguous bands whose sizes differ by
// at most one. It returns nil when rows or n is not positive.
func Split(rows, n int) []Band {
	if rows <= 0 || n <= 0 {
		return nil
	}
	n = min(n, rows)
	bands := make([]Band, n)
	base, extra := rows/n, rows%n
	start := 0
	for i := range bands {
		size := base
		if i < extra {
			size++
		}
		bands[i] = Band{Start: start, Rows: size}
		start += size
	}
	return bands
}
