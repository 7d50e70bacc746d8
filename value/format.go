package value

import "strconv"

func formatInt(i int64) string { return strconv.FormatInt(i, 10) }

// formatFloat renders the shortest decimal that round-trips, falling
// back to scientific notation only when Go's 'g' verb would otherwise
// choose it for very large/small magnitudes.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
