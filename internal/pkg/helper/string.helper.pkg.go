package helper

// Truncate shortens a string for log output. Upstream error bodies can be
// full HTML pages; logs only need the head of them.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
