package completion

// List returns the immediate children of a directory matching the
// wantDirectories flag. Enumeration order is whatever the host yields;
// callers must not assume a specific order.
func List(h Host, dir Dir, wantDirectories bool) []Candidate {
	var matched []Candidate
	for _, candidate := range h.ListChildren(dir) {
		if candidate.IsDir == wantDirectories {
			matched = append(matched, candidate)
		}
	}
	return matched
}
