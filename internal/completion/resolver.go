package completion

// Resolved names the directory to enumerate and the prefix echoed in front
// of every proposal built from that scan.
type Resolved struct {
	Dir  Dir
	Echo string
}

// Resolve decides absolute-vs-relative handling for one scan root. The
// second return is false when the root contributes no proposals: an
// absolute prefix where absolute paths are not allowed, or a path that
// does not resolve to an existing directory. Neither is an error; the
// caller simply tries the next root.
func Resolve(h Host, base string, pre Prefix, allowAbsolute bool) (Resolved, bool) {
	if pre.Absolute {
		if !allowAbsolute {
			return Resolved{}, false
		}
		dir, ok := h.ResolveDir(pre.Display)
		if !ok {
			return Resolved{}, false
		}
		return Resolved{Dir: dir, Echo: pre.Display}, true
	}

	dir, ok := h.ResolveDir(base + "/" + pre.Display)
	if !ok {
		return Resolved{}, false
	}
	return Resolved{Dir: dir, Echo: pre.Display}, true
}
