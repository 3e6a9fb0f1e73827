package devices

import (
	"path"
	"strings"
)

// filter selects device names from a rule list:
//
// 1. Included names are globs, e.g. "coretemp*" or "eth0"
// 2. Excluded names are prefixed by `!`, e.g. "!nvme*"
// 3. If the list contains *only* exclusions, then all names not excluded are included
// 4. If the list contains any non-exclusions, then only those names are included
// 5. Exclusion overrides inclusion
//
// "all" is synonymous with an empty include set.
type filter struct {
	includes []string
	excludes []string
}

func newFilter(rules []string) filter {
	var f filter
	for _, r := range rules {
		r = strings.TrimSpace(r)
		switch {
		case r == "" || r == "all":
		case strings.HasPrefix(r, "!"):
			f.excludes = append(f.excludes, strings.TrimPrefix(r, "!"))
		default:
			f.includes = append(f.includes, r)
		}
	}
	return f
}

func (f filter) match(name string) bool {
	if globAny(f.excludes, name) {
		return false
	}
	return len(f.includes) == 0 || globAny(f.includes, name)
}

func globAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if p == name {
			return true
		}
		if ok, err := path.Match(p, name); err == nil && ok {
			return true
		}
	}
	return false
}
