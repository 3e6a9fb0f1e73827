package devices

import (
	"fmt"
	"strings"
)

// makeName creates a prometheus metric name in the gogauge space. Characters
// that are not valid in a metric name become ':'.
func makeName(parts ...interface{}) string {
	args := make([]string, len(parts)+1)
	args[0] = "gogauge"
	for i, v := range parts {
		args[i+1] = fmt.Sprintf("%v", v)
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == ':':
			return r
		}
		return ':'
	}, strings.Join(args, "_"))
}
