//go:build !linux && !darwin && !freebsd && !openbsd && !netbsd && !dragonfly

package logging

import "os"

// stderr stays on the terminal where it cannot be duplicated
func stderrToLogfile(*os.File) error {
	return nil
}
