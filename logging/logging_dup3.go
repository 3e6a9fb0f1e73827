//go:build linux

package logging

import (
	"os"

	"golang.org/x/sys/unix"
)

func stderrToLogfile(logfile *os.File) error {
	return unix.Dup3(int(logfile.Fd()), 2, 0)
}
