//go:build darwin || freebsd || openbsd || netbsd || dragonfly

package logging

import (
	"os"

	"golang.org/x/sys/unix"
)

func stderrToLogfile(logfile *os.File) error {
	return unix.Dup2(int(logfile.Fd()), 2)
}
