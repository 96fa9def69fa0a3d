//go:build unix

package berkeleydb

import "golang.org/x/sys/unix"

func sysErrno(code int) error {
	return unix.Errno(code)
}
