//go:build !unix

package berkeleydb

import "syscall"

func sysErrno(code int) error {
	return syscall.Errno(code)
}
