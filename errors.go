package berkeleydb

/*
#include <db.h>
*/
import "C"

import (
	"fmt"

	"github.com/pkg/errors"
)

// Errno is a status code defined by BerkeleyDB itself (the DB_* error
// values in db.h). Non-zero codes outside that range are system errno
// values and are returned as unix.Errno instead.
type Errno int

// BerkeleyDB reserves -30800 through -30999 for its own error codes.
const minErrno, maxErrno = -30999, -30800

// Error codes returned by the engine.
const (
	ErrBufferSmall    Errno = C.DB_BUFFER_SMALL
	ErrKeyEmpty       Errno = C.DB_KEYEMPTY
	ErrKeyExist       Errno = C.DB_KEYEXIST
	ErrDeadlock       Errno = C.DB_LOCK_DEADLOCK
	ErrLockNotGranted Errno = C.DB_LOCK_NOTGRANTED
	ErrNotFound       Errno = C.DB_NOTFOUND
	ErrOldVersion     Errno = C.DB_OLD_VERSION
	ErrPageNotFound   Errno = C.DB_PAGE_NOTFOUND
	ErrRepHandleDead  Errno = C.DB_REP_HANDLE_DEAD
	ErrRunRecovery    Errno = C.DB_RUNRECOVERY
	ErrSecondaryBad   Errno = C.DB_SECONDARY_BAD
	ErrVerifyBad      Errno = C.DB_VERIFY_BAD
)

// ErrClosed is returned when a method is called on a handle that was
// closed, consumed by Remove/Rename, or never created.
var ErrClosed = errors.New("berkeleydb: handle is closed")

func (e Errno) Error() string {
	s := C.GoString(C.db_strerror(C.int(e)))
	if s == "" {
		return fmt.Sprintf("berkeleydb: errno %d", int(e))
	}
	return s
}

// Code returns the numeric status as reported by the engine.
func (e Errno) Code() int {
	return int(e)
}

// errno converts a status returned by the C layer into an error value,
// which is nil on success.
func errno(ret C.int) error {
	code := int(ret)
	switch {
	case code == 0:
		return nil
	case code > 0:
		return sysErrno(code)
	default:
		return Errno(code)
	}
}

// _errno is for use by tests that can't import C
func _errno(ret int) error {
	return errno(C.int(ret))
}

// IsEngineError reports whether err carries one of BerkeleyDB's own
// status codes.
func IsEngineError(err error) bool {
	var e Errno
	if !errors.As(err, &e) {
		return false
	}
	return minErrno <= int(e) && int(e) <= maxErrno
}
