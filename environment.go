package berkeleydb

/*
#include <stdlib.h>
#include "bdb.h"
*/
import "C"
import (
	"unsafe"

	"github.com/pkg/errors"
)

// Environment groups databases that share a cache, lock tables, logs and
// transactions. Databases created with NewDBInEnvironment must be closed
// before the environment.
type Environment struct {
	ptr    *C.DB_ENV
	logger Logger
}

// NewEnvironment creates an environment handle. Configure it with the
// Set* methods, then call Open.
func NewEnvironment() (*Environment, error) {
	var ptr *C.DB_ENV
	if err := errno(C.db_env_create(&ptr, 0)); err != nil {
		return nil, err
	}
	return &Environment{ptr: ptr, logger: DiscardLogger}, nil
}

func (env *Environment) key() uintptr {
	return uintptr(unsafe.Pointer(env.ptr))
}

// SetLogger routes the engine's error messages to l. A nil Logger turns
// the routing off.
func (env *Environment) SetLogger(l Logger) error {
	if env.ptr == nil {
		return ErrClosed
	}
	if l == nil {
		envLoggers.Delete(env.key())
		env.logger = DiscardLogger
		return errno(C.go_env_set_errcall(env.ptr, 0))
	}
	env.logger = l
	envLoggers.Store(env.key(), l)
	return errno(C.go_env_set_errcall(env.ptr, 1))
}

// SetCacheSize sets the size of the shared memory pool before Open.
// ncache splits the cache into that many regions.
func (env *Environment) SetCacheSize(bytes uint64, ncache int) error {
	if env.ptr == nil {
		return ErrClosed
	}
	const gig = 1 << 30
	gbytes, rest := bytes/gig, bytes%gig
	return errno(C.go_env_set_cachesize(env.ptr, C.u_int32_t(gbytes), C.u_int32_t(rest), C.int(ncache)))
}

// Open opens the environment rooted at home, which must exist. mode is
// used for files the engine creates; 0 selects the engine default.
func (env *Environment) Open(home string, flags Flags, mode int) error {
	if env.ptr == nil {
		return ErrClosed
	}
	dir := C.CString(home)
	defer freeCString(dir)

	if err := errno(C.go_env_open(env.ptr, dir, C.u_int32_t(flags), C.int(mode))); err != nil {
		return errors.Wrapf(err, "open environment %q", home)
	}
	env.logger.Infof("environment opened at %s (flags 0x%x)", home, uint32(flags))
	return nil
}

// Home returns the home directory of an open environment.
func (env *Environment) Home() (string, error) {
	if env.ptr == nil {
		return "", ErrClosed
	}
	var home *C.char
	if err := errno(C.go_env_get_home(env.ptr, &home)); err != nil {
		return "", err
	}
	return C.GoString(home), nil
}

// Close closes the environment. Like Db.Close, the handle is unusable
// afterwards even when an error is returned.
func (env *Environment) Close() error {
	if env.ptr == nil {
		return nil
	}
	key := env.key()
	ret := C.go_env_close(env.ptr, 0)
	envLoggers.Delete(key)
	env.ptr = nil
	if err := errno(ret); err != nil {
		env.logger.Errorf("close environment: %v", err)
		return err
	}
	return nil
}

// BeginTxn starts a transaction, nested in parent when parent is not nil.
func (env *Environment) BeginTxn(parent *Txn, flags Flags) (*Txn, error) {
	if env.ptr == nil {
		return nil, ErrClosed
	}
	parentPtr, err := parent.handle()
	if err != nil {
		return nil, err
	}

	var ptr *C.DB_TXN
	if err := errno(C.go_env_txn_begin(env.ptr, parentPtr, &ptr, C.u_int32_t(flags))); err != nil {
		return nil, err
	}
	return &Txn{ptr: ptr, env: env, parent: parent}, nil
}

// Update runs fn in a new transaction. The transaction is committed when
// fn returns nil and aborted when fn returns an error or panics. fn must
// not commit or abort txn itself.
func (env *Environment) Update(fn func(txn *Txn) error) (err error) {
	txn, err := env.BeginTxn(nil, 0)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			if aerr := txn.Abort(); aerr != nil {
				env.logger.Errorf("abort after panic: %v", aerr)
			}
			panic(p)
		}
	}()

	if err = fn(txn); err != nil {
		if aerr := txn.Abort(); aerr != nil {
			env.logger.Errorf("abort after %v: %v", err, aerr)
		}
		return err
	}
	return txn.Commit()
}

// View runs fn in a transaction that is always aborted afterwards. Use it
// for reads that need a consistent view under locking.
func (env *Environment) View(fn func(txn *Txn) error) (err error) {
	txn, err := env.BeginTxn(nil, 0)
	if err != nil {
		return err
	}
	defer func() {
		aerr := txn.Abort()
		if aerr == nil {
			return
		}
		if err == nil {
			err = aerr
			return
		}
		env.logger.Errorf("abort after %v: %v", err, aerr)
	}()
	return fn(txn)
}
