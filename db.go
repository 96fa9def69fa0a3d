package berkeleydb

/*
#cgo LDFLAGS: -ldb
#include <stdlib.h>
#include "bdb.h"
*/
import "C"
import (
	"github.com/pkg/errors"
)

// Db is a BerkeleyDB database handle.
// A handle is not safe for concurrent use unless it was opened with DbThread.
type Db struct {
	ptr *C.DB
	env *Environment
}

// NewDB creates a standalone database handle.
func NewDB() (*Db, error) {
	return newDB(nil)
}

// NewDBInEnvironment creates a database handle inside an open environment.
// Relative file names passed to Open are resolved against the environment home.
func NewDBInEnvironment(env *Environment) (*Db, error) {
	if env == nil || env.ptr == nil {
		return nil, ErrClosed
	}
	return newDB(env)
}

func newDB(env *Environment) (*Db, error) {
	var envPtr *C.DB_ENV
	if env != nil {
		envPtr = env.ptr
	}

	var ptr *C.DB
	if err := errno(C.db_create(&ptr, envPtr, 0)); err != nil {
		return nil, err
	}
	return &Db{ptr: ptr, env: env}, nil
}

// alive reports whether the handle is still backed by the engine. Closing
// the environment closes its databases as well.
func (db *Db) alive() bool {
	return db.ptr != nil && (db.env == nil || db.env.ptr != nil)
}

// Environment returns the environment the handle was created in, or nil.
func (db *Db) Environment() *Environment {
	return db.env
}

// SetFlags configures the database before it is opened, e.g. DbDup.
func (db *Db) SetFlags(flags Flags) error {
	if !db.alive() {
		return ErrClosed
	}
	return errno(C.go_db_set_flags(db.ptr, C.u_int32_t(flags)))
}

// Open opens a database file. An empty dbname opens the file's only
// database; an empty filename creates an in-memory database.
func (db *Db) Open(filename, dbname string, dbtype DBType, flags Flags) error {
	return db.OpenWithTxn(nil, filename, dbname, dbtype, flags)
}

// OpenWithTxn opens the database inside the transaction txn, which makes
// the creation of the database part of that transaction.
func (db *Db) OpenWithTxn(txn *Txn, filename, dbname string, dbtype DBType, flags Flags) error {
	if !db.alive() {
		return ErrClosed
	}
	txnPtr, err := txn.handle()
	if err != nil {
		return err
	}

	file := cstring(filename)
	defer freeCString(file)
	name := cstring(dbname)
	defer freeCString(name)

	ret := C.go_db_open(db.ptr, txnPtr, file, name, C.DBTYPE(dbtype), C.u_int32_t(flags), 0)
	return errors.Wrapf(errno(ret), "open %q", filename)
}

// Close closes the database. The handle cannot be used afterwards, even
// if an error is returned. Closing a closed handle is a no-op.
func (db *Db) Close() error {
	if db.ptr == nil {
		return nil
	}
	if !db.alive() {
		// DB_ENV->close already closed it
		db.ptr = nil
		return nil
	}
	ret := C.go_db_close(db.ptr, 0)
	db.ptr = nil
	return errno(ret)
}

// Flags returns the flags the database was opened with.
func (db *Db) Flags() (Flags, error) {
	if !db.alive() {
		return 0, ErrClosed
	}
	var flags C.u_int32_t
	ret := C.go_db_get_open_flags(db.ptr, &flags)
	return Flags(flags), errno(ret)
}

// Type returns the access method of an open database.
func (db *Db) Type() (DBType, error) {
	if !db.alive() {
		return DbUnknown, ErrClosed
	}
	var t C.DBTYPE
	ret := C.go_db_get_type(db.ptr, &t)
	return DBType(t), errno(ret)
}

// Remove deletes the database file. It must be called on a handle that
// was never opened, and the handle is consumed whatever the outcome.
func (db *Db) Remove(filename string) error {
	if !db.alive() {
		return ErrClosed
	}
	file := C.CString(filename)
	defer freeCString(file)

	ret := C.go_db_remove(db.ptr, file, nil)
	db.ptr = nil
	return errors.Wrapf(errno(ret), "remove %q", filename)
}

// Rename renames the database file. Like Remove it consumes the handle.
func (db *Db) Rename(oldname, newname string) error {
	if !db.alive() {
		return ErrClosed
	}
	oname := C.CString(oldname)
	defer freeCString(oname)
	nname := C.CString(newname)
	defer freeCString(nname)

	ret := C.go_db_rename(db.ptr, oname, nil, nname)
	db.ptr = nil
	return errors.Wrapf(errno(ret), "rename %q to %q", oldname, newname)
}

// Put stores a key/value pair, replacing an existing value.
func (db *Db) Put(key, value []byte) error {
	return db.put(nil, key, value, 0)
}

// PutWithFlags stores a key/value pair using put flags such as
// DbNoOverwrite, which makes Put fail with ErrKeyExist.
func (db *Db) PutWithFlags(key, value []byte, flags Flags) error {
	return db.put(nil, key, value, flags)
}

func (db *Db) put(txn *Txn, key, value []byte, flags Flags) error {
	if !db.alive() {
		return ErrClosed
	}
	txnPtr, err := txn.handle()
	if err != nil {
		return err
	}

	dbKey := inDBT(key)
	defer freeDBT(&dbKey)
	dbVal := inDBT(value)
	defer freeDBT(&dbVal)

	return errno(C.go_db_put(db.ptr, txnPtr, &dbKey, &dbVal, C.u_int32_t(flags)))
}

// Get returns the value stored under key, or ErrNotFound.
func (db *Db) Get(key []byte) ([]byte, error) {
	return db.get(nil, key)
}

func (db *Db) get(txn *Txn, key []byte) ([]byte, error) {
	if !db.alive() {
		return nil, ErrClosed
	}
	txnPtr, err := txn.handle()
	if err != nil {
		return nil, err
	}

	dbKey := inDBT(key)
	defer freeDBT(&dbKey)
	dbVal := outDBT()

	ret := C.go_db_get(db.ptr, txnPtr, &dbKey, &dbVal, 0)
	if err := errno(ret); err != nil {
		freeDBT(&dbVal)
		return nil, err
	}
	return takeDBT(&dbVal), nil
}

// Delete removes key and all its values, or returns ErrNotFound.
func (db *Db) Delete(key []byte) error {
	return db.del(nil, key)
}

func (db *Db) del(txn *Txn, key []byte) error {
	if !db.alive() {
		return ErrClosed
	}
	txnPtr, err := txn.handle()
	if err != nil {
		return err
	}

	dbKey := inDBT(key)
	defer freeDBT(&dbKey)

	return errno(C.go_db_del(db.ptr, txnPtr, &dbKey, 0))
}

// Exists reports whether key is present without fetching its value.
func (db *Db) Exists(key []byte) (bool, error) {
	return db.exists(nil, key)
}

func (db *Db) exists(txn *Txn, key []byte) (bool, error) {
	if !db.alive() {
		return false, ErrClosed
	}
	txnPtr, err := txn.handle()
	if err != nil {
		return false, err
	}

	dbKey := inDBT(key)
	defer freeDBT(&dbKey)

	err = errno(C.go_db_exists(db.ptr, txnPtr, &dbKey, 0))
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrKeyEmpty) {
		return false, nil
	}
	return err == nil, err
}

// Sync flushes cached pages of the database to disk.
func (db *Db) Sync() error {
	if !db.alive() {
		return ErrClosed
	}
	return errno(C.go_db_sync(db.ptr))
}

// Cursor returns a cursor over the database. The cursor must be closed
// before the database.
func (db *Db) Cursor() (*Cursor, error) {
	return db.cursor(nil)
}

func (db *Db) cursor(txn *Txn) (*Cursor, error) {
	if !db.alive() {
		return nil, ErrClosed
	}
	txnPtr, err := txn.handle()
	if err != nil {
		return nil, err
	}

	var dbc *C.DBC
	if err := errno(C.go_db_cursor(db.ptr, txnPtr, &dbc, 0)); err != nil {
		return nil, err
	}
	return &Cursor{ptr: dbc, db: db, txn: txn}, nil
}
