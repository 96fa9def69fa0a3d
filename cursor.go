package berkeleydb

/*
#include "bdb.h"
*/
import "C"
import (
	"github.com/pkg/errors"
)

// Cursor holds the current cursor position
type Cursor struct {
	ptr *C.DBC
	db  *Db
	txn *Txn
}

// alive reports whether the cursor is still backed by the engine. Closing
// the database frees its cursors, and a transaction may not outlive its
// cursors.
func (cursor *Cursor) alive() bool {
	return cursor.ptr != nil && cursor.db.alive() && (cursor.txn == nil || cursor.txn.alive())
}

// Get moves the cursor according to mode and returns the key/value pair
// at the new position. Running off either end yields ErrNotFound.
func (cursor *Cursor) Get(mode CursorMode) ([]byte, []byte, error) {
	return cursor.get(nil, mode)
}

func (cursor *Cursor) get(key []byte, mode CursorMode) ([]byte, []byte, error) {
	if !cursor.alive() {
		return nil, nil, ErrClosed
	}

	dbKey := outDBT()
	var in C.DBT
	if mode.positional() {
		in = inDBT(key)
		dbKey.data, dbKey.size = in.data, in.size
	}
	defer freeDBT(&in)
	dbVal := outDBT()

	ret := C.go_cursor_get(cursor.ptr, &dbKey, &dbVal, C.u_int32_t(mode))
	if err := errno(ret); err != nil {
		if dbKey.data != in.data {
			freeDBT(&dbKey)
		}
		freeDBT(&dbVal)
		return nil, nil, err
	}

	var k []byte
	if dbKey.data == in.data {
		// the engine left the search key in place
		k = append([]byte{}, key...)
	} else {
		k = takeDBT(&dbKey)
	}
	return k, takeDBT(&dbVal), nil
}

// First positions the cursor on the first record.
func (cursor *Cursor) First() ([]byte, []byte, error) {
	return cursor.get(nil, CrsFirst)
}

// Last positions the cursor on the last record.
func (cursor *Cursor) Last() ([]byte, []byte, error) {
	return cursor.get(nil, CrsLast)
}

// Next advances the cursor. On a fresh cursor it behaves like First.
func (cursor *Cursor) Next() ([]byte, []byte, error) {
	return cursor.get(nil, CrsNext)
}

// Prev moves the cursor back. On a fresh cursor it behaves like Last.
func (cursor *Cursor) Prev() ([]byte, []byte, error) {
	return cursor.get(nil, CrsPrev)
}

// Set positions the cursor on key, or returns ErrNotFound.
func (cursor *Cursor) Set(key []byte) ([]byte, error) {
	_, v, err := cursor.get(key, CrsSet)
	return v, err
}

// SetRange positions the cursor on the smallest key greater than or equal
// to key (B-tree databases only).
func (cursor *Cursor) SetRange(key []byte) ([]byte, []byte, error) {
	return cursor.get(key, CrsSetRange)
}

// Put stores a key/value pair through the cursor. flags is one of
// DbKeyFirst, DbKeyLast, DbCurrent or DbNoDupData.
func (cursor *Cursor) Put(key, value []byte, flags Flags) error {
	if !cursor.alive() {
		return ErrClosed
	}

	dbKey := inDBT(key)
	defer freeDBT(&dbKey)
	dbVal := inDBT(value)
	defer freeDBT(&dbVal)

	return errno(C.go_cursor_put(cursor.ptr, &dbKey, &dbVal, C.u_int32_t(flags)))
}

// Delete removes the record under the cursor. The cursor keeps its
// position; reading the current record afterwards yields ErrKeyEmpty.
func (cursor *Cursor) Delete() error {
	if !cursor.alive() {
		return ErrClosed
	}
	return errno(C.go_cursor_del(cursor.ptr, 0))
}

// Count returns the number of values stored under the current key.
func (cursor *Cursor) Count() (int, error) {
	if !cursor.alive() {
		return 0, ErrClosed
	}
	var n C.db_recno_t
	ret := C.go_cursor_count(cursor.ptr, &n)
	return int(n), errno(ret)
}

// ForEach walks all records from the first to the last and calls fn for
// each of them. Iteration stops at the first non-nil error from fn, which
// is returned.
func (cursor *Cursor) ForEach(fn func(key, value []byte) error) error {
	for k, v, err := cursor.First(); ; k, v, err = cursor.Next() {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(k, v); err != nil {
			return err
		}
	}
}

// Close releases the cursor. Closing a closed cursor is a no-op.
func (cursor *Cursor) Close() error {
	if cursor.ptr == nil {
		return nil
	}
	if !cursor.alive() {
		// freed together with its database or transaction
		cursor.ptr = nil
		return nil
	}
	ret := C.go_cursor_close(cursor.ptr)
	cursor.ptr = nil
	return errno(ret)
}
