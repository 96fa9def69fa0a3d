package berkeleydb

/*
#include "bdb.h"
*/
import "C"

// Txn is a transaction begun in an environment opened with DbInitTxn.
// A Txn must only be used by one goroutine at a time. After Commit or
// Abort the handle is dead and all its methods return ErrClosed.
type Txn struct {
	ptr    *C.DB_TXN
	env    *Environment
	parent *Txn
}

// alive reports whether the transaction is still open in the engine.
// Finishing the parent or closing the environment ends it as well.
func (txn *Txn) alive() bool {
	return txn.ptr != nil && txn.env.ptr != nil && (txn.parent == nil || txn.parent.alive())
}

// handle returns the C handle of txn. A nil *Txn means "no transaction";
// a finished transaction is an error rather than a silent fallback to
// auto-commit.
func (txn *Txn) handle() (*C.DB_TXN, error) {
	if txn == nil {
		return nil, nil
	}
	if !txn.alive() {
		return nil, ErrClosed
	}
	return txn.ptr, nil
}

// ID returns the engine's identifier of the transaction, 0 once finished.
func (txn *Txn) ID() uint32 {
	if txn == nil || !txn.alive() {
		return 0
	}
	return uint32(C.go_txn_id(txn.ptr))
}

// Commit ends the transaction and makes its changes durable according
// to the environment's sync settings.
func (txn *Txn) Commit() error {
	return txn.CommitFlags(0)
}

// CommitFlags commits with DbTxnSync or DbTxnNoSync overriding the
// environment default.
func (txn *Txn) CommitFlags(flags Flags) error {
	if !txn.alive() {
		txn.ptr = nil
		return ErrClosed
	}
	ret := C.go_txn_commit(txn.ptr, C.u_int32_t(flags))
	txn.ptr = nil
	return errno(ret)
}

// Abort discards all changes made in the transaction. Aborting a finished
// transaction is a no-op.
func (txn *Txn) Abort() error {
	if txn == nil {
		return nil
	}
	if !txn.alive() {
		// resolved together with its parent or environment
		txn.ptr = nil
		return nil
	}
	ret := C.go_txn_abort(txn.ptr)
	txn.ptr = nil
	return errno(ret)
}

// Put stores a key/value pair in db as part of the transaction.
func (txn *Txn) Put(db *Db, key, value []byte) error {
	return db.put(txn, key, value, 0)
}

// PutWithFlags is Put with put flags such as DbNoOverwrite.
func (txn *Txn) PutWithFlags(db *Db, key, value []byte, flags Flags) error {
	return db.put(txn, key, value, flags)
}

// Get reads key from db as part of the transaction.
func (txn *Txn) Get(db *Db, key []byte) ([]byte, error) {
	return db.get(txn, key)
}

// Delete removes key from db as part of the transaction.
func (txn *Txn) Delete(db *Db, key []byte) error {
	return db.del(txn, key)
}

// Exists reports whether key is present in db.
func (txn *Txn) Exists(db *Db, key []byte) (bool, error) {
	return db.exists(txn, key)
}

// Cursor opens a cursor on db inside the transaction. It must be closed
// before the transaction is committed or aborted.
func (txn *Txn) Cursor(db *Db) (*Cursor, error) {
	return db.cursor(txn)
}
