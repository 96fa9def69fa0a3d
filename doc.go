// Package berkeleydb provides Go bindings for Oracle BerkeleyDB.
//
// BerkeleyDB is an embedded transactional key-value store with B-tree,
// hash, queue and recno access methods. Its C API is method-style: every
// handle (DB, DB_ENV, DBC, DB_TXN) is a struct of function pointers.
// cgo cannot call those directly, so a small C layer (bdb.c) turns each
// method into a flat function that forwards its arguments and returns the
// engine's status code. This package wraps that layer in Go types.
//
// # Quick Start
//
// Open a standalone database file:
//
//	db, err := berkeleydb.NewDB()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := db.Open("data.db", "", berkeleydb.DbBtree, berkeleydb.DbCreate); err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
//	if err := db.Put([]byte("key"), []byte("value")); err != nil {
//	    log.Fatal(err)
//	}
//	value, err := db.Get([]byte("key"))
//
// # Environments and Transactions
//
// Transactions need an environment opened with DbInitTxn (plus the lock,
// log and mpool subsystems). OpenEnvironment with DefaultConfig does that:
//
//	env, err := berkeleydb.OpenEnvironment("/path/to/home", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer env.Close()
//
//	db, _ := berkeleydb.NewDBInEnvironment(env)
//	db.Open("data.db", "", berkeleydb.DbBtree, berkeleydb.DbCreate|berkeleydb.DbAutoCommit)
//	defer db.Close()
//
//	err = env.Update(func(txn *berkeleydb.Txn) error {
//	    return txn.Put(db, []byte("key"), []byte("value"))
//	})
//
// # Cursors
//
//	cur, err := db.Cursor()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer cur.Close()
//	err = cur.ForEach(func(k, v []byte) error {
//	    fmt.Printf("%s=%s\n", k, v)
//	    return nil
//	})
//
// # Errors
//
// Engine status codes are returned as Errno (ErrNotFound, ErrKeyExist,
// ErrDeadlock, ...). System errors (ENOENT, EINVAL, ...) are returned as
// unix.Errno. Open, Remove and Rename add the file name to the error;
// use errors.Is to test for a specific code.
//
// # Handle Lifetime
//
// Handles are not freed by finalizers. Close cursors before their
// database or transaction, databases before their environment. After
// Close, Remove, Rename, Commit or Abort a handle is dead and its methods
// return ErrClosed.
//
// # Thread Safety
//
//   - Db, Environment: safe for concurrent use only when opened with DbThread
//   - Cursor, Txn: use from one goroutine at a time
//
// # Building
//
// The package links against the system library (-ldb). On Debian/Ubuntu:
//
//	apt install libdb-dev
package berkeleydb
