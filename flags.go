package berkeleydb

/*
#include <db.h>
*/
import "C"

// Flags is a bit set of DB_* flags passed to open, put, txn_begin and
// similar calls. Which flags are valid depends on the call; the engine
// rejects invalid combinations with EINVAL.
type Flags uint32

// Flags for opening a database or environment.
const (
	DbCreate     Flags = C.DB_CREATE
	DbExcl       Flags = C.DB_EXCL
	DbRdOnly     Flags = C.DB_RDONLY
	DbTruncate   Flags = C.DB_TRUNCATE
	DbThread     Flags = C.DB_THREAD
	DbAutoCommit Flags = C.DB_AUTO_COMMIT

	// environment only
	DbInitMpool Flags = C.DB_INIT_MPOOL
	DbInitLock  Flags = C.DB_INIT_LOCK
	DbInitLog   Flags = C.DB_INIT_LOG
	DbInitTxn   Flags = C.DB_INIT_TXN
	DbInitCdb   Flags = C.DB_INIT_CDB
	DbRecover   Flags = C.DB_RECOVER
	DbPrivate   Flags = C.DB_PRIVATE
)

// Database flags, set with Db.SetFlags before Open.
const (
	DbDup     Flags = C.DB_DUP
	DbDupSort Flags = C.DB_DUPSORT
	DbRecNum  Flags = C.DB_RECNUM
)

// Flags for Put.
const (
	DbNoOverwrite Flags = C.DB_NOOVERWRITE
	DbNoDupData   Flags = C.DB_NODUPDATA
	DbAppend      Flags = C.DB_APPEND

	// cursor puts
	DbKeyFirst Flags = C.DB_KEYFIRST
	DbKeyLast  Flags = C.DB_KEYLAST
	DbCurrent  Flags = C.DB_CURRENT
)

// Flags for transactions.
const (
	DbTxnNoSync     Flags = C.DB_TXN_NOSYNC
	DbTxnSync       Flags = C.DB_TXN_SYNC
	DbTxnNoWait     Flags = C.DB_TXN_NOWAIT
	DbReadCommitted Flags = C.DB_READ_COMMITTED
)

// DBType selects the access method of a database.
type DBType int

// Database types.
const (
	DbBtree   DBType = C.DB_BTREE
	DbHash    DBType = C.DB_HASH
	DbRecno   DBType = C.DB_RECNO
	DbQueue   DBType = C.DB_QUEUE
	DbUnknown DBType = C.DB_UNKNOWN
)

func (t DBType) String() string {
	switch t {
	case DbBtree:
		return "btree"
	case DbHash:
		return "hash"
	case DbRecno:
		return "recno"
	case DbQueue:
		return "queue"
	case DbUnknown:
		return "unknown"
	}
	return "invalid"
}

// CursorMode positions a cursor in Cursor.Get.
type CursorMode uint32

// Cursor modes.
const (
	CrsFirst     CursorMode = C.DB_FIRST
	CrsNext      CursorMode = C.DB_NEXT
	CrsPrev      CursorMode = C.DB_PREV
	CrsLast      CursorMode = C.DB_LAST
	CrsCurrent   CursorMode = C.DB_CURRENT
	CrsSet       CursorMode = C.DB_SET
	CrsSetRange  CursorMode = C.DB_SET_RANGE
	CrsNextDup   CursorMode = C.DB_NEXT_DUP
	CrsNextNoDup CursorMode = C.DB_NEXT_NODUP
	CrsPrevNoDup CursorMode = C.DB_PREV_NODUP
)

// positional reports whether the mode reads the key it is given.
func (m CursorMode) positional() bool {
	return m == CrsSet || m == CrsSetRange
}
