package berkeleydb

/*
#include <stdlib.h>
#include <db.h>
*/
import "C"
import "unsafe"

// inDBT describes b in C memory so the DBT can cross the cgo boundary
// without carrying a Go pointer. Release it with freeDBT.
func inDBT(b []byte) C.DBT {
	var d C.DBT
	if len(b) > 0 {
		d.data = C.CBytes(b)
		d.size = C.u_int32_t(len(b))
	}
	return d
}

// outDBT asks the engine to malloc the returned data, which keeps reads
// valid on handles opened with DbThread.
func outDBT() C.DBT {
	var d C.DBT
	d.flags = C.DB_DBT_MALLOC
	return d
}

func freeDBT(d *C.DBT) {
	if d.data != nil {
		C.free(d.data)
		d.data = nil
	}
}

// takeDBT copies engine-allocated data into a Go slice and frees it.
// A record that was found never yields nil, even when it is empty.
func takeDBT(d *C.DBT) []byte {
	if d.data == nil {
		return []byte{}
	}
	b := C.GoBytes(d.data, C.int(d.size))
	freeDBT(d)
	return b
}

// cstring returns nil for an empty string so optional names stay NULL.
func cstring(s string) *C.char {
	if s == "" {
		return nil
	}
	return C.CString(s)
}

func freeCString(p *C.char) {
	if p != nil {
		C.free(unsafe.Pointer(p))
	}
}
