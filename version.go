package berkeleydb

/*
#include <db.h>
*/
import "C"
import "fmt"

const version = "0.1.0"

// Version returns the version of the database library and binding.
func Version() string {
	return fmt.Sprintf("%s (Go bindings v%s)", LibraryVersionString(), version)
}

// LibraryVersion returns the major, minor and patch version numbers of
// the linked BerkeleyDB library and its version string.
func LibraryVersion() (major, minor, patch int, s string) {
	var maj, mnr, pat C.int
	verstr := C.db_version(&maj, &mnr, &pat)
	return int(maj), int(mnr), int(pat), C.GoString(verstr)
}

// LibraryVersionString returns the full version banner of the library.
func LibraryVersionString() string {
	return C.GoString(C.db_full_version(nil, nil, nil, nil, nil))
}
