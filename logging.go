package berkeleydb

/*
#include <stdint.h>
*/
import "C"
import (
	"io"
	"log"
	"os"
	"sync"
)

// Logger receives error messages from the engine (DB_ENV->set_errcall)
// and informational messages from the binding.
// Implementations must be safe for concurrent use.
type Logger interface {
	Errorf(format string, args ...interface{})
	Infof(format string, args ...interface{})
}

type stdLogger struct {
	l *log.Logger
}

// NewLogger returns a Logger writing to w in the standard log format with
// a "[bdb]" component prefix.
func NewLogger(w io.Writer) Logger {
	return &stdLogger{l: log.New(w, "", log.LstdFlags)}
}

func (s *stdLogger) Errorf(format string, args ...interface{}) {
	s.l.Printf("ERROR [bdb] "+format, args...)
}

func (s *stdLogger) Infof(format string, args ...interface{}) {
	s.l.Printf("INFO [bdb] "+format, args...)
}

type discardLogger struct{}

func (discardLogger) Errorf(string, ...interface{}) {}
func (discardLogger) Infof(string, ...interface{})  {}

// DiscardLogger drops every message.
var DiscardLogger Logger = discardLogger{}

// DefaultLogger writes to stderr.
var DefaultLogger = NewLogger(os.Stderr)

// envLoggers maps the address of a DB_ENV to the Logger of its
// Environment. The engine only hands the DB_ENV pointer to the callback.
var envLoggers sync.Map

//export goBdbErrCall
func goBdbErrCall(env C.uintptr_t, prefix, msg *C.char) {
	v, ok := envLoggers.Load(uintptr(env))
	if !ok {
		return
	}
	text := C.GoString(msg)
	if prefix != nil {
		text = C.GoString(prefix) + ": " + text
	}
	v.(Logger).Errorf("%s", text)
}
