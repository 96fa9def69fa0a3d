package berkeleydb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	major, _, _, s := LibraryVersion()
	assert.GreaterOrEqual(t, major, 4)
	assert.NotEmpty(t, s)

	v := Version()
	assert.True(t, strings.HasSuffix(v, "(Go bindings v"+version+")"), v)
	assert.True(t, strings.HasPrefix(v, LibraryVersionString()), v)
}
