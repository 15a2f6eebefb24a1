package config

import (
	"io/fs"
	"os"
	"path/filepath"
)

// overwriting fileSystem lets us use a mock filesystem for tests
var fileSystem fs.FS = osFS{}

type osFS struct{}

// osFS implements fs.FS. Paths are passed to the OS unchanged, so absolute
// paths work even though fs.ValidPath rejects them.
func (o osFS) Open(name string) (fs.File, error) {
	return os.Open(filepath.Clean(name))
}
