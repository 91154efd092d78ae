package trash

import (
	"path/filepath"
	"strconv"

	"github.com/babarot/brm/internal/fs"
	"github.com/babarot/brm/internal/record"
)

// ResolveName returns the first name not taken in trashDir: basename
// itself, then basename1, basename2 and so on. Dangling symlinks count as
// taken, and so do names still held by a record whose entry is gone. The
// probe and the later move are not atomic.
func ResolveName(trashDir, basename string, recorded record.Records) string {
	taken := func(name string) bool {
		if _, ok := recorded[name]; ok {
			return true
		}
		return fs.Exists(filepath.Join(trashDir, name))
	}

	name := basename
	for i := 1; taken(name); i++ {
		name = basename + strconv.Itoa(i)
	}
	return name
}
