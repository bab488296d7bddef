package logwatch

import (
	"hash/fnv"
	"os"
	"strconv"
)

// syntheticIdentity approximates device/inode identity on platforms that
// don't expose syscall.Stat_t, by hashing size+mtime+mode. It cannot detect
// hard links, but it is stable across rescans of the same unmodified file.
func syntheticIdentity(fi os.FileInfo) Identity {
	h := fnv.New64a()
	h.Write([]byte(strconv.FormatInt(fi.Size(), 36)))
	h.Write([]byte(fi.ModTime().UTC().Format("20060102150405.000000000")))
	h.Write([]byte(fi.Mode().String()))
	return Identity{Dev: 0, Ino: h.Sum64()}
}
