//go:build unix

package logwatch

import (
	"os"
	"syscall"
)

func platformIdentity(fi os.FileInfo) Identity {
	if st, ok := fi.Sys().(*syscall.Stat_t); ok {
		return Identity{Dev: uint64(st.Dev), Ino: st.Ino}
	}
	return syntheticIdentity(fi)
}
