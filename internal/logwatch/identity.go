package logwatch

import "os"

// Identity is the (device, inode) pair used to detect hard-linked or
// bind-mounted duplicates of the same underlying file, per spec.md 4.3
// step 3.
type Identity struct {
	Dev uint64
	Ino uint64
}

// identityOf extracts the platform Identity for fi, falling back to a
// synthetic key derived from size/mtime on platforms without st_dev/st_ino
// (see identity_unix.go / identity_other.go).
func identityOf(fi os.FileInfo) Identity {
	return platformIdentity(fi)
}
