//go:build !unix

package logwatch

import "os"

func platformIdentity(fi os.FileInfo) Identity {
	return syntheticIdentity(fi)
}
