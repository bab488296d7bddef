package logwatch

import (
	"archive/tar"
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// ArchiveMember is one file extracted from a walked archive, ready to be
// scheduled as a new watch name with Source == SourceArchive.
type ArchiveMember struct {
	Name string // archive-relative path, e.g. "var/log/app.log"
	Path string // extracted temp-file path on disk
	Size int64
}

// walkArchive extracts every regular file from a .zip or .tar.gz archive
// into destDir (one temp file per member) and returns their members. Empty
// members are skipped, matching spec.md 4.3 step 4's "visibility=true
// unless empty".
func walkArchive(path, destDir string) ([]ArchiveMember, error) {
	switch {
	case strings.HasSuffix(path, ".zip"):
		return walkZip(path, destDir)
	case strings.HasSuffix(path, ".tar.gz") || strings.HasSuffix(path, ".tgz"):
		return walkTarGz(path, destDir)
	default:
		return nil, fmt.Errorf("logwatch: unrecognized archive format: %s", path)
	}
}

func walkZip(path, destDir string) ([]ArchiveMember, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var members []ArchiveMember
	for _, f := range r.File {
		if f.FileInfo().IsDir() || f.UncompressedSize64 == 0 {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return members, fmt.Errorf("logwatch: open %s in %s: %w", f.Name, path, err)
		}
		dest, err := extractMember(destDir, f.Name, rc)
		rc.Close()
		if err != nil {
			return members, err
		}
		members = append(members, ArchiveMember{Name: f.Name, Path: dest, Size: int64(f.UncompressedSize64)})
	}
	return members, nil
}

func walkTarGz(path, destDir string) ([]ArchiveMember, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	var members []ArchiveMember
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return members, fmt.Errorf("logwatch: read tar in %s: %w", path, err)
		}
		if hdr.Typeflag != tar.TypeReg || hdr.Size == 0 {
			continue
		}
		dest, err := extractMember(destDir, hdr.Name, tr)
		if err != nil {
			return members, err
		}
		members = append(members, ArchiveMember{Name: hdr.Name, Path: dest, Size: hdr.Size})
	}
	return members, nil
}

func extractMember(destDir, name string, r io.Reader) (string, error) {
	safeName := strings.ReplaceAll(name, string(filepath.Separator), "_")
	dest := filepath.Join(destDir, safeName)
	out, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("logwatch: create extracted member %s: %w", dest, err)
	}
	defer out.Close()
	if _, err := io.Copy(out, r); err != nil {
		return "", fmt.Errorf("logwatch: extract %s: %w", name, err)
	}
	return dest, nil
}
