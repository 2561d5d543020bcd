// Package ziparchive streams a ZIP archive from a byte buffer into an
// in-memory name→bytes mapping, enforcing size, entry-count, and path-safety
// limits (spec §4.2).
package ziparchive

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"

	"github.com/jwsched/parser/internal/xerrors"
)

// Limits bounds archive extraction (spec §3 RawArchive invariants).
type Limits struct {
	MaxTotalBytes int64
	MaxEntries    int
}

// DefaultLimits returns limits generous enough for real-world publication
// archives while still bounding decompression-bomb exposure.
func DefaultLimits() Limits {
	return Limits{
		MaxTotalBytes: 512 << 20, // 512 MiB
		MaxEntries:    20000,
	}
}

// Archive is an in-memory mapping from entry path (as stored) to entry
// bytes (spec §3 RawArchive).
type Archive map[string][]byte

// Read parses a ZIP archive from buf and returns its RawArchive, or a
// tagged *xerrors.Error on malformed input or limit violation.
func Read(buf []byte, limits Limits) (Archive, error) {
	zr, err := zip.NewReader(bytes.NewReader(buf), int64(len(buf)))
	if err != nil {
		return nil, xerrors.Wrap(xerrors.InvalidArchive, err, "opening ZIP")
	}

	if len(zr.File) > limits.MaxEntries {
		return nil, xerrors.Newf(xerrors.TooManyFiles, "archive has %d entries, limit is %d", len(zr.File), limits.MaxEntries)
	}

	out := make(Archive, len(zr.File))
	var total int64

	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}

		if !isSafePath(f.Name) {
			return nil, xerrors.Newf(xerrors.SuspiciousContent, "entry %q escapes the archive root", f.Name)
		}

		total += int64(f.UncompressedSize64)
		if total > limits.MaxTotalBytes {
			return nil, xerrors.Newf(xerrors.FileTooLarge, "archive uncompressed size exceeds %d bytes", limits.MaxTotalBytes)
		}

		rc, err := f.Open()
		if err != nil {
			return nil, xerrors.Wrapf(xerrors.InvalidArchive, err, "opening entry %q", f.Name)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, xerrors.Wrapf(xerrors.InvalidArchive, err, "reading entry %q", f.Name)
		}

		out[f.Name] = data
	}

	return out, nil
}

// isSafePath reports whether a ZIP entry name is safe to extract: after
// normalizing backslashes to forward slashes, it must not begin with "..",
// begin with "/", or contain "/../" anywhere (spec §4.2).
func isSafePath(name string) bool {
	normalized := strings.ReplaceAll(name, "\\", "/")

	if strings.HasPrefix(normalized, "..") {
		return false
	}
	if strings.HasPrefix(normalized, "/") {
		return false
	}
	if strings.Contains(normalized, "/../") {
		return false
	}
	return true
}
