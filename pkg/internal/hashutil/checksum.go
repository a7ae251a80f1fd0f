// Package hashutil computes content checksums of files on a types.FS
package hashutil

import (
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/arthur-debert/ngofile/pkg/types"
)

// FileChecksum returns "sha256:<hex>" for the content of path
func FileChecksum(fs types.FS, path string) (string, error) {
	file, err := fs.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = file.Close()
	}()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}
	return fmt.Sprintf("sha256:%x", hash.Sum(nil)), nil
}

// SameContent reports whether a and b hold identical bytes. Sizes are
// compared first so differing files are rarely hashed.
func SameContent(fs types.FS, a, b string) (bool, error) {
	infoA, err := fs.Stat(a)
	if err != nil {
		return false, err
	}
	infoB, err := fs.Stat(b)
	if err != nil {
		return false, err
	}
	if infoA.Size() != infoB.Size() {
		return false, nil
	}

	sumA, err := FileChecksum(fs, a)
	if err != nil {
		return false, err
	}
	sumB, err := FileChecksum(fs, b)
	if err != nil {
		return false, err
	}
	return sumA == sumB, nil
}
