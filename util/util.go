package util

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const excerptLength = 50

// ErrWrap flattens a (value, error) pair into the value alone,
// replacing it with the given fallback on error.
func ErrWrap[T any](fallback T) func(T, error) T {
	return func(value T, err error) T {
		if err != nil {
			return fallback
		}
		return value
	}
}

// ErrOnly drops the value of a (value, error) pair.
func ErrOnly[T any](_ T, err error) error {
	return err
}

// ErrSuppress swallows an error the caller has no use for.
func ErrSuppress(_ error) {
}

// Fallback returns value unless it is empty.
func Fallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func Excerpt(data string) string {
	data = strings.ReplaceAll(data, "\n", " ")
	if len(data) > excerptLength {
		return data[:excerptLength] + "..."
	}
	return data
}

func HumanizeBytes(size int) string {
	const unit = 1024
	if size < unit {
		return fmtInt(size) + "B"
	}
	div, exp := unit, 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmtInt(size/div) + string("KMGTPE"[exp]) + "B"
}

func fmtInt(value int) string {
	if value == 0 {
		return "0"
	}
	var digits []byte
	for value > 0 {
		digits = append([]byte{byte('0' + value%10)}, digits...)
		value /= 10
	}
	return string(digits)
}

// FileBaseStem returns the file name without directory nor extension.
func FileBaseStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// LegalizeFilename strips characters most filesystems reject.
func LegalizeFilename(filename string) string {
	for _, illegal := range []string{"/", "\\", "?", "%", "*", ":", "|", "\"", "<", ">"} {
		filename = strings.ReplaceAll(filename, illegal, "")
	}
	return strings.TrimSpace(filename)
}

// CacheFile maps a file name to its per-user cache location,
// falling back to the system temporary directory.
func CacheFile(name string) string {
	path, err := xdg.CacheFile(filepath.Join("melotube", name))
	if err != nil {
		return filepath.Join(os.TempDir(), name)
	}
	return path
}

// FileMoveOrCopy moves src to dst, degrading to a copy when rename
// crosses filesystem boundaries. dst must not exist unless overwrite
// is given.
func FileMoveOrCopy(src, dst string, overwrite ...bool) error {
	if _, err := os.Stat(dst); err == nil &&
		!(len(overwrite) > 0 && overwrite[0]) {
		return os.ErrExist
	}

	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return err
	}
	return os.Remove(src)
}
