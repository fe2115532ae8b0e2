package util

import (
	"os"
)

// CheckFileExists reports whether fpath names something that can be stat'd.
func CheckFileExists(fpath string) bool {
	_, e := os.Stat(fpath)
	return e == nil
}

// IsStdinPath reports whether path means "read from standard input".
func IsStdinPath(path string) bool {
	return path == "" || path == "-"
}
