//go:build !windows

package util

func IsRunFromGUI() bool {
	// Only Windows users can double-click the binary from a file manager and
	// expect it to do something useful.
	return false
}
