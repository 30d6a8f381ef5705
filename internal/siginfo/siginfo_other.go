// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

//go:build !(darwin || freebsd || netbsd || openbsd)

package siginfo

// SetHandler does nothing where there is no SIGINFO.
// Signal 29 is SIGIO on Linux, so nothing is registered.
func SetHandler(f func()) (stop func()) {
	return func() {}
}
