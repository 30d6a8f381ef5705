// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

//go:build darwin || freebsd || netbsd || openbsd

// Package siginfo calls a function each time ^T (SIGINFO) is pressed.
package siginfo

import (
	"os"
	"os/signal"
	"syscall"
)

// SIGINFO isn't part of the stdlib, but it's 29 on the BSDs
const SIGINFO = syscall.Signal(29)

// SetHandler runs f on every SIGINFO until the returned stop func is called.
func SetHandler(f func()) (stop func()) {
	ch := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(ch, SIGINFO)

	go func() {
		for {
			select {
			case <-ch:
				f()
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(ch)
		close(done)
	}
}
