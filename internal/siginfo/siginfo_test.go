// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

//go:build darwin || freebsd || netbsd || openbsd

package siginfo

import (
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSetHandler(t *testing.T) {
	called := make(chan struct{}, 1)
	stop := SetHandler(func() {
		select {
		case called <- struct{}{}:
		default:
		}
	})
	defer stop()

	require.NoError(t, syscall.Kill(syscall.Getpid(), SIGINFO))
	select {
	case <-called:
	case <-time.After(2 * time.Second):
		t.Fatal("handler not called")
	}
}
