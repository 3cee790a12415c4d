//go:build linux

// Package ioctl wraps the ioctl system call.
package ioctl

import (
	"fmt"
	"os"
	"reflect"
	"syscall"
)

// Command to be sent over ioctl.
type Command uintptr

func (c Command) String() string {
	return fmt.Sprintf("ioctl 0x%04x", uintptr(c))
}

// Do executes the ioctl call with ptr as its argument.
func Do(fd uintptr, command Command, ptr interface{}) error {
	var p uintptr

	if ptr != nil {
		v := reflect.ValueOf(ptr)
		p = v.Pointer()
	}

	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, uintptr(command), p)
	if errno != 0 {
		return &os.SyscallError{
			Syscall: "SYS_IOCTL",
			Err:     fmt.Errorf("%s: %w", command, errno),
		}
	}
	return nil
}
