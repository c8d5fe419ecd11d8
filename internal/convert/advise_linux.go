// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build linux

package convert

import (
	"os"

	"golang.org/x/sys/unix"
)

// adviseSequential tells the kernel the whole file will be read front to
// back so it can read ahead aggressively. Failure only costs throughput.
func adviseSequential(f *os.File) {
	_ = unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_SEQUENTIAL)
}
