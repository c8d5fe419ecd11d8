// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build !linux

package convert

import "os"

func adviseSequential(*os.File) {}
