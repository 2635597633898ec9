/*
 * Copyright (c) 2024-2025, the nosr authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package main

import (
	"github.com/nosr-io/nosr/cmd/nosr"
)

func main() {
	nosr.Execute()
}
