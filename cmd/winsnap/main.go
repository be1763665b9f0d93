/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/
package main

import (
	"github.com/NidhiHemanth/windows-snapshot/pkg/cli"
)

func main() {
	cli.Execute()
}
