// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/matsets/cmd/matsets/cmd"
)

func main() {
	cmd.Execute()
}
