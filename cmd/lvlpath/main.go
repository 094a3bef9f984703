// SPDX-License-Identifier: MIT

package main

import "github.com/katalvlaran/lvlpath/internal/cli"

func main() {
	cli.Execute()
}
