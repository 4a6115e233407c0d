//go:build linux

package main

import (
	"github.com/radrob2/diskwatchdog/internal/cli"
)

func main() {
	cli.Execute()
}
