package main

import (
	"os"

	"trawl/internal/cmdline"
)

func main() {
	os.Exit(cmdline.Execute(os.Args, cmdline.Options{}))
}
