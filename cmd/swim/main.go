package main

import (
	"os"

	"swim.land/swim/cmd/swim/root"
)

func main() {
	if err := root.Cmd().Execute(); err != nil {
		os.Exit(1)
	}
}
