//go:build !gui

package main

import (
	"fmt"
	"os"
)

func runApp(session) {
	fmt.Fprintln(os.Stderr, "loadforever: built without GUI support (rebuild with -tags gui)")
	os.Exit(1)
}
