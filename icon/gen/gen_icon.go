//go:build ignore

package main

import (
	"fmt"
	"os"

	"loadforever/icon"
)

func main() {
	for _, v := range []icon.Variant{icon.Light, icon.Dark} {
		f, err := os.Create(v.FileName())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		icon.WriteSVG(f, 720, v)
		f.Close()
	}
}
