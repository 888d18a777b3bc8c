//go:build linux

package main

import (
	"os"

	"loadforever/doctor"
	"loadforever/log"
)

func main() {
	opts, sess := setup()
	if opts.doctor {
		code := doctor.Run(sess.tun)
		log.Close()
		os.Exit(code)
	}

	printBanner(os.Stdout, os.Getpid(), stdoutIsTerminal())
	runApp(sess)
}
