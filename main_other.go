//go:build !linux

package main

import (
	"os"
	"runtime"

	"golang.design/x/hotkey/mainthread"

	"loadforever/doctor"
	"loadforever/log"
)

func init() {
	// Cocoa and GLFW want the main thread.
	runtime.LockOSThread()
}

func main() {
	opts, sess := setup()
	if opts.doctor {
		code := 1
		// the hotkey check needs a main-thread event loop
		mainthread.Init(func() { code = doctor.Run(sess.tun) })
		log.Close()
		os.Exit(code)
	}

	printBanner(os.Stdout, os.Getpid(), stdoutIsTerminal())
	runApp(sess)
}
