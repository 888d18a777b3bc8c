//go:build gui

package main

import (
	"fmt"
	"os"
	"runtime"

	"loadforever/beep"
	"loadforever/gui"
	"loadforever/hotkey"
	"loadforever/log"
	"loadforever/prank"
	"loadforever/shutdown"
)

func runApp(sess session) {
	// Fyne and GLFW own this thread from here on
	runtime.LockOSThread()
	defer log.Close()

	if beep.Enabled() {
		beep.Init()
	}

	stats, sink := newSinks()
	var (
		env     *prank.Env
		spawner *prank.Spawner
	)

	app := gui.NewApp(func(a *gui.App) {
		env = &prank.Env{
			Host:     a,
			Sched:    a.Scheduler(),
			Rand:     prank.NewRand(),
			Tunables: sess.tun,
			Registry: prank.NewRegistry(),
			Sink:     sink,
		}
		spawner = prank.NewSpawner(env, sess.messages, sess.interval)
		screen := a.Screen()
		log.SessionStart(sess.interval, int(screen.W), int(screen.H), beep.Enabled())
		spawner.Start()
	})
	app.SetOnPause(func(paused bool) {
		if spawner == nil {
			return
		}
		spawner.SetPaused(paused)
		log.Info(fmt.Sprintf("spawning paused=%v", paused))
	})
	app.SetOnQuit(func() {
		if spawner == nil {
			return
		}
		live := env.Registry.Len()
		spawner.Stop()
		log.SessionEnd(stats.spawned, live)
	})

	hk := hotkey.New()
	if err := hk.Register(); err != nil {
		log.Warnf("quit hotkey %s unavailable: %v", hotkey.Chord, err)
	} else {
		defer hk.Unregister()
		stop := hotkey.OnPress(hk, func() {
			log.Info("quit hotkey pressed")
			app.Quit()
		})
		defer stop()
	}

	stop := shutdown.OnSignal(func(sig os.Signal) {
		log.Info("received " + sig.String())
		app.Quit()
	})
	defer stop()

	if err := gui.Run(app); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
