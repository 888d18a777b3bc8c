//go:build gui

// Package gui hosts the prank windows in fyne.
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"

	"loadforever/icon"
	"loadforever/log"
	"loadforever/motion"
	"loadforever/prank"
	"loadforever/sched"
)

const trayIconSize = 64

// App is the fyne application and the prank.Host the windows live in.
type App struct {
	fyneApp fyne.App
	onReady func(*App)
	onPause func(paused bool)
	onQuit  func()

	pauseItem *fyne.MenuItem
	trayMenu  *fyne.Menu
	paused    bool

	area   workArea
	active bool // the app has input focus

}

// NewApp prepares an app. onReady runs on the event loop once the app has
// started; that is where windows may be opened.
func NewApp(onReady func(*App)) *App {
	return &App{onReady: onReady}
}

// SetOnPause is called from the tray when spawning is paused or resumed.
func (a *App) SetOnPause(fn func(paused bool)) { a.onPause = fn }

// SetOnQuit runs on the event loop before the app quits.
func (a *App) SetOnQuit(fn func()) { a.onQuit = fn }

// Run blocks in the fyne event loop until Quit.
func Run(a *App) error {
	a.fyneApp = app.NewWithID("io.loadforever")
	a.fyneApp.Settings().SetTheme(&darkTheme{})
	a.setupTray()

	a.fyneApp.Lifecycle().SetOnStarted(func() {
		a.area = detectWorkArea()
		log.Info("work area " + a.area.String())
		a.onReady(a)
	})
	a.fyneApp.Lifecycle().SetOnEnteredForeground(func() { a.active = true })
	a.fyneApp.Lifecycle().SetOnExitedForeground(func() { a.active = false })
	a.fyneApp.Lifecycle().SetOnStopped(func() {
		closeMovers()
	})

	a.fyneApp.Run()
	return nil
}

func (a *App) setupTray() {
	desk, ok := a.fyneApp.(desktop.App)
	if !ok {
		return
	}
	a.pauseItem = fyne.NewMenuItem("Pause spawning", func() {
		a.paused = !a.paused
		if a.paused {
			a.pauseItem.Label = "Resume spawning"
		} else {
			a.pauseItem.Label = "Pause spawning"
		}
		a.trayMenu.Refresh()
		if a.onPause != nil {
			a.onPause(a.paused)
		}
	})
	a.trayMenu = fyne.NewMenu("loadforever",
		a.pauseItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", a.quitNow),
	)
	desk.SetSystemTrayMenu(a.trayMenu)

	data, err := icon.PNG(trayIconSize, a.IconVariant())
	if err != nil {
		log.Warnf("tray icon: %v", err)
		return
	}
	desk.SetSystemTrayIcon(fyne.NewStaticResource("tray.png", data))
}

func (a *App) quitNow() {
	if a.onQuit != nil {
		a.onQuit()
	}
	a.fyneApp.Quit()
}

// Quit may be called from any goroutine.
func (a *App) Quit() {
	if a.fyneApp != nil {
		fyne.Do(a.quitNow)
	}
}

// Scheduler runs prank timers on the fyne event loop.
func (a *App) Scheduler() sched.Scheduler {
	return sched.NewLoop(fyne.Do)
}

func (a *App) Screen() motion.Size {
	return motion.Size{W: float64(a.area.W), H: float64(a.area.H)}
}

// IconVariant picks the stroke that contrasts with the current theme.
func (a *App) IconVariant() icon.Variant {
	if a.fyneApp != nil && a.fyneApp.Settings().ThemeVariant() == theme.VariantLight {
		return icon.Light
	}
	return icon.Dark
}

func (a *App) NewSurface(spec prank.SurfaceSpec) prank.Surface {
	return newSurface(a, spec)
}
