// Package doctor runs interactive checks of the things the prank needs
// from the desktop: screen geometry, the quit hotkey and sound output.
package doctor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"loadforever/beep"
	"loadforever/config"
	"loadforever/hotkey"
	"loadforever/shutdown"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	stepStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7aa2f7")).Bold(true)
	passStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a")).Bold(true)
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f7768e")).Bold(true)
	skipStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68"))
)

type result int

const (
	pass result = iota
	fail
	skip
)

type check struct {
	name string
	run  func(d *doctor) result
}

type doctor struct {
	out         io.Writer
	in          *bufio.Reader
	tun         config.Tunables
	interactive bool
	hotkeyWait  time.Duration
}

// Run executes the checks and returns an exit code (0 all pass or skipped,
// 1 any fail).
func Run(tun config.Tunables) int {
	resetTerminal()
	stop := shutdown.OnSignal(func(os.Signal) {
		fmt.Println("\nInterrupted")
		os.Exit(1)
	})
	defer stop()

	d := &doctor{
		out:         os.Stdout,
		in:          bufio.NewReader(os.Stdin),
		tun:         tun,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
		hotkeyWait:  10 * time.Second,
	}
	return d.runAll([]check{
		{"Display geometry", (*doctor).checkDisplay},
		{"Quit hotkey", (*doctor).checkHotkey},
		{"Sound", (*doctor).checkSound},
	})
}

func (d *doctor) runAll(checks []check) int {
	fmt.Fprintln(d.out, titleStyle.Render("loadforever doctor - interactive system diagnostics"))
	fmt.Fprintln(d.out, strings.Repeat("=", 51))

	failed := 0
	for i, c := range checks {
		fmt.Fprintln(d.out)
		fmt.Fprintln(d.out, stepStyle.Render(fmt.Sprintf("[%d/%d] %s", i+1, len(checks), c.name)))
		if c.run(d) == fail {
			failed++
		}
	}

	fmt.Fprintln(d.out)
	if failed == 0 {
		fmt.Fprintln(d.out, passStyle.Render("All checks passed!"))
		return 0
	}
	fmt.Fprintln(d.out, failStyle.Render(fmt.Sprintf("%d check(s) failed. See details above.", failed)))
	return 1
}

func (d *doctor) pass(format string, args ...any) result {
	fmt.Fprintf(d.out, "  %s %s\n", passStyle.Render("PASS:"), fmt.Sprintf(format, args...))
	return pass
}

func (d *doctor) fail(format string, args ...any) result {
	fmt.Fprintf(d.out, "  %s %s\n", failStyle.Render("FAIL:"), fmt.Sprintf(format, args...))
	return fail
}

func (d *doctor) skip(format string, args ...any) result {
	fmt.Fprintf(d.out, "  %s %s\n", skipStyle.Render("SKIP:"), fmt.Sprintf(format, args...))
	return skip
}

// confirm asks a yes/no question. Anything but y or yes is a no.
func (d *doctor) confirm(question string) bool {
	fmt.Fprintf(d.out, "%s [y/n]: ", question)
	answer, _ := d.in.ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes"
}

func (d *doctor) checkDisplay() result {
	w, h, source, err := workArea()
	if err != nil {
		return d.fail("cannot read screen geometry: %v", err)
	}
	return d.judgeDisplay(w, h, source)
}

// judgeDisplay passes when at least one window fits and warns when the
// edge buffer cannot be honoured, which makes windows spawn anywhere.
func (d *doctor) judgeDisplay(w, h int, source string) result {
	fmt.Fprintf(d.out, "  work area %dx%d (%s)\n", w, h, source)
	ww, wh := d.tun.WindowWidth, d.tun.WindowHeight
	if w < ww || h < wh {
		return d.fail("a %dx%d window does not fit", ww, wh)
	}
	buf := int(d.tun.EdgeBuffer)
	if w < 2*buf || h < 2*buf {
		fmt.Fprintf(d.out, "  note: screen is smaller than twice the %dpx edge buffer, windows may spawn near edges\n", buf)
	}
	return d.pass("windows fit, corners at (0,0) and (%d,%d)", w-ww, h-wh)
}

func (d *doctor) checkHotkey() result {
	return d.waitHotkey(hotkey.New())
}

func (d *doctor) waitHotkey(hk hotkey.Hotkey) result {
	fmt.Fprintf(d.out, "Press %s...\n", hotkey.Chord)
	if err := hk.Register(); err != nil {
		return d.fail("could not register hotkey: %v", err)
	}
	defer hk.Unregister()

	select {
	case <-hk.Keydown():
		select {
		case <-hk.Keyup():
		case <-time.After(5 * time.Second):
		}
		// evdev grabs can leave the terminal in raw mode
		resetTerminal()
		return d.pass("hotkey detected, it quits loadforever")
	case <-time.After(d.hotkeyWait):
		return d.fail("timeout waiting for hotkey")
	}
}

func (d *doctor) checkSound() result {
	if !d.interactive {
		return d.skip("stdin is not a terminal, cannot ask whether the chimes were heard")
	}
	beep.Enable()
	defer beep.Disable()
	beep.Init()

	fmt.Fprintln(d.out, "Playing corner chimes and the done chime...")
	for hits := 1; hits <= 3; hits++ {
		beep.PlayCorner(hits)
		time.Sleep(200 * time.Millisecond)
	}
	beep.PlayDone()
	time.Sleep(300 * time.Millisecond)

	if d.confirm("Did you hear four rising chimes?") {
		return d.pass("sound verified by user")
	}
	return d.fail("chimes not heard (sound is optional, run without -sound)")
}
