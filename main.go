package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"loadforever/beep"
	"loadforever/config"
	"loadforever/log"
	"loadforever/messages"
)

var version = "dev"

type options struct {
	madness      config.Madness
	configPath   string
	messagesPath string
	logPath      string
	sound        bool
	doctor       bool
	version      bool
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("loadforever", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Var(&opts.madness, "madness", "spawn faster: true for the madness interval, or an interval in milliseconds")
	fs.StringVar(&opts.configPath, "config", "", "YAML config file (default: $LOADFOREVER_CONFIG or ~/.config/loadforever/config.yaml)")
	fs.StringVar(&opts.messagesPath, "messages", "", "file with one loading message per line (default: bundled messages)")
	fs.StringVar(&opts.logPath, "logpath", "", "log directory path (default: OS-specific location, use ./ for current dir)")
	fs.BoolVar(&opts.sound, "sound", false, "chime on corner hits and finished bars")
	fs.BoolVar(&opts.doctor, "doctor", false, "Run system diagnostics and exit")
	fs.BoolVar(&opts.version, "version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

// session is everything a run starts from, resolved from flags and files.
type session struct {
	tun      config.Tunables
	messages []string
	interval time.Duration
}

func prepare(opts options) (session, error) {
	path := opts.configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return session{}, err
		}
	}
	tun, err := config.Load(path)
	if err != nil {
		return session{}, err
	}
	if opts.sound {
		tun.Sound = true
	}

	msgs := messages.Bundled()
	if opts.messagesPath != "" {
		if msgs, err = messages.Load(opts.messagesPath); err != nil {
			return session{}, err
		}
	}

	return session{
		tun:      tun,
		messages: msgs,
		interval: opts.madness.Interval(tun),
	}, nil
}

var (
	bannerTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7aa2f7"))
	bannerHint  = lipgloss.NewStyle().Faint(true)
	bannerCmd   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f7768e")).Bold(true)
)

func printBanner(w io.Writer, pid int, styled bool) {
	kill := fmt.Sprintf("kill -9 %d", pid)
	if !styled {
		fmt.Fprintln(w, "Loading...")
		fmt.Fprintln(w, kill)
		return
	}
	fmt.Fprintln(w, bannerTitle.Render("Loading..."))
	fmt.Fprintln(w, bannerHint.Render("make it stop: ")+bannerCmd.Render(kill))
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// setup parses flags and loads everything; it exits on bad input.
func setup() (options, session) {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	if opts.version {
		fmt.Printf("loadforever %s\n", version)
		os.Exit(0)
	}

	sess, err := prepare(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if sess.tun.Sound {
		beep.Enable()
	}

	logPath, err := log.ResolveDir(opts.logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to resolve log directory: %v\n", err)
		os.Exit(1)
	}
	log.SetDir(logPath)
	if err := log.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
	}
	initCrashLog()
	return opts, sess
}

func initCrashLog() {
	crashPath := filepath.Join(log.Dir(), "crash_log.txt")
	crashFile, err := os.OpenFile(crashPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	fmt.Fprintf(crashFile, "\n=== Session %s [pid=%d] ===\n", time.Now().Format("2006-01-02 15:04:05"), os.Getpid())
	debug.SetCrashOutput(crashFile, debug.CrashOptions{})
}
