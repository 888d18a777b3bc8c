package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	diagLog  zerolog.Logger
	diagFile *os.File
	logMu    sync.Mutex
	logReady bool
	pid      int
	dir      string
)

func ResolveDir(flagPath string) (string, error) {
	// Priority 1: -logpath flag
	if flagPath != "" {
		return absFromWd(flagPath)
	}

	// Priority 2: LOADFOREVER_LOG_PATH environment variable
	if envPath := os.Getenv("LOADFOREVER_LOG_PATH"); envPath != "" {
		return absFromWd(envPath)
	}

	// Priority 3: Default OS-specific location
	return getDefaultDir()
}

func absFromWd(p string) (string, error) {
	if filepath.IsAbs(p) {
		return p, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, p), nil
}

func SetDir(d string) {
	dir = d
}

func Dir() string {
	return dir
}

func EnsureDir() error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}

func Init() error {
	logMu.Lock()
	defer logMu.Unlock()

	if err := EnsureDir(); err != nil {
		return err
	}

	pid = os.Getpid()

	var err error
	diagFile, err = os.OpenFile(filepath.Join(dir, "diagnostics_log.txt"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        diagFile,
		TimeFormat: "2006-01-02 15:04:05.000",
		NoColor:    true,
	}
	diagLog = zerolog.New(consoleWriter).With().Timestamp().Int("pid", pid).Logger()

	logReady = true
	return nil
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	if diagFile != nil {
		diagFile.Close()
		diagFile = nil
	}
	logReady = false
}

func Info(msg string) {
	if logReady {
		diagLog.Info().Msg(msg)
	}
}

func Error(msg string) {
	if logReady {
		diagLog.Error().Msg(msg)
	}
}

func Errorf(format string, args ...any) {
	if logReady {
		diagLog.Error().Msg(fmt.Sprintf(format, args...))
	}
}

func Warn(msg string) {
	if logReady {
		diagLog.Warn().Msg(msg)
	}
}

func Warnf(format string, args ...any) {
	if logReady {
		diagLog.Warn().Msg(fmt.Sprintf(format, args...))
	}
}

func SessionStart(interval time.Duration, screenW, screenH int, sound bool) {
	if !logReady {
		return
	}
	diagLog.Info().
		Dur("spawn_interval", interval).
		Int("screen_w", screenW).
		Int("screen_h", screenH).
		Bool("sound", sound).
		Msg("session_start")
}

func SessionEnd(spawned, live int) {
	if !logReady {
		return
	}
	diagLog.Info().
		Int("spawned", spawned).
		Int("live", live).
		Msg("session_end")
}

func WindowSpawned(id int, message string, maximum int) {
	if !logReady {
		return
	}
	diagLog.Debug().
		Int("window", id).
		Str("message", message).
		Int("maximum", maximum).
		Msg("window_spawned")
}

func CornerHit(id int, corner string, hits int, speed float64) {
	if !logReady {
		return
	}
	diagLog.Info().
		Int("window", id).
		Str("corner", corner).
		Int("hits", hits).
		Float64("speed", speed).
		Msg("corner_hit")
}

func WindowDone(id int, cornerHits int) {
	if !logReady {
		return
	}
	diagLog.Debug().
		Int("window", id).
		Int("corner_hits", cornerHits).
		Msg("window_done")
}

func WindowClosed(id int, live int) {
	if !logReady {
		return
	}
	diagLog.Debug().
		Int("window", id).
		Int("live", live).
		Msg("window_closed")
}
