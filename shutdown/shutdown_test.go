//go:build !windows

package shutdown

import (
	"os"
	"os/signal"
	"syscall"
	"testing"
	"time"
)

func TestOnSignal(t *testing.T) {
	got := make(chan os.Signal, 1)
	stop := OnSignal(func(s os.Signal) { got <- s })
	defer stop()

	if err := syscall.Kill(os.Getpid(), syscall.SIGTERM); err != nil {
		t.Fatal(err)
	}
	select {
	case s := <-got:
		if s != syscall.SIGTERM {
			t.Errorf("got %v, want SIGTERM", s)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("signal not delivered")
	}
}

func TestOnSignalStop(t *testing.T) {
	called := make(chan struct{}, 1)
	stop := OnSignal(func(os.Signal) { called <- struct{}{} })
	stop()
	stop()

	// a second listener keeps the process alive when the signal arrives
	keep := make(chan os.Signal, 1)
	Notify(keep)
	defer signal.Stop(keep)
	if err := syscall.Kill(os.Getpid(), syscall.SIGTERM); err != nil {
		t.Fatal(err)
	}
	<-keep

	select {
	case <-called:
		t.Error("fn called after stop")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestOnSignalStopDoesNotWaitForRunningFn(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	finished := make(chan struct{})
	stop := OnSignal(func(os.Signal) {
		close(started)
		<-release
		close(finished)
	})

	if err := syscall.Kill(os.Getpid(), syscall.SIGTERM); err != nil {
		t.Fatal(err)
	}
	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("signal not delivered")
	}

	returned := make(chan struct{})
	go func() {
		stop()
		close(returned)
	}()
	select {
	case <-returned:
	case <-time.After(2 * time.Second):
		t.Fatal("stop blocked on a running fn")
	}

	select {
	case <-finished:
		t.Fatal("fn finished before it was released")
	default:
	}
	close(release)
	<-finished
}
