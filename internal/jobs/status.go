package jobs

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Outcome is what a non-blocking status query observed about a job's process.
type Outcome int

const (
	// Running means the query saw no state change.
	Running Outcome = iota
	Exited
	Signaled
	Stopped
	Continued
)

var outcomes = []string{
	"Running",
	"Exited",
	"Signaled",
	"Stopped",
	"Continued",
}

func (o Outcome) String() string {
	if int(o) < 0 || int(o) >= len(outcomes) {
		return "Unknown"
	}
	return outcomes[o]
}

// Finished reports whether the job should no longer be tracked. Every
// condition other than Running counts.
func (o Outcome) Finished() bool {
	return o != Running
}

// StatusChecker queries a child's termination state without blocking.
type StatusChecker interface {
	Check(pid int) (Outcome, error)
}

// WaitChecker polls children of the current process with wait4(WNOHANG).
// A terminated child is reaped by the check that observes it.
type WaitChecker struct{}

func (WaitChecker) Check(pid int) (Outcome, error) {
	var ws unix.WaitStatus
	wpid, err := unix.Wait4(pid, &ws, unix.WNOHANG, nil)
	if err != nil {
		return Running, fmt.Errorf("wait4 %d: %w", pid, err)
	}
	if wpid == 0 {
		return Running, nil
	}
	return outcomeOf(ws), nil
}

func outcomeOf(ws unix.WaitStatus) Outcome {
	switch {
	case ws.Exited():
		return Exited
	case ws.Signaled():
		return Signaled
	case ws.Stopped():
		return Stopped
	case ws.Continued():
		return Continued
	}
	// wait4 returned the pid, so something changed.
	return Exited
}
