package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"jobshell/internal/parser"
)

func (s *Shell) runExternal(path string, args []string, background bool) error {
	cmd := &exec.Cmd{
		Path: path,
		Args: args,
		Env:  os.Environ(),
	}

	if background {
		return s.startBackground(cmd)
	}
	return s.runForeground(cmd)
}

// runForeground blocks until the command exits. A non-zero exit status is
// the command's business, not an error of the shell.
func (s *Shell) runForeground(cmd *exec.Cmd) error {
	cmd.Stdin = s.stdin
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr

	release := s.shieldSignals()
	defer release()

	if err := cmd.Start(); err != nil {
		s.launchFailed(cmd, err)
		return nil
	}

	err := cmd.Wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		s.logger.Debug("command exited", "pid", cmd.Process.Pid, "status", exitErr.ExitCode())
		return nil
	}
	if err != nil {
		return fmt.Errorf("error waiting for %s: %w", cmd.Args[0], err)
	}
	return nil
}

// startBackground launches the command and tracks it in the registry. The
// shell never waits on it; the status command's sweep reaps it.
func (s *Shell) startBackground(cmd *exec.Cmd) error {
	// Output only reaches the shell's writers when they are real files, since
	// copying into anything else would need a Wait we never make.
	cmd.Stdin = nil
	cmd.Stdout = fileWriter(s.stdout)
	cmd.Stderr = fileWriter(s.stderr)

	if err := cmd.Start(); err != nil {
		s.launchFailed(cmd, err)
		return nil
	}

	pid := cmd.Process.Pid
	id := s.registry.Register(pid, parser.CommandText(cmd.Args))
	fmt.Fprintf(s.stdout, "[%d] %d\n", id, pid)

	if err := cmd.Process.Release(); err != nil {
		s.logger.Debug("releasing process handle failed", "pid", pid, "error", err)
	}
	return nil
}

func (s *Shell) launchFailed(cmd *exec.Cmd, err error) {
	s.logger.Error("command launch failed", "path", cmd.Path, "error", err)
	fmt.Fprintf(s.stderr, "%s: %v\n", cmd.Args[0], err)
}

func fileWriter(w io.Writer) io.Writer {
	if f, ok := w.(*os.File); ok {
		return f
	}
	return nil
}
