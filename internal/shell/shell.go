package shell

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"

	"jobshell/internal/config"
	"jobshell/internal/jobs"
	"jobshell/internal/parser"
	"jobshell/internal/pathresolve"
)

const notFoundMessage = "Command not found."

type Shell struct {
	config    *config.Config
	reader    LineReader
	registry  *jobs.Registry
	resolver  *pathresolve.Resolver
	logger    *slog.Logger
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	lookupEnv func(string) (string, bool)
}

// New creates a Shell reading from the process's standard input.
func New(cfg *config.Config, logger *slog.Logger) (*Shell, error) {
	rl, err := newLineReader(cfg.Prompt)
	if err != nil {
		return nil, err
	}

	s := NewWithReader(cfg, logger, rl, os.Stdout, os.Stderr)
	s.stdin = os.Stdin
	return s, nil
}

// NewWithReader creates a Shell that takes its lines from reader and writes
// to stdout and stderr. Foreground commands get no standard input.
func NewWithReader(cfg *config.Config, logger *slog.Logger, reader LineReader, stdout, stderr io.Writer) *Shell {
	if logger == nil {
		logger = slog.Default()
	}

	return &Shell{
		config: cfg,
		reader: reader,
		registry: jobs.NewRegistry(jobs.WaitChecker{}, jobs.Options{
			CommandLimit: cfg.CommandLimit,
			Logger:       logger,
		}),
		resolver:  pathresolve.NewOS(),
		logger:    logger,
		stdout:    stdout,
		stderr:    stderr,
		lookupEnv: os.LookupEnv,
	}
}

// Registry returns the shell's background job registry.
func (s *Shell) Registry() *jobs.Registry {
	return s.registry
}

// Run reads and executes lines until end of input, which returns nil. A
// failure to read input is returned; errors from individual commands are
// printed and the loop carries on.
func (s *Shell) Run() error {
	for {
		line, err := s.reader.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt), errors.Is(err, syscall.EINTR):
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return fmt.Errorf("error reading the command: %w", err)
		}

		if err := s.Execute(line); err != nil {
			fmt.Fprintf(s.stderr, "Error: %v\n", err)
		}
	}
}

// Close releases the line reader.
func (s *Shell) Close() error {
	return s.reader.Close()
}

// Execute runs a single input line.
func (s *Shell) Execute(input string) error {
	args, background, err := s.tokenize(input)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}

	if ok, err := s.executeBuiltin(args); ok {
		return err
	}

	path, found := s.resolver.Resolve(args[0], s.searchPath())
	if !found {
		s.logger.Debug("command not found", "command", args[0])
		fmt.Fprintln(s.stdout, notFoundMessage)
		return nil
	}

	return s.runExternal(path, args, background)
}

func (s *Shell) tokenize(input string) ([]string, bool, error) {
	if s.config.QuoteAware {
		return parser.SplitQuoted(input)
	}
	args, background := parser.Tokenize(input)
	return args, background, nil
}

// searchPath returns the directories named by the configured path variable,
// or none when it is unset.
func (s *Shell) searchPath() []string {
	value, ok := s.lookupEnv(s.config.PathVariable)
	if !ok {
		return nil
	}
	return pathresolve.SplitSearchPath(value)
}

func (s *Shell) isStatusCommand(name string) bool {
	return strings.EqualFold(name, s.config.StatusCommand)
}
