package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
)

// LineReader yields one input line per call. It returns io.EOF once input
// is exhausted.
type LineReader interface {
	Readline() (string, error)
	Close() error
}

// promptReader writes the prompt before every read and reads plain lines. It
// serves non-interactive input, where readline has no terminal to drive.
type promptReader struct {
	in     *bufio.Reader
	out    io.Writer
	prompt string
}

func newPromptReader(in io.Reader, out io.Writer, prompt string) *promptReader {
	return &promptReader{
		in:     bufio.NewReader(in),
		out:    out,
		prompt: prompt,
	}
}

func (p *promptReader) Readline() (string, error) {
	if _, err := fmt.Fprint(p.out, p.prompt); err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if err == io.EOF && line != "" {
		// Last line without a newline; EOF comes on the next call.
		return line, nil
	}
	return line, err
}

func (p *promptReader) Close() error {
	return nil
}

// newLineReader picks readline when attached to a terminal and a prompt
// reader otherwise.
func newLineReader(prompt string) (LineReader, error) {
	if !readline.DefaultIsTerminal() {
		return newPromptReader(os.Stdin, os.Stdout, prompt), nil
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
	})
	if err != nil {
		return nil, fmt.Errorf("error initializing readline: %w", err)
	}
	return rl, nil
}
