// Package parser splits input lines into command arguments.
package parser

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

const backgroundMarker = "&"

func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// Tokenize splits line on spaces and tabs. A trailing "&", either as its own
// token or at the end of the last one, marks the command as background and is
// left out of args. A blank line yields no args.
func Tokenize(line string) (args []string, background bool) {
	args = strings.FieldsFunc(line, isSeparator)
	if len(args) == 0 {
		return nil, false
	}

	last := args[len(args)-1]
	if !strings.HasSuffix(last, backgroundMarker) {
		return args, false
	}

	last = strings.TrimSuffix(last, backgroundMarker)
	if last == "" {
		args = args[:len(args)-1]
	} else {
		args[len(args)-1] = last
	}
	if len(args) == 0 {
		return nil, true
	}
	return args, true
}

// SplitQuoted is like Tokenize but honours shell quoting and escapes. The
// background marker is only recognised when it is unquoted at the end of the
// line.
func SplitQuoted(line string) (args []string, background bool, err error) {
	trimmed := strings.TrimRightFunc(line, isSeparator)
	if strings.HasSuffix(trimmed, backgroundMarker) {
		rest := strings.TrimSuffix(trimmed, backgroundMarker)
		if balanced(rest) {
			trimmed = rest
			background = true
		}
	}

	args, err = shellquote.Split(trimmed)
	if err != nil {
		return nil, false, fmt.Errorf("error parsing command: %w", err)
	}
	if len(args) == 0 {
		return nil, background, nil
	}
	return args, background, nil
}

// balanced reports whether s ends outside any quoted section.
func balanced(s string) bool {
	var quote rune
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
		}
	}
	return quote == 0 && !escaped
}

// CommandText renders args back into a single display line, quoting where
// needed.
func CommandText(args []string) string {
	return shellquote.Join(args...)
}
