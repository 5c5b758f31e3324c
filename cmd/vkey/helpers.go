package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/zx06/vkey/internal/errors"
	"github.com/zx06/vkey/internal/output"
)

// parseOutputFormat parses and validates the output format string
func parseOutputFormat(s string) (output.Format, error) {
	f := output.Format(s)
	if !output.IsValid(f) {
		return "", errors.New(errors.CodeCfgInvalid, "invalid output format", map[string]any{"format": s})
	}
	return resolveAuto(f), nil
}

// resolveFormatForError resolves the format for error output
func resolveFormatForError(s string) output.Format {
	f := output.Format(s)
	if !output.IsValid(f) {
		f = output.FormatAuto
	}
	return resolveAuto(f)
}

// resolveAuto resolves "auto" format to appropriate format based on TTY
func resolveAuto(f output.Format) output.Format {
	if f != output.FormatAuto {
		return f
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return output.FormatText
	}
	return output.FormatJSON
}

// normalizeErr normalizes any error to XError
func normalizeErr(err error) *errors.XError {
	if xe, ok := errors.As(err); ok {
		return xe
	}
	// Preserve original error message
	return errors.Wrap(errors.CodeInternal, err.Error(), nil, err)
}

// readSecretValue reads the secret key from in. On a TTY it prompts without
// echo; otherwise it reads a single line (trailing newline stripped). The
// prompt goes to errOut so stdout stays pure data.
func readSecretValue(in *os.File, errOut io.Writer) (string, *errors.XError) {
	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(errOut, "Secret key: ")
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(errOut)
		if err != nil {
			return "", errors.Wrap(errors.CodeCfgInvalid, "failed to read secret from terminal", nil, err)
		}
		return string(b), nil
	}

	r := bufio.NewReader(in)
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(errors.CodeCfgInvalid, "failed to read secret from stdin", nil, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
