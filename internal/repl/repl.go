// Package repl implements the read-eval-print loop shared by the
// plain line-oriented mode and the TUI. Both evaluate lines through
// Eval so their semantics cannot drift.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/papapumpkin/conv/internal/unit"
)

// ErrUsage indicates a line that does not have exactly three tokens.
var ErrUsage = errors.New("usage: <value> <from_unit> <to_unit>")

// Hint is the usage reminder printed for malformed lines.
const Hint = "usage: <value> <from_unit> <to_unit>  (or 'help', 'quit')"

// Eval evaluates one line of the form "<value> <from> <to>" and
// returns the formatted result line. The value token is echoed as
// given; unit symbols are echoed in canonical form.
func Eval(line string, prec int) (string, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return "", ErrUsage
	}
	return EvalFields(fields[0], fields[1], fields[2], prec)
}

// EvalFields converts a single already-tokenized request.
func EvalFields(value, fromSym, toSym string, prec int) (string, error) {
	v, err := unit.ParseValue(value)
	if err != nil {
		return "", err
	}
	from, err := unit.Find(fromSym)
	if err != nil {
		return "", err
	}
	to, err := unit.Find(toSym)
	if err != nil {
		return "", err
	}
	result, err := unit.Convert(v, from, to)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s is %s %s", value, from.Symbol, unit.Format(result, prec), to.Symbol), nil
}

// Session is a line-oriented read-eval-print loop. Results go to Out,
// errors and hints to Err. Conversion errors never end the loop; only
// EOF or an explicit quit does.
type Session struct {
	In        io.Reader
	Out       io.Writer
	Err       io.Writer
	Precision int

	// Prompt, when non-nil, is called before each read. It stays out
	// of Out so piped output contains only results.
	Prompt func()
}

// Run reads lines until EOF or a quit command. It returns an error
// only for a failed read, never for a failed conversion.
func (s *Session) Run() error {
	scanner := bufio.NewScanner(s.In)
	for {
		if s.Prompt != nil {
			s.Prompt()
		}
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "quit", "exit", "q":
			return nil
		case "help", "h", "?":
			fmt.Fprintln(s.Err, Hint)
			continue
		}

		out, err := s.eval(line)
		if err != nil {
			continue
		}
		fmt.Fprintln(s.Out, out)
	}
	return scanner.Err()
}

// eval evaluates one line and reports any failure to Err.
func (s *Session) eval(line string) (string, error) {
	out, err := Eval(line, s.Precision)
	if err == nil {
		return out, nil
	}
	if errors.Is(err, ErrUsage) {
		fmt.Fprintln(s.Err, Hint)
	} else {
		fmt.Fprintf(s.Err, "Error: %v\n", err)
	}
	return "", err
}
