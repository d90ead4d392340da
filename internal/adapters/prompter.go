package adapters

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/fatih/color"

	"hkgbuild/internal/ports"
)

const maxAnswerLength = 128

// PrompterAdapter asks questions on a line oriented terminal. In
// non-interactive mode it never reads and answers every question with its
// default.
type PrompterAdapter struct {
	in             *bufio.Reader
	out            io.Writer
	nonInteractive bool
	hint           *color.Color
	failure        *color.Color
}

func NewPrompterAdapter(in io.Reader, out io.Writer, nonInteractive bool) *PrompterAdapter {
	return &PrompterAdapter{
		in:             bufio.NewReader(in),
		out:            out,
		nonInteractive: nonInteractive,
		hint:           color.New(color.FgCyan),
		failure:        color.New(color.FgRed),
	}
}

func (p *PrompterAdapter) Ask(field ports.Field) (string, error) {
	for _, hint := range field.Hints {
		p.hint.Fprintf(p.out, "  %s\n", hint)
	}
	message := field.Message + ": "
	if field.Default != "" {
		message = fmt.Sprintf("%s [%s]: ", field.Message, field.Default)
	}
	if p.nonInteractive {
		fmt.Fprintln(p.out, message+field.Default)
		if field.Default == "" && field.Required {
			return "", ports.ErrCancelled
		}
		return field.Default, nil
	}
	for {
		fmt.Fprint(p.out, message)
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if line == "" {
			if field.Default != "" {
				return field.Default, nil
			}
			if field.Required {
				return "", ports.ErrCancelled
			}
			return "", nil
		}
		if utf8.RuneCountInString(line) > maxAnswerLength {
			p.failure.Fprintf(p.out, "ERROR %s must have at least 0 and at most %d characters\n", field.Name, maxAnswerLength)
			continue
		}
		return line, nil
	}
}

// Choose shows options as a numbered menu and returns the zero based index
// of the selection.
func (p *PrompterAdapter) Choose(message string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, ports.ErrCancelled
	}
	for i, option := range options {
		fmt.Fprintf(p.out, "    %d) %s\n", i+1, option)
	}
	if p.nonInteractive {
		fmt.Fprintf(p.out, "%s: 1\n", message)
		return 0, nil
	}
	for {
		fmt.Fprintf(p.out, "%s: ", message)
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if line == "" {
			continue
		}
		number, err := strconv.Atoi(line)
		if err != nil {
			p.failure.Fprintf(p.out, "ERROR %q is not a number\n", line)
			continue
		}
		if number < 1 || number > len(options) {
			p.failure.Fprintln(p.out, "Not in range")
			continue
		}
		return number - 1, nil
	}
}

func (p *PrompterAdapter) Confirm(message string, defaultYes bool) (bool, error) {
	def := "n"
	if defaultYes {
		def = "y"
	}
	answer, err := p.Ask(ports.Field{Name: "answer", Message: message + " (y/n)", Default: def})
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// readLine returns the next trimmed line. End of input cancels.
func (p *PrompterAdapter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
			return "", ports.ErrCancelled
		}
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read input").
			WithCause(err)
	}
	return strings.TrimSpace(line), nil
}

var _ ports.PrompterPort = (*PrompterAdapter)(nil)
