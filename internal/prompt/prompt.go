// Package prompt asks the user for conversion parameters, re-asking until
// an answer is valid.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pbnjay/imgfont"
)

// Complaints shown before asking again.
var (
	ErrNoSource   = errors.New("file does not exist")
	ErrDestExists = errors.New("destination file already exists")
	ErrNotNumber  = errors.New("insert a number")
	ErrFontType   = errors.New("font type must be 0 or 1")
)

// CheckSource accepts paths naming an existing regular file.
func CheckSource(path string) error {
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return ErrNoSource
	}
	return nil
}

// CheckDestination accepts paths where nothing exists yet.
func CheckDestination(path string) error {
	if _, err := os.Lstat(path); !os.IsNotExist(err) {
		return ErrDestExists
	}
	return nil
}

// ParseFontType validates a font type selector.
func ParseFontType(n int) (imgfont.FontType, error) {
	t := imgfont.FontType(n)
	if n < 0 || n > 0xff || !t.Valid() {
		return 0, ErrFontType
	}
	return t, nil
}

// Prompter reads one answer per line from In and writes prompts and
// complaints to Out. Every method returns io.EOF once the input runs dry.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New returns a Prompter reading answers from in and prompting on out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

func (p *Prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *Prompter) complain(err error) {
	s := err.Error()
	fmt.Fprintf(p.out, "Error: %s%s\n\n", strings.ToUpper(s[:1]), s[1:])
}

// until asks prompt until check accepts the answer.
func (p *Prompter) until(prompt string, check func(string) error) (string, error) {
	for {
		s, err := p.ask(prompt)
		if err != nil {
			return "", err
		}
		if err := check(s); err != nil {
			p.complain(err)
			continue
		}
		return s, nil
	}
}

// Int asks until the answer is an integer.
func (p *Prompter) Int(prompt string) (int, error) {
	var n int
	_, err := p.until(prompt, func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil {
			return ErrNotNumber
		}
		n = v
		return nil
	})
	return n, err
}

// Source asks until the answer names an existing regular file.
func (p *Prompter) Source() (string, error) {
	return p.until("Insert Source Image:\n>", CheckSource)
}

// Destination asks until the answer names a path that does not exist yet.
func (p *Prompter) Destination() (string, error) {
	return p.until("Insert Destination File:\n>", CheckDestination)
}

// FontType asks until the answer is 0 or 1. Non-numbers are reported,
// other numbers just ask again.
func (p *Prompter) FontType() (imgfont.FontType, error) {
	for {
		n, err := p.Int("Insert the type of the font (0 for boolean, 1 for byte)\n>")
		if err != nil {
			return 0, err
		}
		if t, err := ParseFontType(n); err == nil {
			return t, nil
		}
	}
}
