package prompt

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pbnjay/imgfont"
)

func TestIntReasks(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("abc\n\n 42 \n"), &out)
	n, err := p.Int("N:\n>")
	if err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Errorf("expected 42, got %d", n)
	}
	if c := strings.Count(out.String(), "Error: Insert a number"); c != 2 {
		t.Errorf("expected 2 complaints, got %d in %q", c, out.String())
	}
	if c := strings.Count(out.String(), "N:\n>"); c != 3 {
		t.Errorf("expected 3 prompts, got %d", c)
	}
}

func TestIntEOF(t *testing.T) {
	p := New(strings.NewReader("x\n"), io.Discard)
	if _, err := p.Int("N:"); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestFontType(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("2\n-1\nbyte\n1\n"), &out)
	ft, err := p.FontType()
	if err != nil {
		t.Fatal(err)
	}
	if ft != imgfont.Byte {
		t.Errorf("expected byte font, got %s", ft)
	}
	if c := strings.Count(out.String(), "Error:"); c != 1 {
		t.Errorf("expected only the non-number to be reported, got %q", out.String())
	}
}

func TestPaths(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "font.png")
	if err := os.WriteFile(existing, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "out.font")

	var out bytes.Buffer
	in := strings.Join([]string{missing, dir, existing, existing, missing}, "\n") + "\n"
	p := New(strings.NewReader(in), &out)

	src, err := p.Source()
	if err != nil {
		t.Fatal(err)
	}
	if src != existing {
		t.Errorf("expected source %s, got %s", existing, src)
	}
	dst, err := p.Destination()
	if err != nil {
		t.Fatal(err)
	}
	if dst != missing {
		t.Errorf("expected destination %s, got %s", missing, dst)
	}

	s := out.String()
	if c := strings.Count(s, "Error: File does not exist"); c != 2 {
		t.Errorf("expected 2 source complaints, got %d", c)
	}
	if c := strings.Count(s, "Error: Destination file already exists"); c != 1 {
		t.Errorf("expected 1 destination complaint, got %d", c)
	}
}

func TestParseFontType(t *testing.T) {
	for n, ok := range map[int]bool{0: true, 1: true, 2: false, -1: false, 256: false} {
		_, err := ParseFontType(n)
		if (err == nil) != ok {
			t.Errorf("%d: unexpected result %v", n, err)
		}
	}
}
