// img2font is a commandline tool for turning a glyph strip image into a
// binary bitmap font. First draw every character of your font side by side
// in a single row, all the same height, in your favorite graphics program.
// Between two characters leave a one pixel column and paint its top pixel
// pure red (#FF0000). Pixels that are part of a glyph must be pure black
// (#000000) for a boolean font; for a byte font the blue channel sets the
// intensity (0 = full, 255 = empty). Then run:
//
//	./img2font -src mypixelfont.png -o myfont.bin -type 0 -n 95
//
// Anything not given on the commandline is asked for interactively.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/pbnjay/imgfont"
	"github.com/pbnjay/imgfont/internal/prompt"
	"github.com/pbnjay/imgfont/internal/source"
)

var (
	srcName  = flag.String("src", "", "source image to read the glyph strip from")
	dstName  = flag.String("o", "", "font file to create (must not exist yet)")
	fontType = flag.Int("type", 0, "font type: 0 for boolean, 1 for byte")
	numChars = flag.Int("n", 0, "number of characters (default ASCII has 95)")
	letterSp = flag.Int("letter", 0, "letter-spacing stored in the font")
	lineSp   = flag.Int("line", 0, "line-spacing stored in the font")
	verbose  = flag.Bool("v", false, "log every encoded glyph")
)

type params struct {
	src, dst     string
	typ          imgfont.FontType
	chars        int
	letter, line int
}

func (p *params) fields() logrus.Fields {
	return logrus.Fields{"src": p.src, "dst": p.dst, "type": p.typ, "chars": p.chars}
}

// gather takes every parameter given as a flag and asks for the rest.
func gather(pr *prompt.Prompter, given map[string]bool) (*params, error) {
	p := &params{src: *srcName, dst: *dstName, chars: *numChars, letter: *letterSp, line: *lineSp}
	var err error

	if given["src"] {
		if err = prompt.CheckSource(p.src); err != nil {
			return nil, fmt.Errorf("%s: %w", p.src, err)
		}
	} else if p.src, err = pr.Source(); err != nil {
		return nil, err
	}

	if given["o"] {
		if err = prompt.CheckDestination(p.dst); err != nil {
			return nil, fmt.Errorf("%s: %w", p.dst, err)
		}
	} else if p.dst, err = pr.Destination(); err != nil {
		return nil, err
	}

	if given["type"] {
		if p.typ, err = prompt.ParseFontType(*fontType); err != nil {
			return nil, err
		}
	} else if p.typ, err = pr.FontType(); err != nil {
		return nil, err
	}

	if !given["n"] {
		if p.chars, err = pr.Int("Insert number of characters (Default ASCII has 95):\n>"); err != nil {
			return nil, err
		}
	}
	if !given["letter"] {
		if p.letter, err = pr.Int("Insert Letter-Spacing:\n>"); err != nil {
			return nil, err
		}
	}
	if !given["line"] {
		if p.line, err = pr.Int("Insert Line-Spacing:\n>"); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// convert writes the font. A failed conversion removes the file it created,
// since a truncated font is useless.
func convert(p *params, log logrus.FieldLogger) error {
	r, format, err := source.Open(p.src)
	if err != nil {
		return err
	}
	w, h := r.Bounds()
	log.WithFields(logrus.Fields{"format": format, "width": w, "height": h}).Debug("decoded source image")

	f, err := os.OpenFile(p.dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	err = imgfont.Encode(f, r, imgfont.Options{
		Type:          p.typ,
		Chars:         p.chars,
		LetterSpacing: p.letter,
		LineSpacing:   p.line,
		Log:           log,
	})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(p.dst)
		return err
	}
	return nil
}

func main() {
	flag.Parse()

	log := logrus.New()
	log.Out = os.Stderr
	log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	given := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { given[f.Name] = true })
	for _, name := range []string{"src", "o", "type", "n", "letter", "line"} {
		if !given[name] {
			fmt.Println("*** Image to Font ***")
			break
		}
	}

	p, err := gather(prompt.New(os.Stdin, os.Stdout), given)
	if err != nil {
		log.WithError(err).Fatal("reading parameters")
	}

	entry := log.WithFields(p.fields())
	if err := convert(p, entry); err != nil {
		entry.WithError(err).Fatal("conversion failed")
	}
	entry.Info("created font")
}
