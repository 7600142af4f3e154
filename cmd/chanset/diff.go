package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/meshkit/chanset"
	"github.com/meshkit/chanset/transport"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes exactly 2 arguments", cli.ErrUsage)
	}
	a, err := canonicalInput(args[0], cc.In)
	if err != nil {
		return fmt.Errorf("error processing %s: %w", args[0], err)
	}
	b, err := canonicalInput(args[1], cc.In)
	if err != nil {
		return fmt.Errorf("error processing %s: %w", args[1], err)
	}
	return writeDiff(cc.Out, a, b, cfg.useColors(cc.Out))
}

// canonicalInput loads a named input and reduces it to canonical YAML,
// whether it holds a share URL or a YAML channel set. Both sides of a
// diff pass through the same reduction, so only semantic differences
// survive.
func canonicalInput(file string, stdin io.Reader) (string, error) {
	in, err := readFile(file, stdin)
	if err != nil {
		return "", err
	}
	if transport.FindURL(string(in)) == "" {
		url, err := chanset.EncodeFromYAML(in)
		if err != nil {
			return "", err
		}
		in = []byte(url)
	}
	d, err := chanset.DecodeToYAML(string(in))
	if err != nil {
		return "", err
	}
	return string(d), nil
}

func writeDiff(w io.Writer, a, b string, colors bool) error {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	if colors {
		color.NoColor = false
	}
	for _, d := range diffs {
		prefix, paint := "  ", (*color.Color)(nil)
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix, paint = "+ ", color.New(color.FgGreen)
		case diffmatchpatch.DiffDelete:
			prefix, paint = "- ", color.New(color.FgRed)
		}
		for line := range strings.Lines(d.Text) {
			text := prefix + strings.TrimSuffix(line, "\n")
			if colors && paint != nil {
				text = paint.Sprint(text)
			}
			if _, err := fmt.Fprintln(w, text); err != nil {
				return err
			}
		}
	}
	return nil
}
