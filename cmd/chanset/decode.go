package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/meshkit/chanset"
	"github.com/meshkit/chanset/transport"
)

func decode(cfg *DecodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Decode.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		in, err := io.ReadAll(cc.In)
		if err != nil {
			return fmt.Errorf("error reading: %w", err)
		}
		return decodeInput(cfg, cc.Out, in)
	}
	for _, file := range args {
		in, err := readFile(file, cc.In)
		if err != nil {
			return err
		}
		if err := decodeInput(cfg, cc.Out, in); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

func decodeInput(cfg *DecodeConfig, w io.Writer, in []byte) error {
	if cfg.URLOnly {
		url := transport.FindURL(string(in))
		if url == "" {
			return transport.ErrNoShareURL
		}
		_, err := fmt.Fprintln(w, url)
		return err
	}
	d, err := chanset.DecodeToYAML(string(in))
	if err != nil {
		return err
	}
	if cfg.useColors(w) {
		// the color package guesses from stdout; -o and -color override
		color.NoColor = false
		return writeColorYAML(w, d)
	}
	_, err = w.Write(d)
	return err
}

// readFile reads a named input, with "-" standing for stdin.
func readFile(file string, stdin io.Reader) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(stdin)
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	defer f.Close()
	return io.ReadAll(f)
}

var (
	keyColor    = color.New(color.FgCyan)
	stringColor = color.New(color.FgGreen)
)

// writeColorYAML prints YAML with mapping keys and quoted values
// colorized. It leans on the canonical form being one entry per line.
func writeColorYAML(w io.Writer, d []byte) error {
	bw := bufio.NewWriter(w)
	sc := bufio.NewScanner(strings.NewReader(string(d)))
	for sc.Scan() {
		line := sc.Text()
		body := strings.TrimLeft(line, " -")
		indent := line[:len(line)-len(body)]
		key, val, ok := strings.Cut(body, ": ")
		switch {
		case !ok && strings.HasSuffix(body, ":"):
			fmt.Fprintf(bw, "%s%s:\n", indent, keyColor.Sprint(strings.TrimSuffix(body, ":")))
		case ok:
			fmt.Fprintf(bw, "%s%s: %s\n", indent, keyColor.Sprint(key), colorValue(val))
		default:
			fmt.Fprintln(bw, line)
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return bw.Flush()
}

func colorValue(v string) string {
	if strings.HasPrefix(v, `"`) || strings.HasPrefix(v, "'") {
		return stringColor.Sprint(v)
	}
	return v
}
