package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='colorize output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// useColors reports whether output to w should be colorized: either
// -color was given, or -color was left unset and w is a terminal.
func (cfg *MainConfig) useColors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

type DecodeConfig struct {
	*MainConfig

	URLOnly bool `cli:"name=u desc='print the share URL found in the input and stop'"`

	Decode *cli.Command
}

type EncodeConfig struct {
	*MainConfig

	Prefix string

	Encode *cli.Command
}

func (cfg *EncodeConfig) prefixOpt(cc *cli.Context, a string) (any, error) {
	cfg.Prefix = a
	return nil, nil
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
