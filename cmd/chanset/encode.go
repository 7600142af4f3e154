package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/meshkit/chanset"
)

func encode(cfg *EncodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Encode.Parse(cc, args)
	if err != nil {
		return err
	}
	var opts []chanset.Option
	if cfg.Prefix != "" {
		opts = append(opts, chanset.WithURLPrefix(cfg.Prefix))
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		in, err := readFile(file, cc.In)
		if err != nil {
			return err
		}
		if err := encodeInput(cc.Out, in, opts); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

func encodeInput(w io.Writer, in []byte, opts []chanset.Option) error {
	url, err := chanset.EncodeFromYAML(in, opts...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, url)
	return err
}
