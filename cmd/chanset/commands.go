package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "chanset").
		WithSynopsis("chanset [opts] command [opts]").
		WithDescription("chanset transcodes channel-set share URLs to and from YAML.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return chansetMain(cfg, cc, args)
		}).
		WithSubs(
			DecodeCommand(cfg),
			EncodeCommand(cfg),
			DiffCommand(cfg))
}

func chansetMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func DecodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DecodeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Decode, "decode").
		WithAliases("d", "de").
		WithSynopsis("decode [opts] [files]").
		WithDescription("decode share URLs found in files (or stdin) to YAML").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return decode(cfg, cc, args)
		})
}

func EncodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EncodeConfig{MainConfig: mainCfg}
	opts := []*cli.Opt{
		{
			Name:        "host",
			Aliases:     []string{"prefix"},
			Description: "URL prefix placed before the payload fragment",
			Type:        cli.NamedFuncOpt(cfg.prefixOpt, "(url)"),
		},
	}
	return cli.NewCommandAt(&cfg.Encode, "encode").
		WithAliases("e", "en").
		WithSynopsis("encode [opts] [files]").
		WithDescription("encode YAML channel sets (from files or stdin) as share URLs").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return encode(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("di").
		WithSynopsis("diff <a> <b>").
		WithDescription("diff two channel sets, each a file holding a share URL or YAML").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}
