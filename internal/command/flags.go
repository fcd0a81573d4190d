// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os/exec"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var (
	schemaFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "schema",
		Usage:       "dump the schema",
		HideDefault: true,
	}

	tldrFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "tldr",
		Usage:       "show tldr page",
		Hidden:      !pathHas("tldr"),
		HideDefault: true,
	}
)

func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "attrs",
			Aliases: []string{"a"},
			Usage:   "comma-separated list of attributes to include in results",
		},
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
		},
		&cli.BoolFlag{
			Name:    "local",
			Aliases: []string{"l"},
			Usage:   "show local timestamps",
			Value:   false,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.IntFlag{
			Name:        "padding",
			Usage:       "column padding for text output",
			Value:       2,
			HideDefault: true,
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of attributes to sort the results by",
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   false,
		},
	}

	return
}

// NewRegistryFlag constructs a cli.StringFlag for the "registry" flag,
// optionally namespaced to a command and config file.  params[1] is the
// config file.
func NewRegistryFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:  "registry",
		Usage: "account registry file to read",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("ACCTL_REGISTRY"),
		),
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewStoreFlag constructs a cli.StringFlag for the "store" flag, optionally
// namespaced to a command and config file.  params[1] is the config file.
// An empty value lets the writer fall back to the shared credentials file.
func NewStoreFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:  "store",
		Usage: "credential store file to write. Overrides the default",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("ACCTL_STORE"),
		),
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewDurationFlag constructs a cli.IntFlag for the "duration" flag, optionally
// namespaced to a command and config file.  params[1] is the config file.
func NewDurationFlag(params ...string) (flag *cli.IntFlag) {
	flag = &cli.IntFlag{
		Name:    "duration",
		Aliases: []string{"d"},
		Usage:   "session duration in seconds",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("ACCTL_DURATION"),
		),
		Value: 3600,
		Validator: func(value int) error {
			return FlagValidators(value, DurationValidator)
		},
	}

	if len(params) == 2 {
		src := yaml.YAML(params[0]+"."+flag.Name, altsrc.StringSourcer(params[1]))
		flag.Sources.Chain = append(flag.Sources.Chain, src)

		src = yaml.YAML(flag.Name, altsrc.StringSourcer(params[1]))
		flag.Sources.Chain = append(flag.Sources.Chain, src)
	}

	return
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}

// pathHas checks if the given key exists in cfg.Source.
func pathHas(target string) bool {
	_, err := exec.LookPath(target)
	return err == nil
}
