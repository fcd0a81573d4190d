// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"reflect"

	"github.com/urfave/cli/v3"

	"github.com/acctl/acctl/internal/config"
	"github.com/acctl/acctl/internal/meta"
	"github.com/acctl/acctl/internal/registry"
)

// listDefaultAttrs specifies the default attributes displayed for registry
// accounts in the "list" command output.
var listDefaultAttrs = []string{".name", ".account_id", ".role_arn", ".description"}

// listCommandAction is the action handler for the "list" subcommand. It
// enumerates the accounts in the registry, supports --tldr/--schema
// shortcuts, and emits results per common flags.
func listCommandAction(ctx context.Context, cmd *cli.Command) error {
	reg, err := InitRegistry(cmd)
	if err != nil {
		return err
	}

	config.Config.Namespace = "list"

	// The registry is already in memory, so the fetcher just hands the
	// accounts to the output pipeline.
	fn := func(ctx context.Context, cmd *cli.Command) ([]registry.Account, error) {
		return reg.Accounts, nil
	}

	return NewQueryActionRunner(
		"list",
		reflect.TypeOf(registry.Account{}),
		listDefaultAttrs,
		fn,
	).Run(ctx, cmd)
}

// listCommandBuilder constructs the cli.Command for "list", wiring metadata,
// flags, and action handlers.
func listCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "list",
		Usage:     "account registry query",
		UsageText: "acctl list [options]",
		Flags: []cli.Flag{
			NewRegistryFlag("list", meta.Config.Source),
		},
		Action: listCommandAction,
		Meta:   meta,
	}).Build()
}
