// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/acctl/acctl/internal/assume"
	"github.com/acctl/acctl/internal/config"
	"github.com/acctl/acctl/internal/meta"
)

// forgetCommandAction is the action handler for the "forget" subcommand. It
// removes a previously stored profile from the credential store. Removing a
// profile that is not there is reported, not failed: the desired end state
// holds either way.
func forgetCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "forget") {
		return nil
	}

	config.Config.Namespace = "forget"

	profile := cmd.String("profile")
	if profile == "" {
		args := cmd.Args().Slice()
		if len(args) == 0 {
			return fmt.Errorf("account name required. Usage: acctl forget <account>")
		}
		profile = assume.DefaultProfileName(args[0])
	}

	st, err := InitStoreWriter(cmd)
	if err != nil {
		return err
	}

	removed, err := st.Remove(profile)
	if err != nil {
		return err
	}

	if removed {
		fmt.Fprintf(os.Stdout, "✓ Profile '%s' removed from %s\n", profile, st.Path())
	} else {
		fmt.Fprintf(os.Stdout, "Profile '%s' not present in %s\n", profile, st.Path())
	}

	return nil
}

// forgetCommandBuilder constructs the cli.Command for "forget", wiring
// metadata, flags, and action handlers.
func forgetCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "forget",
		Usage:     "remove stored credentials for an account",
		UsageText: "acctl forget <account> [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "profile",
				Aliases: []string{"p"},
				Usage:   "credential store profile to remove. Overrides assumed-<account>",
			},
			NewStoreFlag("forget", meta.Config.Source),
			tldrFlag,
		},
		Action: forgetCommandAction,
	}
}
