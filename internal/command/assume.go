// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/acctl/acctl/internal/assume"
	"github.com/acctl/acctl/internal/audit"
	"github.com/acctl/acctl/internal/broker"
	"github.com/acctl/acctl/internal/config"
	"github.com/acctl/acctl/internal/meta"
)

// assumeCommandAction is the action handler for the "assume" subcommand. It
// exchanges the account's registry role for temporary STS credentials and
// installs them as a named profile in the credential store.
func assumeCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "assume") {
		return nil
	}

	config.Config.Namespace = "assume"

	args := cmd.Args().Slice()
	if len(args) == 0 {
		return fmt.Errorf("account name required. Usage: acctl assume <account> [session-name]")
	}
	account := args[0]
	session := ""
	if len(args) > 1 {
		session = args[1]
	}

	reg, err := InitRegistry(cmd)
	if err != nil {
		return err
	}

	st, err := InitStoreWriter(cmd)
	if err != nil {
		return err
	}

	client, err := InitBroker(ctx, cmd)
	if err != nil {
		return err
	}

	auditPath, _ := config.GetString("audit")
	orch := assume.New(reg, client, st, audit.New(auditPath))

	fmt.Fprintf(os.Stdout, "Assuming role in account '%s'...\n", account)

	outcome, err := orch.Run(ctx, assume.Request{
		Account:  account,
		Session:  session,
		Profile:  cmd.String("profile"),
		Duration: time.Duration(cmd.Int("duration")) * time.Second,
	})
	if err != nil {
		return broker.Friendly(err)
	}

	writeOutcome(os.Stdout, outcome, st.Path())

	return nil
}

// writeOutcome prints the confirmation block for a completed assumption.
func writeOutcome(w io.Writer, outcome *assume.Outcome, storePath string) {
	fmt.Fprintf(w, "\n✓ Assumed role in account '%s' (%s)\n",
		outcome.Account.Name, outcome.Account.AccountID)

	if exp := outcome.Credentials.Expiration; !exp.IsZero() {
		fmt.Fprintf(w, "✓ Session '%s' expires %s (%s)\n",
			outcome.Session, exp.Local().Format("2006-01-02 15:04:05"), humanize.Time(exp))
	}

	fmt.Fprintf(w, "✓ Profile '%s' %s in %s\n",
		outcome.Profile, outcome.Result, storePath)

	fmt.Fprintf(w, "\nUse it with:\n  export AWS_PROFILE=%s\n", outcome.Profile)
}

// assumeCommandBuilder constructs the cli.Command for "assume", wiring
// metadata, flags, and action handlers.
func assumeCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "assume",
		Usage:     "assume an account role and store the credentials",
		UsageText: "acctl assume <account> [session-name] [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "profile",
				Aliases: []string{"p"},
				Usage:   "credential store profile to write. Overrides assumed-<account>",
			},
			NewDurationFlag("assume", meta.Config.Source),
			NewRegistryFlag("assume", meta.Config.Source),
			NewStoreFlag("assume", meta.Config.Source),
			&cli.StringFlag{
				Name:  "source-profile",
				Usage: "AWS config profile supplying the source credentials",
			},
			&cli.StringFlag{
				Name:  "region",
				Usage: "AWS region for the STS call",
			},
			tldrFlag,
		},
		Action: assumeCommandAction,
	}
}
