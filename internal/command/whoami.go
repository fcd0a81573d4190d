// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"reflect"
	"time"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/acctl/acctl/internal/broker"
	"github.com/acctl/acctl/internal/cacheutil"
	"github.com/acctl/acctl/internal/config"
	"github.com/acctl/acctl/internal/meta"
)

// whoamiDefaultAttrs specifies the default attributes displayed for the
// caller identity in the "whoami" command output.
var whoamiDefaultAttrs = []string{".account", ".arn", ".user_id"}

// whoamiCommandAction is the action handler for the "whoami" subcommand. It
// resolves the effective STS caller identity, supports --tldr/--schema
// shortcuts, and emits results per common flags.
func whoamiCommandAction(ctx context.Context, cmd *cli.Command) error {
	config.Config.Namespace = "whoami"

	return NewQueryActionRunner(
		"whoami",
		reflect.TypeOf(broker.Identity{}),
		whoamiDefaultAttrs,
		whoamiFetcher,
	).Run(ctx, cmd)
}

// whoamiFetcher resolves the caller identity, consulting the cache first.
// Only the identity document is cached, never credential material.
func whoamiFetcher(ctx context.Context, cmd *cli.Command) ([]broker.Identity, error) {
	subdirs, key := identityCacheCoords(cmd)

	if !cmd.Bool("no-cache") {
		ttl, _ := config.GetInt("cache.ttl_minutes", 5)
		if entry, ok := cacheutil.ReadFresh(subdirs, key, time.Duration(ttl)*time.Minute); ok {
			var id broker.Identity
			if err := json.Unmarshal(entry.Data, &id); err == nil {
				log.Debugf("identity cache hit: %s", entry.Path)
				return []broker.Identity{id}, nil
			}
			log.Debugf("unreadable identity cache entry, refetching")
		}
	}

	client, err := InitBroker(ctx, cmd)
	if err != nil {
		return nil, err
	}

	id, err := client.CallerIdentity(ctx)
	if err != nil {
		return nil, broker.Friendly(err)
	}

	if data, err := json.Marshal(id); err == nil {
		_ = cacheutil.Write(subdirs, key, data)
	}

	purgeIdentityCache()

	return []broker.Identity{id}, nil
}

// identityCacheCoords buckets cached identities by source profile and region
// so switching either never serves a stale principal.
func identityCacheCoords(cmd *cli.Command) ([]string, string) {
	profile := cmd.String("source-profile")
	if profile == "" {
		profile = "default"
	}

	region := cmd.String("region")
	if region == "" {
		region = "default"
	}

	return []string{"identity", profile, region}, "caller-identity"
}

// purgeIdentityCache removes cache entries older than the configured
// cache.clean horizon.
func purgeIdentityCache() {
	cleanHours, _ := config.GetInt("cache.clean")
	_ = cacheutil.Purge(cleanHours)
}

// whoamiCommandBuilder constructs the cli.Command for "whoami", wiring
// metadata, flags, and action handlers.
func whoamiCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "whoami",
		Usage:     "caller identity query",
		UsageText: "acctl whoami [options]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-cache",
				Usage: "bypass the identity cache",
				Value: false,
			},
			&cli.StringFlag{
				Name:  "source-profile",
				Usage: "AWS config profile supplying the credentials",
			},
			&cli.StringFlag{
				Name:  "region",
				Usage: "AWS region for the STS call",
			},
		},
		Action: whoamiCommandAction,
		Meta:   meta,
	}).Build()
}
