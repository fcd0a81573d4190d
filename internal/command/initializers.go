// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"time"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/acctl/acctl/internal/aws"
	"github.com/acctl/acctl/internal/broker"
	"github.com/acctl/acctl/internal/config"
	"github.com/acctl/acctl/internal/registry"
	"github.com/acctl/acctl/internal/store"
)

// InitRegistry opens the account registry selected by the --registry flag.
// An empty value falls back to the well-known registry locations.
func InitRegistry(cmd *cli.Command) (*registry.Registry, error) {
	reg, err := registry.Load(cmd.String("registry"))
	if err != nil {
		return nil, err
	}
	log.Debugf("registry: %d accounts", len(reg.Accounts))
	return reg, nil
}

// InitStoreWriter returns a writer on the credential store selected by the
// --store flag. An empty value falls back to the shared credentials file.
func InitStoreWriter(cmd *cli.Command) (*store.Writer, error) {
	path := cmd.String("store")
	if path == "" {
		var err error
		path, err = store.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve credential store: %w", err)
		}
	}
	log.Debugf("store: %v", path)
	return store.NewWriter(path), nil
}

// InitBroker builds an STS-backed broker honoring the command's
// --source-profile and --region selection.
func InitBroker(ctx context.Context, cmd *cli.Command) (*broker.Client, error) {
	var opts []aws.Option
	if p := cmd.String("source-profile"); p != "" {
		opts = append(opts, aws.WithProfile(p))
	}
	if r := cmd.String("region"); r != "" {
		opts = append(opts, aws.WithRegion(r))
	}

	cfg, err := aws.LoadAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	log.Debugf("aws region: %v", cfg.Region)

	timeout, _ := config.GetInt("timeout", int(broker.DefaultTimeout/time.Second))
	return broker.New(aws.NewSTS(cfg), time.Duration(timeout)*time.Second), nil
}
