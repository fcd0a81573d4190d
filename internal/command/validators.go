// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	return nil
}

func OutputValidator(value any) error {
	var validOutputFlagValues = []string{"text", "json", "raw", "yaml"}
	valid := false
	for _, v := range validOutputFlagValues {
		if v == value {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("must be one of %v", validOutputFlagValues)
	}
	return nil
}

// DurationValidator enforces the STS session duration window.  AssumeRole
// rejects anything outside 900..43200 seconds, so fail fast here instead of
// round-tripping to the service.
func DurationValidator(value any) error {
	v, ok := value.(int)
	if !ok {
		return fmt.Errorf("must be an integer number of seconds")
	}
	if v < 900 || v > 43200 {
		return fmt.Errorf("must be between 900 and 43200 seconds, got %d", v)
	}
	return nil
}
