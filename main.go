// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/acctl/acctl/internal/cacheutil"
	"github.com/acctl/acctl/internal/command"
	"github.com/acctl/acctl/internal/config"
	"github.com/acctl/acctl/internal/log"
	"github.com/acctl/acctl/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processCommandArgs handles command-specific argument processing.
func processCommandArgs(args []string) []string {
	switch {
	case len(args) > 1 && args[1] == "completion":
		// Short-circuit completion: pass args directly.
		return args
	default:
		// Expand @set arguments first, then collapse repeated flags.
		args = processSetOnly(args)
		log.Debugf("args after set processing: args=%v", args)

		args = deduplicateFlags(args)
		log.Debugf("args after dedup: args=%v", args)

		return args
	}
}

// argToken is one parsed argument: a flag, possibly carrying its value, or a
// positional.
type argToken struct {
	name  string
	parts []string
	flag  bool
}

// deduplicateFlags removes earlier occurrences of repeated flags so the last
// one wins. Set expansion can produce duplicates when the user also passes a
// flag explicitly, and the CLI parser rejects repeats for scalar flags, so
// they are collapsed here. Positional arguments are never touched.
func deduplicateFlags(args []string) []string {
	if len(args) <= 2 {
		return args
	}

	var tokens []argToken
	for i := 2; i < len(args); i++ {
		a := args[i]
		if !strings.HasPrefix(a, "-") {
			tokens = append(tokens, argToken{parts: []string{a}})
			continue
		}

		tok := argToken{name: a, parts: []string{a}, flag: true}
		if eq := strings.Index(a, "="); eq != -1 {
			tok.name = a[:eq]
		} else if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			tok.parts = append(tok.parts, args[i+1])
			i++
		}
		tokens = append(tokens, tok)
	}

	last := make(map[string]int)
	for i, tok := range tokens {
		if tok.flag {
			last[tok.name] = i
		}
	}

	result := append([]string{}, args[:2]...)
	for i, tok := range tokens {
		if tok.flag && last[tok.name] != i {
			continue
		}
		result = append(result, tok.parts...)
	}

	return result
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	// Pre-create cache directory when caching is enabled.
	if _, ok, err := cacheutil.EnsureBaseDir(); err != nil && ok {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("cache ensure err: err=%v", err)
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip command processing and let the CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = processCommandArgs(args)
	}

	return initAndRunApp(args)
}

// processSetOnly handles the @set logic for all commands, expanding set arguments at the @set position.
func processSetOnly(args []string) []string {
	// Look for an explicit @set argument starting from index 2.
	idx := 2
	set := "defaults"
	removeIdx := -1
	for i, a := range args[idx:] {
		if strings.HasPrefix(a, "@") {
			set = a[1:]
			removeIdx = idx + i
			break
		}
	}
	if removeIdx != -1 {
		// Remove the @set argument.
		args = append(args[:removeIdx], args[removeIdx+1:]...)
		// Expand the set arguments at the removeIdx position.
		setArgs, _ := config.GetStringSlice(args[1] + "." + set)
		for _, arg := range setArgs {
			parts := strings.Fields(arg)
			args = append(args[:removeIdx], append(parts, args[removeIdx:]...)...)
			removeIdx += len(parts)
		}
	}
	return args
}
