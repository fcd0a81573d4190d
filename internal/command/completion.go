// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/acctl/acctl/internal/meta"
)

const bashCompletionScript = `# bash completion for acctl
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_acctl_accounts()
{
    acctl list --output json 2>/dev/null | grep -o '"name":"[^"]*"' | cut -d'"' -f4
}

_acctl()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "assume forget list whoami completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--attrs -a --color -c --filter -f --output -o --sort -s --titles -t --tldr"

    # Determine if the account positional has already been provided
    local have_account=0
    local idx=2
    while [[ $idx -lt ${#COMP_WORDS[@]} && $idx -lt ${COMP_CWORD} ]]; do
        local w=${COMP_WORDS[$idx]}
        if [[ $w != -* ]]; then
            have_account=1
            break
        fi
        ((idx++))
    done

    case "$cmd" in
    assume)
        local opts="--duration -d --profile -p --region --registry --source-profile --store --tldr"
        if [[ "$cur" != -* && $have_account -eq 0 ]]; then
            COMPREPLY=( $(compgen -W "$(_acctl_accounts)" -- "$cur") )
            return 0
        fi
        ;;
    forget)
        local opts="--profile -p --store --tldr"
        if [[ "$cur" != -* && $have_account -eq 0 ]]; then
            COMPREPLY=( $(compgen -W "$(_acctl_accounts)" -- "$cur") )
            return 0
        fi
        ;;
    list)
        local opts="$common --schema --registry --padding"
        ;;
    whoami)
        local opts="$common --schema --no-cache --region --source-profile --padding"
        ;;
    completion)
        local opts="bash zsh"
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
        ;;
    *)
        local opts="$common"
        ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
        return 0
    fi

    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
}

complete -F _acctl acctl
`

const zshCompletionScript = `#compdef acctl

_acctl_accounts() {
  local -a accounts
  accounts=(${(f)"$(acctl list --output json 2>/dev/null | grep -o '"name":"[^"]*"' | cut -d'"' -f4)"})
  _describe -t accounts 'accounts' accounts
}

_acctl() {
  local -a cmds
  cmds=(
    'assume:assume an account role and store the credentials'
    'forget:remove stored credentials for an account'
    'list:account registry query'
    'whoami:caller identity query'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-a --attrs)'{-a,--attrs}'[attributes to include]:attrs'
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)'
  '(-s --sort)'{-s,--sort}'[sort attributes]:attrs'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '--tldr[show tldr page]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'acctl commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    assume)
      _arguments -C \
        '(-d --duration)'{-d,--duration}'[session duration in seconds]:seconds' \
        '(-p --profile)'{-p,--profile}'[credential store profile]:profile' \
        '--region[AWS region]:region' \
        '--registry[account registry file]:file:_files' \
        '--source-profile[source AWS config profile]:profile' \
        '--store[credential store file]:file:_files' \
        '--tldr[show tldr page]' \
        '1:account:_acctl_accounts' \
        '2::session name:'
      ;;
    forget)
      _arguments -C \
        '(-p --profile)'{-p,--profile}'[credential store profile]:profile' \
        '--store[credential store file]:file:_files' \
        '--tldr[show tldr page]' \
        '1:account:_acctl_accounts'
      ;;
    list)
      _arguments -C \
        $common \
        '--schema[dump schema]' \
        '--registry[account registry file]:file:_files'
      ;;
    whoami)
      _arguments -C \
        $common \
        '--schema[dump schema]' \
        '--no-cache[bypass the identity cache]' \
        '--region[AWS region]:region' \
        '--source-profile[source AWS config profile]:profile'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _acctl acctl
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(os.Stdout, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(os.Stdout, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: acctl completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "acctl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
