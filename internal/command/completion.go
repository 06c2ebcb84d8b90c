// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/boshctl/internal/meta"
)

const bashCompletionScript = `# bash completion for boshctl
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_boshctl()
{
  local cur prev cmd
  COMPREPLY=()
  _get_comp_words_by_ref -n : cur prev

  local global="--config -c --target -t --help --version"

  if [[ ${COMP_CWORD} -eq 1 ]]; then
    COMPREPLY=( $(compgen -W "alias aliases config deployment login logout status target completion $global" -- "$cur") )
    return 0
  fi

  case "$prev" in
    --config|-c)
      COMPREPLY=( $(compgen -f -- "$cur") )
      return 0
      ;;
    --output|-o)
      COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
      return 0
      ;;
  esac

  cmd=${COMP_WORDS[1]}
  local listing="--color --output -o --titles"
  case "$cmd" in
    aliases|status)
      COMPREPLY=( $(compgen -W "$listing $global" -- "$cur") )
      ;;
    config)
      COMPREPLY=( $(compgen -W "get path" -- "$cur") )
      ;;
    deployment)
      if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "--name $listing $global" -- "$cur") )
      else
        COMPREPLY=( $(compgen -W "list ls rm" -f -- "$cur") )
      fi
      ;;
    target)
      COMPREPLY=( $(compgen -W "--name $global" -- "$cur") )
      ;;
    completion)
      COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
      ;;
    *)
      COMPREPLY=( $(compgen -W "$global" -- "$cur") )
      ;;
  esac
  return 0
}

complete -F _boshctl boshctl
`

const zshCompletionScript = `#compdef boshctl

_boshctl() {
  local -a cmds
  cmds=(
    'alias:create an alias'
    'aliases:list aliases'
    'config:inspect the configuration file'
    'deployment:show or set the deployment manifest'
    'login:store credentials for the current target'
    'logout:forget credentials for the current target'
    'status:show the current configuration'
    'target:show or set the director target'
    'completion:generate shell completion script'
  )

  local -a global listing
  global=(
    '(-c --config)'{-c,--config}'[configuration file]:file:_files'
    '(-t --target)'{-t,--target}'[director to address]:url'
  )
  listing=(
    '--color[enable colored text]'
    '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)'
    '--titles[show titles]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'boshctl commands' cmds
    return
  fi

  case $words[2] in
    aliases|status)
      _arguments $global $listing '*::category'
      ;;
    config)
      _arguments $global '1: :((get path))' '2::path'
      ;;
    deployment)
      _arguments $global $listing '--name[record under NAME]:name' '1::manifest:_files'
      ;;
    target)
      _arguments $global '--name[director name]:name' '1::url'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments $global '*::args'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _boshctl boshctl
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := writer(cmd)

	shell := cmd.Args().First()
	if shell == "" {
		// Try to detect from SHELL.
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		return fmt.Errorf("usage: %s", cmd.UsageText)
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "boshctl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
