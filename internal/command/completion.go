// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/nuoa-io/nuoa-swe/internal/meta"
)

const bashCompletionScript = `# bash completion for nuoa-swe
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_nuoa_swe()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "detect lambdas logs bump-version completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local aws="--region --endpoint-url"

    case "$cmd" in
        detect)
            local opts="$aws --profile --service -s --output -o --color -c"
            ;;
        lambdas)
            local opts="$aws --profile --domain -d --stage"
            ;;
        logs)
            local opts="$aws --profile --function -f --time -t"
            ;;
        bump-version)
            local opts="$aws --aws-profile --table-name --dry-run --version-attr --max-pages"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            local opts="--help"
            ;;
    esac

    case "$prev" in
        --output|-o)
            COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
            return 0
            ;;
        --service|-s)
            COMPREPLY=( $(compgen -W "lambda s3 dynamodb cloudformation apigateway all" -- "$cur") )
            return 0
            ;;
        --time|-t)
            COMPREPLY=( $(compgen -W "5m 15m 1h 6h 1d" -- "$cur") )
            return 0
            ;;
    esac

    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
}

complete -F _nuoa_swe nuoa-swe
`

const zshCompletionScript = `#compdef nuoa-swe

_nuoa_swe() {
  local -a cmds
  cmds=(
    'detect:detect AWS resources in a region'
    'lambdas:list Lambda function names'
    'logs:fetch recent CloudWatch log events'
    'bump-version:increment the version attribute of every row'
    'completion:generate shell completion script'
  )

  local -a aws
  aws=(
    '--region[AWS region]:region'
    '--endpoint-url[endpoint override]:url'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'nuoa-swe commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    detect)
      _arguments -C \
        $aws \
        '--profile[AWS profile]:profile' \
        '(-s --service)'{-s,--service}'[service]:service:(lambda s3 dynamodb cloudformation apigateway all)' \
        '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)' \
        '(-c --color)'{-c,--color}'[enable colored text]'
      ;;
    lambdas)
      _arguments -C \
        $aws \
        '--profile[AWS profile]:profile' \
        '(-d --domain)'{-d,--domain}'[domain filter]:domain' \
        '--stage[stage filter]:stage'
      ;;
    logs)
      _arguments -C \
        $aws \
        '--profile[AWS profile]:profile' \
        '(-f --function)'{-f,--function}'[function name]:function' \
        '(-t --time)'{-t,--time}'[look-back window]:time:(5m 15m 1h 6h 1d)'
      ;;
    bump-version)
      _arguments -C \
        $aws \
        '--aws-profile[AWS profile]:profile' \
        '--table-name[DynamoDB table]:table' \
        '--dry-run[count only]' \
        '--version-attr[version attribute]:attr' \
        '--max-pages[scan page limit]:pages'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _nuoa_swe nuoa-swe
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	out := outWriter(cmd)

	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(out, bashCompletionScript)
	case "zsh":
		fmt.Fprint(out, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(out, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(out, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: nuoa-swe completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "nuoa-swe completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
