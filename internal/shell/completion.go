package shell

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/MakeNowJust/heredoc/v2"
)

// Shells lists the shells a completion script can be generated for.
var Shells = []string{"bash", "zsh", "fish"}

// The scripts delegate to go-flags' builtin completion protocol: when
// GO_FLAGS_COMPLETION is set the program prints candidates and exits.
var completionTemplates = map[string]string{
	"bash": heredoc.Doc(`
		# bash completion for {{ .Prog }}
		_{{ .Func }}() {
		    local args=("${COMP_WORDS[@]:1:$COMP_CWORD}")
		    local IFS=$'\n'
		    COMPREPLY=($(GO_FLAGS_COMPLETION=1 ${COMP_WORDS[0]} "${args[@]}"))
		    return 0
		}
		complete -o default -F _{{ .Func }} {{ .Prog }}
	`),
	"zsh": heredoc.Doc(`
		#compdef {{ .Prog }}
		# zsh completion for {{ .Prog }}
		autoload -U +X bashcompinit && bashcompinit
		_{{ .Func }}() {
		    local args=("${COMP_WORDS[@]:1:$COMP_CWORD}")
		    local IFS=$'\n'
		    COMPREPLY=($(GO_FLAGS_COMPLETION=1 ${COMP_WORDS[0]} "${args[@]}"))
		    return 0
		}
		complete -o default -F _{{ .Func }} {{ .Prog }}
	`),
	"fish": heredoc.Doc(`
		# fish completion for {{ .Prog }}
		function __{{ .Func }}_complete
		    set -l args (commandline -opc)[2..-1] (commandline -ct)
		    env GO_FLAGS_COMPLETION=1 {{ .Prog }} $args
		end
		complete -c {{ .Prog }} -f -a '(__{{ .Func }}_complete)'
	`),
}

// Completion renders the completion script of the given shell for prog.
func Completion(shell, prog string) (string, error) {
	text, ok := completionTemplates[strings.ToLower(shell)]
	if !ok {
		return "", fmt.Errorf("unsupported shell %q (available: %s)", shell, strings.Join(Shells, ", "))
	}

	tmpl, err := template.New(shell).Parse(text)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	err = tmpl.Execute(&b, struct {
		Prog string
		Func string
	}{
		Prog: prog,
		Func: strings.NewReplacer("-", "_", ".", "_").Replace(prog),
	})
	return b.String(), err
}
