// Package snake fills in cobra commands and flags from interactive prompts.
package snake

import (
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Validator checks a single answer before it is accepted.
type Validator func(string) error

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func streams(cmd *cobra.Command) (io.ReadCloser, io.WriteCloser) {
	return io.NopCloser(cmd.InOrStdin()), nopWriteCloser{cmd.OutOrStdout()}
}

// PromptCommand asks which runnable subcommand of cmd to use.
func PromptCommand(cmd *cobra.Command) (*cobra.Command, error) {
	var subcommands []*cobra.Command
	for _, c := range cmd.Commands() {
		if c.IsAvailableCommand() && c.Runnable() {
			subcommands = append(subcommands, c)
		}
	}
	if len(subcommands) == 0 {
		return nil, fmt.Errorf("snake: %s has no subcommands", cmd.Name())
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Name | bold }} {{ .Short | green }}",
		Inactive: "   {{ .Name }} {{ .Short | cyan }}",
		Selected: "{{ .Name | bold }}",
	}

	searcher := func(input string, index int) bool {
		name := strings.ReplaceAll(strings.ToLower(subcommands[index].Name()+subcommands[index].Short), " ", "")
		input = strings.ReplaceAll(strings.ToLower(input), " ", "")
		return strings.Contains(name, input)
	}

	in, out := streams(cmd)
	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "Command",
		Items:     subcommands,
		Templates: templates,
		Size:      10,
		Searcher:  searcher,
		Stdin:     in,
		Stdout:    out,
	}
	i, _, err := prompt.Run()
	if err != nil {
		return nil, err
	}
	return subcommands[i], nil
}

// PromptFlags asks for each named flag the command line left unset. Empty
// answers keep the flag's default.
func PromptFlags(cmd *cobra.Command, validators map[string]Validator, names ...string) error {
	for _, name := range names {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			return fmt.Errorf("snake: unknown flag %q", name)
		}
		if f.Changed {
			continue
		}

		var validate Validator
		switch t := f.Value.Type(); t {
		case "bool":
			validate = func(s string) error {
				_, err := ParseBool(s)
				return err
			}
		case "string":
			validate = validators[name]
		default:
			return fmt.Errorf("snake: %q flag type %s not supported", name, t)
		}

		answer, err := promptFlag(cmd, f, validate)
		if err != nil {
			return err
		}
		if answer == "" {
			continue
		}
		if f.Value.Type() == "bool" {
			b, _ := ParseBool(answer)
			answer = fmt.Sprint(b)
		}
		if err := cmd.Flags().Set(name, answer); err != nil {
			return err
		}
	}
	return nil
}

func asFlags(f *pflag.Flag) string {
	if f.Shorthand != "" {
		return fmt.Sprintf("--%s, -%s", f.Name, f.Shorthand)
	}
	return fmt.Sprintf("--%s", f.Name)
}

func promptFlag(cmd *cobra.Command, f *pflag.Flag, validate Validator) (string, error) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", asFlags(f), f.Usage)

	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }}: ",
		Valid:   "{{ . | green }}: ",
		Invalid: "{{ . | red }}: ",
		Success: "{{ . | bold }}: ",
	}

	label := f.Name
	if f.DefValue != "" {
		label = fmt.Sprintf("%s [%s]", f.Name, f.DefValue)
	}

	in, out := streams(cmd)
	prompt := promptui.Prompt{
		Label:     label,
		Templates: templates,
		Validate: func(input string) error {
			if input == "" || validate == nil {
				return nil
			}
			return validate(input)
		},
		Stdin:  in,
		Stdout: out,
	}
	return prompt.Run()
}
