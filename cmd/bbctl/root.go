package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Kargones/bitbucket-client/internal/command"
	"github.com/Kargones/bitbucket-client/internal/constants"
	"github.com/Kargones/bitbucket-client/internal/pkg/output"
)

// options — глобальные флаги bbctl.
type options struct {
	configPath string
	format     string
}

// newRootCmd собирает корневую команду с подкомандой на каждый
// зарегистрированный обработчик.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "bbctl",
		Short:         "Клиент REST API Bitbucket Server",
		Long:          "bbctl выполняет запросы к REST API Bitbucket Server 1.0:\nпроекты, репозитории, ветки, коммиты, pull request-ы и пользователи.",
		Version:       constants.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			switch strings.ToLower(opts.format) {
			case output.FormatText, output.FormatJSON:
				return nil
			default:
				return fmt.Errorf("неизвестный формат вывода %q: ожидается text или json", opts.format)
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&opts.configPath, "config", os.Getenv(constants.EnvConfigFile),
		"путь к YAML-конфигурации (переменная "+constants.EnvConfigFile+")")
	root.PersistentFlags().StringVarP(&opts.format, "output", "o", defaultFormat(),
		"формат вывода: text или json (переменная "+constants.EnvOutputFormat+")")

	for _, name := range command.Names() {
		h, _ := command.Get(name)
		root.AddCommand(newHandlerCmd(h, opts))
	}
	return root
}

// newHandlerCmd оборачивает обработчик в cobra команду.
func newHandlerCmd(h command.Handler, opts *options) *cobra.Command {
	argNames := command.ArgNames(h)
	use := h.Name()
	for _, a := range argNames {
		use += " <" + a + ">"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: h.Description(),
		Args:  cobra.ExactArgs(len(argNames)),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := execute(cmd.Context(), h, opts, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if code != exitOK {
				return &exitError{code: code}
			}
			return nil
		},
	}
	if f, ok := h.(command.WithFlags); ok {
		f.BindFlags(cmd.Flags())
	}
	return cmd
}

func defaultFormat() string {
	if f := os.Getenv(constants.EnvOutputFormat); f != "" {
		return f
	}
	return output.FormatText
}
