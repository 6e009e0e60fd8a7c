package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"wbrcli/internal/configs"
)

// cliOptions are the choices made on the command line.
type cliOptions struct {
	custom  string
	noLogin bool
	verbose bool
	version bool
}

type runFunc func(ctx context.Context, opts *cliOptions) error

func newCmd(opts *cliOptions, runner runFunc) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(strings.TrimSuffix(configs.EnvPrefix, "_"))
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "wbr",
		Short:         "Play What Beats Rock in the terminal.",
		Long:          "Play What Beats Rock in the terminal.\n\nType EXIT at any prompt of a running game to save it and quit.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.custom = strings.TrimPrefix(strings.TrimSpace(opts.custom), "@")
			return runner(cmd.Context(), opts)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&opts.custom, "custom", "c", "", "play the custom game of this account handle (env: WBR_CUSTOM)")
	fs.BoolVar(&opts.noLogin, "no-login", false, "do not look for logged in accounts in browsers (env: WBR_NO_LOGIN)")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "display debug logs on stderr (env: WBR_VERBOSE)")
	fs.BoolVarP(&opts.version, "version", "V", false, "display version and exit")

	fs.VisitAll(func(f *pflag.Flag) {
		if f.Name == "version" {
			return
		}
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("wbr v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
