// Package cli holds the command-line plumbing shared by the demo
// programs: flags, configuration file, environment and logging.
package cli

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/PoignardAzur/panoramix-sub000/ui"
)

const envPrefix = "PANORAMIX"

type options struct {
	cfgFile string
}

// NewCommand returns the root command of a demo program. run is called
// with the resolved driver configuration.
func NewCommand(name, short string, run func(cfg ui.Config) error) *cobra.Command {
	var opts options
	v := viper.New()
	cmd := &cobra.Command{
		Use:           name,
		Short:         short,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, opts.cfgFile)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := ui.Config{Out: cmd.OutOrStdout(), Format: v.GetString("format")}
			if script := v.GetString("script"); script != "" {
				f, err := os.Open(script)
				if err != nil {
					return errors.Wrap(err, "open script")
				}
				defer f.Close()
				cfg.In = f
			} else {
				cfg.In = cmd.InOrStdin()
			}
			return run(cfg)
		},
	}

	fs := cmd.PersistentFlags()
	fs.StringVar(&opts.cfgFile, "config", "", "config file (yaml, json or toml)")
	fs.BoolP("debug", "d", false, "turn on debug logging")
	fs.String("script", "", "read actions from this file instead of stdin")
	fs.String("format", ui.FormatPaint, "how to show the widgets: paint, tree, dump or yaml")
	for _, key := range []string{"debug", "script", "format"} {
		if err := v.BindPFlag(key, fs.Lookup(key)); err != nil {
			panic(err)
		}
	}
	return cmd
}

// initConfig merges the config file and the environment into v, and
// sets up logging.
func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", cfgFile)
		}
	}

	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logrus.SetLevel(logrus.InfoLevel)
	if v.GetBool("debug") {
		logrus.SetLevel(logrus.DebugLevel)
	}
	return nil
}

// Execute runs cmd and exits the process on failure.
func Execute(cmd *cobra.Command) {
	if err := cmd.Execute(); err != nil {
		logrus.Errorf("%s: %v", cmd.Name(), err)
		os.Exit(1)
	}
}
