// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"

	"github.com/automa-saga/logx"
	"github.com/joomcode/errorx"
	"github.com/spf13/cobra"

	"github.com/pisilinux/farmctl/cmd/farmctl/commands/farm"
	"github.com/pisilinux/farmctl/cmd/farmctl/commands/repocmd"
	"github.com/pisilinux/farmctl/cmd/farmctl/commands/versioncmd"
	"github.com/pisilinux/farmctl/internal/config"
	"github.com/pisilinux/farmctl/internal/doctor"
)

// examples:
// ./farmctl                     (interactive operation menu)
// ./farmctl farm install
// ./farmctl farm start
// ./farmctl repo clean --keep 2

var (
	// Used for flags.
	flagConfig       string
	flagVersion      bool
	flagOutputFormat string

	rootCmd = &cobra.Command{
		Use:   "farmctl",
		Short: "Manage the containerized PiSi Linux build farm",
		Long:  "farmctl - Manage the containerized PiSi Linux build farm and its package repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagVersion {
				versioncmd.PrintVersion(cmd, flagOutputFormat)
				return nil
			}

			// without a subcommand the operation menu takes over
			return farm.Menu(cmd.Context())
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "config file path")

	// support '--version', '-v' to show version information
	rootCmd.PersistentFlags().BoolVarP(&flagVersion, "version", "v", false, "Show version")
	rootCmd.PersistentFlags().StringVarP(&flagOutputFormat, "output", "o", "yaml", "Output format (yaml|json)")

	// disable command sorting to keep the order of commands as added
	cobra.EnableCommandSorting = false

	// add subcommands
	rootCmd.AddCommand(farm.GetCmd())
	rootCmd.AddCommand(repocmd.GetCmd())
	rootCmd.AddCommand(versioncmd.Get())
}

// Execute executes the root command.
func Execute(ctx context.Context) error {
	if ctx == nil {
		return errorx.IllegalArgument.New("context is required")
	}

	cobra.OnInitialize(func() {
		initConfig(ctx)
	})

	// execute the root command
	_, err := rootCmd.ExecuteContextC(ctx)
	if err != nil {
		return errorx.IllegalState.Wrap(err, "failed to execute command")
	}

	return nil
}

func initConfig(ctx context.Context) {
	var err error
	err = config.Initialize(flagConfig)
	if err != nil {
		doctor.CheckErr(ctx, err)
	}

	logConfig := config.Get().Log
	err = logx.Initialize(logConfig)
	if err != nil {
		doctor.CheckErr(ctx, err)
	}

	if err = config.Get().Validate(); err != nil {
		doctor.CheckErr(ctx, err)
	}
}
