// SPDX-License-Identifier: Apache-2.0

package repocmd

import (
	"github.com/spf13/cobra"

	"github.com/pisilinux/farmctl/cmd/farmctl/commands/common"
)

var repoCmd = &cobra.Command{
	Use:   "repo",
	Short: "Manage the built package repository",
	Long:  "Maintenance operations for the directory of built PiSi packages",
	RunE:  common.DefaultRunE,
}

func init() {
	repoCmd.AddCommand(cleanCmd)
}

func GetCmd() *cobra.Command {
	return repoCmd
}
