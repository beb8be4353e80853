// SPDX-License-Identifier: Apache-2.0

package repocmd

import (
	"fmt"

	"github.com/automa-saga/logx"
	"github.com/charmbracelet/huh"
	"github.com/joomcode/errorx"
	"github.com/spf13/cobra"

	"github.com/pisilinux/farmctl/cmd/farmctl/commands/common"
	"github.com/pisilinux/farmctl/internal/config"
	"github.com/pisilinux/farmctl/internal/core"
	"github.com/pisilinux/farmctl/internal/repo"
)

var (
	flagKeep   int
	flagDryRun bool
	flagYes    bool

	cleanCmd = &cobra.Command{
		Use:   "clean [dir]",
		Short: "Remove redundant package builds",
		Long:  "Keep the newest builds of every package in the repository directory and remove the rest",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runClean,
	}
)

func init() {
	common.FlagKeep.SetVar(cleanCmd, &flagKeep, false)
	common.FlagDryRun.SetVar(cleanCmd, &flagDryRun, false)
	common.FlagYes.SetVar(cleanCmd, &flagYes, false)
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg := config.Get().Repo

	dir := cfg.Dir
	if len(args) > 0 {
		dir = args[0]
	}

	keep := cfg.Keep
	if common.FlagKeep.Changed(cmd) {
		keep = flagKeep
	}

	result, err := repo.Scan(dir)
	if err != nil {
		return err
	}

	if len(result.Packages) == 0 {
		return errorx.IllegalState.New("no package files found in %s", dir).
			WithProperty(core.ErrPropertyResolution,
				"Build packages first, or point the command at the repository directory with 'farmctl repo clean <dir>'.")
	}

	plan, err := repo.BuildPlan(result.Packages, keep)
	if err != nil {
		return err
	}

	if len(plan.Remove) == 0 {
		cmd.Printf("No redundant packages found in %s (%d packages, keeping %d builds each).\n",
			dir, len(result.Packages), keep)
		return nil
	}

	cmd.Printf("Scanned %s: %d package files, %d skipped.\n", dir, len(result.Packages), len(result.Skipped))
	for _, pkg := range plan.Remove {
		cmd.Printf("  remove %s\n", pkg.FileName)
	}
	cmd.Printf("%d redundant builds to remove, %d kept.\n", len(plan.Remove), len(plan.Kept))

	if flagDryRun {
		cmd.Println("Dry run, nothing removed.")
		return nil
	}

	if err := confirmRemoval(keep, len(plan.Remove)); err != nil {
		return err
	}

	release, err := common.AcquireProcessLock(cmd.Context())
	if err != nil {
		return err
	}
	defer release()

	if err := plan.Apply(); err != nil {
		return err
	}

	logx.As().Info().Int("removed", len(plan.Remove)).Str("dir", dir).Msg("Repository cleaned")
	cmd.Printf("Removed %d package files.\n", len(plan.Remove))
	return nil
}

// confirmRemoval prompts before deleting. Keep zero removes every build of
// every package, so it always requires an explicit confirmation; --yes alone
// is not enough.
func confirmRemoval(keep, removeCount int) error {
	if flagYes && keep > 0 {
		return nil
	}

	title := fmt.Sprintf("Remove %d redundant package builds?", removeCount)
	if keep == 0 {
		title = fmt.Sprintf("Keep count is 0: remove ALL %d package builds?", removeCount)
	}

	var confirmed bool
	err := huh.NewConfirm().
		Title(title).
		Value(&confirmed).
		Run()
	if err != nil {
		return errorx.IllegalState.Wrap(err, "confirmation prompt failed")
	}

	if !confirmed {
		return errorx.IllegalState.New("removal not confirmed, nothing deleted")
	}

	return nil
}
