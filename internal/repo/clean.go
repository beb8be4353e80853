// SPDX-License-Identifier: Apache-2.0

package repo

import (
	"os"
	"sort"

	"github.com/automa-saga/logx"
	"github.com/joomcode/errorx"
)

// Plan is the outcome of a cleaning dry run: which builds stay and which
// get removed. Nothing is deleted until Apply runs.
type Plan struct {
	Keep   int
	Kept   []PackageFile
	Remove []PackageFile
}

// BuildPlan groups packages by name, orders each group newest first and
// marks everything past the keep count for removal. Keep zero marks every
// build of every package.
func BuildPlan(packages []PackageFile, keep int) (Plan, error) {
	if keep < 0 {
		return Plan{}, errorx.IllegalArgument.New("keep count cannot be negative: %d", keep)
	}

	groups := make(map[string][]PackageFile)
	names := make([]string, 0)
	for _, pkg := range packages {
		if _, seen := groups[pkg.Name]; !seen {
			names = append(names, pkg.Name)
		}
		groups[pkg.Name] = append(groups[pkg.Name], pkg)
	}
	sort.Strings(names)

	plan := Plan{Keep: keep}
	for _, name := range names {
		builds := groups[name]
		sort.SliceStable(builds, func(i, j int) bool {
			return CompareVersions(builds[i].ComparableVersion(), builds[j].ComparableVersion()) > 0
		})

		cut := keep
		if cut > len(builds) {
			cut = len(builds)
		}
		plan.Kept = append(plan.Kept, builds[:cut]...)
		plan.Remove = append(plan.Remove, builds[cut:]...)
	}

	return plan, nil
}

// Apply deletes every file the plan marked for removal. It keeps going on
// individual failures and reports them together at the end.
func (p Plan) Apply() error {
	var failed []error
	for _, pkg := range p.Remove {
		path := pkg.Path()
		logx.As().Info().Str("file", path).Msg("removing redundant package")

		if err := os.Remove(path); err != nil {
			logx.As().Error().Str("file", path).Err(err).Msg("failed to remove package")
			failed = append(failed, err)
		}
	}

	if len(failed) > 0 {
		return errorx.InternalError.Wrap(failed[0], "failed to remove %d of %d packages",
			len(failed), len(p.Remove))
	}

	return nil
}
