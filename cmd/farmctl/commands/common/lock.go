// SPDX-License-Identifier: Apache-2.0

package common

import (
	"context"
	"os"
	"time"

	"github.com/automa-saga/logx"
	"github.com/gofrs/flock"
	"github.com/joomcode/errorx"

	"github.com/pisilinux/farmctl/internal/core"
)

const lockTimeout = 30 * time.Second

// AcquireProcessLock takes the farmctl instance lock. Mutating commands hold
// it for their whole run so that two concurrent invocations cannot interleave
// runtime commands against the same farm. The returned release function is
// safe to defer.
func AcquireProcessLock(ctx context.Context) (func(), error) {
	lockPath := core.Paths().LockFile

	if err := os.MkdirAll(core.Paths().HomeDir, core.DefaultDirPerm); err != nil {
		return nil, errorx.IllegalState.Wrap(err, "failed to create farm home directory %q", core.Paths().HomeDir)
	}

	fileLock := flock.New(lockPath)
	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	locked, err := fileLock.TryLockContext(lockCtx, time.Second)
	if err != nil {
		return nil, errorx.IllegalState.Wrap(err, "failed to acquire instance lock %q", lockPath).
			WithProperty(core.ErrPropertyResolution,
				"Another farmctl instance may be running. Wait for it to finish or remove a stale lock file.")
	}
	if !locked {
		return nil, errorx.IllegalState.New("timed out acquiring instance lock %q", lockPath).
			WithProperty(core.ErrPropertyResolution,
				"Another farmctl instance may be running. Wait for it to finish or remove a stale lock file.")
	}

	release := func() {
		if e := fileLock.Unlock(); e != nil {
			logx.As().Warn().Err(e).Str("lockPath", lockPath).Msg("failed to release instance lock")
		}
	}

	return release, nil
}
