// SPDX-License-Identifier: Apache-2.0

package hardware

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeProfile struct {
	memoryGB  uint64
	storageGB uint64
}

func (f *fakeProfile) GetOSVendor() string { return "pisilinux" }

func (f *fakeProfile) GetOSVersion() string { return "2.4" }

func (f *fakeProfile) GetTotalMemoryGB() uint64 { return f.memoryGB }

func (f *fakeProfile) GetTotalStorageGB() uint64 { return f.storageGB }

func (f *fakeProfile) String() string { return fmt.Sprintf("%+v", *f) }

func TestSpecValidate(t *testing.T) {
	spec := FarmSpec()

	testCases := []struct {
		name    string
		profile fakeProfile
		wantErr string
	}{
		{name: "sufficient", profile: fakeProfile{memoryGB: 16, storageGB: 500}},
		{name: "exactly at floor", profile: fakeProfile{memoryGB: 2, storageGB: 20}},
		{name: "low memory", profile: fakeProfile{memoryGB: 1, storageGB: 500}, wantErr: "insufficient memory"},
		{name: "low storage", profile: fakeProfile{memoryGB: 16, storageGB: 8}, wantErr: "insufficient storage"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := spec.Validate(&tc.profile)
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
