// SPDX-License-Identifier: Apache-2.0

package exit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	assert.Equal(t, "64", UsageError.String())
	assert.Equal(t, 69, ServiceUnavailable.Int())
	assert.True(t, NormalTermination.Is(0))
	assert.False(t, GeneralError.Is(0))
}
