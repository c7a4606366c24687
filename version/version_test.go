package version

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/can/errors"
	"github.com/teranos/can/nomenclature"
)

func TestGet(t *testing.T) {
	info := Get()

	assert.Equal(t, nomenclature.Version, info.Nomenclature)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.True(t, strings.HasPrefix(info.String(), "can dev (nomenclature "+nomenclature.Version))
}

func TestInfoStringTagged(t *testing.T) {
	info := Info{Version: "v0.3.0", Nomenclature: "1.0.0", CommitHash: "abcdef1234", BuildTime: "now"}

	assert.Equal(t, "can v0.3.0 (nomenclature 1.0.0, commit abcdef1234, built now)", info.String())
	assert.Equal(t, "abcdef1", info.Short())
	assert.Equal(t, "dev", Info{CommitHash: "dev"}.Short())
}

func TestCheckNomenclature(t *testing.T) {
	tests := []struct {
		constraint string
		wantErr    bool
	}{
		{"^1.0", false},
		{">= 1.0.0, < 2", false},
		{"1.x", false},
		{"~1.0.0", false},
		{"^2", true},
		{"< 1.0.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			err := CheckNomenclature(tt.constraint)
			if tt.wantErr {
				require.Error(t, err)
				assert.False(t, errors.IsInvalidRequestError(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCheckNomenclature_BadConstraint(t *testing.T) {
	err := CheckNomenclature("not a constraint!")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidRequestError(err))
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestCheck_BadVersion(t *testing.T) {
	err := check("1.0", "^1")
	require.Error(t, err)
}
