package models

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Version
		wantErr bool
	}{
		{
			name:  "with v prefix",
			input: "v1.2.3",
			want:  Version{Major: 1, Minor: 2, Patch: 3, Raw: "v1.2.3"},
		},
		{
			name:  "without v prefix",
			input: "1.2.3",
			want:  Version{Major: 1, Minor: 2, Patch: 3, Raw: "1.2.3"},
		},
		{
			name:  "leading zeros are normalized",
			input: "v01.02.003",
			want:  Version{Major: 1, Minor: 2, Patch: 3, Raw: "v01.02.003"},
		},
		{
			name:  "zero version",
			input: "v0.0.0",
			want:  Version{Major: 0, Minor: 0, Patch: 0, Raw: "v0.0.0"},
		},
		{
			name:    "missing patch component",
			input:   "v1.2",
			wantErr: true,
		},
		{
			name:    "prerelease suffix",
			input:   "v1.2.3-rc1",
			wantErr: true,
		},
		{
			name:    "non numeric component",
			input:   "v1.x.3",
			wantErr: true,
		},
		{
			name:    "arbitrary tag name",
			input:   "release-candidate",
			wantErr: true,
		},
		{
			name:    "negative component",
			input:   "v1.-2.3",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVersion(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVersionString(t *testing.T) {
	v, err := ParseVersion("v01.02.003")
	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", v.String(), "leading zeros should not survive formatting")
	assert.Equal(t, "v01.02.003", v.Raw, "raw form should be preserved")
}

func TestVersionCompare(t *testing.T) {
	t.Run("numeric component ordering", func(t *testing.T) {
		a := MustParseVersion("v0.9.0")
		b := MustParseVersion("v0.10.0")
		assert.Equal(t, -1, a.Compare(b))
		assert.Equal(t, 1, b.Compare(a))
	})

	t.Run("equal versions", func(t *testing.T) {
		a := MustParseVersion("v1.2.3")
		b := MustParseVersion("1.2.3")
		assert.Equal(t, 0, a.Compare(b))
	})

	t.Run("sorts a realistic tag set", func(t *testing.T) {
		versions := []Version{
			MustParseVersion("v1.0.0"),
			MustParseVersion("v0.10.1"),
			MustParseVersion("v0.9.0"),
			MustParseVersion("v0.10.0"),
		}
		sort.Slice(versions, func(i, j int) bool {
			return versions[i].Compare(versions[j]) < 0
		})

		var got []string
		for _, v := range versions {
			got = append(got, v.String())
		}
		assert.Equal(t, []string{"v0.9.0", "v0.10.0", "v0.10.1", "v1.0.0"}, got)
	})
}

func TestVersionBump(t *testing.T) {
	base := MustParseVersion("v1.2.3")

	tests := []struct {
		name string
		kind BumpKind
		want string
	}{
		{"major resets minor and patch", BumpMajor, "v2.0.0"},
		{"minor resets patch", BumpMinor, "v1.3.0"},
		{"patch increments", BumpPatch, "v1.2.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := base.Bump(tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}

	t.Run("none is not bumpable", func(t *testing.T) {
		_, err := base.Bump(BumpNone)
		assert.Error(t, err)
	})

	t.Run("unset is not bumpable", func(t *testing.T) {
		_, err := base.Bump(BumpUnset)
		assert.Error(t, err)
	})
}

func TestBumpKindSeverity(t *testing.T) {
	assert.Greater(t, BumpMajor.Severity(), BumpMinor.Severity())
	assert.Greater(t, BumpMinor.Severity(), BumpPatch.Severity())
	assert.Greater(t, BumpPatch.Severity(), BumpNone.Severity())
	assert.Equal(t, BumpNone.Severity(), BumpUnset.Severity())
}

func TestParseBumpKind(t *testing.T) {
	tests := []struct {
		input   string
		want    BumpKind
		wantErr bool
	}{
		{"major", BumpMajor, false},
		{"MINOR", BumpMinor, false},
		{"  patch ", BumpPatch, false},
		{"none", BumpNone, false},
		{"feature", BumpUnset, true},
		{"", BumpUnset, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBumpKind(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
