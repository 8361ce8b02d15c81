package getdir

import (
	"testing"

	getdirerrors "github.com/leodido/getdir/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTarget(t *testing.T) {
	cases := []struct {
		input string
		want  Target
	}{
		{"dir:src", DirTarget("src")},
		{"d:target", DirTarget("target")},
		{"directory:.git", DirTarget(".git")},
		{"DIR:build", DirTarget("build")},
		{"file:Cargo.lock", FileTarget("Cargo.lock")},
		{"f:go.mod", FileTarget("go.mod")},
		{"file:name:with:colons", FileTarget("name:with:colons")},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseTarget(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseTarget_Errors(t *testing.T) {
	for _, input := range []string{"", "src", "link:src", ":src"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseTarget(input)
			assert.ErrorIs(t, err, getdirerrors.ErrInvalidTarget)
		})
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" File ")
	require.NoError(t, err)
	assert.Equal(t, KindFile, k)

	k, err = ParseKind("d")
	require.NoError(t, err)
	assert.Equal(t, KindDir, k)

	_, err = ParseKind("socket")
	assert.ErrorIs(t, err, getdirerrors.ErrInvalidTarget)
	assert.ErrorContains(t, err, "socket")
}

func TestTarget_String(t *testing.T) {
	assert.Equal(t, "dir:src", DirTarget("src").String())
	assert.Equal(t, "file:Cargo.lock", FileTarget("Cargo.lock").String())
	assert.Equal(t, "kind(7):x", Target{Kind: Kind(7), Name: "x"}.String())
}

func TestTarget_StringRoundTrip(t *testing.T) {
	for _, target := range []Target{DirTarget("target"), FileTarget("Cargo.lock")} {
		parsed, err := ParseTarget(target.String())
		require.NoError(t, err)
		assert.Equal(t, target, parsed)
	}
}

func TestTarget_Equality(t *testing.T) {
	assert.True(t, DirTarget("src") == Target{Kind: KindDir, Name: "src"})
	assert.False(t, DirTarget("src") == FileTarget("src"))
	assert.False(t, DirTarget("src") == DirTarget("Src"))
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "down", Down.String())
	assert.Equal(t, "up", Up.String())
	assert.Equal(t, "direction(9)", Direction(9).String())
}

func (suite *getdirSuite) TestTarget_Exists() {
	assert.True(suite.T(), DirTarget("src").Exists(suite.fs, "/work/root"))
	assert.True(suite.T(), FileTarget("Cargo.lock").Exists(suite.fs, "/work/root"))
	assert.False(suite.T(), FileTarget("src").Exists(suite.fs, "/work/root"))
	assert.False(suite.T(), DirTarget("Cargo.lock").Exists(suite.fs, "/work/root"))
	assert.False(suite.T(), FileTarget("lib.rs").Exists(suite.fs, "/work/root"))
	assert.False(suite.T(), Target{Kind: Kind(7), Name: "src"}.Exists(suite.fs, "/work/root"))
}
