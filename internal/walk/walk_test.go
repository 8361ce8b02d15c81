package internalwalk

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
)

// denyFs fails to open the given directories, like a permission error would
type denyFs struct {
	afero.Fs
	deny map[string]bool
}

func (d *denyFs) Open(name string) (afero.File, error) {
	if d.deny[filepath.Clean(name)] {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}

	return d.Fs.Open(name)
}

type walkSuite struct {
	suite.Suite
	fs      afero.Fs
	visited []string
}

func TestWalkSuite(t *testing.T) {
	suite.Run(t, new(walkSuite))
}

func (suite *walkSuite) SetupTest() {
	suite.fs = afero.NewMemMapFs()
	suite.visited = nil

	for _, dir := range []string{
		"/root/src",
		"/root/target/debug",
		"/root/a/b/c",
		"/root/z/marker",
	} {
		require.NoError(suite.T(), suite.fs.MkdirAll(dir, 0o755))
	}
	require.NoError(suite.T(), afero.WriteFile(suite.fs, "/root/Cargo.lock", nil, 0o644))
	require.NoError(suite.T(), afero.WriteFile(suite.fs, "/root/src/lib.rs", nil, 0o644))
	require.NoError(suite.T(), afero.WriteFile(suite.fs, "/root/a/b/c/deep.txt", nil, 0o644))
}

// matchChild matches directories having an entry with the given name, recording visits
func (suite *walkSuite) matchChild(name string) MatchFunc {
	return func(dir string) (bool, error) {
		suite.visited = append(suite.visited, dir)
		_, err := suite.fs.Stat(filepath.Join(dir, name))

		return err == nil, nil
	}
}

func (suite *walkSuite) walker(match MatchFunc) *Walker {
	return &Walker{
		Fs:     suite.fs,
		Match:  match,
		Logger: zaptest.NewLogger(suite.T()),
	}
}

func (suite *walkSuite) TestDown_StartDirectoryIsCheckedFirst() {
	w := suite.walker(suite.matchChild("src"))

	dir, found, err := w.Down("/root", math.MaxInt)

	require.NoError(suite.T(), err)
	assert.True(suite.T(), found)
	assert.Equal(suite.T(), "/root", dir)
	assert.Equal(suite.T(), []string{"/root"}, suite.visited)
}

func (suite *walkSuite) TestDown_BreadthFirstOrder() {
	w := suite.walker(suite.matchChild("nothing-here"))

	_, found, err := w.Down("/root", math.MaxInt)

	require.NoError(suite.T(), err)
	assert.False(suite.T(), found)
	expected := []string{
		"/root",
		"/root/a", "/root/src", "/root/target", "/root/z",
		"/root/a/b", "/root/target/debug", "/root/z/marker",
		"/root/a/b/c",
	}
	assert.Equal(suite.T(), expected, suite.visited)
}

func (suite *walkSuite) TestDown_ShallowestMatchWins() {
	// /root/z/marker is at depth 3, /root/a/b/c holds deep.txt at depth 4
	require.NoError(suite.T(), afero.WriteFile(suite.fs, "/root/z/marker/deep.txt", nil, 0o644))
	w := suite.walker(suite.matchChild("deep.txt"))

	dir, found, err := w.Down("/root", math.MaxInt)

	require.NoError(suite.T(), err)
	assert.True(suite.T(), found)
	assert.Equal(suite.T(), "/root/z/marker", dir)
}

func (suite *walkSuite) TestDown_DepthBounds() {
	cases := []struct {
		depth int
		found bool
		dir   string
	}{
		{1, false, ""},
		{2, false, ""},
		{3, false, ""},
		{4, true, "/root/a/b/c"},
	}

	for _, tc := range cases {
		suite.visited = nil
		w := suite.walker(suite.matchChild("deep.txt"))

		dir, found, err := w.Down("/root", tc.depth)

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), tc.found, found, "depth %d", tc.depth)
		assert.Equal(suite.T(), tc.dir, dir, "depth %d", tc.depth)
	}
}

func (suite *walkSuite) TestDown_DepthOneNeverLists() {
	listings := 0
	w := suite.walker(suite.matchChild("lib.rs"))
	w.Yield = func() error {
		listings++

		return nil
	}

	_, found, err := w.Down("/root", 1)

	require.NoError(suite.T(), err)
	assert.False(suite.T(), found)
	assert.Equal(suite.T(), 0, listings)
	assert.Equal(suite.T(), []string{"/root"}, suite.visited)
}

func (suite *walkSuite) TestDown_UnreadableBranchIsSkipped() {
	require.NoError(suite.T(), afero.WriteFile(suite.fs, "/root/z/marker/deep.txt", nil, 0o644))
	suite.fs = &denyFs{Fs: suite.fs, deny: map[string]bool{"/root/a": true, "/root/z": false}}
	w := suite.walker(suite.matchChild("deep.txt"))

	dir, found, err := w.Down("/root", math.MaxInt)

	require.NoError(suite.T(), err)
	assert.True(suite.T(), found)
	assert.Equal(suite.T(), "/root/z/marker", dir)
	assert.NotContains(suite.T(), suite.visited, "/root/a/b")
}

func (suite *walkSuite) TestDown_UnreadableStartYieldsNothing() {
	suite.fs = &denyFs{Fs: suite.fs, deny: map[string]bool{"/root": true}}
	w := suite.walker(suite.matchChild("lib.rs"))

	_, found, err := w.Down("/root", math.MaxInt)

	require.NoError(suite.T(), err)
	assert.False(suite.T(), found)
}

func (suite *walkSuite) TestDown_YieldErrorAborts() {
	stop := errors.New("stop")
	w := suite.walker(suite.matchChild("deep.txt"))
	w.Yield = func() error { return stop }

	_, found, err := w.Down("/root", math.MaxInt)

	assert.ErrorIs(suite.T(), err, stop)
	assert.False(suite.T(), found)
}

func (suite *walkSuite) TestDown_MatchErrorAborts() {
	boom := errors.New("boom")
	w := suite.walker(func(string) (bool, error) { return false, boom })

	_, _, err := w.Down("/root", math.MaxInt)

	assert.ErrorIs(suite.T(), err, boom)
}

func (suite *walkSuite) TestUp_ClosestAncestorWins() {
	require.NoError(suite.T(), afero.WriteFile(suite.fs, "/root/a/Cargo.lock", nil, 0o644))
	w := suite.walker(suite.matchChild("Cargo.lock"))

	dir, found, err := w.Up("/root/a/b/c", math.MaxInt)

	require.NoError(suite.T(), err)
	assert.True(suite.T(), found)
	assert.Equal(suite.T(), "/root/a", dir)
	assert.Equal(suite.T(), []string{"/root/a/b/c", "/root/a/b", "/root/a"}, suite.visited)
}

func (suite *walkSuite) TestUp_DepthBounds() {
	w := suite.walker(suite.matchChild("target"))

	_, found, err := w.Up("/root/src", 1)
	require.NoError(suite.T(), err)
	assert.False(suite.T(), found)
	assert.Equal(suite.T(), []string{"/root/src"}, suite.visited)

	dir, found, err := w.Up("/root/src", 2)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), found)
	assert.Equal(suite.T(), "/root", dir)
}

func (suite *walkSuite) TestUp_StopsAtFilesystemRoot() {
	w := suite.walker(suite.matchChild("nothing-here"))

	_, found, err := w.Up("/root/src", math.MaxInt)

	require.NoError(suite.T(), err)
	assert.False(suite.T(), found)
	assert.Equal(suite.T(), []string{"/root/src", "/root", "/"}, suite.visited)
}

func (suite *walkSuite) TestUp_NeverLists() {
	listings := 0
	w := suite.walker(suite.matchChild("Cargo.lock"))
	w.Yield = func() error {
		listings++

		return nil
	}

	_, found, err := w.Up("/root/a/b/c", math.MaxInt)

	require.NoError(suite.T(), err)
	assert.True(suite.T(), found)
	assert.Equal(suite.T(), 0, listings)
}

func TestDown_FollowsLinkedDirectories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "elsewhere", "pkg"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "elsewhere", "pkg", "go.mod"), nil, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "work"), 0o755))
	if err := os.Symlink(filepath.Join(root, "elsewhere", "pkg"), filepath.Join(root, "work", "linked")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	fs := afero.NewOsFs()
	w := &Walker{
		Fs: fs,
		Match: func(dir string) (bool, error) {
			_, err := fs.Stat(filepath.Join(dir, "go.mod"))

			return err == nil, nil
		},
	}

	dir, found, err := w.Down(filepath.Join(root, "work"), 2)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, filepath.Join(root, "work", "linked"), dir)
}

func TestDown_LinkCycleIsBoundedByDepth(t *testing.T) {
	root := t.TempDir()
	if err := os.Symlink(root, filepath.Join(root, "loop")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	visits := 0
	w := &Walker{
		Fs: afero.NewOsFs(),
		Match: func(string) (bool, error) {
			visits++

			return false, nil
		},
	}

	_, found, err := w.Down(root, 5)

	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 5, visits)
}
