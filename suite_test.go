package getdir

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type getdirSuite struct {
	suite.Suite
	fs afero.Fs
}

func TestGetdirSuite(t *testing.T) {
	suite.Run(t, new(getdirSuite))
}

// SetupTest creates the tree below before each test
//
//	/work/root
//	├── Cargo.lock
//	├── src
//	│   └── lib.rs
//	└── target
func (suite *getdirSuite) SetupTest() {
	suite.fs = afero.NewMemMapFs()

	require.NoError(suite.T(), suite.fs.MkdirAll("/work/root/src", 0o755))
	require.NoError(suite.T(), suite.fs.MkdirAll("/work/root/target", 0o755))
	require.NoError(suite.T(), afero.WriteFile(suite.fs, "/work/root/Cargo.lock", []byte("# lock"), 0o644))
	require.NoError(suite.T(), afero.WriteFile(suite.fs, "/work/root/src/lib.rs", []byte("// lib"), 0o644))
}

// search creates a search on the in-memory tree starting from dir
func (suite *getdirSuite) search(dir string) Search {
	return New().WithFs(suite.fs).WithDir(dir)
}

func (suite *getdirSuite) mkdir(dirs ...string) {
	for _, dir := range dirs {
		require.NoError(suite.T(), suite.fs.MkdirAll(dir, 0o755))
	}
}

func (suite *getdirSuite) touch(files ...string) {
	for _, file := range files {
		require.NoError(suite.T(), afero.WriteFile(suite.fs, file, nil, 0o644))
	}
}
