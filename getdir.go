// Package getdir locates a directory by looking for marker files or directories
// either below a starting directory (breadth-first) or above it (its ancestors).
//
//	root, err := getdir.New().
//		WithTargets(getdir.DirTarget("target"), getdir.FileTarget("Cargo.lock")).
//		RunReverse()
//
// A Search is a value: every With* method returns an updated copy, leaving the receiver untouched.
package getdir

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Unbounded is the default depth of a search.
const Unbounded = math.MaxInt

// Direction is the way a search walks the directory tree.
type Direction int

const (
	// Down walks the descendants, breadth-first.
	Down Direction = iota
	// Up walks the ancestors, closest first.
	Up
)

// DirectionIdentifiers returns the textual forms accepted for each direction, canonical one first.
func DirectionIdentifiers() map[Direction][]string {
	return map[Direction][]string{
		Down: {"down", "descendants"},
		Up:   {"up", "ancestors"},
	}
}

func (d Direction) String() string {
	if ids, ok := DirectionIdentifiers()[d]; ok {
		return ids[0]
	}

	return fmt.Sprintf("direction(%d)", int(d))
}

// Search holds the configuration of a single search.
type Search struct {
	dir     string
	depth   int
	targets []Target
	fs      afero.Fs
	logger  *zap.Logger
}

// New creates a search starting from the current working directory, with unbounded depth and no targets.
//
// The working directory is captured now. When it can't be determined the start directory is left empty
// and running the search fails with a not found error.
func New() Search {
	dir, err := os.Getwd()
	if err != nil {
		dir = ""
	}

	return Search{
		dir:    dir,
		depth:  Unbounded,
		fs:     afero.NewOsFs(),
		logger: zap.NewNop(),
	}
}

// WithDir sets the directory the search starts from.
//
// Relative paths are made absolute against the current working directory.
// When that fails the start directory is left empty and running the search fails with a not found error.
func (s Search) WithDir(dir string) Search {
	if dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			abs = ""
		}
		dir = abs
	}
	s.dir = dir

	return s
}

// WithDirectory is an alias for WithDir.
func (s Search) WithDirectory(dir string) Search {
	return s.WithDir(dir)
}

// WithDepth sets the maximum number of directory levels to inspect, the start directory included.
//
// Depth 1 inspects the start directory only. Values lower than 1 are rejected by Validate.
func (s Search) WithDepth(depth int) Search {
	s.depth = depth

	return s
}

// WithTargets appends the given targets, keeping their order.
func (s Search) WithTargets(targets ...Target) Search {
	merged := make([]Target, 0, len(s.targets)+len(targets))
	merged = append(merged, s.targets...)
	s.targets = append(merged, targets...)

	return s
}

// WithTarget appends a single target.
func (s Search) WithTarget(target Target) Search {
	return s.WithTargets(target)
}

// WithFs sets the filesystem to search (defaults to the OS one).
func (s Search) WithFs(fs afero.Fs) Search {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	s.fs = fs

	return s
}

// WithLogger sets the logger receiving the traversal debug logs (defaults to a no-op one).
func (s Search) WithLogger(logger *zap.Logger) Search {
	if logger == nil {
		logger = zap.NewNop()
	}
	s.logger = logger

	return s
}

// Dir returns the start directory.
func (s Search) Dir() string {
	return s.dir
}

// Depth returns the maximum depth.
func (s Search) Depth() int {
	return s.depth
}

// Targets returns a copy of the targets, in order.
func (s Search) Targets() []Target {
	if s.targets == nil {
		return nil
	}
	res := make([]Target, len(s.targets))
	copy(res, s.targets)

	return res
}

// Fs returns the filesystem the search runs on.
func (s Search) Fs() afero.Fs {
	if s.fs == nil {
		return afero.NewOsFs()
	}

	return s.fs
}
