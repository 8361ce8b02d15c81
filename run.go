package getdir

import (
	getdirerrors "github.com/leodido/getdir/errors"
	internalwalk "github.com/leodido/getdir/internal/walk"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Run returns the first directory, in breadth-first order from the start directory, that directly contains any of the targets.
//
// The start directory itself is checked first. Directories that can't be listed are skipped.
// Every failure is a *errors.NotFoundError (matching errors.ErrNotFound).
// Only the cancellable RunAsync and RunReverseAsync can fail otherwise, reporting the context error.
func (s Search) Run() (string, error) {
	return s.run(Down, nil)
}

// RunReverse returns the closest directory, among the start directory and its ancestors, that directly contains any of the targets.
//
// Every failure is a *errors.NotFoundError (matching errors.ErrNotFound).
func (s Search) RunReverse() (string, error) {
	return s.run(Up, nil)
}

func (s Search) run(direction Direction, yield internalwalk.YieldFunc) (string, error) {
	if err := s.Validate(); err != nil {
		return "", s.notFound(direction, err)
	}
	if len(s.targets) == 0 {
		return "", s.notFound(direction, getdirerrors.ErrNoTargets)
	}

	logger := s.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	fs := s.Fs()
	w := &internalwalk.Walker{
		Fs:     fs,
		Yield:  yield,
		Logger: logger.With(zap.Stringer("direction", direction)),
		Match: func(dir string) (bool, error) {
			return anyMatch(fs, dir, s.targets, yield)
		},
	}

	var (
		dir   string
		found bool
		err   error
	)
	switch direction {
	case Up:
		dir, found, err = w.Up(s.dir, s.depth)
	default:
		dir, found, err = w.Down(s.dir, s.depth)
	}
	if err != nil {
		return "", err
	}
	if !found {
		return "", s.notFound(direction, nil)
	}

	return dir, nil
}

// anyMatch short-circuits on the first target, in order, existing under dir.
func anyMatch(fs afero.Fs, dir string, targets []Target, yield internalwalk.YieldFunc) (bool, error) {
	for _, t := range targets {
		if yield != nil {
			if err := yield(); err != nil {
				return false, err
			}
		}
		if t.Exists(fs, dir) {
			return true, nil
		}
	}

	return false, nil
}

func (s Search) notFound(direction Direction, cause error) error {
	depth := s.depth
	if depth == Unbounded {
		depth = 0
	}
	targets := make([]string, 0, len(s.targets))
	for _, t := range s.targets {
		targets = append(targets, t.String())
	}

	return getdirerrors.NewNotFoundError(direction.String(), s.dir, depth, targets, cause)
}
