package internalwalk

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// MatchFunc reports whether dir satisfies the search.
//
// A non-nil error aborts the walk.
type MatchFunc func(dir string) (bool, error)

// YieldFunc is invoked at every suspension point: before each directory listing and before each per-entry kind check.
//
// A non-nil error aborts the walk.
type YieldFunc func() error

// Walker holds the collaborators of both traversal directions.
//
// Its zero value is not usable: Fs and Match are mandatory.
type Walker struct {
	Fs     afero.Fs
	Match  MatchFunc
	Yield  YieldFunc
	Logger *zap.Logger
}

type node struct {
	dir   string
	depth int
}

// Down walks the tree rooted at start breadth-first, checking every directory before listing its children.
//
// It returns the first matching directory and true, or false when the tree (bounded by depth) holds no match.
func (w *Walker) Down(start string, depth int) (string, bool, error) {
	log := w.logger()
	queue := []node{{dir: start, depth: depth}}

	for len(queue) > 0 {
		curr := queue[0]
		queue[0] = node{}
		queue = queue[1:]

		log.Debug("visiting directory", zap.String("dir", curr.dir), zap.Int("depth", curr.depth))
		found, err := w.Match(curr.dir)
		if err != nil {
			return "", false, err
		}
		if found {
			log.Debug("directory matches", zap.String("dir", curr.dir))

			return curr.dir, true, nil
		}

		// Depth exhausted
		if curr.depth <= 1 {
			continue
		}

		if err := w.yield(); err != nil {
			return "", false, err
		}
		entries, err := afero.ReadDir(w.Fs, curr.dir)
		if err != nil {
			// An unreadable branch yields nothing
			log.Debug("skipping directory", zap.String("dir", curr.dir), zap.Error(err))

			continue
		}

		for _, entry := range entries {
			child := filepath.Join(curr.dir, entry.Name())
			isDir, err := w.isDir(child, entry)
			if err != nil {
				return "", false, err
			}
			if isDir {
				queue = append(queue, node{dir: child, depth: curr.depth - 1})
			}
		}
	}

	return "", false, nil
}

// Up checks start and then its ancestors, closest first, visiting at most depth directories.
func (w *Walker) Up(start string, depth int) (string, bool, error) {
	log := w.logger()
	dir := start

	for level := 0; level < depth; level++ {
		log.Debug("visiting directory", zap.String("dir", dir), zap.Int("level", level))
		found, err := w.Match(dir)
		if err != nil {
			return "", false, err
		}
		if found {
			log.Debug("directory matches", zap.String("dir", dir))

			return dir, true, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Filesystem root reached
			break
		}
		dir = parent
	}

	return "", false, nil
}

// isDir follows links, the listing itself does not.
func (w *Walker) isDir(path string, entry os.FileInfo) (bool, error) {
	if entry.IsDir() {
		return true, nil
	}
	if entry.Mode()&os.ModeSymlink == 0 {
		return false, nil
	}

	if err := w.yield(); err != nil {
		return false, err
	}
	info, err := w.Fs.Stat(path)
	if err != nil {
		// Dangling link
		return false, nil
	}

	return info.IsDir(), nil
}

func (w *Walker) yield() error {
	if w.Yield == nil {
		return nil
	}

	return w.Yield()
}

func (w *Walker) logger() *zap.Logger {
	if w.Logger == nil {
		return zap.NewNop()
	}

	return w.Logger
}
