package getdir

import (
	"fmt"
	"strings"

	getdirerrors "github.com/leodido/getdir/errors"
	internalmatch "github.com/leodido/getdir/internal/match"
	"github.com/spf13/afero"
)

// Kind tells whether a target is a directory or a file.
type Kind int

const (
	// KindDir targets a child directory.
	KindDir Kind = iota
	// KindFile targets a child regular file.
	KindFile
)

// KindIdentifiers returns the textual forms accepted for each kind, canonical one first.
func KindIdentifiers() map[Kind][]string {
	return map[Kind][]string{
		KindDir:  {"dir", "d", "directory"},
		KindFile: {"file", "f"},
	}
}

func (k Kind) String() string {
	if ids, ok := KindIdentifiers()[k]; ok {
		return ids[0]
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind converts one of the KindIdentifiers (case-insensitive) to its Kind.
func ParseKind(str string) (Kind, error) {
	needle := strings.ToLower(strings.TrimSpace(str))
	for kind, ids := range KindIdentifiers() {
		for _, id := range ids {
			if id == needle {
				return kind, nil
			}
		}
	}

	return 0, fmt.Errorf("%w: unknown kind '%s' (one of: dir, file)", getdirerrors.ErrInvalidTarget, str)
}

// Target is a marker entry to look for directly under a directory.
//
// Targets are comparable: two targets are equal when both kind and name are.
type Target struct {
	Kind Kind   `mapstructure:"kind" validate:"oneof=0 1"`
	Name string `mapstructure:"name" validate:"required,childname"`
}

// DirTarget targets a child directory with the given name.
func DirTarget(name string) Target {
	return Target{Kind: KindDir, Name: name}
}

// FileTarget targets a child regular file with the given name.
func FileTarget(name string) Target {
	return Target{Kind: KindFile, Name: name}
}

// ParseTarget parses the kind:name form (eg., "dir:src", "file:Cargo.lock").
func ParseTarget(str string) (Target, error) {
	kind, name, ok := strings.Cut(str, ":")
	if !ok {
		return Target{}, fmt.Errorf("%w: '%s' is not in the kind:name form", getdirerrors.ErrInvalidTarget, str)
	}
	k, err := ParseKind(kind)
	if err != nil {
		return Target{}, err
	}

	return Target{Kind: k, Name: name}, nil
}

func (t Target) String() string {
	return t.Kind.String() + ":" + t.Name
}

// Exists tells whether the target is an immediate child of dir on the given filesystem.
//
// A missing child is not an error.
func (t Target) Exists(fs afero.Fs, dir string) bool {
	switch t.Kind {
	case KindDir:
		return internalmatch.Dir(fs, dir, t.Name)
	case KindFile:
		return internalmatch.File(fs, dir, t.Name)
	}

	return false
}
