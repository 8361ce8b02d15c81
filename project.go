package getdir

import "fmt"

// ProjectMarkers returns the targets identifying a project root: a "target" directory or a "Cargo.lock" file.
func ProjectMarkers() []Target {
	return []Target{
		DirTarget("target"),
		FileTarget("Cargo.lock"),
	}
}

// ProjectRootDirectory returns the closest directory, from the working directory upwards, holding any of the ProjectMarkers.
//
// Use ProjectRoot to panic instead of handling the error.
func ProjectRootDirectory() (string, error) {
	return New().WithTargets(ProjectMarkers()...).RunReverse()
}

// ProjectRoot is like ProjectRootDirectory but panics when no project root is found.
func ProjectRoot() string {
	dir, err := ProjectRootDirectory()
	if err != nil {
		panic(fmt.Sprintf("couldn't get the project root: %s", err.Error()))
	}

	return dir
}
