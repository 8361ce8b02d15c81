package config

// SearchPathType represents different strategies for locating configuration files.
type SearchPathType int

const (
	// SearchPathEtc searches in /etc/{app} directory.
	SearchPathEtc SearchPathType = iota
	// SearchPathHomeHidden searches in $HOME/.{app} directory.
	SearchPathHomeHidden
	// SearchPathWorkingDirHidden searches in $PWD/.{app} directory.
	SearchPathWorkingDirHidden
	// SearchPathProjectHidden searches in the .{app} directory of the closest ancestor of $PWD that has one.
	SearchPathProjectHidden
	// SearchPathCustom uses custom paths provided in CustomPaths field.
	SearchPathCustom
)

// DefaultSearchPaths lists the strategies used when Options.SearchPaths is empty.
//
// Paths are searched in order and the first directory holding a config file wins.
func DefaultSearchPaths() []SearchPathType {
	return []SearchPathType{
		SearchPathWorkingDirHidden,
		SearchPathProjectHidden,
		SearchPathHomeHidden,
		SearchPathEtc,
	}
}

// Options defines configuration file behavior and search paths.
type Options struct {
	AppName     string
	FlagName    string           // Name of config flag (defaults to "config")
	ConfigName  string           // Config file name without extension (defaults to "config")
	EnvVar      string           // Environment variable (defaults to {APP}_CONFIG)
	SearchPaths []SearchPathType // Search path strategies (defaults to DefaultSearchPaths)
	CustomPaths []string         // Custom search paths (when SearchPaths contains SearchPathCustom)
}
