package debug

// Options configures the --debug-options functionality of the CLI.
//
// The flag also reads from {APP}_DEBUG_OPTIONS.
type Options struct {
	FlagName string // Name of debug flag (defaults to "debug-options")
	Exit     bool   // Skips the search after printing the debug information
}
