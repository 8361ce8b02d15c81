package internaldebug

import (
	"fmt"
	"io"

	internalscope "github.com/leodido/getdir/internal/scope"
	"github.com/spf13/cobra"
)

const (
	FlagAnnotation  = "___leodido_getdir_debugflagname"
	DefaultFlagName = "debug-options"
)

// IsActive checks if the debug option is set for the command c, either through a command-line flag or an environment variable.
func IsActive(c *cobra.Command) bool {
	debugFlagName := DefaultFlagName
	if currentFlagName, ok := c.Root().Annotations[FlagAnnotation]; ok {
		debugFlagName = currentFlagName
	}

	if debugFlag := c.Flags().Lookup(debugFlagName); debugFlag != nil && debugFlag.Changed {
		return true
	}

	// Other sources (eg., environment variable) are visible through the scope of the command
	return internalscope.Get(c).Viper().GetBool(debugFlagName)
}

// Print writes the viper state of command c to w when debugging is active.
func Print(c *cobra.Command, w io.Writer) bool {
	if !IsActive(c) {
		return false
	}

	v := internalscope.Get(c).Viper()
	v.DebugTo(w)
	fmt.Fprintf(w, "Values:\n%#v\n", v.AllSettings())

	return true
}
