package options

import (
	"context"

	"github.com/spf13/cobra"
)

// Options represents a struct that defines the flags of a command.
//
// The same values are also read from environment variables and config files.
type Options interface {
	Attach(*cobra.Command) error
}

// ValidatableOptions extends Options with validation capabilities.
//
// The Validate method is called automatically during unmarshalling, after Transform.
type ValidatableOptions interface {
	Options
	Validate(context.Context) []error
}

// TransformableOptions extends Options with transformation capabilities.
//
// The Transform method is called automatically during unmarshalling, before validation.
type TransformableOptions interface {
	Options
	Transform(context.Context) error
}

// ContextOptions extends Options with context manipulation capabilities.
//
// Once unmarshalled, the options are stored into the command context so subcommands can retrieve them.
type ContextOptions interface {
	Options
	Context(context.Context) context.Context
	FromContext(context.Context) error
}
