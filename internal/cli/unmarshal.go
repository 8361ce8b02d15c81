package internalcli

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	getdirerrors "github.com/leodido/getdir/errors"
	internalhooks "github.com/leodido/getdir/internal/hooks"
	internalscope "github.com/leodido/getdir/internal/scope"
	"github.com/leodido/getdir/options"
	"github.com/spf13/cobra"
)

// Unmarshal populates opts from the flags, environment variables, and config file values of command c.
//
// Options are then transformed, validated, and stored into the command context when they support it.
func Unmarshal(c *cobra.Command, opts options.Options) error {
	v := internalscope.Get(c).Viper()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       internalhooks.Compose(),
		WeaklyTypedInput: true,
		ZeroFields:       true,
		Result:           opts,
	})
	if err != nil {
		return fmt.Errorf("couldn't create the decoder: %w", err)
	}
	if err := decoder.Decode(v.AllSettings()); err != nil {
		return fmt.Errorf("couldn't decode options for %s: %w", c.Name(), err)
	}

	if o, ok := opts.(options.TransformableOptions); ok {
		if err := o.Transform(c.Context()); err != nil {
			return fmt.Errorf("couldn't transform options for %s: %w", c.Name(), err)
		}
	}

	if o, ok := opts.(options.ValidatableOptions); ok {
		if errs := o.Validate(c.Context()); len(errs) > 0 {
			return getdirerrors.NewValidationError(c.Name(), errs)
		}
	}

	if o, ok := opts.(options.ContextOptions); ok {
		c.SetContext(o.Context(c.Context()))
	}

	return nil
}
