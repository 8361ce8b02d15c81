package internalcli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/mold/v4/modifiers"
	"github.com/go-playground/validator/v10"
	"github.com/leodido/getdir"
	getdirerrors "github.com/leodido/getdir/errors"
	internalusage "github.com/leodido/getdir/internal/usage"
	"github.com/leodido/getdir/options"
	"github.com/leodido/getdir/values"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var _ options.ContextOptions = (*CommonOptions)(nil)

// CommonOptions holds the global configuration and the computed state (Logger).
type CommonOptions struct {
	LogLevel zapcore.Level `mapstructure:"log-level"`
	// Logger is initialized from LogLevel once the options are unmarshalled
	Logger *zap.Logger `mapstructure:"-" json:"-"`
}

type commonOptionsKey struct{}

func (o *CommonOptions) Attach(c *cobra.Command) error {
	o.LogLevel = zapcore.InfoLevel
	defineLogLevel(c.PersistentFlags(), &o.LogLevel, "log-level", "logging level")

	return nil
}

// Context injects the initialized options into the context.
func (o *CommonOptions) Context(ctx context.Context) context.Context {
	return context.WithValue(ctx, commonOptionsKey{}, o)
}

// FromContext retrieves the shared options from the context.
func (o *CommonOptions) FromContext(ctx context.Context) error {
	value, ok := ctx.Value(commonOptionsKey{}).(*CommonOptions)
	if !ok {
		return fmt.Errorf("common options not found in context")
	}
	*o = *value

	return nil
}

// Initialize creates the logger writing JSON lines to w.
func (o *CommonOptions) Initialize(w io.Writer) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(w), zap.NewAtomicLevelAt(o.LogLevel))

	o.Logger = zap.New(core)
}

type searchMode int

const (
	// modeAny lets the --direction flag choose
	modeAny searchMode = iota
	modeDown
	modeUp
	// modeProject searches ancestors for the project markers
	modeProject
)

var (
	_ options.ValidatableOptions   = (*SearchOptions)(nil)
	_ options.TransformableOptions = (*SearchOptions)(nil)
)

// SearchOptions are the options of the commands running a search.
type SearchOptions struct {
	Dir       string           `mapstructure:"dir" mod:"trim"`
	Depth     int              `mapstructure:"depth" validate:"min=0"`
	Targets   []getdir.Target  `mapstructure:"target"`
	Direction getdir.Direction `mapstructure:"direction" validate:"oneof=0 1"`
	Async     bool             `mapstructure:"async"`

	mode searchMode
}

func (o *SearchOptions) Attach(c *cobra.Command) error {
	c.Flags().StringVarP(&o.Dir, "dir", "C", o.Dir, "start directory (defaults to the working directory)")
	if err := c.MarkFlagDirname("dir"); err != nil {
		return err
	}
	c.Flags().IntVarP(&o.Depth, "depth", "d", o.Depth, "maximum depth, counting the start directory as 1 (0 means unbounded)")
	c.Flags().BoolVar(&o.Async, "async", o.Async, "run the search cooperatively, interruptible with SIGINT")

	if o.mode != modeProject {
		c.Flags().VarP(values.NewTargets(&o.Targets), "target", "t", "target as kind:name with kind one of {dir,file} (repeatable, any match wins)")
		err := c.RegisterFlagCompletionFunc("target", func(c *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return []string{
				"dir:\tDirectory target",
				"file:\tFile target",
			}, cobra.ShellCompDirectiveNoSpace | cobra.ShellCompDirectiveNoFileComp
		})
		if err != nil {
			return err
		}
	}
	if o.mode == modeAny {
		defineDirection(c.Flags(), &o.Direction, "direction", "where to search")
	}

	for _, name := range []string{"dir", "depth", "direction"} {
		if c.Flags().Lookup(name) == nil {
			continue
		}
		if err := internalusage.Group(c, name, "Search"); err != nil {
			return err
		}
	}
	if c.Flags().Lookup("target") != nil {
		if err := internalusage.Group(c, "target", "Target"); err != nil {
			return err
		}
	}

	return nil
}

// Transform normalizes the options before validation.
func (o *SearchOptions) Transform(ctx context.Context) error {
	return modifiers.New().Struct(ctx, o)
}

// Validate checks the options and the search they describe.
func (o *SearchOptions) Validate(ctx context.Context) []error {
	var errs []error
	if err := validate.StructCtx(ctx, o); err != nil {
		if validationErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range validationErrs {
				errs = append(errs, fieldErr)
			}
		} else {
			errs = append(errs, fmt.Errorf("validator.Struct() failed unexpectedly: %w", err))
		}
	}
	if o.mode != modeProject && len(o.Targets) == 0 {
		errs = append(errs, fmt.Errorf("%w: use --target kind:name at least once", getdirerrors.ErrNoTargets))
	}
	if err := o.Search(nil, nil).Validate(); err != nil {
		var searchErr *getdirerrors.ValidationError
		if errors.As(err, &searchErr) {
			errs = append(errs, searchErr.UnderlyingErrors()...)
		} else {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}

	return errs
}

// direction resolves the way to search, which only modeAny leaves to the options.
func (o *SearchOptions) direction() getdir.Direction {
	switch o.mode {
	case modeDown:
		return getdir.Down
	case modeUp, modeProject:
		return getdir.Up
	default:
		return o.Direction
	}
}

// Search builds the search the options describe.
func (o *SearchOptions) Search(fs afero.Fs, logger *zap.Logger) getdir.Search {
	s := getdir.New().WithFs(fs).WithLogger(logger)
	if o.Dir != "" {
		s = s.WithDir(o.Dir)
	}
	if o.Depth > 0 {
		s = s.WithDepth(o.Depth)
	}
	if o.mode == modeProject {
		return s.WithTargets(getdir.ProjectMarkers()...)
	}

	return s.WithTargets(o.Targets...)
}

// Run executes the search, either blocking or through the cooperative contract.
func (o *SearchOptions) Run(ctx context.Context, fs afero.Fs, logger *zap.Logger) (string, error) {
	s := o.Search(fs, logger)
	up := o.direction() == getdir.Up

	if !o.Async {
		if up {
			return s.RunReverse()
		}

		return s.Run()
	}

	var results <-chan getdir.Result
	if up {
		results = s.RunReverseAsync(ctx)
	} else {
		results = s.RunAsync(ctx)
	}
	res := <-results

	return res.Dir, res.Err
}
