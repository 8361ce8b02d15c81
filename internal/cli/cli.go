package internalcli

import (
	"fmt"

	"github.com/leodido/getdir/config"
	"github.com/leodido/getdir/debug"
	internalconfig "github.com/leodido/getdir/internal/config"
	internaldebug "github.com/leodido/getdir/internal/debug"
	internalenv "github.com/leodido/getdir/internal/env"
	internalscope "github.com/leodido/getdir/internal/scope"
	internalusage "github.com/leodido/getdir/internal/usage"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const appName = "getdir"

// NewRootC creates the getdir command tree searching on fs.
func NewRootC(fs afero.Fs, debugOpts debug.Options) (*cobra.Command, error) {
	commonOpts := &CommonOptions{}
	opts := &SearchOptions{mode: modeAny}
	cfgOpts := config.Options{AppName: appName}
	configFile := ""

	rootC := &cobra.Command{
		Use:   appName,
		Short: "Find the directory containing a target",
		Long: `Find the closest directory containing any of the given targets.

By default the search walks down the tree breadth-first from the start directory.
Use --direction up (or the up subcommand) to walk the ancestors instead.`,
		Example: `  getdir -t dir:src
  getdir up -t file:go.mod
  getdir root`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// The leaf command c loads config, environment, and common options for itself
	rootC.PersistentPreRunE = func(c *cobra.Command, args []string) error {
		if err := internalenv.Bind(c); err != nil {
			return err
		}

		cfgV := viper.New()
		internalconfig.Setup(cfgV, fs, configFile, appName, cfgOpts)
		configUsed, err := internalconfig.Read(cfgV)
		if err != nil {
			return err
		}
		if err := internalscope.Get(c).Viper().MergeConfigMap(internalconfig.Merge(cfgV.AllSettings(), c)); err != nil {
			return fmt.Errorf("couldn't merge config file: %w", err)
		}

		if err := Unmarshal(c, commonOpts); err != nil {
			return err
		}
		commonOpts.Initialize(c.ErrOrStderr())
		if configUsed != "" {
			commonOpts.Logger.Debug("using config file", zap.String("file", configUsed))
		}

		return nil
	}
	rootC.RunE = makeRunE(fs, opts, debugOpts)

	if err := commonOpts.Attach(rootC); err != nil {
		return nil, err
	}
	if err := opts.Attach(rootC); err != nil {
		return nil, err
	}

	subcommands := []struct {
		mode             searchMode
		use, short, long string
	}{
		{modeDown, "down", "Search the descendants breadth-first", "Search the start directory and its descendants breadth-first, shallowest match first."},
		{modeUp, "up", "Search the ancestors", "Search the start directory and its ancestors, closest match first."},
		{modeProject, "root", "Find the project root", "Find the closest ancestor holding a 'target' directory or a 'Cargo.lock' file."},
	}
	for _, sub := range subcommands {
		c, err := makeSearchC(fs, debugOpts, sub.mode, sub.use, sub.short, sub.long)
		if err != nil {
			return nil, err
		}
		rootC.AddCommand(c)
	}

	if err := setupConfig(rootC, &configFile, &cfgOpts); err != nil {
		return nil, err
	}
	setupDebug(rootC, debugOpts)
	internalusage.Setup(rootC)

	return rootC, nil
}

func makeSearchC(fs afero.Fs, debugOpts debug.Options, mode searchMode, use, short, long string) (*cobra.Command, error) {
	opts := &SearchOptions{mode: mode}

	c := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  cobra.NoArgs,
		RunE:  makeRunE(fs, opts, debugOpts),
	}
	if err := opts.Attach(c); err != nil {
		return nil, err
	}

	return c, nil
}

func makeRunE(fs afero.Fs, opts *SearchOptions, debugOpts debug.Options) func(*cobra.Command, []string) error {
	return func(c *cobra.Command, args []string) error {
		commonOpts := &CommonOptions{}
		if err := commonOpts.FromContext(c.Context()); err != nil {
			return err
		}
		if err := Unmarshal(c, opts); err != nil {
			return err
		}
		if internaldebug.Print(c, c.OutOrStdout()) && debugOpts.Exit {
			return nil
		}

		dir, err := opts.Run(c.Context(), fs, commonOpts.Logger.With(zap.String("command", c.Name())))
		if err != nil {
			return err
		}
		fmt.Fprintln(c.OutOrStdout(), dir)

		return nil
	}
}

// setupConfig creates the --config persistent flag.
func setupConfig(rootC *cobra.Command, configFile *string, cfgOpts *config.Options) error {
	if cfgOpts.FlagName == "" {
		cfgOpts.FlagName = "config"
	}
	if cfgOpts.ConfigName == "" {
		cfgOpts.ConfigName = "config"
	}
	if cfgOpts.EnvVar == "" {
		cfgOpts.EnvVar = internalenv.Prefix + internalenv.EnvSep + internalenv.NormEnv(cfgOpts.FlagName)
	}
	if len(cfgOpts.SearchPaths) == 0 {
		cfgOpts.SearchPaths = config.DefaultSearchPaths()
	}

	rootC.PersistentFlags().StringVar(configFile, cfgOpts.FlagName, *configFile, internalconfig.Description(cfgOpts.AppName, *cfgOpts))

	extensions := []string{"yaml", "yml", "json", "toml"}
	if err := rootC.MarkPersistentFlagFilename(cfgOpts.FlagName, extensions...); err != nil {
		return fmt.Errorf("couldn't set filename completion: %w", err)
	}

	return nil
}

// setupDebug creates the --debug-options persistent flag.
func setupDebug(rootC *cobra.Command, debugOpts debug.Options) {
	flagName := debugOpts.FlagName
	if flagName == "" {
		flagName = internaldebug.DefaultFlagName
	}

	if rootC.Annotations == nil {
		rootC.Annotations = make(map[string]string)
	}
	rootC.Annotations[internaldebug.FlagAnnotation] = flagName

	rootC.PersistentFlags().Bool(flagName, false, "print the effective options")
}
