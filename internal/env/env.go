package internalenv

import (
	"strings"

	internalscope "github.com/leodido/getdir/internal/scope"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	Prefix = "GETDIR"
	EnvSep = "_"
)

var envRep = strings.NewReplacer("-", EnvSep, ".", EnvSep, " ", EnvSep)

func NormEnv(str string) string {
	return envRep.Replace(strings.ToUpper(str))
}

// Names returns the environment variables a flag of command c reads from, most specific first.
//
// Subcommands see GETDIR_<SUBCOMMAND>_<FLAG> before GETDIR_<FLAG>.
func Names(c *cobra.Command, flagName string) []string {
	ret := []string{}

	subpath := strings.Split(c.CommandPath(), " ")[1:]
	if len(subpath) > 0 {
		ret = append(ret, Prefix+EnvSep+NormEnv(strings.Join(subpath, EnvSep)+EnvSep+flagName))
	}

	return append(ret, Prefix+EnvSep+NormEnv(flagName))
}

// Bind wires every flag visible to c (local and inherited) into the viper instance of its scope.
//
// Flags are bound once per command, so calling Bind again only picks up new flags.
func Bind(c *cobra.Command) error {
	s := internalscope.Get(c)
	v := s.Viper()

	var bindErr error
	c.Flags().VisitAll(func(f *pflag.Flag) {
		if bindErr != nil || s.IsEnvBound(f.Name) {
			return
		}
		if err := v.BindPFlag(f.Name, f); err != nil {
			bindErr = err

			return
		}
		input := append([]string{f.Name}, Names(c, f.Name)...)
		if err := v.BindEnv(input...); err != nil {
			bindErr = err

			return
		}
		s.SetBound(f.Name)
	})

	return bindErr
}
