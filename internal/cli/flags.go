package internalcli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/leodido/getdir"
	"github.com/spf13/pflag"
	"github.com/thediveo/enumflag/v2"
	"go.uber.org/zap/zapcore"
)

var logLevels = map[zapcore.Level][]string{
	zapcore.DebugLevel:  {"debug"},
	zapcore.InfoLevel:   {"info"},
	zapcore.WarnLevel:   {"warn"},
	zapcore.ErrorLevel:  {"error"},
	zapcore.DPanicLevel: {"dpanic"},
	zapcore.PanicLevel:  {"panic"},
	zapcore.FatalLevel:  {"fatal"},
}

// defineLogLevel creates an enum flag with all valid log levels.
func defineLogLevel(flags *pflag.FlagSet, p *zapcore.Level, name, descr string) {
	keys := []int{}
	for k := range logLevels {
		keys = append(keys, int(k))
	}
	sort.Ints(keys)
	values := []string{}
	for _, k := range keys {
		values = append(values, logLevels[zapcore.Level(k)][0])
	}
	addendum := fmt.Sprintf(" {%s}", strings.Join(values, ","))

	flags.Var(enumflag.New(p, "zapcore.Level", logLevels, enumflag.EnumCaseInsensitive), name, descr+addendum)
}

// defineDirection creates an enum flag accepting every identifier of getdir.Direction.
func defineDirection(flags *pflag.FlagSet, p *getdir.Direction, name, descr string) {
	directions := getdir.DirectionIdentifiers()
	values := []string{}
	for _, d := range []getdir.Direction{getdir.Down, getdir.Up} {
		values = append(values, directions[d][0])
	}
	addendum := fmt.Sprintf(" {%s}", strings.Join(values, ","))

	flags.Var(enumflag.New(p, "getdir.Direction", directions, enumflag.EnumCaseInsensitive), name, descr+addendum)
}
