package values

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/leodido/getdir"
	"github.com/spf13/pflag"
)

// targetsValue implements pflag.Value for an ordered list of getdir.Target.
//
// Every occurrence of the flag appends one kind:name target.
// It reports the stringArray type so that viper reads it back element by element, names containing commas included.
type targetsValue struct {
	t       *[]getdir.Target
	changed bool
}

func NewTargets(p *[]getdir.Target) *targetsValue {
	return &targetsValue{t: p}
}

func (v *targetsValue) Set(val string) error {
	target, err := getdir.ParseTarget(val)
	if err != nil {
		return err
	}
	// The first occurrence on the command line replaces the defaults
	if !v.changed {
		*v.t = nil
		v.changed = true
	}
	*v.t = append(*v.t, target)

	return nil
}

func (v *targetsValue) Type() string {
	return "stringArray"
}

// String returns the targets as a bracketed CSV record, like pflag's stringArray does.
func (v *targetsValue) String() string {
	str, _ := writeAsCSV(v.GetSlice())

	return "[" + str + "]"
}

func (v *targetsValue) Append(val string) error {
	target, err := getdir.ParseTarget(val)
	if err != nil {
		return err
	}
	*v.t = append(*v.t, target)

	return nil
}

func (v *targetsValue) Replace(vals []string) error {
	targets := make([]getdir.Target, 0, len(vals))
	for _, val := range vals {
		target, err := getdir.ParseTarget(val)
		if err != nil {
			return err
		}
		targets = append(targets, target)
	}
	*v.t = targets

	return nil
}

func (v *targetsValue) GetSlice() []string {
	ret := make([]string, 0, len(*v.t))
	for _, target := range *v.t {
		ret = append(ret, target.String())
	}

	return ret
}

var _ pflag.Value = (*targetsValue)(nil)
var _ pflag.SliceValue = (*targetsValue)(nil)

func writeAsCSV(vals []string) (string, error) {
	b := &bytes.Buffer{}
	w := csv.NewWriter(b)
	if err := w.Write(vals); err != nil {
		return "", err
	}
	w.Flush()

	return strings.TrimSuffix(b.String(), "\n"), nil
}
