package internalusage

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	FlagGroupAnnotation = "___leodido_getdir_flaggroups"

	localGroupID  = "<local>"
	globalGroupID = "Global"
)

// Group puts the flag named name of command c into the help section titled group.
func Group(c *cobra.Command, name, group string) error {
	return c.Flags().SetAnnotation(name, FlagGroupAnnotation, []string{group})
}

// Groups returns a map of flag groups for the given command.
//
// Flags without a group annotation land in the local group, inherited and persistent ones in the global group.
func Groups(c *cobra.Command) map[string]*pflag.FlagSet {
	groups := map[string]*pflag.FlagSet{}

	addTo := func(f *pflag.Flag, groupID string) {
		if groups[groupID] == nil {
			groups[groupID] = pflag.NewFlagSet(c.Name(), pflag.ContinueOnError)
		}
		groups[groupID].AddFlag(f)
	}

	c.LocalNonPersistentFlags().VisitAll(func(f *pflag.Flag) {
		if annotations, ok := f.Annotations[FlagGroupAnnotation]; ok && len(annotations) > 0 {
			addTo(f, annotations[0])

			return
		}
		addTo(f, localGroupID)
	})

	c.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		addTo(f, globalGroupID)
	})
	c.InheritedFlags().VisitAll(func(f *pflag.Flag) {
		addTo(f, globalGroupID)
	})

	return groups
}

// flagUsages generates the usage of a set of flags without trailing whitespace.
func flagUsages(f *pflag.FlagSet) string {
	return strings.TrimRight(f.FlagUsages(), " \n") + "\n"
}

func rpad(s string, padding int) string {
	template := fmt.Sprintf("%%-%ds", padding)

	return fmt.Sprintf(template, s)
}

func tmpl(w io.Writer, text string) error {
	_, err := w.Write([]byte(text))

	return err
}

// Setup sets a usage function printing flags by group on c and all its subcommands.
func Setup(c *cobra.Command) {
	c.SetUsageFunc(usage)
	for _, sub := range c.Commands() {
		Setup(sub)
	}
}

func usage(c *cobra.Command) error {
	var b strings.Builder

	b.WriteString("Usage:")
	if c.Runnable() {
		b.WriteString("\n  ")
		b.WriteString(c.UseLine())
	}
	if c.HasAvailableSubCommands() {
		b.WriteString("\n  ")
		b.WriteString(c.CommandPath())
		b.WriteString(" [command]")
	}
	b.WriteString("\n")

	if len(c.Example) > 0 {
		b.WriteString("\nExamples:\n")
		b.WriteString(c.Example)
		b.WriteString("\n")
	}

	if c.HasAvailableSubCommands() {
		b.WriteString("\nAvailable Commands:\n")
		for _, cmd := range c.Commands() {
			if !cmd.IsAvailableCommand() && cmd.Name() != "help" {
				continue
			}
			b.WriteString(fmt.Sprintf("  %s %s\n", rpad(cmd.Name(), c.NamePadding()), cmd.Short))
		}
	}

	groups := Groups(c)

	if lFlags, ok := groups[localGroupID]; ok && lFlags.HasFlags() {
		b.WriteString("\nFlags:\n")
		b.WriteString(flagUsages(lFlags))
	}

	groupKeys := make([]string, 0, len(groups))
	for k := range groups {
		if k != localGroupID && k != globalGroupID {
			groupKeys = append(groupKeys, k)
		}
	}
	sort.Strings(groupKeys)
	for _, groupName := range groupKeys {
		if flags := groups[groupName]; flags.HasFlags() {
			b.WriteString(fmt.Sprintf("\n%s Flags:\n", groupName))
			b.WriteString(flagUsages(flags))
		}
	}

	if gFlags, ok := groups[globalGroupID]; ok && gFlags.HasFlags() {
		b.WriteString("\nGlobal Flags:\n")
		b.WriteString(flagUsages(gFlags))
	}

	if c.HasAvailableSubCommands() {
		b.WriteString(fmt.Sprintf("\nUse \"%s [command] --help\" for more information about a command.\n", c.CommandPath()))
	}

	return tmpl(c.OutOrStderr(), b.String())
}
