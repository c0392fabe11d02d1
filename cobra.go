package gflags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/reeflective/gflags/internal/values"
)

// BindCommand exports the registry's flags onto a cobra command.
// Boolean flags additionally receive a hidden --no<name> twin backed
// by an inverted view of the same value, so both spellings work on
// the command line.
//
// When the command runs, the registry is marked parsed, flags set by
// cobra are recorded as present, and every validator is asserted, so
// the command body reads flags the same way it would after Parse.
func (f *FlagSet) BindCommand(cmd *cobra.Command) {
	flags := cmd.Flags()

	f.VisitAll(func(flag *Flag) {
		exportFlag(flags, flag)

		if !flag.Boolean {
			return
		}

		inverter := &values.Inverter{Target: flag.Value}

		negated := flags.VarPF(inverter, "no"+flag.Name, "", "negated form of --"+flag.Name)
		negated.NoOptDefVal = "true"
		negated.Hidden = true
	})

	previous := cmd.PreRunE

	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if previous != nil {
			if err := previous(cmd, args); err != nil {
				return err
			}
		}

		f.recordChanged(cmd.Flags())
		f.MarkAsParsed()

		return f.assertAllValidators()
	}
}

// recordChanged marks every flag changed on the foreign set as
// explicitly present here, under either of its spellings.
func (f *FlagSet) recordChanged(pfs *pflag.FlagSet) {
	f.VisitAll(func(flag *Flag) {
		if pfs.Changed(flag.Name) || (flag.Boolean && pfs.Changed("no"+flag.Name)) {
			flag.Present = true
			flag.UsingDefault = false
		}
	})
}
