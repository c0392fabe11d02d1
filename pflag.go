package gflags

import (
	"github.com/spf13/pflag"
)

// pflagSet is the part of the pflag API the export side relies on.
type pflagSet interface {
	VarPF(value pflag.Value, name, shorthand, usage string) *pflag.Flag
}

var _ pflagSet = (*pflag.FlagSet)(nil)

// AddPflagSet imports every flag of a pflag set into the registry.
// The pflag values back the imported flags directly, so both sides
// observe the same assignments. Options apply to each imported flag,
// which lands in the main module unless one of them says otherwise.
func (f *FlagSet) AddPflagSet(pfs *pflag.FlagSet, options ...FlagOption) error {
	var failed error

	pfs.VisitAll(func(pf *pflag.Flag) {
		if failed != nil {
			return
		}

		flag := NewFlag(pf.Name, pf.Value, pf.Usage)
		flag.Shorthand = pf.Shorthand
		flag.DefValue = pf.DefValue
		flag.Hidden = pf.Hidden
		flag.Present = pf.Changed
		flag.UsingDefault = !pf.Changed

		// pflag has no boolean trait: its booleans are recognized by
		// their type, or by the implicit value they take when passed
		// without an argument.
		if pf.Value.Type() == "bool" || pf.NoOptDefVal == "true" {
			flag.Boolean = true
		}

		for _, option := range options {
			option(flag)
		}

		if flag.Module == "" {
			flag.Module = mainModule
		}

		if err := f.Register(flag); err != nil {
			failed = err

			return
		}

		f.registerFlagByModule(flag.Module, flag)

		if flag.key {
			failed = f.DeclareKeyFlag(flag.Module, flag.Name)
		}
	})

	return failed
}

// ExportPflag renders the registry as a pflag set sharing the same
// backing values: parsing on either side is visible to both.
func (f *FlagSet) ExportPflag() *pflag.FlagSet {
	pfs := pflag.NewFlagSet(f.name, pflag.ContinueOnError)

	f.VisitAll(func(flag *Flag) {
		exportFlag(pfs, flag)
	})

	return pfs
}

func exportFlag(dst pflagSet, flag *Flag) *pflag.Flag {
	// pflag only accepts single-character shorthands.
	shorthand := flag.Shorthand
	if len(shorthand) > 1 {
		shorthand = ""
	}

	pf := dst.VarPF(flag.Value, flag.Name, shorthand, flag.Usage)
	pf.DefValue = flag.DefValue
	pf.Hidden = flag.Hidden

	if flag.Boolean {
		pf.NoOptDefVal = "true"
	}

	return pf
}
