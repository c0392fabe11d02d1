package gflags

import (
	comp "github.com/rsteube/carapace"
	"github.com/spf13/cobra"

	"github.com/reeflective/gflags/internal/values"
)

// Completer is the interface for flag value types providing their own
// shell completion suggestions.
type Completer interface {
	Complete(ctx comp.Context) comp.Action
}

// FlagCompletions returns a completion action for every flag that can
// suggest values: restricted flags complete their choices, and values
// implementing Completer complete themselves. List and map valued
// flags complete as a unique, comma separated list, matching the way
// their values parse.
func (f *FlagSet) FlagCompletions() comp.ActionMap {
	actions := make(comp.ActionMap)

	f.VisitAll(func(flag *Flag) {
		if len(flag.Choices) > 0 {
			actions[flag.Name] = comp.ActionValues(flag.Choices...)

			return
		}

		completer, found := completerFor(flag.Value)
		if !found {
			return
		}

		action := comp.ActionCallback(completer.Complete)

		if repeatable, ok := flag.Value.(values.RepeatableFlag); ok && repeatable.IsCumulative() {
			action = action.UniqueList(",")
		}

		actions[flag.Name] = action
	})

	return actions
}

// GenCompletions generates the carapace completion engine for a
// command whose flags were bound from this set, and attaches the
// per-flag completion actions to it.
func (f *FlagSet) GenCompletions(cmd *cobra.Command) {
	engine := comp.Gen(cmd)

	if actions := f.FlagCompletions(); len(actions) > 0 {
		engine.FlagCompletion(actions)
	}
}

// completerFor digs a Completer implementation out of a value,
// unwrapping any decorators around it.
func completerFor(value Value) (Completer, bool) {
	for value != nil {
		if completer, ok := value.(Completer); ok {
			return completer, true
		}

		wrapper, ok := value.(values.Wrapper)
		if !ok {
			return nil, false
		}

		value = wrapper.Unwrap()
	}

	return nil, false
}
