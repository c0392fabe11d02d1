package values

// Value is the interface to the dynamic value stored in a flag.
// Set is called once per occurrence of the flag on the command line,
// with the raw argument string. String returns the current value in a
// form that Set would accept back. Type returns a short name for the
// kind of value, used in help and XML output.
type Value interface {
	String() string
	Set(string) error
	Type() string
}

// BoolFlag is implemented by values which do not require an argument
// on the command line: `--flag` alone means `--flag=true`, and the
// flag can be negated with its `--noflag` form.
type BoolFlag interface {
	Value
	IsBoolFlag() bool
}

// RepeatableFlag is implemented by values which accumulate across
// occurrences or accept several items in a single argument, such as
// lists, maps and counters.
type RepeatableFlag interface {
	Value
	IsCumulative() bool
}

// Getter allows the native (typed) value to be retrieved from a Value.
// Values returning nil from Get are considered unset, and are skipped
// when flags are serialized back to command-line form.
type Getter interface {
	Value
	Get() any
}

// Resetter is implemented by values which need custom logic to return
// to their default state when their flag set is reset.
type Resetter interface {
	Reset(defval string) error
}

// Wrapper is implemented by values decorating another value, so that
// interfaces of the wrapped value stay reachable.
type Wrapper interface {
	Unwrap() Value
}
