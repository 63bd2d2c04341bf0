package argparse

// Result holds the positional arguments left over after a successful [Parse].
type Result struct {
	Positionals []string // Positionals are tokens that weren't consumed as an option or option value, in command line order.
}

// Len returns the number of positional arguments.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Positionals)
}

// Arg returns the positional argument at index i, and false if there isn't one.
func (r *Result) Arg(i int) (string, bool) {
	if i < 0 || i >= r.Len() {
		return "", false
	}
	return r.Positionals[i], true
}

// Release drops the positional arguments held by the [Result].
// It's safe to call on a nil or already released [Result].
func (r *Result) Release() {
	if r == nil {
		return
	}
	r.Positionals = nil
}
