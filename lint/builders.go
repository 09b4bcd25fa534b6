package lint

// LineCheckFunc performs rule checking on a single line.
// It returns the violations found, or nil if the line is clean.
type LineCheckFunc func(line Line) []Violation

// SimpleRule creates a rule from a plain check function.
//
//nolint:ireturn // Builder functions should return interfaces
func SimpleRule(name, description string, check LineCheckFunc) LineRule {
	return &simpleRule{
		name:        name,
		description: description,
		check:       check,
	}
}

// simpleRule implements the LineRule interface using a LineCheckFunc.
type simpleRule struct {
	name        string
	description string
	check       LineCheckFunc
}

func (r *simpleRule) Name() string {
	return r.name
}

func (r *simpleRule) Description() string {
	return r.description
}

func (r *simpleRule) CheckLine(line Line) []Violation {
	return r.check(line)
}
