package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
)

// Parameter describes a single config key accepted by an automaton factory.
type Parameter struct {
	Key         string
	Type        ParamType
	Default     string
	Description string
}

var params = map[string][]Parameter{}

// Describe records the config keys understood by the named factory.
func Describe(name string, p ...Parameter) {
	if name == "" {
		return
	}
	params[name] = append(params[name], p...)
}

// Parameters returns the config keys documented for the named factory.
func Parameters(name string) []Parameter {
	return params[name]
}
