package dice

// Environment keeps the variables bound during a session.
type Environment struct {
	values map[string]Result
}

func NewEnvironment() *Environment {
	return &Environment{make(map[string]Result)}
}

func (env *Environment) Define(name string, value Result) {
	env.values[name] = value
}

func (env *Environment) Get(name *Token) (Result, error) {
	if value, ok := env.values[name.Lexeme]; ok {
		return value, nil
	}
	return Result{}, NewUnboundVariableError(name)
}
