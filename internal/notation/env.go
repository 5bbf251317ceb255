package notation

import (
	"fmt"

	"runematch/rules"
)

// Environment holds named rules in definition order, plus the trailing
// expression of a source if it had one.
type Environment struct {
	rules map[string]rules.Rule
	names []string
	main  *rules.Rule
}

func NewEnvironment() *Environment {
	return &Environment{rules: make(map[string]rules.Rule)}
}

func (e *Environment) Get(name string) (rules.Rule, bool) {
	r, ok := e.rules[name]
	return r, ok
}

// Set defines name. Names cannot be redefined.
func (e *Environment) Set(name string, r rules.Rule) error {
	if _, ok := e.rules[name]; ok {
		return fmt.Errorf("rule %q already defined", name)
	}
	e.rules[name] = r
	e.names = append(e.names, name)
	return nil
}

// Names lists the defined names in definition order.
func (e *Environment) Names() []string {
	return append([]string(nil), e.names...)
}

// Main returns the trailing expression of the source.
func (e *Environment) Main() (rules.Rule, bool) {
	if e.main == nil {
		return rules.Rule{}, false
	}
	return *e.main, true
}

// Lookup returns the rule called name, or the trailing expression when
// name is empty.
func (e *Environment) Lookup(name string) (rules.Rule, error) {
	if name == "" {
		r, ok := e.Main()
		if !ok {
			return rules.Rule{}, fmt.Errorf("no rule expression")
		}
		return r, nil
	}
	r, ok := e.Get(name)
	if !ok {
		return rules.Rule{}, fmt.Errorf("undefined rule %s", name)
	}
	return r, nil
}

func (e *Environment) String() string {
	return fmt.Sprint(e.names)
}
