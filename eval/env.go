package eval

import (
	"fmt"
	"os"
	"strings"

	"github.com/quanta-format/go-quanta/ir"
	"github.com/quanta-format/go-quanta/parse"
)

// Resolver looks up the value an identifier names.
type Resolver interface {
	Resolve(name string) *ir.Node
}

// Env maps names to values.
type Env map[string]*ir.Node

func (e Env) Resolve(name string) *ir.Node {
	return e[name]
}

// Set parses a name=value argument into e. The value is quanta text.
func (e Env) Set(arg string) error {
	name, val, ok := strings.Cut(arg, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return fmt.Errorf("%w: argument %q expected name=value", ErrEval, arg)
	}
	n, err := parse.ParseString(val, parse.SingleValue())
	if err != nil {
		return fmt.Errorf("value of %s: %w", name, err)
	}
	n.SetName(name)
	e[name] = n
	return nil
}

// FromOS adds an entry for every environment variable starting with
// prefix, named by the rest of the variable name. Variables whose value
// does not parse are returned as an error after the others are added.
func (e Env) FromOS(prefix string) error {
	var errs []string
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, prefix) {
			continue
		}
		if err := e.Set(kv[len(prefix):]); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) != 0 {
		return fmt.Errorf("%w: %s", ErrEval, strings.Join(errs, "; "))
	}
	return nil
}

// scope resolves names to members of a node, then of its enclosing
// scopes, then of env.
type scope struct {
	node *ir.Node
	up   *scope
	env  Resolver
}

func (s *scope) Resolve(name string) *ir.Node {
	for sc := s; sc != nil; sc = sc.up {
		if c := sc.node.FindChild(name); c != nil {
			return c
		}
	}
	if s.env == nil {
		return nil
	}
	return s.env.Resolve(name)
}

// Scope returns a resolver over the members of the nodes in path, the
// innermost last, falling back to env.
func Scope(env Resolver, path ...*ir.Node) Resolver {
	var s *scope
	for _, n := range path {
		s = &scope{node: n, up: s, env: env}
	}
	if s == nil {
		return env
	}
	return s
}
