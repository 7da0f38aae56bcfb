package emit

import "strings"

// Context carries emission state through a traversal: the active profile,
// the current indentation depth, and a stack of per-scope declared-variable
// sets used to decide whether an assignment is a declaration.
type Context struct {
	profile *Profile
	depth   int
	scopes  []map[string]struct{}

	// className is the enclosing class name, used for constructor renames
	// in targets where the constructor takes the class name.
	className string
	// inClass is true while emitting a class body.
	inClass bool
}

func newContext(p *Profile) *Context {
	return &Context{
		profile: p,
		scopes:  []map[string]struct{}{{}},
	}
}

func (c *Context) indent() string {
	return strings.Repeat(c.profile.Indent, c.depth)
}

// pushScope opens a new declaration scope for a function or loop body.
func (c *Context) pushScope() {
	c.scopes = append(c.scopes, map[string]struct{}{})
}

func (c *Context) popScope() {
	if len(c.scopes) > 1 {
		c.scopes = c.scopes[:len(c.scopes)-1]
	}
}

// declared reports whether name is declared in any enclosing scope.
func (c *Context) declared(name string) bool {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if _, ok := c.scopes[i][name]; ok {
			return true
		}
	}
	return false
}

// markDeclared records name in the innermost scope.
func (c *Context) markDeclared(name string) {
	c.scopes[len(c.scopes)-1][name] = struct{}{}
}
