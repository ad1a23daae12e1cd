package security

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

// MenuEntry describes one console navigation entry together with the rule
// deciding which roles see it. Rules are CEL expressions over the variable
// `role`. Visibility is advisory UX only — the server remains the authority
// on every endpoint regardless of what the menu shows.
type MenuEntry struct {
	Key  string `json:"key"`
	Path string `json:"path"`
	Rule string `json:"-"`
}

// DefaultMenu mirrors the console pages.
func DefaultMenu() []MenuEntry {
	return []MenuEntry{
		{Key: "dashboard", Path: "/dashboard", Rule: `true`},
		{Key: "products", Path: "/products", Rule: `true`},
		{Key: "customers", Path: "/customers", Rule: `true`},
		{Key: "sales", Path: "/sales", Rule: `true`},
		{Key: "reports", Path: "/reports", Rule: `role == "admin" || role == "manager"`},
		{Key: "users", Path: "/users", Rule: `role == "admin"`},
		{Key: "company", Path: "/company", Rule: `role == "admin"`},
	}
}

type compiledEntry struct {
	entry   MenuEntry
	program cel.Program
}

// MenuPolicy evaluates menu visibility rules for a role.
type MenuPolicy struct {
	entries []compiledEntry
}

// NewMenuPolicy compiles the rule of every entry. A malformed rule is a
// configuration error and fails construction.
func NewMenuPolicy(entries []MenuEntry) (*MenuPolicy, error) {
	env, err := cel.NewEnv(
		cel.Variable("role", cel.StringType),
	)
	if err != nil {
		return nil, fmt.Errorf("create cel env: %w", err)
	}

	compiled := make([]compiledEntry, 0, len(entries))
	for _, e := range entries {
		ast, iss := env.Compile(e.Rule)
		if iss.Err() != nil {
			return nil, fmt.Errorf("compile rule for %q: %w", e.Key, iss.Err())
		}
		prg, err := env.Program(ast)
		if err != nil {
			return nil, fmt.Errorf("build program for %q: %w", e.Key, err)
		}
		compiled = append(compiled, compiledEntry{entry: e, program: prg})
	}

	return &MenuPolicy{entries: compiled}, nil
}

// Visible returns the entries whose rule evaluates to true for the role,
// preserving declaration order. A rule that fails to evaluate hides its entry.
func (p *MenuPolicy) Visible(role string) []MenuEntry {
	visible := make([]MenuEntry, 0, len(p.entries))
	for _, ce := range p.entries {
		out, _, err := ce.program.Eval(map[string]any{"role": role})
		if err != nil {
			continue
		}
		if allowed, ok := out.Value().(bool); ok && allowed {
			visible = append(visible, ce.entry)
		}
	}
	return visible
}
