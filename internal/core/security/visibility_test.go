package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keys(entries []MenuEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Key)
	}
	return out
}

func TestMenuPolicy_DefaultMenuByRole(t *testing.T) {
	policy, err := NewMenuPolicy(DefaultMenu())
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"dashboard", "products", "customers", "sales", "reports", "users", "company"},
		keys(policy.Visible("admin")))

	assert.Equal(t,
		[]string{"dashboard", "products", "customers", "sales", "reports"},
		keys(policy.Visible("manager")))

	assert.Equal(t,
		[]string{"dashboard", "products", "customers", "sales"},
		keys(policy.Visible("seller")))
}

func TestMenuPolicy_UnknownRoleGetsUnrestrictedEntriesOnly(t *testing.T) {
	policy, err := NewMenuPolicy(DefaultMenu())
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"dashboard", "products", "customers", "sales"},
		keys(policy.Visible("intern")))
}

func TestNewMenuPolicy_RejectsMalformedRule(t *testing.T) {
	_, err := NewMenuPolicy([]MenuEntry{
		{Key: "broken", Path: "/broken", Rule: `role ==`},
	})
	assert.Error(t, err)
}

func TestNewMenuPolicy_RejectsNonBooleanRule(t *testing.T) {
	// Compiles as a string expression, so construction succeeds, but the
	// entry must stay hidden for every role.
	policy, err := NewMenuPolicy([]MenuEntry{
		{Key: "odd", Path: "/odd", Rule: `role`},
	})
	require.NoError(t, err)
	assert.Empty(t, policy.Visible("admin"))
}
