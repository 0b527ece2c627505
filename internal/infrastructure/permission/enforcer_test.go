package permission

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subcommerce/internal/domain/authorization"
	"subcommerce/internal/infrastructure/persistence/testdb"
	"subcommerce/internal/shared/logger"
)

func seededEnforcer(t *testing.T) *Enforcer {
	t.Helper()

	e, err := NewEnforcer(testdb.New(t), logger.NewNop())
	require.NoError(t, err)

	policies, err := DefaultPolicies()
	require.NoError(t, err)
	require.NoError(t, e.Seed(policies))
	return e
}

func TestDefaultPolicies(t *testing.T) {
	policies, err := DefaultPolicies()
	require.NoError(t, err)

	assert.Contains(t, policies, []string{"admin", "*", "*"})
	assert.Contains(t, policies, []string{"user", "payments", "create"})
	assert.NotContains(t, policies, []string{"user", "products", "create"})
}

func TestParsePolicies_Invalid(t *testing.T) {
	_, err := ParsePolicies([]byte("roles: [not a map"))
	assert.Error(t, err)
}

func TestEnforcer_HasPermission(t *testing.T) {
	e := seededEnforcer(t)
	ctx := context.Background()

	tests := []struct {
		role, resource, action string
		want                   bool
	}{
		{"admin", "products", "forceDelete", true},
		{"admin", "anything", "whatever", true},
		{"user", "products", "view", true},
		{"user", "products", "delete", false},
		{"user", "subscriptions", "cancel", true},
		{"manager", "products", "update", true},
		{"manager", "products", "delete", false},
		{"guest", "products", "view", false},
	}

	for _, tt := range tests {
		t.Run(tt.role+":"+tt.resource+":"+tt.action, func(t *testing.T) {
			ok, err := e.HasPermission(ctx, tt.role, tt.resource, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestEnforcer_SeedIsIdempotent(t *testing.T) {
	e := seededEnforcer(t)
	policies, err := DefaultPolicies()
	require.NoError(t, err)

	require.NoError(t, e.Seed(policies))

	rows, err := e.enforcer.GetPolicy()
	require.NoError(t, err)
	assert.Len(t, rows, len(policies))
}

func TestEnforcer_AddAndRemovePolicy(t *testing.T) {
	e := seededEnforcer(t)
	ctx := context.Background()

	require.NoError(t, e.AddPolicy("user", "products", "create"))
	ok, err := e.HasPermission(ctx, "user", "products", "create")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, e.LoadPolicy())
	ok, err = e.HasPermission(ctx, "user", "products", "create")
	require.NoError(t, err)
	assert.True(t, ok, "policy persisted to casbin_rule")

	require.NoError(t, e.RemovePolicy("user", "products", "create"))
	ok, err = e.HasPermission(ctx, "user", "products", "create")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEnforcer_BacksDefaultPolicy(t *testing.T) {
	policy := authorization.NewDefaultPolicy(seededEnforcer(t))
	ctx := context.Background()
	owner := authorization.Actor{UserID: 1, Role: "user"}
	other := authorization.Actor{UserID: 2, Role: "user"}
	sub := authorization.Resource{Type: authorization.ResourceSubscriptions, ID: 9, OwnerID: 1}

	ok, err := policy.Authorize(ctx, owner, authorization.ActionCancel, sub)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = policy.Authorize(ctx, other, authorization.ActionCancel, sub)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = policy.Authorize(ctx, owner, authorization.ActionDelete, sub)
	require.NoError(t, err)
	assert.False(t, ok, "delete stays admin only")

	ok, err = policy.Authorize(ctx, authorization.Actor{UserID: 5, Role: authorization.RoleAdmin}, authorization.ActionForceDelete, sub)
	require.NoError(t, err)
	assert.True(t, ok)
}
