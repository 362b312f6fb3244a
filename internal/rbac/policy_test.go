package rbac

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanPerform(t *testing.T) {
	tests := []struct {
		role   Role
		action string
		want   bool
	}{
		{RoleSuperAdmin, ActionReportsView, true},
		{RoleSuperAdmin, ActionCatalogImport, true},
		{RoleAdmin, ActionCatalogImport, true},
		{RoleAdmin, ActionSalesCreate, true},
		{RolePurchase, ActionPurchaseCreate, true},
		{RolePurchase, ActionSalesCreate, false},
		{RolePurchase, ActionReportsView, false},
		{RoleSales, ActionSalesCreate, true},
		{RoleSales, ActionPurchaseCreate, false},
		{RoleSales, ActionCatalogValue, false},
		{Role("UNKNOWN"), ActionCatalogView, false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, CanPerform(tt.role, tt.action),
			"role %s action %s", tt.role, tt.action)
	}
}

func TestRoleValid(t *testing.T) {
	require.True(t, RoleAdmin.Valid())
	require.True(t, RoleSuperAdmin.Valid())
	require.False(t, Role("manager").Valid())
}
