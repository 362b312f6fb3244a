// Package rbac maps user roles to capabilities and enforces them at the
// HTTP boundary.
package rbac

// Role is a high-level permission grouping assigned to a user.
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RolePurchase   Role = "PURCHASE"
	RoleSales      Role = "SALES"
)

// Action names an atomic capability checked at route boundaries.
const (
	ActionCatalogView    = "catalog.view"
	ActionCatalogEdit    = "catalog.edit"
	ActionCatalogImport  = "catalog.import"
	ActionCatalogValue   = "catalog.value"
	ActionContactsView   = "contacts.view"
	ActionContactsEdit   = "contacts.edit"
	ActionPurchaseCreate = "purchase.create"
	ActionSalesCreate    = "sales.create"
	ActionLedgerView     = "ledger.view"
	ActionExpensesManage = "expenses.manage"
	ActionReportsView    = "reports.view"
)

var rolePolicies = map[Role]map[string]struct{}{
	RoleAdmin: capabilitySet(
		ActionCatalogView, ActionCatalogEdit, ActionCatalogImport, ActionCatalogValue,
		ActionContactsView, ActionContactsEdit,
		ActionPurchaseCreate, ActionSalesCreate, ActionLedgerView,
		ActionExpensesManage, ActionReportsView,
	),
	RolePurchase: capabilitySet(
		ActionCatalogView, ActionCatalogEdit, ActionCatalogValue,
		ActionContactsView,
		ActionPurchaseCreate,
	),
	RoleSales: capabilitySet(
		ActionCatalogView,
		ActionContactsView,
		ActionSalesCreate,
	),
}

func capabilitySet(actions ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(actions))
	for _, a := range actions {
		set[a] = struct{}{}
	}
	return set
}

// CanPerform reports whether a role grants the named action. The platform
// super admin is granted everything.
func CanPerform(role Role, action string) bool {
	if role == RoleSuperAdmin {
		return true
	}
	granted, ok := rolePolicies[role]
	if !ok {
		return false
	}
	_, ok = granted[action]
	return ok
}

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RolePurchase, RoleSales:
		return true
	}
	return false
}
