package authorization

import "context"

// RuleFunc adapts a function to the Rule interface.
type RuleFunc struct {
	RuleName string
	Fn       func(ctx context.Context, actor Actor, action Action, resource Resource) (Decision, error)
}

func (r RuleFunc) Name() string { return r.RuleName }

func (r RuleFunc) Evaluate(ctx context.Context, actor Actor, action Action, resource Resource) (Decision, error) {
	return r.Fn(ctx, actor, action, resource)
}

// AdminBypass allows everything for admins and abstains otherwise.
func AdminBypass() Rule {
	return RuleFunc{
		RuleName: "admin_bypass",
		Fn: func(_ context.Context, actor Actor, _ Action, _ Resource) (Decision, error) {
			if actor.IsAdmin() {
				return Allow, nil
			}
			return Abstain, nil
		},
	}
}

// PermissionChecker answers whether a role holds a permission on a resource type.
type PermissionChecker interface {
	HasPermission(ctx context.Context, role, resource, action string) (bool, error)
}

// permissionAliases maps gate actions onto the stored permission they need.
var permissionAliases = map[string]map[Action]Resource{
	ResourceSubscriptions: {
		ActionCheckout: {Type: ResourcePayments},
	},
}

// PermissionFor returns the (resource, action) pair a role must hold.
func PermissionFor(action Action, resource Resource) (string, string) {
	if aliases, ok := permissionAliases[resource.Type]; ok {
		if target, ok := aliases[action]; ok {
			return target.Type, string(ActionCreate)
		}
	}
	return resource.Type, string(action)
}

// RolePermission denies when the actor's role lacks the permission for the
// action and abstains when it holds it, leaving ownership to later rules.
func RolePermission(checker PermissionChecker) Rule {
	return RuleFunc{
		RuleName: "role_permission",
		Fn: func(ctx context.Context, actor Actor, action Action, resource Resource) (Decision, error) {
			obj, act := PermissionFor(action, resource)
			ok, err := checker.HasPermission(ctx, actor.Role, obj, act)
			if err != nil {
				return Deny, err
			}
			if !ok {
				return Deny, nil
			}
			return Abstain, nil
		},
	}
}

// OwnerOnly decides the listed actions on resourceType by ownership: the
// owner is allowed, anyone else denied.
func OwnerOnly(resourceType string, actions ...Action) Rule {
	set := actionSet(actions)
	return RuleFunc{
		RuleName: "owner_only:" + resourceType,
		Fn: func(_ context.Context, actor Actor, action Action, resource Resource) (Decision, error) {
			if resource.Type != resourceType || !set[action] {
				return Abstain, nil
			}
			if actor.UserID != 0 && resource.OwnerID == actor.UserID {
				return Allow, nil
			}
			return Deny, nil
		},
	}
}

// AllowActions allows the listed actions on resourceType outright.
func AllowActions(resourceType string, actions ...Action) Rule {
	set := actionSet(actions)
	return RuleFunc{
		RuleName: "allow:" + resourceType,
		Fn: func(_ context.Context, _ Actor, action Action, resource Resource) (Decision, error) {
			if resource.Type == resourceType && set[action] {
				return Allow, nil
			}
			return Abstain, nil
		},
	}
}

func actionSet(actions []Action) map[Action]bool {
	set := make(map[Action]bool, len(actions))
	for _, a := range actions {
		set[a] = true
	}
	return set
}

// NewDefaultPolicy builds the rule order used by the API:
// admin bypass, role permission, then per-resource ownership rules.
// Subscription delete, restore and forceDelete have no allowing rule and
// therefore stay admin-only.
func NewDefaultPolicy(checker PermissionChecker) *Policy {
	return NewPolicy(
		AdminBypass(),
		RolePermission(checker),
		AllowActions(ResourceSubscriptions, ActionViewAny, ActionCreate),
		OwnerOnly(ResourceSubscriptions, ActionView, ActionUpdate, ActionCancel, ActionCheckout),
		AllowActions(ResourceProducts, ActionViewAny, ActionView, ActionCreate, ActionUpdate, ActionDelete),
		AllowActions(ResourcePayments, ActionViewAny, ActionCreate),
	)
}
