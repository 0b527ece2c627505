// Package authorization evaluates (actor, action, resource) requests against
// an explicit, ordered list of rules. The first rule that returns Allow or
// Deny decides; when every rule abstains the request is denied.
package authorization

import (
	"context"
	"fmt"
)

type Action string

const (
	ActionViewAny     Action = "viewAny"
	ActionView        Action = "view"
	ActionCreate      Action = "create"
	ActionUpdate      Action = "update"
	ActionCancel      Action = "cancel"
	ActionDelete      Action = "delete"
	ActionRestore     Action = "restore"
	ActionForceDelete Action = "forceDelete"
	ActionCheckout    Action = "checkout"
)

// Resource types guarded by the gate.
const (
	ResourceProducts      = "products"
	ResourceSubscriptions = "subscriptions"
	ResourcePayments      = "payments"
)

const RoleAdmin = "admin"

type Actor struct {
	UserID uint
	Role   string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Resource identifies what is being acted on. OwnerID is zero for
// collection-level actions such as viewAny and create.
type Resource struct {
	Type    string
	ID      uint
	OwnerID uint
}

type Decision int

const (
	Abstain Decision = iota
	Allow
	Deny
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Deny:
		return "deny"
	default:
		return "abstain"
	}
}

type Rule interface {
	Name() string
	Evaluate(ctx context.Context, actor Actor, action Action, resource Resource) (Decision, error)
}

// Result records which rule decided, for logging.
type Result struct {
	Decision Decision
	Rule     string
}

func (r Result) Allowed() bool {
	return r.Decision == Allow
}

type Policy struct {
	rules []Rule
}

func NewPolicy(rules ...Rule) *Policy {
	return &Policy{rules: rules}
}

// Evaluate walks the rules in order. A rule error stops evaluation and is
// returned with a Deny result.
func (p *Policy) Evaluate(ctx context.Context, actor Actor, action Action, resource Resource) (Result, error) {
	for _, rule := range p.rules {
		d, err := rule.Evaluate(ctx, actor, action, resource)
		if err != nil {
			return Result{Decision: Deny, Rule: rule.Name()}, fmt.Errorf("rule %s: %w", rule.Name(), err)
		}
		if d != Abstain {
			return Result{Decision: d, Rule: rule.Name()}, nil
		}
	}
	return Result{Decision: Deny, Rule: "default"}, nil
}

// Authorize is Evaluate reduced to a boolean.
func (p *Policy) Authorize(ctx context.Context, actor Actor, action Action, resource Resource) (bool, error) {
	res, err := p.Evaluate(ctx, actor, action, resource)
	if err != nil {
		return false, err
	}
	return res.Allowed(), nil
}
