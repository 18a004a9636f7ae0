package message

import (
	"encoding/json"
	"fmt"
	"time"

	herrors "herald/errors"
)

// Filters are stored on the message as a JSON blob and parsed into a flat
// conjunction of predicates exactly once per send. There is no nesting and
// no disjunction; every predicate must hold for a ticket to match.

type FilterAttribute string

const (
	AttrHolderID    FilterAttribute = "holder_id"
	AttrTier        FilterAttribute = "tier"
	AttrPurchasedAt FilterAttribute = "purchased_at"
	AttrCheckedIn   FilterAttribute = "checked_in"
)

type FilterOp string

const (
	OpEq     FilterOp = "eq"
	OpNe     FilterOp = "ne"
	OpBefore FilterOp = "before"
	OpAfter  FilterOp = "after"
)

type Predicate struct {
	Attribute FilterAttribute `json:"attribute"`
	Op        FilterOp        `json:"op"`
	Value     string          `json:"value"`
}

// ParseFilters decodes a stored filter blob into predicates and rejects
// anything the evaluator would not understand later.
func ParseFilters(blob string) ([]Predicate, error) {
	if blob == "" {
		return nil, fmt.Errorf("%w: empty filter blob", herrors.ErrMalformedFilter)
	}
	var predicates []Predicate
	if err := json.Unmarshal([]byte(blob), &predicates); err != nil {
		return nil, fmt.Errorf("%w: %v", herrors.ErrMalformedFilter, err)
	}
	if len(predicates) == 0 {
		return nil, fmt.Errorf("%w: no predicates", herrors.ErrMalformedFilter)
	}
	for _, p := range predicates {
		if err := p.validate(); err != nil {
			return nil, err
		}
	}
	return predicates, nil
}

func (p Predicate) validate() error {
	switch p.Attribute {
	case AttrHolderID, AttrTier:
		if p.Op != OpEq && p.Op != OpNe {
			return fmt.Errorf("%w: %s does not support op %q", herrors.ErrMalformedFilter, p.Attribute, p.Op)
		}
	case AttrPurchasedAt:
		if p.Op != OpBefore && p.Op != OpAfter {
			return fmt.Errorf("%w: purchased_at needs before/after, got %q", herrors.ErrMalformedFilter, p.Op)
		}
		if _, err := time.Parse(time.RFC3339, p.Value); err != nil {
			return fmt.Errorf("%w: purchased_at value %q is not RFC3339", herrors.ErrMalformedFilter, p.Value)
		}
	case AttrCheckedIn:
		if p.Op != OpEq && p.Op != OpNe {
			return fmt.Errorf("%w: checked_in needs eq/ne, got %q", herrors.ErrMalformedFilter, p.Op)
		}
		if p.Value != "true" && p.Value != "false" {
			return fmt.Errorf("%w: checked_in value %q is not a bool", herrors.ErrMalformedFilter, p.Value)
		}
	default:
		return fmt.Errorf("%w: unknown attribute %q", herrors.ErrMalformedFilter, p.Attribute)
	}
	if p.Value == "" {
		return fmt.Errorf("%w: empty value for %s", herrors.ErrMalformedFilter, p.Attribute)
	}
	return nil
}

// Matches evaluates the predicate against one ticket.
func (p Predicate) Matches(t Ticket) bool {
	switch p.Attribute {
	case AttrHolderID:
		return applyEq(p.Op, t.HolderID.String(), p.Value)
	case AttrTier:
		return applyEq(p.Op, t.Tier, p.Value)
	case AttrCheckedIn:
		return applyEq(p.Op, fmt.Sprintf("%t", t.CheckedIn), p.Value)
	case AttrPurchasedAt:
		bound, err := time.Parse(time.RFC3339, p.Value)
		if err != nil {
			return false
		}
		if p.Op == OpBefore {
			return t.PurchasedAt.Before(bound)
		}
		return t.PurchasedAt.After(bound)
	}
	return false
}

// MatchesAll is the conjunction over the full predicate list.
func MatchesAll(predicates []Predicate, t Ticket) bool {
	for _, p := range predicates {
		if !p.Matches(t) {
			return false
		}
	}
	return true
}

func applyEq(op FilterOp, actual, expected string) bool {
	if op == OpNe {
		return actual != expected
	}
	return actual == expected
}
