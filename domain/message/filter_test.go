package message

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"herald/errors"
)

func TestParseFilters(t *testing.T) {
	t.Run("should parse a conjunction of predicates", func(t *testing.T) {
		req := require.New(t)
		blob := `[{"attribute":"tier","op":"eq","value":"VIP"},{"attribute":"checked_in","op":"eq","value":"false"}]`

		predicates, err := ParseFilters(blob)

		req.NoError(err)
		req.Len(predicates, 2)
		req.Equal(AttrTier, predicates[0].Attribute)
		req.Equal(OpEq, predicates[0].Op)
	})

	t.Run("should reject an empty blob", func(t *testing.T) {
		req := require.New(t)
		_, err := ParseFilters("")
		req.ErrorIs(err, errors.ErrMalformedFilter)
	})

	t.Run("should reject invalid JSON", func(t *testing.T) {
		req := require.New(t)
		_, err := ParseFilters(`{"tier": "VIP"`)
		req.ErrorIs(err, errors.ErrMalformedFilter)
	})

	t.Run("should reject an empty predicate list", func(t *testing.T) {
		req := require.New(t)
		_, err := ParseFilters(`[]`)
		req.ErrorIs(err, errors.ErrMalformedFilter)
	})

	t.Run("should reject an unknown attribute", func(t *testing.T) {
		req := require.New(t)
		_, err := ParseFilters(`[{"attribute":"shoe_size","op":"eq","value":"42"}]`)
		req.ErrorIs(err, errors.ErrMalformedFilter)
	})

	t.Run("should reject a bad operator for purchased_at", func(t *testing.T) {
		req := require.New(t)
		_, err := ParseFilters(`[{"attribute":"purchased_at","op":"eq","value":"2026-01-01T00:00:00Z"}]`)
		req.ErrorIs(err, errors.ErrMalformedFilter)
	})

	t.Run("should reject a non-RFC3339 purchase date", func(t *testing.T) {
		req := require.New(t)
		_, err := ParseFilters(`[{"attribute":"purchased_at","op":"before","value":"yesterday"}]`)
		req.ErrorIs(err, errors.ErrMalformedFilter)
	})

	t.Run("should reject a non-boolean checked_in value", func(t *testing.T) {
		req := require.New(t)
		_, err := ParseFilters(`[{"attribute":"checked_in","op":"eq","value":"maybe"}]`)
		req.ErrorIs(err, errors.ErrMalformedFilter)
	})
}

func TestPredicateMatching(t *testing.T) {
	purchased := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	ticket := Ticket{
		ID:          uuid.New(),
		HolderID:    uuid.New(),
		Tier:        "VIP",
		PurchasedAt: purchased,
		CheckedIn:   true,
	}

	t.Run("should match on tier equality", func(t *testing.T) {
		req := require.New(t)
		p := Predicate{Attribute: AttrTier, Op: OpEq, Value: "VIP"}
		req.True(p.Matches(ticket))
		req.False(Predicate{Attribute: AttrTier, Op: OpEq, Value: "GA"}.Matches(ticket))
	})

	t.Run("should match on tier inequality", func(t *testing.T) {
		req := require.New(t)
		req.True(Predicate{Attribute: AttrTier, Op: OpNe, Value: "GA"}.Matches(ticket))
	})

	t.Run("should compare purchase dates", func(t *testing.T) {
		req := require.New(t)
		before := Predicate{Attribute: AttrPurchasedAt, Op: OpBefore, Value: "2026-06-01T00:00:00Z"}
		after := Predicate{Attribute: AttrPurchasedAt, Op: OpAfter, Value: "2026-06-01T00:00:00Z"}
		req.True(before.Matches(ticket))
		req.False(after.Matches(ticket))
	})

	t.Run("should match on check-in status", func(t *testing.T) {
		req := require.New(t)
		req.True(Predicate{Attribute: AttrCheckedIn, Op: OpEq, Value: "true"}.Matches(ticket))
		req.False(Predicate{Attribute: AttrCheckedIn, Op: OpEq, Value: "false"}.Matches(ticket))
	})

	t.Run("should require every predicate of the conjunction", func(t *testing.T) {
		req := require.New(t)
		predicates := []Predicate{
			{Attribute: AttrTier, Op: OpEq, Value: "VIP"},
			{Attribute: AttrCheckedIn, Op: OpEq, Value: "false"},
		}
		req.False(MatchesAll(predicates, ticket))
	})

	t.Run("should match everything on an empty conjunction", func(t *testing.T) {
		req := require.New(t)
		req.True(MatchesAll(nil, ticket))
	})
}
