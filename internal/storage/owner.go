package storage

import "github.com/shopflow/shopflow-backend/internal/app/model"

type ownerKind int

const (
	ownerNone ownerKind = iota
	ownerUser
	ownerSession
)

// CartOwner identifies who a cart line belongs to: an authenticated user or
// a guest session. The zero value owns nothing, so cart reads and clears
// issued without an owner criterion match no items.
type CartOwner struct {
	kind      ownerKind
	userID    uint
	sessionID string
}

// OwnerUser scopes cart operations to an authenticated user's cart.
func OwnerUser(id uint) CartOwner {
	return CartOwner{kind: ownerUser, userID: id}
}

// OwnerSession scopes cart operations to a guest session cart.
func OwnerSession(token string) CartOwner {
	return CartOwner{kind: ownerSession, sessionID: token}
}

// IsZero reports whether no owner is set.
func (o CartOwner) IsZero() bool {
	return o.kind == ownerNone
}

// Owns reports whether item belongs to this owner.
func (o CartOwner) Owns(item model.CartItem) bool {
	switch o.kind {
	case ownerUser:
		return item.UserID != nil && *item.UserID == o.userID
	case ownerSession:
		return item.SessionID != nil && *item.SessionID == o.sessionID
	default:
		return false
	}
}

// stamp writes the owner identity onto a cart item record. A zero owner
// leaves both fields absent.
func (o CartOwner) stamp(item *model.CartItem) {
	switch o.kind {
	case ownerUser:
		id := o.userID
		item.UserID = &id
	case ownerSession:
		sid := o.sessionID
		item.SessionID = &sid
	}
}

// ownedByAny reports whether item belongs to any of the given owners.
func ownedByAny(item model.CartItem, owners []CartOwner) bool {
	for _, o := range owners {
		if o.Owns(item) {
			return true
		}
	}
	return false
}
