package services

import (
	"github.com/dmitrijs2005/postboard/internal/client/models"
)

// Identity exposes the signed-in user, or nil for an anonymous session.
type Identity interface {
	User() *models.User
}

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

func ownedBy(id Identity, ownerID int64) bool {
	u := id.User()
	return u != nil && u.ID == ownerID
}
