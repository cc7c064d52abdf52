package usecase

import (
	"ubjewellers/internal/domain/entity"
)

// Actor is the authenticated caller a use case acts on behalf of.
type Actor struct {
	Email    string
	IsAdmin  bool
	IsSeller bool
}

func ActorFromUser(u *entity.User) Actor {
	return Actor{Email: u.Email, IsAdmin: u.IsAdmin, IsSeller: u.IsSeller}
}

// CanManage reports whether the actor owns the resource or is an admin.
func (a Actor) CanManage(ownerEmail string) bool {
	return a.IsAdmin || (a.Email != "" && a.Email == ownerEmail)
}
