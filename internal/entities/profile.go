// Package entities contains core business entities.
package entities

// Actor identifies the authenticated caller of an operation.
// A zero Actor means the request carried no valid session.
type Actor struct {
	ID    string
	Email string
}

// Authenticated reports whether the actor was resolved from a session.
func (a Actor) Authenticated() bool {
	return a.ID != ""
}

// Profile carries the minimal identity display fields joined from the profiles store.
type Profile struct {
	ID          string
	Email       string
	DisplayName string
	AvatarURL   *string
}
