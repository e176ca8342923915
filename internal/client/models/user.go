// Package models defines the data shapes exchanged with the LingvoCheck
// backend. Field tags mirror the server's JSON conventions (_id identifiers,
// camelCase keys).
package models

// Permissions is the fixed set of administrative capabilities attached to a
// user's role. Modelling them as explicit fields keeps every permission
// check exhaustively compile-checked.
type Permissions struct {
	CreateTeam bool `json:"createTeam"`
	AssignTeam bool `json:"assignTeam"`
	DeleteTeam bool `json:"deleteTeam"`
	CreateRole bool `json:"createRole"`
	AssignRole bool `json:"assignRole"`
	DeleteRole bool `json:"deleteRole"`
	CreateUser bool `json:"createUser"`
	DeleteUser bool `json:"deleteUser"`
	AssignTest bool `json:"assignTest"`
}

// UserProfile is the authenticated user's own representation as returned by
// login, registration and profile-edit responses.
type UserProfile struct {
	ID          string      `json:"_id"`
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	IsActivated bool        `json:"isActivated"`
	Team        string      `json:"team,omitempty"`
	Permissions Permissions `json:"permissions"`
}

// AdminUser is a row of the user-administration listing.
type AdminUser struct {
	ID               string `json:"_id"`
	Username         string `json:"username"`
	Email            string `json:"email"`
	ActivationDate   string `json:"activationDate,omitempty"`
	RegistrationDate string `json:"registrationDate,omitempty"`
	Role             Role   `json:"role"`
	Team             Team   `json:"team"`
}

// NewUser is the payload for creating a user from the admin screen.
type NewUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   string `json:"role"`
	TeamID   string `json:"team"`
}

// CreatedUser is the server's acknowledgement of a NewUser payload.
type CreatedUser struct {
	ID   string `json:"_id"`
	Date string `json:"date"`
}

// ProfileUpdate carries the fields a user may change on their own profile.
type ProfileUpdate struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
