package entity

// Role names carried inside tokens. There is no roles table: each role has
// its own account entity, the name only scopes token lifetime and routes.
const (
	RoleAdmin   = "admin"
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)
