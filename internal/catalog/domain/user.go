package domain

// Roles are flat permission tags; there is no hierarchy.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a catalog identity. The username is the unique, case-sensitive key.
// PasswordHash is immutable after registration; NotesToken is the delegated
// token from the external notes service and is overwritten on each login.
type User struct {
	ID           int
	Username     string
	Role         string
	PasswordHash string // argon2 encoded
	NotesToken   string
}
