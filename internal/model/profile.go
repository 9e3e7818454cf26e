package model

// Profile is a team member with role-based access.
// Role: "admin" | "editor" | "agent" — fixed taxonomy, exactly three roles.
type Profile struct {
	ID        string  `json:"id"`
	Role      string  `json:"role"`
	FullName  string  `json:"full_name"`
	Email     string  `json:"email"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleAgent  = "agent"
)

// ValidRole reports whether r is one of the three known roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleEditor || r == RoleAgent
}
