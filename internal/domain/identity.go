package domain

// Role is a coarse editorial role. The tags follow the newsroom's Dutch
// role names: plain user, editor/author, chief editor/reviewer.
type Role string

const (
	RoleUser        Role = "gebruiker"
	RoleEditor      Role = "redacteur"
	RoleChiefEditor Role = "hoofdredacteur"
)

// ValidRoles contains all valid roles.
var ValidRoles = []Role{RoleUser, RoleEditor, RoleChiefEditor}

// IsValidRole checks if a role is valid.
func IsValidRole(role Role) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Identity is the acting user, passed explicitly into every gated
// operation. The zero value is an unauthenticated caller.
type Identity struct {
	Name string
	Role Role
}

// Anonymous reports whether the identity is unauthenticated.
func (i Identity) Anonymous() bool {
	return i.Name == "" || i.Role == ""
}

// IsAuthorOf reports whether the identity owns the article.
func (i Identity) IsAuthorOf(a Article) bool {
	return !i.Anonymous() && i.Name == a.Author
}

// CanAuthor reports whether the identity may create, edit and submit
// articles of its own.
func (i Identity) CanAuthor() bool {
	return i.Role == RoleEditor || i.Role == RoleChiefEditor
}

// CanReview reports whether the identity may accept or reject pending
// articles.
func (i Identity) CanReview() bool {
	return i.Role == RoleChiefEditor
}
