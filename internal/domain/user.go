package domain

// User is an account in the directory. Password holds the bcrypt hash and is
// never serialized to clients.
type User struct {
	ID        int64  `db:"id" json:"id"`
	FirstName string `db:"first_name" json:"firstName"`
	LastName  string `db:"last_name" json:"lastName"`
	Email     string `db:"email" json:"email"`
	Password  string `db:"password" json:"-"`
	IsAdmin   bool   `db:"is_admin" json:"isAdmin"`
}

// UserView is the client-facing projection of a User.
type UserView struct {
	ID        int64  `db:"id" json:"id"`
	FirstName string `db:"first_name" json:"firstName"`
	LastName  string `db:"last_name" json:"lastName"`
	Email     string `db:"email" json:"email"`
	IsAdmin   bool   `db:"is_admin" json:"isAdmin"`
}

// View strips the password hash.
func (u *User) View() *UserView {
	return &UserView{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
	}
}

// UserPatch is a sparse update: only non-nil fields are written. Password, if
// present, is expected to already be hashed when it reaches the repository.
type UserPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
	IsAdmin   *bool
}

// IsEmpty reports whether the patch carries no recognized field.
func (p UserPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil &&
		p.Password == nil && p.IsAdmin == nil
}
