package domain

// User is an account allowed to manage projects. PasswordHash is never
// serialised.
type User struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password"`
}
