package user

// User is an admin console account. Password holds a bcrypt hash and never
// leaves the process.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
