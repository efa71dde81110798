package entities

type Role string

const (
	RoleAdmin       Role = "Admin"
	RoleFieldWorker Role = "Field Worker"
	RoleViewer      Role = "Viewer"
)

// CanWrite reports whether the role may mutate the domain tables.
func (r Role) CanWrite() bool { return r == RoleAdmin || r == RoleFieldWorker }

type User struct {
	Username string `json:"username"`
	Password string `json:"password"` // stored plaintext in users.csv
	Role     Role   `json:"role"`
}

// DefaultUsers seed users.csv on first run.
var DefaultUsers = []User{
	{Username: "admin", Password: "admin123", Role: RoleAdmin},
	{Username: "worker", Password: "worker123", Role: RoleFieldWorker},
}

// Session is established by a successful login and lives until logout
// or process exit; there is no expiry.
type Session struct {
	Token    string `json:"-"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
