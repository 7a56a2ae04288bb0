package domain

// User.Role is true for administrators.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  bool   `json:"role"`
}

type UserSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
