package model

// User represents an advisor account. The dashboard runs with a single demo
// user; there is no session or authentication model.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}
