package models

// Session is the client-side session pointer: the token issued by the server
// and the user it was issued for.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
