package domain

// Session is the in-memory record of the signed-in visitor.
type Session struct {
	DisplayName string `json:"name"`
	Email       string `json:"email"`
}
