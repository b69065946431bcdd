package auth

const (
	MsgLoggedIn = "Logged in successfully."
	TokenType   = "Bearer"
)
