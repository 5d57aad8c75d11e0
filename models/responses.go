package models

// TokenResponse is the sign-in success body. The client stores the token and
// presents it as "Authorization: Bearer <access_token>" on protected routes.
type TokenResponse struct {
	// AccessToken is the compact JWS form of the issued token.
	AccessToken string `json:"access_token"`
}

// ErrorResponse is the uniform JSON error body returned on every failed
// request. The message is the public description of the failure; internal
// detail stays in the server logs.
type ErrorResponse struct {
	Error string `json:"error"`
}
