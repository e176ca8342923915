package models

// TokenPair is the access/refresh credential pair issued by the server.
// Both values are opaque to the client.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthResponse is the body of successful login/registration/refresh calls.
// Login and registration return the user alongside the tokens; refresh
// returns only the token pair.
type AuthResponse struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken,omitempty"`
	User         UserProfile `json:"user"`
}
