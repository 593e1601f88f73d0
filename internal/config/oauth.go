package config

import (
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// OAuthConfig holds the credentials for the Google sign-in flow.  Guests
// authenticate exclusively through the provider; the service never stores
// passwords of its own.
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string // callback URL registered with the provider
}

// LoadOAuthConfig reads the Google OAuth credentials from the environment.
// All three values are required.
func LoadOAuthConfig() OAuthConfig {
	return OAuthConfig{
		ClientID:     must("GOOGLE_CLIENT_ID"),
		ClientSecret: must("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  must("OAUTH_REDIRECT_URL"),
	}
}

// Google builds the oauth2 configuration used to trigger sign-in and to
// exchange the authorization code on callback.
func (o OAuthConfig) Google() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     o.ClientID,
		ClientSecret: o.ClientSecret,
		RedirectURL:  o.RedirectURL,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}
}
