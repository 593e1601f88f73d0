package session

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
)

const userinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// OAuthFlow wraps the provider round-trip: building the authorize URL,
// exchanging the callback code, and fetching the signed-in identity.
type OAuthFlow struct {
	conf *oauth2.Config
}

func NewOAuthFlow(conf *oauth2.Config) *OAuthFlow { return &OAuthFlow{conf: conf} }

// AuthURL returns the provider authorize URL.  The state parameter carries
// the post-login redirect target through the provider round-trip.
func (f *OAuthFlow) AuthURL(state string) string {
	return f.conf.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Identity is the subset of provider userinfo this service consumes.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Exchange trades the callback code for an access token and fetches the
// userinfo document.  An identity without an email is rejected since the
// email is the key for the guest record.
func (f *OAuthFlow) Exchange(ctx context.Context, code string) (Identity, error) {
	tok, err := f.conf.Exchange(ctx, code)
	if err != nil {
		return Identity{}, fmt.Errorf("code exchange: %w", err)
	}

	resp, err := f.conf.Client(ctx, tok).Get(userinfoURL)
	if err != nil {
		return Identity{}, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Identity{}, fmt.Errorf("fetch userinfo: status %d: %s", resp.StatusCode, body)
	}

	var id Identity
	if err := json.NewDecoder(resp.Body).Decode(&id); err != nil {
		return Identity{}, fmt.Errorf("decode userinfo: %w", err)
	}
	if strings.TrimSpace(id.Email) == "" {
		return Identity{}, fmt.Errorf("userinfo has no email")
	}
	return id, nil
}

// SafeRedirect keeps provider state and redirect_to parameters on-site.
// Anything that is not a local absolute path falls back to the default.
func SafeRedirect(target, def string) string {
	if strings.HasPrefix(target, "/") && !strings.HasPrefix(target, "//") {
		return target
	}
	return def
}
