package service

// Outcome reports how a successful mutation should be answered.  Some
// operations complete in place; others send the guest to a follow-up view.
// Modelling the redirect as data keeps the orchestrators free of HTTP
// concerns.
type Outcome struct {
	RedirectTo string // empty when the caller stays on the current view
}

// Redirects reports whether the caller should navigate to RedirectTo.
func (o Outcome) Redirects() bool { return o.RedirectTo != "" }
