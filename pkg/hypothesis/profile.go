package hypothesis

// UserProfile is the profile of the authenticated user.
type UserProfile struct {
	Authority string `json:"authority"`

	// Features maps feature-flag names to their state for this user.
	Features map[string]bool `json:"features"`

	Preferences map[string]bool `json:"preferences"`

	// UserID is "acct:<username>@<authority>", or nil when the request
	// was not authenticated.
	UserID *AccountID `json:"userid"`
}
