package hypothesis

import (
	"fmt"
	"strings"
)

// DefaultAuthority is the authority used for first-party hypothes.is accounts.
const DefaultAuthority = "hypothes.is"

// AccountID is the canonical user identifier used throughout the Hypothesis
// API, in the format "acct:<username>@<authority>". It is a plain string
// value; equality is string equality.
type AccountID string

// MakeAccountID formats a username and authority into an AccountID.
func MakeAccountID(username, authority string) AccountID {
	return AccountID(fmt.Sprintf("acct:%s@%s", username, authority))
}

// Username returns the username portion of the account ID, or the whole
// string if it is not in the expected acct:<name>@<authority> form.
func (a AccountID) Username() string {
	s := strings.TrimPrefix(string(a), "acct:")
	if i := strings.LastIndex(s, "@"); i >= 0 {
		return s[:i]
	}
	return s
}

// Authority returns the authority portion of the account ID, or "" if the
// value is not in the expected form.
func (a AccountID) Authority() string {
	s := strings.TrimPrefix(string(a), "acct:")
	if i := strings.LastIndex(s, "@"); i >= 0 {
		return s[i+1:]
	}
	return ""
}

func (a AccountID) String() string {
	return string(a)
}
