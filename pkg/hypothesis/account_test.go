package hypothesis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeAccountID(t *testing.T) {
	id := MakeAccountID("alice", "hypothes.is")
	assert.Equal(t, AccountID("acct:alice@hypothes.is"), id)
	assert.Equal(t, "alice", id.Username())
	assert.Equal(t, "hypothes.is", id.Authority())
}

func TestAccountIDMalformed(t *testing.T) {
	id := AccountID("alice")
	assert.Equal(t, "alice", id.Username())
	assert.Equal(t, "", id.Authority())
}
