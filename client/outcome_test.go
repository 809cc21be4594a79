package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-folio/client"
)

func TestZeroOutcomeIsNotSuccess(t *testing.T) {
	// the zero value comes back alongside a non-nil error; dropping that
	// error must not read as a successful call
	assert.False(t, client.Outcome{}.Ok())
	assert.NotEqual(t, client.OutcomeSuccess, client.Outcome{}.Kind)
}

func TestOutcomeMessagesAreDistinct(t *testing.T) {
	kinds := []client.OutcomeKind{
		client.OutcomeSuccess,
		client.OutcomeMalformedBody,
		client.OutcomeEmptyContent,
		client.OutcomeServerError,
		client.OutcomeTimeout,
		client.OutcomeConnectionFailure,
	}
	seen := map[string]bool{}
	for _, k := range kinds {
		msg := client.Outcome{Kind: k}.Message()
		assert.NotEmpty(t, msg)
		assert.False(t, seen[msg], "message %q reused", msg)
		seen[msg] = true
	}
}
