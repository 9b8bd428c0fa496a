package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestCommitOutcomeUnknown(t *testing.T) {
	ambiguous := mongo.CommandError{
		Code:    11602,
		Message: "operation was interrupted",
		Labels:  []string{"UnknownTransactionCommitResult"},
	}
	assert.True(t, commitOutcomeUnknown(ambiguous))
	assert.True(t, commitOutcomeUnknown(fmt.Errorf("commit transaction: %w", ambiguous)))
}

func TestCommitOutcomeKnownErrorsAllowFallback(t *testing.T) {
	standalone := mongo.CommandError{
		Code:    20,
		Message: "Transaction numbers are only allowed on a replica set member or mongos",
	}
	assert.False(t, commitOutcomeUnknown(standalone))

	rejected := mongo.CommandError{Code: 8000, Message: "command not permitted"}
	assert.False(t, commitOutcomeUnknown(rejected))

	assert.False(t, commitOutcomeUnknown(errors.New("session pool closed")))
	assert.False(t, commitOutcomeUnknown(nil))
}
