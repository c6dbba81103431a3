package postgres

import (
	"testing"
	"time"

	"authcore/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOtpChallengeMapping_PendingSignupColumns(t *testing.T) {
	now := time.Now().UTC()
	challenge := &entity.OtpChallenge{
		ID:       uuid.New(),
		Email:    "jane@example.com",
		Purpose:  entity.OtpPurposeSignup,
		CodeHash: "hash",
		PendingSignup: &entity.PendingSignup{
			Username:     "jane",
			FullName:     "Jane Doe",
			PasswordHash: "pw-hash",
		},
		CreatedAt: now,
		ExpiresAt: now.Add(10 * time.Minute),
	}

	challengeM := fromOtpChallengeDomain(challenge)
	require.NotNil(t, challengeM.PendingUsername)
	require.NotNil(t, challengeM.PendingFullName)
	require.NotNil(t, challengeM.PendingPasswordHash)

	assert.Equal(t, challenge, toOtpChallengeDomain(challengeM))
}

func TestOtpChallengeMapping_NoPendingSignup(t *testing.T) {
	challenge := &entity.OtpChallenge{
		Email:   "jane@example.com",
		Purpose: entity.OtpPurposeLogin,
	}

	challengeM := fromOtpChallengeDomain(challenge)

	assert.Nil(t, challengeM.PendingUsername)
	assert.Nil(t, challengeM.PendingFullName)
	assert.Nil(t, challengeM.PendingPasswordHash)
	assert.Nil(t, toOtpChallengeDomain(challengeM).PendingSignup)
}
