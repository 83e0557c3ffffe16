package pagination_test

import (
	"testing"
	"time"

	"github.com/stackscout/stackscout/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	postedDate := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 5, 17, 12, 34, 56, 789000000, time.UTC)

	token := pagination.EncodeToken(postedDate, createdAt)
	gotPosted, gotCreated, err := pagination.DecodeToken(token)

	require.NoError(t, err)
	assert.True(t, postedDate.Equal(gotPosted))
	assert.True(t, createdAt.Equal(gotCreated))
}

func TestDecodeToken_InvalidBase64(t *testing.T) {
	_, _, err := pagination.DecodeToken("not-base64!!!")
	assert.Error(t, err)
}

func TestDecodeToken_MissingSeparator(t *testing.T) {
	token := "MjAyNC0wNS0xN1QwMDowMDowMFo=" // base64 of a single timestamp
	_, _, err := pagination.DecodeToken(token)
	assert.Error(t, err)
}
