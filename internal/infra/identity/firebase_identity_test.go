package identity

import (
	"testing"
	"time"

	"tripbook/internal/domain/entity"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
)

func TestToIdentityAccount(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	record := &auth.UserRecord{
		UserInfo:     &auth.UserInfo{UID: "u1", Email: "asha@example.com", DisplayName: "Asha"},
		CustomClaims: map[string]any{"role": "agency"},
		Disabled:     true,
		UserMetadata: &auth.UserMetadata{CreationTimestamp: created.UnixMilli()},
	}

	account := toIdentityAccount(record)

	assert.Equal(t, "u1", account.UID)
	assert.Equal(t, "asha@example.com", account.Email)
	assert.Equal(t, entity.RoleAgency, account.Role)
	assert.True(t, account.Disabled)
	assert.True(t, account.CreatedAt.Equal(created))
}

func TestToIdentityAccount_DefaultsToCustomer(t *testing.T) {
	account := toIdentityAccount(&auth.UserRecord{UserInfo: &auth.UserInfo{UID: "u2"}})

	assert.Equal(t, entity.RoleCustomer, account.Role)
	assert.True(t, account.CreatedAt.IsZero())
}
