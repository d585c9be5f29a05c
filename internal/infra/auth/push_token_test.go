package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tripbook/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

const testAudience = "http://worker.local/push"

func TestPushTokenSigner_SignAndVerify(t *testing.T) {
	signer := NewPushTokenSigner("local-push-secret")

	token, err := signer.Sign(testAudience)
	require.NoError(t, err)

	assert.NoError(t, signer.Verify(token, testAudience))
	assert.Error(t, signer.Verify(token, "http://other/push"))
	assert.Error(t, NewPushTokenSigner("another-secret").Verify(token, testAudience))
}

func TestPushTokenSigner_Expired(t *testing.T) {
	signer := NewPushTokenSigner("local-push-secret")
	signer.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := signer.Sign(testAudience)
	require.NoError(t, err)

	signer.now = time.Now
	assert.Error(t, signer.Verify(token, testAudience))
}

func TestNewPushTokenSigner_EmptySecret(t *testing.T) {
	assert.Nil(t, NewPushTokenSigner(""))
}

func TestLocalPushVerifier(t *testing.T) {
	signer := NewPushTokenSigner("local-push-secret")
	verifier := &localPushVerifier{signer: signer}
	token, err := signer.Sign(testAudience)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, testAudience, nil)
	assert.Error(t, verifier.VerifyPush(req))

	req.Header.Set("Authorization", "Bearer "+token)
	assert.NoError(t, verifier.VerifyPush(req))

	req.Header.Set("Authorization", "Token "+token)
	assert.Error(t, verifier.VerifyPush(req))
}

func TestGooglePushVerifier(t *testing.T) {
	tests := []struct {
		name    string
		payload *idtoken.Payload
		err     error
		wantErr bool
	}{
		{
			name:    "valid",
			payload: &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email": "push@proj.iam.gserviceaccount.com", "email_verified": true}},
		},
		{
			name:    "wrong issuer",
			payload: &idtoken.Payload{Issuer: "evil.example.com"},
			wantErr: true,
		},
		{
			name:    "wrong service account",
			payload: &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email": "other@proj.iam.gserviceaccount.com"}},
			wantErr: true,
		},
		{
			name:    "validation failure",
			err:     errors.New("bad signature"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &googlePushVerifier{
				serviceAccount: "push@proj.iam.gserviceaccount.com",
				validate: func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
					assert.Equal(t, "oidc-token", token)
					assert.Equal(t, testAudience, audience)

					return tt.payload, tt.err
				},
			}
			req := httptest.NewRequest(http.MethodPost, testAudience, nil)
			req.Header.Set("Authorization", "Bearer oidc-token")

			err := verifier.VerifyPush(req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewPushVerifier_SelectsByProvider(t *testing.T) {
	cfg := &config.Config{
		PubSub: &config.PubSubConfig{Provider: "local", PushSecret: "s"},
		Worker: &config.WorkerConfig{},
	}
	assert.IsType(t, &localPushVerifier{}, NewPushVerifier(cfg, nil))

	cfg.PubSub = &config.PubSubConfig{Provider: "google"}
	cfg.Env.Env = "production"
	assert.IsType(t, &googlePushVerifier{}, NewPushVerifier(cfg, nil))

	cfg.PubSub = nil
	assert.IsType(t, noopVerifier{}, NewPushVerifier(cfg, nil))
}
