package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"tripbook/config"
	"tripbook/internal/domain/constants"
	"tripbook/internal/errors"

	"google.golang.org/api/idtoken"
)

// PushVerifier authenticates an incoming push request.
type PushVerifier interface {
	VerifyPush(req *http.Request) error
}

// NewPushVerifier picks the verifier matching the configured provider.
// Google push requests carry an OIDC token; the local provider signs with the shared secret.
func NewPushVerifier(cfg *config.Config, logger *slog.Logger) PushVerifier {
	pubsub := cfg.PubSub
	switch {
	case pubsub == nil:
		return noopVerifier{}
	case pubsub.Provider == constants.PubSubProviderGoogle && cfg.Env.Env != constants.EnvDevelop:
		verifier := &googlePushVerifier{}
		if cfg.Worker != nil {
			verifier.serviceAccount = cfg.Worker.PushServiceAccount
		}

		return verifier
	case pubsub.Provider == constants.PubSubProviderLocal && pubsub.PushSecret != "":
		return &localPushVerifier{signer: NewPushTokenSigner(pubsub.PushSecret)}
	default:
		logger.Warn("Push requests are not authenticated", slog.String("provider", pubsub.Provider))

		return noopVerifier{}
	}
}

type noopVerifier struct{}

func (noopVerifier) VerifyPush(*http.Request) error { return nil }

type localPushVerifier struct {
	signer *PushTokenSigner
}

func (v *localPushVerifier) VerifyPush(req *http.Request) error {
	token, err := bearerToken(req)
	if err != nil {
		return err
	}

	return v.signer.Verify(token, PushAudience(req))
}

type googlePushVerifier struct {
	serviceAccount string
	validate       func(ctx context.Context, token, audience string) (*idtoken.Payload, error)
}

// VerifyPush validates the Google-signed OIDC token attached by the push subscription.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (v *googlePushVerifier) VerifyPush(req *http.Request) error {
	token, err := bearerToken(req)
	if err != nil {
		return err
	}

	validate := v.validate
	if validate == nil {
		validate = idtoken.Validate
	}

	payload, err := validate(req.Context(), token, PushAudience(req))
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	if v.serviceAccount != "" {
		if email, _ := payload.Claims["email"].(string); email != v.serviceAccount {
			return errors.Errorf("unexpected push service account: %s", email)
		}
	}

	return nil
}

// PushAudience is the URL of the endpoint the request was sent to.
func PushAudience(req *http.Request) string {
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}

	return fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
}

func bearerToken(req *http.Request) (string, error) {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", errors.New("invalid authorization header format")
	}

	return strings.TrimPrefix(authHeader, bearerPrefix), nil
}
