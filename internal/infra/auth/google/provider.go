// Package google implements the Google identity provider: authorization code exchange for web
// clients and ID token verification for native clients.
package google

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"authcore/config"
	"authcore/internal/domain/constants"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/domain/service"
	"authcore/internal/errors"

	"go.uber.org/fx"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

const (
	stateBytes      = 32
	defaultStateTTL = 10 * time.Minute
)

var defaultScopes = []string{"openid", "email", "profile"}

var validIssuers = map[string]struct{}{
	"accounts.google.com":         {},
	"https://accounts.google.com": {},
}

// tokenValidator matches idtoken.Validate so tests can replace the network call
type tokenValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// codeExchanger matches (*oauth2.Config).Exchange
type codeExchanger func(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error)

type provider struct {
	oauth    *oauth2.Config
	states   service.OAuthStateStore
	stateTTL time.Duration
	validate tokenValidator
	exchange codeExchanger
	logger   *slog.Logger
}

// ProviderParams holds dependencies for the Google provider, injected by Fx
type ProviderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	States service.OAuthStateStore
}

// NewProvider creates the Google identity provider. Without client credentials every call fails
// with ErrOAuthFailed, so the routes stay mounted but unusable.
func NewProvider(params ProviderParams) service.IdentityProvider {
	googleCfg := params.Config.GoogleOAuth
	if googleCfg == nil {
		googleCfg = &config.GoogleOAuthConfig{}
	}

	scopes := googleCfg.Scopes
	if len(scopes) == 0 {
		scopes = defaultScopes
	}

	oauthCfg := &oauth2.Config{
		ClientID:     googleCfg.ClientID,
		ClientSecret: googleCfg.ClientSecret,
		RedirectURL:  googleCfg.RedirectURI,
		Scopes:       scopes,
		Endpoint:     googleoauth.Endpoint,
	}

	stateTTL := googleCfg.StateTTL
	if stateTTL <= 0 {
		stateTTL = defaultStateTTL
	}

	return &provider{
		oauth:    oauthCfg,
		states:   params.States,
		stateTTL: stateTTL,
		validate: idtoken.Validate,
		exchange: oauthCfg.Exchange,
		logger:   params.Logger,
	}
}

func (p *provider) Name() string {
	return constants.IdentityProviderGoogle
}

func (p *provider) enabled() bool {
	return p.oauth.ClientID != ""
}

// AuthorizationURL builds the consent URL with a fresh single-use state
func (p *provider) AuthorizationURL(ctx context.Context) (string, string, error) {
	buf := make([]byte, stateBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", errors.Wrap(err, "failed to generate oauth state")
	}
	state := hex.EncodeToString(buf)

	if err := p.states.Save(ctx, state, p.stateTTL); err != nil {
		return "", "", errors.Wrap(err, "failed to store oauth state")
	}

	return p.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline), state, nil
}

func (p *provider) ValidateState(ctx context.Context, state string) (bool, error) {
	if state == "" {
		return false, nil
	}

	ok, err := p.states.Consume(ctx, state)
	if err != nil {
		return false, errors.Wrap(err, "failed to consume oauth state")
	}

	return ok, nil
}

// ExchangeAuthCode trades the code for tokens and verifies the ID token that comes with them
func (p *provider) ExchangeAuthCode(ctx context.Context, code string) (*service.ExternalProfile, error) {
	if !p.enabled() {
		return nil, domainerrors.ErrOAuthFailed.WrapMessage("google sign-in is not configured")
	}

	token, err := p.exchange(ctx, code)
	if err != nil {
		p.logger.WarnContext(ctx, "Google code exchange failed", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthFailed.WrapMessage("failed to exchange authorization code")
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, domainerrors.ErrOAuthFailed.WrapMessage("token response carries no id_token")
	}

	return p.VerifyIDToken(ctx, rawIDToken)
}

// VerifyIDToken checks signature, audience, issuer and expiry, then extracts the profile
func (p *provider) VerifyIDToken(ctx context.Context, idToken string) (*service.ExternalProfile, error) {
	if !p.enabled() {
		return nil, domainerrors.ErrOAuthFailed.WrapMessage("google sign-in is not configured")
	}

	payload, err := p.validate(ctx, idToken, p.oauth.ClientID)
	if err != nil {
		p.logger.WarnContext(ctx, "Google ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthFailed.WrapMessage("invalid ID token")
	}

	if _, ok := validIssuers[payload.Issuer]; !ok {
		return nil, domainerrors.ErrOAuthFailed.WrapMessage("invalid issuer: " + payload.Issuer)
	}

	profile, err := profileFromPayload(payload)
	if err != nil {
		return nil, err
	}

	p.logger.InfoContext(ctx, "Google ID token verified",
		slog.String("externalID", profile.ExternalID),
		slog.String("email", profile.Email))

	return profile, nil
}

func profileFromPayload(payload *idtoken.Payload) (*service.ExternalProfile, error) {
	if payload.Subject == "" {
		return nil, domainerrors.ErrOAuthFailed.WrapMessage("ID token has no subject")
	}

	email := strings.TrimSpace(stringClaim(payload.Claims, "email"))
	if email == "" {
		return nil, errors.WithStack(domainerrors.ErrOAuthEmailMissing)
	}

	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return nil, domainerrors.ErrOAuthFailed.WrapMessage("email not verified by Google")
	}

	return &service.ExternalProfile{
		Provider:    constants.IdentityProviderGoogle,
		ExternalID:  payload.Subject,
		Email:       email,
		DisplayName: stringClaim(payload.Claims, "name"),
		AvatarURL:   stringClaim(payload.Claims, "picture"),
	}, nil
}

func stringClaim(claims map[string]any, key string) string {
	value, _ := claims[key].(string)

	return value
}
