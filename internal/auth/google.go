package auth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// GoogleProfile is the subset of the Google identity we care about.
type GoogleProfile struct {
	Email     string
	Name      string
	AvatarURL string
}

// GoogleVerifier resolves an opaque token from the Google sign-in widget into
// a profile. The frontend may send either an access token or an ID token, so
// verification is tried both ways in order.
type GoogleVerifier interface {
	Verify(ctx context.Context, token string) (*GoogleProfile, error)
}

type googleVerifier struct{}

func NewGoogleVerifier() GoogleVerifier {
	return &googleVerifier{}
}

func (v *googleVerifier) Verify(ctx context.Context, token string) (*GoogleProfile, error) {
	// Attempt 1: treat it as an OAuth access token and ask the userinfo
	// endpoint who it belongs to.
	profile, accessErr := verifyAccessToken(ctx, token)
	if accessErr == nil {
		return profile, nil
	}

	// Attempt 2: treat it as an ID token and let tokeninfo validate it.
	profile, idErr := verifyIDToken(ctx, token)
	if idErr == nil {
		return profile, nil
	}

	return nil, fmt.Errorf("google token verification failed: %v", idErr)
}

func verifyAccessToken(ctx context.Context, token string) (*GoogleProfile, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	svc, err := oauth2api.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, err
	}
	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	if info.Email == "" {
		return nil, fmt.Errorf("userinfo response has no email")
	}
	return &GoogleProfile{Email: info.Email, Name: info.Name, AvatarURL: info.Picture}, nil
}

func verifyIDToken(ctx context.Context, token string) (*GoogleProfile, error) {
	svc, err := oauth2api.NewService(ctx, option.WithoutAuthentication())
	if err != nil {
		return nil, err
	}
	info, err := svc.Tokeninfo().IdToken(token).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	if info.Email == "" {
		return nil, fmt.Errorf("tokeninfo response has no email")
	}
	return &GoogleProfile{Email: info.Email}, nil
}
