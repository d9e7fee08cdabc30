package api

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/Sabirdaar/multi-lang-e-commerce/client/internal/types"
)

// Login authenticates against the gateway's auth route.
func Login(ctx context.Context, rc *resty.Client, creds types.Credentials) (*types.Session, error) {
	var out types.Session
	resp, err := rc.R().
		SetContext(ctx).
		SetBody(creds).
		SetResult(&out).
		Post("/auth/login")
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if err := checkStatus(resp, "login"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new account.
func Register(ctx context.Context, rc *resty.Client, req types.RegisterRequest) (*types.Session, error) {
	var out types.Session
	resp, err := rc.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/auth/register")
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if err := checkStatus(resp, "register"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalidates the current session server-side.
func Logout(ctx context.Context, rc *resty.Client) error {
	resp, err := rc.R().
		SetContext(ctx).
		Post("/auth/logout")
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return checkStatus(resp, "logout")
}

// GetProfile fetches the current user's profile.
func GetProfile(ctx context.Context, rc *resty.Client) (*types.User, error) {
	var out types.User
	resp, err := rc.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/auth/profile")
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if err := checkStatus(resp, "get profile"); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile mutates the current user's profile.
func UpdateProfile(ctx context.Context, rc *resty.Client, req types.UpdateProfileRequest) (*types.User, error) {
	var out types.User
	resp, err := rc.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Put("/auth/profile")
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if err := checkStatus(resp, "update profile"); err != nil {
		return nil, err
	}
	return &out, nil
}
