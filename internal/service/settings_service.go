package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/printhaus/shopapi/internal/domain"
	"github.com/printhaus/shopapi/internal/repository"
	"github.com/printhaus/shopapi/internal/theme"
	"github.com/printhaus/shopapi/pkg/errors"
)

// PublicSettings is the unauthenticated storefront view of the shop settings:
// branding and theme only, secret keys stripped.
type PublicSettings struct {
	ShopName             string       `json:"shopName"`
	ShopLogo             string       `json:"shopLogo,omitempty"`
	FooterText           string       `json:"footerText"`
	Theme                theme.Config `json:"theme"`
	StripePublishableKey string       `json:"stripePublishableKey,omitempty"`
}

// UpdateSettingsInput carries the admin branding/design form. Nil fields are
// left unchanged; the settings record is a last-writer-wins singleton.
type UpdateSettingsInput struct {
	ShopName             *string       `json:"shopName"`
	FooterText           *string       `json:"footerText"`
	StripePublishableKey *string       `json:"stripePublishableKey"`
	StripeSecretKey      *string       `json:"stripeSecretKey"`
	HeaderColor          *string       `json:"headerColor"`
	ButtonColor          *string       `json:"buttonColor"`
	Theme                *theme.Config `json:"theme"`
	Logo                 *string       `json:"logo"`
	RemoveLogo           bool          `json:"removeLogo"`
}

type settingsService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewSettingsService creates a new settings service
func NewSettingsService(repos *repository.Repositories, logger *zap.Logger) *settingsService {
	return &settingsService{
		repos:  repos,
		logger: logger,
	}
}

// Get returns the full settings record for the admin dashboard.
func (s *settingsService) Get(ctx context.Context) (*domain.Settings, error) {
	return s.repos.Settings.Get(ctx)
}

// GetPublic returns the storefront view of the settings.
func (s *settingsService) GetPublic(ctx context.Context) (*PublicSettings, error) {
	settings, err := s.repos.Settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &PublicSettings{
		ShopName:             settings.ShopName,
		ShopLogo:             settings.ShopLogo,
		FooterText:           settings.FooterText,
		Theme:                settings.Theme,
		StripePublishableKey: settings.StripePublishableKey,
	}, nil
}

// Update applies the submitted fields over the stored record. Supplying a
// full theme document replaces the theme wholesale; the legacy flat
// headerColor/buttonColor fields touch only their own slots and stop
// mattering once a Colors namespace has been saved.
func (s *settingsService) Update(ctx context.Context, input UpdateSettingsInput) (*domain.Settings, error) {
	settings, err := s.repos.Settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	if input.ShopName != nil {
		settings.ShopName = *input.ShopName
	}
	if input.FooterText != nil {
		settings.FooterText = *input.FooterText
	}
	if input.StripePublishableKey != nil {
		settings.StripePublishableKey = *input.StripePublishableKey
	}
	if input.StripeSecretKey != nil {
		settings.StripeSecretKey = *input.StripeSecretKey
	}
	if input.Theme != nil {
		settings.Theme = *input.Theme
	}
	if input.HeaderColor != nil {
		settings.Theme.HeaderColor = *input.HeaderColor
	}
	if input.ButtonColor != nil {
		settings.Theme.ButtonColor = *input.ButtonColor
	}
	if input.RemoveLogo {
		settings.ShopLogo = ""
	} else if input.Logo != nil {
		settings.ShopLogo = *input.Logo
	}

	if err := s.repos.Settings.Save(ctx, settings); err != nil {
		return nil, err
	}
	s.logger.Info("Settings updated", zap.String("shop_name", settings.ShopName))
	return settings, nil
}

// ApplyPreset replaces the stored theme with a named preset resolved over the
// defaults, keeping branding fields untouched.
func (s *settingsService) ApplyPreset(ctx context.Context, name string) (*domain.Settings, error) {
	preset, ok := theme.Preset(name)
	if !ok {
		return nil, &errors.ErrNotFound{Resource: "preset", ID: name}
	}

	settings, err := s.repos.Settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	settings.Theme = preset

	if err := s.repos.Settings.Save(ctx, settings); err != nil {
		return nil, err
	}
	s.logger.Info("Theme preset applied", zap.String("preset", name))
	return settings, nil
}

// ThemeCSS renders the stored theme into the storefront stylesheet.
func (s *settingsService) ThemeCSS(ctx context.Context) (string, error) {
	settings, err := s.repos.Settings.Get(ctx)
	if err != nil {
		return "", err
	}
	return theme.Render(settings.Theme), nil
}
