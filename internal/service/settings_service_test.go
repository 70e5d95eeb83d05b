package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printhaus/shopapi/internal/theme"
)

func strPtr(s string) *string { return &s }

func TestUpdateLegacyHeaderColorRoundTrip(t *testing.T) {
	repos := newTestRepos()
	svc := NewSettingsService(repos, testLogger())

	_, err := svc.Update(context.Background(), UpdateSettingsInput{
		HeaderColor: strPtr("#111111"),
	})
	require.NoError(t, err)

	public, err := svc.GetPublic(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "#111111", public.Theme.HeaderColor)

	// While no Colors namespace exists, the legacy value drives the accent
	resolved := theme.Resolve(public.Theme)
	assert.Equal(t, "#111111", resolved.Colors.Primary)
}

func TestUpdateFullColorsEndsLegacyPrecedence(t *testing.T) {
	repos := newTestRepos()
	svc := NewSettingsService(repos, testLogger())

	_, err := svc.Update(context.Background(), UpdateSettingsInput{
		HeaderColor: strPtr("#111111"),
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), UpdateSettingsInput{
		Theme: &theme.Config{
			HeaderColor: "#111111",
			Colors:      theme.Colors{Primary: "#ABCDEF"},
		},
	})
	require.NoError(t, err)

	public, err := svc.GetPublic(context.Background())
	require.NoError(t, err)
	resolved := theme.Resolve(public.Theme)
	assert.Equal(t, "#ABCDEF", resolved.Colors.Primary,
		"once a colors namespace is saved the legacy field no longer takes precedence")
}

func TestUpdatePartialFieldsLeaveOthersAlone(t *testing.T) {
	repos := newTestRepos()
	svc := NewSettingsService(repos, testLogger())

	_, err := svc.Update(context.Background(), UpdateSettingsInput{
		ShopName: strPtr("Print Haus"),
	})
	require.NoError(t, err)

	settings, err := svc.Update(context.Background(), UpdateSettingsInput{
		FooterText: strPtr("All prints made to order."),
	})
	require.NoError(t, err)

	assert.Equal(t, "Print Haus", settings.ShopName)
	assert.Equal(t, "All prints made to order.", settings.FooterText)
}

func TestUpdateRemoveLogoWins(t *testing.T) {
	repos := newTestRepos()
	svc := NewSettingsService(repos, testLogger())

	_, err := svc.Update(context.Background(), UpdateSettingsInput{
		Logo: strPtr("https://img.example/logo.png"),
	})
	require.NoError(t, err)

	settings, err := svc.Update(context.Background(), UpdateSettingsInput{
		Logo:       strPtr("https://img.example/other.png"),
		RemoveLogo: true,
	})
	require.NoError(t, err)
	assert.Empty(t, settings.ShopLogo)
}

func TestGetPublicStripsSecretKey(t *testing.T) {
	repos := newTestRepos()
	svc := NewSettingsService(repos, testLogger())

	_, err := svc.Update(context.Background(), UpdateSettingsInput{
		StripePublishableKey: strPtr("pk_test_123"),
		StripeSecretKey:      strPtr("sk_test_456"),
	})
	require.NoError(t, err)

	public, err := svc.GetPublic(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pk_test_123", public.StripePublishableKey)

	// The secret key stays on the full record only
	settings, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sk_test_456", settings.StripeSecretKey)
}

func TestApplyPresetReplacesTheme(t *testing.T) {
	repos := newTestRepos()
	svc := NewSettingsService(repos, testLogger())

	_, err := svc.Update(context.Background(), UpdateSettingsInput{
		ShopName:    strPtr("Print Haus"),
		HeaderColor: strPtr("#111111"),
	})
	require.NoError(t, err)

	settings, err := svc.ApplyPreset(context.Background(), "dark")
	require.NoError(t, err)

	assert.Equal(t, "Print Haus", settings.ShopName, "branding survives a preset change")
	assert.Equal(t, "#A78BFA", settings.Theme.Colors.Primary)
	// Namespaces the preset leaves unspecified hold the defaults, not blanks
	assert.Equal(t, theme.Defaults().Fonts, settings.Theme.Fonts)

	_, err = svc.ApplyPreset(context.Background(), "vaporwave")
	assert.Error(t, err)
}

func TestThemeCSSRendersStoredTheme(t *testing.T) {
	repos := newTestRepos()
	svc := NewSettingsService(repos, testLogger())

	_, err := svc.Update(context.Background(), UpdateSettingsInput{
		Theme: &theme.Config{Colors: theme.Colors{Primary: "#FF0000"}},
	})
	require.NoError(t, err)

	css, err := svc.ThemeCSS(context.Background())
	require.NoError(t, err)
	assert.Contains(t, css, "--accent-primary: #FF0000;")

	again, err := svc.ThemeCSS(context.Background())
	require.NoError(t, err)
	assert.Equal(t, css, again, "repeated renders of the same theme are identical")
}
