package theme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLegacyHeaderColorAppliesWhenColorsAbsent(t *testing.T) {
	cfg := Config{HeaderColor: "#111111", ButtonColor: "#222222"}

	r := Resolve(cfg)

	assert.Equal(t, "#111111", r.Colors.Primary)
	assert.Equal(t, "#222222", r.Colors.Secondary)
	// Everything else keeps defaults
	assert.Equal(t, "#F7F8F9", r.Colors.Background)
	assert.Equal(t, "16px", r.Fonts.BaseSize)
}

func TestResolveLegacyIgnoredOnceColorsPresent(t *testing.T) {
	cfg := Config{
		HeaderColor: "#111111",
		Colors:      Colors{Primary: "#ABCDEF"},
	}

	r := Resolve(cfg)

	assert.Equal(t, "#ABCDEF", r.Colors.Primary, "namespaced colors take precedence over legacy fields")
	// Legacy secondary does not sneak in either: precedence, not a merge
	assert.Equal(t, "#7C3AED", r.Colors.Secondary)
}

func TestResolvePartialNamespaceKeepsDefaultsPerField(t *testing.T) {
	cfg := Config{
		Colors: Colors{Primary: "#000000"},
		Style:  Style{ShadowIntensity: "strong"},
	}

	r := Resolve(cfg)

	assert.Equal(t, "#000000", r.Colors.Primary)
	assert.Equal(t, "#FFFFFF", r.Colors.CardBackground)
	assert.Equal(t, "strong", r.Style.ShadowIntensity)
	assert.Equal(t, "12px", r.Style.BorderRadius)
}

func TestResolveStickyTriState(t *testing.T) {
	r := Resolve(Config{})
	require.NotNil(t, r.Header.Sticky)
	assert.True(t, *r.Header.Sticky, "absent sticky keeps the default")

	off := false
	r = Resolve(Config{Header: Header{Sticky: &off}})
	require.NotNil(t, r.Header.Sticky)
	assert.False(t, *r.Header.Sticky, "explicit false must not fall back to the default")
}

func TestPresetDarkMergesOverDefaults(t *testing.T) {
	dark, ok := Preset("dark")
	require.True(t, ok)

	assert.Equal(t, "#A78BFA", dark.Colors.Primary)
	assert.Equal(t, "#1F2937", dark.Colors.Background)
	// The dark preset does not specify fonts or layout; those must equal the
	// default preset's values, never empty.
	def := Defaults()
	assert.Equal(t, def.Fonts, dark.Fonts)
	assert.Equal(t, def.Layout, dark.Layout)
	assert.Equal(t, def.Spacing, dark.Spacing)
	// Colors the dark preset leaves out keep their defaults too
	assert.Equal(t, def.Colors.BorderColor, dark.Colors.BorderColor)
	assert.Equal(t, def.Colors.InStock, dark.Colors.InStock)
}

func TestPresetDefaultEqualsDefaults(t *testing.T) {
	p, ok := Preset("default")
	require.True(t, ok)
	assert.Equal(t, Defaults(), p)
}

func TestPresetUnknownName(t *testing.T) {
	_, ok := Preset("neon")
	assert.False(t, ok)
}

func TestPresetNamesAllResolve(t *testing.T) {
	for _, name := range PresetNames() {
		_, ok := Preset(name)
		assert.True(t, ok, "preset %q must resolve", name)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	cfg := Config{
		Colors: Colors{Primary: "#123456"},
		Style:  Style{CardHoverEffect: "both"},
	}

	first := Render(cfg)
	second := Render(cfg)

	assert.Equal(t, first, second, "same config must yield byte-identical CSS")
}

func TestRenderEmitsResolvedVariables(t *testing.T) {
	css := Render(Config{Colors: Colors{Primary: "#FF0000"}})

	assert.Contains(t, css, "--accent-primary: #FF0000;")
	assert.Contains(t, css, "--stock-in: #10B981;")
	assert.Contains(t, css, "--stock-out: #EF4444;")
	assert.Contains(t, css, "--card-shadow: 0 4px 12px rgba(0, 0, 0, 0.12);")
}

func TestRenderShadowTable(t *testing.T) {
	cases := map[string]string{
		"none":   "--card-shadow: none;",
		"light":  "--card-shadow: 0 1px 3px rgba(0, 0, 0, 0.08);",
		"medium": "--card-shadow: 0 4px 12px rgba(0, 0, 0, 0.12);",
		"strong": "--card-shadow: 0 12px 32px rgba(0, 0, 0, 0.22);",
	}
	for intensity, want := range cases {
		css := Render(Config{Style: Style{ShadowIntensity: intensity}})
		assert.Contains(t, css, want, "intensity %q", intensity)
	}

	// Unknown intensity falls back to medium rather than emitting garbage
	css := Render(Config{Style: Style{ShadowIntensity: "dramatic"}})
	assert.Contains(t, css, "--card-shadow: 0 4px 12px rgba(0, 0, 0, 0.12);")
}

func TestRenderHoverEffects(t *testing.T) {
	lift := Render(Config{Style: Style{CardHoverEffect: "lift"}})
	assert.Contains(t, lift, ".product-card:hover { transform: translateY(-4px); }")
	assert.NotContains(t, lift, "scale(1.05)")

	scale := Render(Config{Style: Style{CardHoverEffect: "scale"}})
	assert.Contains(t, scale, ".product-card:hover img { transform: scale(1.05); }")
	assert.NotContains(t, scale, "translateY(-4px)")

	both := Render(Config{Style: Style{CardHoverEffect: "both"}})
	assert.Contains(t, both, "translateY(-4px)")
	assert.Contains(t, both, "scale(1.05)")

	none := Render(Config{Style: Style{CardHoverEffect: "none"}})
	assert.NotContains(t, none, "translateY(-4px)")
	assert.NotContains(t, none, "scale(1.05)")
}

func TestRenderHeaderPositions(t *testing.T) {
	center := Render(Config{Header: Header{LogoPosition: "center"}})
	assert.Contains(t, center, "header .logo { position: absolute; left: 50%; transform: translateX(-50%); }")

	right := Render(Config{Header: Header{LogoPosition: "right"}})
	assert.Contains(t, right, "justify-content: flex-end")

	left := Render(Config{Header: Header{LogoPosition: "left"}})
	assert.Contains(t, left, "justify-content: flex-start")
}

func TestRenderStickyHeader(t *testing.T) {
	on := Render(Config{})
	assert.Contains(t, on, "position: sticky; top: 0;")

	off := false
	css := Render(Config{Header: Header{Sticky: &off}})
	assert.False(t, strings.Contains(css, "position: sticky"))
}

func TestRenderMalformedValuesPassThrough(t *testing.T) {
	css := Render(Config{Colors: Colors{Primary: "not-a-color"}})
	assert.Contains(t, css, "--accent-primary: not-a-color;")
}
