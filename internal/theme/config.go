// Package theme translates the shop's declarative design configuration into
// a stylesheet. The configuration is a nested document with one namespace per
// visual concern; every field is optional and absent fields fall back to the
// default preset at render time, never to blank values.
package theme

// Colors is the color namespace. Each field, when present, overrides the
// corresponding visual role.
type Colors struct {
	Primary        string `bson:"primary,omitempty" json:"primary,omitempty"`
	Secondary      string `bson:"secondary,omitempty" json:"secondary,omitempty"`
	Background     string `bson:"background,omitempty" json:"background,omitempty"`
	CardBackground string `bson:"cardBackground,omitempty" json:"cardBackground,omitempty"`
	TextPrimary    string `bson:"textPrimary,omitempty" json:"textPrimary,omitempty"`
	TextSecondary  string `bson:"textSecondary,omitempty" json:"textSecondary,omitempty"`
	HeaderBg       string `bson:"headerBg,omitempty" json:"headerBg,omitempty"`
	FooterBg       string `bson:"footerBg,omitempty" json:"footerBg,omitempty"`
	ButtonBg       string `bson:"buttonBg,omitempty" json:"buttonBg,omitempty"`
	ButtonText     string `bson:"buttonText,omitempty" json:"buttonText,omitempty"`
	BorderColor    string `bson:"borderColor,omitempty" json:"borderColor,omitempty"`
	InStock        string `bson:"inStock,omitempty" json:"inStock,omitempty"`
	OutOfStock     string `bson:"outOfStock,omitempty" json:"outOfStock,omitempty"`
}

// IsZero reports whether the namespace is entirely absent. The legacy
// headerColor/buttonColor fallback applies only in that case.
func (c Colors) IsZero() bool {
	return c == Colors{}
}

// Fonts is the typography namespace.
type Fonts struct {
	Primary   string `bson:"primary,omitempty" json:"primary,omitempty"`
	Heading   string `bson:"heading,omitempty" json:"heading,omitempty"`
	BaseSize  string `bson:"baseSize,omitempty" json:"baseSize,omitempty"`
	H1Size    string `bson:"h1Size,omitempty" json:"h1Size,omitempty"`
	PriceSize string `bson:"priceSize,omitempty" json:"priceSize,omitempty"`
}

// Spacing is the spacing namespace.
type Spacing struct {
	ProductGap  string `bson:"productGap,omitempty" json:"productGap,omitempty"`
	CardPadding string `bson:"cardPadding,omitempty" json:"cardPadding,omitempty"`
}

// Layout is the page layout namespace.
type Layout struct {
	MaxWidth           string `bson:"maxWidth,omitempty" json:"maxWidth,omitempty"`
	ProductMinWidth    string `bson:"productMinWidth,omitempty" json:"productMinWidth,omitempty"`
	ProductImageHeight string `bson:"productImageHeight,omitempty" json:"productImageHeight,omitempty"`
}

// Style is the effects namespace. ShadowIntensity is one of none, light,
// medium, strong; CardHoverEffect is one of none, lift, scale, both.
type Style struct {
	BorderRadius    string `bson:"borderRadius,omitempty" json:"borderRadius,omitempty"`
	BorderWidth     string `bson:"borderWidth,omitempty" json:"borderWidth,omitempty"`
	ShadowIntensity string `bson:"shadowIntensity,omitempty" json:"shadowIntensity,omitempty"`
	CardHoverEffect string `bson:"cardHoverEffect,omitempty" json:"cardHoverEffect,omitempty"`
}

// Header is the header namespace. LogoPosition is one of left, center,
// right; center switches the logo to absolute centering independent of the
// nav items. Sticky is tri-state so an absent value keeps the default.
type Header struct {
	LogoSize     string `bson:"logoSize,omitempty" json:"logoSize,omitempty"`
	LogoPosition string `bson:"logoPosition,omitempty" json:"logoPosition,omitempty"`
	Sticky       *bool  `bson:"sticky,omitempty" json:"sticky,omitempty"`
}

// Footer is the footer namespace.
type Footer struct {
	Padding   string `bson:"padding,omitempty" json:"padding,omitempty"`
	Alignment string `bson:"alignment,omitempty" json:"alignment,omitempty"`
}

// Config is the full theme document stored inside the shop settings.
// HeaderColor, ButtonColor and FontFamily are legacy flat fields kept for
// settings saved before the namespaced system existed; they are honored
// only while the Colors namespace is absent (precedence, not a merge).
type Config struct {
	HeaderColor string `bson:"headerColor,omitempty" json:"headerColor,omitempty"`
	ButtonColor string `bson:"buttonColor,omitempty" json:"buttonColor,omitempty"`
	FontFamily  string `bson:"fontFamily,omitempty" json:"fontFamily,omitempty"`

	Colors  Colors  `bson:"colors,omitempty" json:"colors,omitempty"`
	Fonts   Fonts   `bson:"fonts,omitempty" json:"fonts,omitempty"`
	Spacing Spacing `bson:"spacing,omitempty" json:"spacing,omitempty"`
	Layout  Layout  `bson:"layout,omitempty" json:"layout,omitempty"`
	Style   Style   `bson:"style,omitempty" json:"style,omitempty"`
	Header  Header  `bson:"header,omitempty" json:"header,omitempty"`
	Footer  Footer  `bson:"footer,omitempty" json:"footer,omitempty"`
}

// Resolve merges cfg over the default preset and returns a fully populated
// configuration. Field-level merge within each namespace: a present field
// wins, an absent one keeps the default. The legacy flat colors apply to the
// primary/secondary accent roles only when the Colors namespace is entirely
// absent, so a fully specified new theme is never polluted by stale legacy
// values.
func Resolve(cfg Config) Config {
	out := Defaults()

	if cfg.Colors.IsZero() {
		if cfg.HeaderColor != "" {
			out.Colors.Primary = cfg.HeaderColor
		}
		if cfg.ButtonColor != "" {
			out.Colors.Secondary = cfg.ButtonColor
		}
	} else {
		overlayColors(&out.Colors, cfg.Colors)
	}
	if cfg.FontFamily != "" && cfg.Fonts.Primary == "" {
		out.Fonts.Primary = cfg.FontFamily
	}

	overlayFonts(&out.Fonts, cfg.Fonts)
	overlaySpacing(&out.Spacing, cfg.Spacing)
	overlayLayout(&out.Layout, cfg.Layout)
	overlayStyle(&out.Style, cfg.Style)
	overlayHeader(&out.Header, cfg.Header)
	overlayFooter(&out.Footer, cfg.Footer)

	out.HeaderColor = cfg.HeaderColor
	out.ButtonColor = cfg.ButtonColor
	out.FontFamily = cfg.FontFamily
	return out
}

func overlayColors(dst *Colors, src Colors) {
	setIf(&dst.Primary, src.Primary)
	setIf(&dst.Secondary, src.Secondary)
	setIf(&dst.Background, src.Background)
	setIf(&dst.CardBackground, src.CardBackground)
	setIf(&dst.TextPrimary, src.TextPrimary)
	setIf(&dst.TextSecondary, src.TextSecondary)
	setIf(&dst.HeaderBg, src.HeaderBg)
	setIf(&dst.FooterBg, src.FooterBg)
	setIf(&dst.ButtonBg, src.ButtonBg)
	setIf(&dst.ButtonText, src.ButtonText)
	setIf(&dst.BorderColor, src.BorderColor)
	setIf(&dst.InStock, src.InStock)
	setIf(&dst.OutOfStock, src.OutOfStock)
}

func overlayFonts(dst *Fonts, src Fonts) {
	setIf(&dst.Primary, src.Primary)
	setIf(&dst.Heading, src.Heading)
	setIf(&dst.BaseSize, src.BaseSize)
	setIf(&dst.H1Size, src.H1Size)
	setIf(&dst.PriceSize, src.PriceSize)
}

func overlaySpacing(dst *Spacing, src Spacing) {
	setIf(&dst.ProductGap, src.ProductGap)
	setIf(&dst.CardPadding, src.CardPadding)
}

func overlayLayout(dst *Layout, src Layout) {
	setIf(&dst.MaxWidth, src.MaxWidth)
	setIf(&dst.ProductMinWidth, src.ProductMinWidth)
	setIf(&dst.ProductImageHeight, src.ProductImageHeight)
}

func overlayStyle(dst *Style, src Style) {
	setIf(&dst.BorderRadius, src.BorderRadius)
	setIf(&dst.BorderWidth, src.BorderWidth)
	setIf(&dst.ShadowIntensity, src.ShadowIntensity)
	setIf(&dst.CardHoverEffect, src.CardHoverEffect)
}

func overlayHeader(dst *Header, src Header) {
	setIf(&dst.LogoSize, src.LogoSize)
	setIf(&dst.LogoPosition, src.LogoPosition)
	if src.Sticky != nil {
		dst.Sticky = src.Sticky
	}
}

func overlayFooter(dst *Footer, src Footer) {
	setIf(&dst.Padding, src.Padding)
	setIf(&dst.Alignment, src.Alignment)
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func boolPtr(b bool) *bool { return &b }
