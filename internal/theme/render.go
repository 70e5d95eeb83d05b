package theme

import (
	"fmt"
	"strings"
)

// shadowTable maps shadowIntensity to a fixed shadow depth.
var shadowTable = map[string]string{
	"none":   "none",
	"light":  "0 1px 3px rgba(0, 0, 0, 0.08)",
	"medium": "0 4px 12px rgba(0, 0, 0, 0.12)",
	"strong": "0 12px 32px rgba(0, 0, 0, 0.22)",
}

// Render translates a theme configuration into one complete stylesheet.
// It is a pure function: the same config always yields the same CSS, and a
// consumer replaces its previous stylesheet wholesale, so reapplying a
// config can never accumulate rules. Absent fields are resolved against the
// default preset first; malformed values pass through untouched (the
// browser drops invalid declarations on its own).
func Render(cfg Config) string {
	r := Resolve(cfg)

	var b strings.Builder
	b.WriteString(":root {\n")
	writeVar(&b, "--accent-primary", r.Colors.Primary)
	writeVar(&b, "--accent-hover", r.Colors.Secondary)
	writeVar(&b, "--bg-primary", r.Colors.HeaderBg)
	writeVar(&b, "--bg-secondary", r.Colors.Background)
	writeVar(&b, "--bg-card", r.Colors.CardBackground)
	writeVar(&b, "--bg-footer", r.Colors.FooterBg)
	writeVar(&b, "--text-primary", r.Colors.TextPrimary)
	writeVar(&b, "--text-secondary", r.Colors.TextSecondary)
	writeVar(&b, "--button-bg", r.Colors.ButtonBg)
	writeVar(&b, "--button-text", r.Colors.ButtonText)
	writeVar(&b, "--border-color", r.Colors.BorderColor)
	writeVar(&b, "--stock-in", r.Colors.InStock)
	writeVar(&b, "--stock-out", r.Colors.OutOfStock)
	writeVar(&b, "--font-primary", r.Fonts.Primary)
	writeVar(&b, "--font-heading", r.Fonts.Heading)
	writeVar(&b, "--font-base-size", r.Fonts.BaseSize)
	writeVar(&b, "--font-h1-size", r.Fonts.H1Size)
	writeVar(&b, "--font-price-size", r.Fonts.PriceSize)
	writeVar(&b, "--product-gap", r.Spacing.ProductGap)
	writeVar(&b, "--card-padding", r.Spacing.CardPadding)
	writeVar(&b, "--layout-max-width", r.Layout.MaxWidth)
	writeVar(&b, "--product-min-width", r.Layout.ProductMinWidth)
	writeVar(&b, "--product-image-height", r.Layout.ProductImageHeight)
	writeVar(&b, "--radius-lg", r.Style.BorderRadius)
	writeVar(&b, "--border-width", r.Style.BorderWidth)
	writeVar(&b, "--card-shadow", shadow(r.Style.ShadowIntensity))
	b.WriteString("}\n\n")

	b.WriteString("body { background: var(--bg-secondary); color: var(--text-primary); font-family: var(--font-primary); font-size: var(--font-base-size); }\n")
	b.WriteString("h1, h2, h3, h4, h5, h6 { font-family: var(--font-heading); }\n")
	b.WriteString("h1 { font-size: var(--font-h1-size); }\n")
	b.WriteString(".price { color: var(--accent-primary); font-size: var(--font-price-size); }\n")
	b.WriteString(".in-stock { color: var(--stock-in); }\n")
	b.WriteString(".out-of-stock { color: var(--stock-out); }\n")
	b.WriteString(".container { max-width: var(--layout-max-width); margin: 0 auto; }\n")
	b.WriteString("button, .btn { background: var(--button-bg); color: var(--button-text); border-radius: var(--radius-lg); }\n")
	b.WriteString("button:hover, .btn:hover { background: var(--accent-hover); }\n\n")

	b.WriteString(".product-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(var(--product-min-width), 1fr)); gap: var(--product-gap); }\n")
	b.WriteString(".product-card { background: var(--bg-card); padding: var(--card-padding); border: var(--border-width) solid var(--border-color); border-radius: var(--radius-lg); box-shadow: var(--card-shadow); }\n")
	b.WriteString(".product-card img { height: var(--product-image-height); object-fit: cover; width: 100%; }\n")
	writeHoverEffect(&b, r.Style.CardHoverEffect)

	writeHeader(&b, r.Header)
	writeFooter(&b, r.Footer)
	return b.String()
}

func writeVar(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "  %s: %s;\n", name, value)
}

func shadow(intensity string) string {
	if s, ok := shadowTable[intensity]; ok {
		return s
	}
	return shadowTable["medium"]
}

// writeHoverEffect emits the pointer-enter transform for product cards:
// lift translates the card, scale zooms only the image, both combines
// them, none emits no transform rule at all.
func writeHoverEffect(b *strings.Builder, effect string) {
	b.WriteString(".product-card { transition: transform 0.2s ease, box-shadow 0.2s ease; }\n")
	b.WriteString(".product-card img { transition: transform 0.2s ease; }\n")
	switch effect {
	case "lift":
		b.WriteString(".product-card:hover { transform: translateY(-4px); }\n")
	case "scale":
		b.WriteString(".product-card:hover img { transform: scale(1.05); }\n")
	case "both":
		b.WriteString(".product-card:hover { transform: translateY(-4px); }\n")
		b.WriteString(".product-card:hover img { transform: scale(1.05); }\n")
	}
	b.WriteString("\n")
}

func writeHeader(b *strings.Builder, h Header) {
	b.WriteString("header { background: var(--bg-primary); display: flex; align-items: center; }\n")
	fmt.Fprintf(b, "header .logo { height: %s; }\n", h.LogoSize)
	switch h.LogoPosition {
	case "center":
		// Absolute centering keeps the logo centered regardless of how wide
		// the sibling nav items are.
		b.WriteString("header { position: relative; }\n")
		b.WriteString("header .logo { position: absolute; left: 50%; transform: translateX(-50%); }\n")
	case "right":
		b.WriteString("header { justify-content: flex-end; }\n")
	default:
		b.WriteString("header { justify-content: flex-start; }\n")
	}
	if h.Sticky != nil && *h.Sticky {
		b.WriteString("header { position: sticky; top: 0; z-index: 1000; }\n")
	}
	b.WriteString("\n")
}

func writeFooter(b *strings.Builder, f Footer) {
	fmt.Fprintf(b, "footer { background: var(--bg-footer); padding: %s; text-align: %s; }\n", f.Padding, f.Alignment)
}
