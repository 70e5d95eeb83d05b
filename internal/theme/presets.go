package theme

// Defaults returns the default preset with every field populated.
func Defaults() Config {
	return Config{
		Colors: Colors{
			Primary:        "#8B5CF6",
			Secondary:      "#7C3AED",
			Background:     "#F7F8F9",
			CardBackground: "#FFFFFF",
			TextPrimary:    "#111827",
			TextSecondary:  "#6B7280",
			HeaderBg:       "#FFFFFF",
			FooterBg:       "#F3F4F6",
			ButtonBg:       "#8B5CF6",
			ButtonText:     "#FFFFFF",
			BorderColor:    "#E5E7EB",
			InStock:        "#10B981",
			OutOfStock:     "#EF4444",
		},
		Fonts: Fonts{
			Primary:   `-apple-system, BlinkMacSystemFont, "Segoe UI", "Roboto", sans-serif`,
			Heading:   `-apple-system, BlinkMacSystemFont, "Segoe UI", "Roboto", sans-serif`,
			BaseSize:  "16px",
			H1Size:    "2.5rem",
			PriceSize: "1.25rem",
		},
		Spacing: Spacing{
			ProductGap:  "24px",
			CardPadding: "24px",
		},
		Layout: Layout{
			MaxWidth:           "1200px",
			ProductMinWidth:    "280px",
			ProductImageHeight: "240px",
		},
		Style: Style{
			BorderRadius:    "12px",
			BorderWidth:     "1px",
			ShadowIntensity: "medium",
			CardHoverEffect: "lift",
		},
		Header: Header{
			LogoSize:     "40px",
			LogoPosition: "left",
			Sticky:       boolPtr(true),
		},
		Footer: Footer{
			Padding:   "32px 24px",
			Alignment: "center",
		},
	}
}

// presets holds the named partial themes. Each is merged over the default
// preset at the namespace level: a namespace the preset specifies overrides
// field by field, an unspecified namespace keeps the default wholesale.
var presets = map[string]Config{
	"default": {},
	"dark": {
		Colors: Colors{
			Primary:        "#A78BFA",
			Secondary:      "#8B5CF6",
			Background:     "#1F2937",
			CardBackground: "#111827",
			TextPrimary:    "#F9FAFB",
			TextSecondary:  "#9CA3AF",
			HeaderBg:       "#111827",
			FooterBg:       "#0F172A",
			ButtonBg:       "#8B5CF6",
			ButtonText:     "#FFFFFF",
		},
	},
	"minimal": {
		Colors: Colors{
			Primary:        "#000000",
			Secondary:      "#333333",
			Background:     "#FFFFFF",
			CardBackground: "#FFFFFF",
			TextPrimary:    "#000000",
			TextSecondary:  "#666666",
			HeaderBg:       "#FFFFFF",
			FooterBg:       "#F5F5F5",
			ButtonBg:       "#000000",
			ButtonText:     "#FFFFFF",
		},
		Style: Style{
			BorderRadius:    "0px",
			ShadowIntensity: "none",
			CardHoverEffect: "none",
		},
	},
	"bold": {
		Colors: Colors{
			Primary:        "#FF6B6B",
			Secondary:      "#4ECDC4",
			Background:     "#FFE66D",
			CardBackground: "#FFFFFF",
			TextPrimary:    "#2C3E50",
			TextSecondary:  "#7F8C8D",
			HeaderBg:       "#FF6B6B",
			FooterBg:       "#4ECDC4",
			ButtonBg:       "#FF6B6B",
			ButtonText:     "#FFFFFF",
		},
	},
	"elegant": {
		Colors: Colors{
			Primary:        "#8B7355",
			Secondary:      "#A0826D",
			Background:     "#FAF8F3",
			CardBackground: "#FFFFFF",
			TextPrimary:    "#2C2416",
			TextSecondary:  "#6B5D4F",
			HeaderBg:       "#FFFFFF",
			FooterBg:       "#F5F1E8",
			ButtonBg:       "#8B7355",
			ButtonText:     "#FFFFFF",
		},
		Fonts: Fonts{
			Heading: "'Playfair Display', serif",
			Primary: "'Georgia', serif",
		},
	},
	"modern": {
		Colors: Colors{
			Primary:        "#0EA5E9",
			Secondary:      "#06B6D4",
			Background:     "#F8FAFC",
			CardBackground: "#FFFFFF",
			TextPrimary:    "#0F172A",
			TextSecondary:  "#64748B",
			HeaderBg:       "#FFFFFF",
			FooterBg:       "#F1F5F9",
			ButtonBg:       "#0EA5E9",
			ButtonText:     "#FFFFFF",
		},
		Fonts: Fonts{
			Primary: "'Inter', sans-serif",
			Heading: "'Inter', sans-serif",
		},
		Style: Style{
			BorderRadius:    "16px",
			ShadowIntensity: "light",
		},
	},
}

// PresetNames lists the available preset names in display order.
func PresetNames() []string {
	return []string{"default", "dark", "minimal", "bold", "elegant", "modern"}
}

// Preset returns the named preset merged over the default preset. The
// second return is false for an unknown name.
func Preset(name string) (Config, bool) {
	p, ok := presets[name]
	if !ok {
		return Config{}, false
	}
	return Resolve(p), true
}
