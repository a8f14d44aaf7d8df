package model

type FontVariant string

const (
	FontLight   FontVariant = "light"
	FontRegular FontVariant = "regular"
	FontBold    FontVariant = "bold"
)

// DesignConfig is the per-document visual theme. Background is a color XOR an
// image; when both are present the image wins and the color is dropped.
type DesignConfig struct {
	BgColor   string      `json:"bgColor,omitempty"`
	BgImage   string      `json:"bgImage,omitempty"`
	LogoURL   string      `json:"logoUrl,omitempty"`
	BannerURL string      `json:"bannerUrl,omitempty"`
	Font      FontVariant `json:"font"`
}

func DefaultDesign() DesignConfig {
	return DesignConfig{Font: FontRegular}
}

func (d DesignConfig) Normalized() DesignConfig {
	if d.Font == "" {
		d.Font = FontRegular
	}
	if d.BgImage != "" {
		d.BgColor = ""
	}
	return d
}
