package domain

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

type Language struct {
	Code string
	Name string
}

// NewLanguage resolves the English display name of a BCP-47 code. Unknown
// codes keep the code as their name.
func NewLanguage(code string) Language {
	tag, err := language.Parse(code)
	if err != nil {
		return Language{Code: code, Name: code}
	}
	name := display.English.Tags().Name(tag)
	if name == "" {
		name = code
	}
	return Language{Code: code, Name: name}
}

func (l Language) String() string { return l.Name }

// CaptionTrackInfo describes a caption track without its content.
type CaptionTrackInfo struct {
	url             string
	language        Language
	format          string
	isAutoGenerated bool
}

func NewCaptionTrackInfo(url string, lang Language, format string, isAutoGenerated bool) (*CaptionTrackInfo, error) {
	u, err := guardNotEmpty(url, "url")
	if err != nil {
		return nil, err
	}
	if _, err := guardNotEmpty(lang.Code, "language"); err != nil {
		return nil, err
	}
	return &CaptionTrackInfo{
		url:             u,
		language:        lang,
		format:          format,
		isAutoGenerated: isAutoGenerated,
	}, nil
}

func (c *CaptionTrackInfo) URL() string { return c.url }

func (c *CaptionTrackInfo) Language() Language { return c.language }

func (c *CaptionTrackInfo) Format() string { return c.format }

func (c *CaptionTrackInfo) IsAutoGenerated() bool { return c.isAutoGenerated }

func (c *CaptionTrackInfo) String() string {
	if c.isAutoGenerated {
		return c.language.Name + " (auto-generated)"
	}
	return c.language.Name
}
