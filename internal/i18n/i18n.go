// Package i18n loads the embedded translations of the public pages and picks
// the language of each request.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// LangParam is the query parameter selecting a language
const LangParam = "lang"

//go:embed locales/*.yaml
var localeFS embed.FS

// Supported lists the languages the site is translated to
var Supported = []language.Tag{language.French, language.English}

// Catalog holds every translation and resolves request languages
type Catalog struct {
	bundle   *goi18n.Bundle
	matcher  language.Matcher
	fallback language.Tag
}

// NewCatalog parses the embedded locale files. defaultLang is used when a
// request names no supported language.
func NewCatalog(defaultLang string) (*Catalog, error) {
	fallback, err := language.Parse(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("invalid default language %q: %w", defaultLang, err)
	}

	bundle := goi18n.NewBundle(fallback)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("failed to list locales: %w", err)
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read locale %s: %w", f.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			return nil, fmt.Errorf("failed to parse locale %s: %w", f.Name(), err)
		}
	}

	return &Catalog{
		bundle:   bundle,
		matcher:  language.NewMatcher(Supported),
		fallback: fallback,
	}, nil
}

// Resolve picks the language from ?lang=, then Accept-Language, then the default
func (c *Catalog) Resolve(r *http.Request) language.Tag {
	if r == nil {
		return c.fallback
	}

	if value := strings.TrimSpace(r.URL.Query().Get(LangParam)); value != "" {
		if tag, err := language.Parse(value); err == nil {
			if match, ok := c.match(tag); ok {
				return match
			}
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			if match, ok := c.match(tags...); ok {
				return match
			}
		}
	}

	return c.fallback
}

func (c *Catalog) match(tags ...language.Tag) (language.Tag, bool) {
	_, index, confidence := c.matcher.Match(tags...)
	if confidence == language.No {
		return language.Und, false
	}
	return Supported[index], true
}

// Localizer returns a translator for tag
func (c *Catalog) Localizer(tag language.Tag) *Localizer {
	return &Localizer{
		localizer: goi18n.NewLocalizer(c.bundle, tag.String(), c.fallback.String()),
		tag:       tag,
	}
}

// Localizer translates message IDs into one language
type Localizer struct {
	localizer *goi18n.Localizer
	tag       language.Tag
}

// Lang returns the BCP 47 tag of the localizer, for the html lang attribute
func (l *Localizer) Lang() string {
	return l.tag.String()
}

// T translates messageID. Unknown IDs are returned as is.
func (l *Localizer) T(messageID string) string {
	msg, err := l.localizer.Localize(&goi18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	return msg
}

// Tf translates messageID with template data, e.g. {{.Year}}
func (l *Localizer) Tf(messageID string, data map[string]any) string {
	msg, err := l.localizer.Localize(&goi18n.LocalizeConfig{MessageID: messageID, TemplateData: data})
	if err != nil {
		return messageID
	}
	return msg
}
