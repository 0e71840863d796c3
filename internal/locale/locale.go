// Package locale translates the site chrome. Route data itself is not
// translated; it is shown in the language of the dataset.
package locale

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var messageFS embed.FS

// Bundle holds the message catalogs for every supported language
type Bundle struct {
	bundle  *i18n.Bundle
	matcher language.Matcher
}

// NewBundle loads the embedded message files. defaultLang is used when a
// request names no supported language.
func NewBundle(defaultLang string) (*Bundle, error) {
	def, err := language.Parse(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("parse default language: %w", err)
	}

	b := i18n.NewBundle(def)
	b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	paths, err := fs.Glob(messageFS, "messages/*.toml")
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		if _, err := b.LoadMessageFileFS(messageFS, path); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	return &Bundle{
		bundle:  b,
		matcher: language.NewMatcher(b.LanguageTags()),
	}, nil
}

// Languages returns the supported languages, default first
func (b *Bundle) Languages() []language.Tag {
	return b.bundle.LanguageTags()
}

// Localizer picks the best supported language for the given preferences.
// Each preference may be a tag ("en") or an Accept-Language header value.
func (b *Bundle) Localizer(prefs ...string) *Localizer {
	var desired []language.Tag
	for _, p := range prefs {
		if p == "" {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		desired = append(desired, tags...)
	}

	_, idx, _ := b.matcher.Match(desired...)
	tag := b.Languages()[idx]
	base, _ := tag.Base()

	return &Localizer{
		loc:  i18n.NewLocalizer(b.bundle, tag.String()),
		Lang: base.String(),
	}
}

// Localizer translates messages for one language
type Localizer struct {
	loc *i18n.Localizer

	// Lang is the ISO 639 code of the selected language, for <html lang>
	Lang string
}

// T returns the message for id, or id itself when it is missing
func (l *Localizer) T(id string) string {
	return l.localize(&i18n.LocalizeConfig{MessageID: id})
}

// Tf fills the message template with key/value pairs: Tf("view_step", "Title", t)
func (l *Localizer) Tf(id string, kv ...interface{}) string {
	data := make(map[string]interface{}, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		if key, ok := kv[i].(string); ok {
			data[key] = kv[i+1]
		}
	}
	return l.localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
}

// Count returns the plural form of id for n, exposing n as {{.Count}}
func (l *Localizer) Count(id string, n int) string {
	return l.localize(&i18n.LocalizeConfig{
		MessageID:    id,
		PluralCount:  n,
		TemplateData: map[string]interface{}{"Count": n},
	})
}

func (l *Localizer) localize(cfg *i18n.LocalizeConfig) string {
	msg, err := l.loc.Localize(cfg)
	if err != nil && msg == "" {
		return cfg.MessageID
	}
	return msg
}
