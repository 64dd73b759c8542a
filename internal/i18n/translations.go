// Package i18n renders user-facing messages in Indonesian or English.
package i18n

import (
	"embed"
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var localeFS embed.FS

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "id"

// SupportedLocales lists the locales with an embedded message file.
var SupportedLocales = []string{"id", "en"}

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
}

// NewTranslator builds a Translator with the given default locale (e.g. "id").
// An unparsable locale falls back to DefaultLocale.
func NewTranslator(defaultLocale string) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.Indonesian
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, locale := range SupportedLocales {
		file := "active." + locale + ".toml"
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			slog.Warn("i18n: failed to load message file", "file", file, "error", err)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
	}
}

// IsSupported reports whether locale has its own message file.
func IsSupported(locale string) bool {
	tag, err := language.Parse(locale)
	if err != nil {
		return false
	}
	base, _ := tag.Base()
	for _, l := range SupportedLocales {
		if base.String() == l {
			return true
		}
	}
	return false
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	return t.localize(locale, &i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
}

// Plural renders a message with plural forms selected by count. data may be
// nil; Count is always available to the template.
func (t *Translator) Plural(locale, key string, count int, data map[string]any) string {
	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["Count"]; !ok {
		data["Count"] = count
	}
	return t.localize(locale, &i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
		PluralCount:  count,
	})
}

// For binds the translator to one locale.
func (t *Translator) For(locale string) *Localizer {
	return &Localizer{t: t, locale: locale}
}

func (t *Translator) localize(locale string, cfg *i18n.LocalizeConfig) string {
	if cfg.MessageID == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(cfg)
	if err != nil {
		slog.Warn("i18n: localize failed", "key", cfg.MessageID, "locales", languages, "error", err)
		return cfg.MessageID
	}
	return msg
}

// Localizer renders messages for a fixed locale.
type Localizer struct {
	t      *Translator
	locale string
}

func (l *Localizer) Locale() string { return l.locale }

func (l *Localizer) T(key string, data map[string]any) string {
	return l.t.T(l.locale, key, data)
}

func (l *Localizer) Plural(key string, count int, data map[string]any) string {
	return l.t.Plural(l.locale, key, count, data)
}
