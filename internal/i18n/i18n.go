// Package i18n provides internationalization support for the export-go site.
// It handles translation of page labels and API messages and resolves the
// visitor's language preference.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
	// LangParam is the query parameter that selects a language explicitly.
	LangParam = "lang"
	// PreferenceKey is the name under which the language preference is stored.
	PreferenceKey = "export_go_lang"
	// localeContextKey is the gin context key holding the resolved locale.
	localeContextKey = "locale"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
	matcher  language.Matcher
	tags     []language.Tag
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return newTranslator(getDefaultMessages())
}

func newTranslator(messages map[string]map[string]string) *Translator {
	// the default locale must be first so the matcher falls back to it
	tags := []language.Tag{language.Make(DefaultLocale)}
	for locale := range messages {
		if locale != DefaultLocale {
			tags = append(tags, language.Make(locale))
		}
	}
	return &Translator{
		messages: messages,
		matcher:  language.NewMatcher(tags),
		tags:     tags,
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found, and to the key
// itself when no locale knows it.
func (t *Translator) Translate(key, locale string) string {
	return t.TranslateOr(key, locale, key)
}

// TranslateOr is like Translate but returns current when the key is unknown,
// leaving already rendered text untouched.
func (t *Translator) TranslateOr(key, locale, current string) string {
	if msg, ok := t.Dictionary(locale)[key]; ok {
		return msg
	}
	if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
		if fallbackMsg, exists := defaultMessages[key]; exists {
			return fallbackMsg
		}
	}
	return current
}

// Dictionary returns the messages of a locale, or of DefaultLocale when the
// locale has no translations.
func (t *Translator) Dictionary(locale string) map[string]string {
	if locale == "" {
		locale = DefaultLocale
	}
	if localeMessages, ok := t.messages[locale]; ok {
		return localeMessages
	}
	return t.messages[DefaultLocale]
}

// Supports reports whether the locale has its own translations.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// Match picks the best supported locale for an Accept-Language header value.
func (t *Translator) Match(acceptLanguage string) string {
	if strings.TrimSpace(acceptLanguage) == "" {
		return DefaultLocale
	}
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return DefaultLocale
	}
	_, index, confidence := t.matcher.Match(prefs...)
	if confidence == language.No {
		return DefaultLocale
	}
	base, _ := t.tags[index].Base()
	return base.String()
}

// Normalize lower-cases a language preference and strips surrounding space.
// Empty input yields DefaultLocale.
func Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return DefaultLocale
	}
	return lang
}

// DisplayCode returns the short label shown on the language button: the first
// two characters of the language, upper-cased.
func DisplayCode(lang string) string {
	code := []rune(strings.ToUpper(Normalize(lang)))
	if len(code) > 2 {
		code = code[:2]
	}
	return string(code)
}

// ResolvePreference determines the visitor's language from, in order, an
// explicit query value, the stored preference and the Accept-Language header.
// Explicit and stored values are kept as given, even when the locale has no
// translations; translation falls back to DefaultLocale for them.
func ResolvePreference(query, stored, acceptLanguage string) string {
	if q := strings.TrimSpace(query); q != "" {
		return Normalize(q)
	}
	if s := strings.TrimSpace(stored); s != "" {
		return Normalize(s)
	}
	return GetTranslator().Match(acceptLanguage)
}

// SetLocale stores the resolved locale on the gin context.
func SetLocale(c *gin.Context, locale string) {
	c.Set(localeContextKey, locale)
}

// GetLocale extracts the locale from the gin context.
// A locale resolved by middleware wins; otherwise the lang query parameter,
// the preference cookie and the Accept-Language header are consulted.
func GetLocale(c *gin.Context) string {
	if v, exists := c.Get(localeContextKey); exists {
		if locale, ok := v.(string); ok && locale != "" {
			return locale
		}
	}
	stored, _ := c.Cookie(PreferenceKey)
	return ResolvePreference(c.Query(LangParam), stored, c.GetHeader(AcceptLanguageHeader))
}
