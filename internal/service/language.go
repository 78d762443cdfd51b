package service

import (
	"github.com/guttosm/export-go/internal/domain/dto"
	"github.com/guttosm/export-go/internal/i18n"
)

// LanguageService describes language preferences and serves translations.
type LanguageService interface {
	// Describe returns the stored form of a preference and its button label.
	Describe(lang string) dto.LanguagePreferenceResponse
	// Dictionary returns the translations used for lang.
	Dictionary(lang string) dto.DictionaryResponse
}

// LanguageServiceImpl implements LanguageService with the i18n translator.
type LanguageServiceImpl struct {
	translator *i18n.Translator
}

// NewLanguageService creates a language service.
func NewLanguageService() *LanguageServiceImpl {
	return &LanguageServiceImpl{translator: i18n.GetTranslator()}
}

// Describe normalizes lang. Languages without translations are kept as
// given and reported as not translated.
func (s *LanguageServiceImpl) Describe(lang string) dto.LanguagePreferenceResponse {
	lang = i18n.Normalize(lang)
	return dto.LanguagePreferenceResponse{
		Lang:        lang,
		DisplayCode: i18n.DisplayCode(lang),
		Translated:  s.translator.Supports(lang),
	}
}

// Dictionary returns the messages for lang, or the default locale's when lang
// has none. The returned map must not be modified.
func (s *LanguageServiceImpl) Dictionary(lang string) dto.DictionaryResponse {
	lang = i18n.Normalize(lang)
	locale := lang
	if !s.translator.Supports(lang) {
		locale = i18n.DefaultLocale
	}
	return dto.DictionaryResponse{
		Locale:   locale,
		Messages: s.translator.Dictionary(locale),
	}
}
