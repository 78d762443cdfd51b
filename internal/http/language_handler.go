package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/export-go/internal/domain/dto"
	"github.com/guttosm/export-go/internal/domain/model"
	"github.com/guttosm/export-go/internal/i18n"
	"github.com/guttosm/export-go/internal/metrics"
	"github.com/guttosm/export-go/internal/middleware"
	"github.com/guttosm/export-go/internal/service"
)

// CookieOptions controls the language preference cookie.
type CookieOptions struct {
	MaxAge time.Duration
	Secure bool
}

// LanguageHandler serves translations and the visitor's language preference.
type LanguageHandler struct {
	languages      service.LanguageService
	loggingService service.LoggingService
	cookie         CookieOptions
}

// NewLanguageHandler creates a language handler. loggingService may be nil.
func NewLanguageHandler(languages service.LanguageService, loggingService service.LoggingService, cookie CookieOptions) *LanguageHandler {
	return &LanguageHandler{
		languages:      languages,
		loggingService: loggingService,
		cookie:         cookie,
	}
}

// Dictionary handles GET /api/i18n/:lang.
//
// @Summary      Translation dictionary
// @Description  Returns the messages used to translate the pages. Languages without translations get the English dictionary.
// @Tags         Language
// @Produce      json
// @Param        lang path string true "Language code" example(en)
// @Success      200 {object} dto.SuccessResponse{data=dto.DictionaryResponse}
// @Router       /api/i18n/{lang} [get]
func (h *LanguageHandler) Dictionary(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.languages.Dictionary(c.Param("lang")))
}

// GetPreference handles GET /api/preferences/language.
//
// @Summary      Read language preference
// @Description  Returns the stored language preference, or the language resolved from Accept-Language when nothing is stored.
// @Tags         Language
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.LanguagePreferenceResponse}
// @Router       /api/preferences/language [get]
func (h *LanguageHandler) GetPreference(c *gin.Context) {
	lang, err := c.Cookie(i18n.PreferenceKey)
	if err != nil || lang == "" {
		lang = i18n.GetLocale(c)
	}
	NewResponseBuilder(c).SuccessOK(h.languages.Describe(lang))
}

// SetPreference handles PUT /api/preferences/language.
//
// @Summary      Store language preference
// @Description  Stores the selected language in the export_go_lang cookie. Languages without translations are stored as given.
// @Tags         Language
// @Accept       json
// @Produce      json
// @Param        request body dto.LanguagePreferenceRequest true "Selected language"
// @Success      200 {object} dto.SuccessResponse{data=dto.LanguagePreferenceResponse}
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing or malformed language"
// @Router       /api/preferences/language [put]
func (h *LanguageHandler) SetPreference(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BindJSON[dto.LanguagePreferenceRequest](c)
	if err != nil {
		var vErr *dto.ValidationError
		if errors.As(err, &vErr) {
			builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest,
				map[string]string{vErr.Field: vErr.Message}, nil)
			return
		}
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	pref := h.languages.Describe(req.Lang)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(i18n.PreferenceKey, pref.Lang, int(h.cookie.MaxAge.Seconds()), "/", "", h.cookie.Secure, false)
	i18n.SetLocale(c, pref.Lang)

	metrics.RecordLanguageChange(pref.Lang)
	middleware.AuditLog(h.loggingService, c, model.ActionLanguageChange, "Language preference changed", map[string]interface{}{
		"lang":       pref.Lang,
		"translated": pref.Translated,
	})

	builder.SuccessOK(pref)
}
