package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/export-go/internal/i18n"
	"github.com/guttosm/export-go/internal/service"
	"github.com/guttosm/export-go/internal/site"
)

// SiteHandler serves the page behaviours of the static site.
type SiteHandler struct {
	site service.SiteService
}

// NewSiteHandler creates a site handler.
func NewSiteHandler(siteService service.SiteService) *SiteHandler {
	return &SiteHandler{site: siteService}
}

// Nav handles GET /api/site/nav.
//
// @Summary      Navigation state
// @Description  Returns the navigation links with the ones pointing at the current page marked active. The current page is the last segment of path, or index.html when empty.
// @Tags         Site
// @Produce      json
// @Param        path query string false "Request path of the page" example(/services.html)
// @Param        lang query string false "Language for labels"
// @Success      200 {object} dto.SuccessResponse{data=dto.NavResponse}
// @Router       /api/site/nav [get]
func (h *SiteHandler) Nav(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.site.Nav(c.Query("path"), i18n.GetLocale(c)))
}

// Services handles GET /api/site/services.
//
// @Summary      Filter service cards
// @Description  Returns the service cards visible under a filter. An unknown or empty filter shows every card.
// @Tags         Site
// @Produce      json
// @Param        filter query string false "Filter key" example(import)
// @Param        lang query string false "Language for labels"
// @Success      200 {object} dto.SuccessResponse{data=dto.ServicesResponse}
// @Router       /api/site/services [get]
func (h *SiteHandler) Services(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.site.Services(c.Query("filter"), i18n.GetLocale(c)))
}

// Panels handles GET /api/site/panels/:group.
//
// @Summary      Collapsible panel state
// @Description  Restores the open panel of a group and applies an optional toggle. At most one panel of a group is open; toggling the open panel closes it.
// @Tags         Site
// @Produce      json
// @Param        group path string true "Panel group" Enums(service, pricing)
// @Param        open query string false "Currently open panel"
// @Param        toggle query string false "Panel to toggle"
// @Success      200 {object} dto.SuccessResponse{data=dto.PanelsResponse}
// @Failure      404 {object} dto.ErrorResponse "Unknown panel group"
// @Router       /api/site/panels/{group} [get]
func (h *SiteHandler) Panels(c *gin.Context) {
	builder := NewResponseBuilder(c)

	resp, err := h.site.Panels(c.Param("group"), c.Query("open"), c.Query("toggle"))
	if err != nil {
		if errors.Is(err, site.ErrUnknownGroup) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessOK(resp)
}

// Anchor handles GET /api/site/anchor.
//
// @Summary      Resolve in-page anchor
// @Description  Resolves an href to the element id it scrolls to. Bare "#" and links to other pages do not scroll.
// @Tags         Site
// @Produce      json
// @Param        href query string true "Link href" example(#contact)
// @Success      200 {object} dto.SuccessResponse{data=dto.AnchorResponse}
// @Router       /api/site/anchor [get]
func (h *SiteHandler) Anchor(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.site.Anchor(c.Query("href")))
}
