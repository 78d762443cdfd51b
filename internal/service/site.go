package service

import (
	"github.com/guttosm/export-go/internal/domain/dto"
	"github.com/guttosm/export-go/internal/i18n"
	"github.com/guttosm/export-go/internal/site"
)

// SiteService answers the page behaviour queries of the static site:
// navigation state, service filtering, collapsible panels and anchors.
type SiteService interface {
	Nav(path, locale string) dto.NavResponse
	Services(filter, locale string) dto.ServicesResponse
	Panels(group, open, toggle string) (*dto.PanelsResponse, error)
	Anchor(href string) dto.AnchorResponse
}

// SiteServiceImpl implements SiteService over loaded site content.
type SiteServiceImpl struct {
	content    *site.Content
	translator *i18n.Translator
}

// NewSiteService creates a site service. A nil content uses the embedded
// default content.
func NewSiteService(content *site.Content) *SiteServiceImpl {
	if content == nil {
		content = site.Default()
	}
	return &SiteServiceImpl{
		content:    content,
		translator: i18n.GetTranslator(),
	}
}

// Nav marks the links that point at the page of path as active. Labels are
// translated when the locale knows their key.
func (s *SiteServiceImpl) Nav(path, locale string) dto.NavResponse {
	links := site.ActiveNav(s.content.Nav, path)
	for i := range links {
		links[i].Label = s.translator.TranslateOr(links[i].LabelKey, locale, links[i].Label)
	}
	return dto.NavResponse{
		Page:  site.CurrentPage(path),
		Links: links,
	}
}

// Services returns the cards visible under filter. Unknown filters fall back
// to showing every card.
func (s *SiteServiceImpl) Services(filter, locale string) dto.ServicesResponse {
	active := site.ResolveFilter(s.content.Filters, filter)

	filters := make([]site.Filter, len(s.content.Filters))
	for i, f := range s.content.Filters {
		f.Label = s.translator.TranslateOr(f.LabelKey, locale, f.Label)
		filters[i] = f
	}

	return dto.ServicesResponse{
		Filter:   active,
		Filters:  filters,
		Services: site.FilterServices(s.content.Services, active),
	}
}

// Panels restores the open panel of a group and applies an optional toggle.
func (s *SiteServiceImpl) Panels(group, open, toggle string) (*dto.PanelsResponse, error) {
	panels, err := s.content.PanelGroup(group)
	if err != nil {
		return nil, err
	}

	acc := site.NewAccordion(group, panels)
	acc.Restore(open)
	if toggle != "" {
		acc.Toggle(toggle)
	}

	return &dto.PanelsResponse{
		Group:  acc.Group(),
		Open:   acc.Open(),
		Panels: acc.State(),
	}, nil
}

// Anchor resolves an in-page link to the element it scrolls to.
func (s *SiteServiceImpl) Anchor(href string) dto.AnchorResponse {
	target, ok := site.AnchorTarget(href)
	return dto.AnchorResponse{
		Href:   href,
		Target: target,
		Scroll: ok,
	}
}
