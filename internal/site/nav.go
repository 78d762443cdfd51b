package site

import "strings"

// DefaultPage is the page assumed when the request path ends with a slash.
const DefaultPage = "index.html"

// RenderedNavLink is a navigation link with its active state.
type RenderedNavLink struct {
	NavLink
	Active bool `json:"active"`
}

// CurrentPage returns the last segment of a request path, or DefaultPage
// when that segment is empty.
func CurrentPage(requestPath string) string {
	if i := strings.IndexAny(requestPath, "?#"); i >= 0 {
		requestPath = requestPath[:i]
	}
	page := requestPath[strings.LastIndex(requestPath, "/")+1:]
	if page == "" {
		return DefaultPage
	}
	return page
}

// ActiveNav marks every link whose href ends with the current page as active.
// More than one link can be active.
func ActiveNav(links []NavLink, requestPath string) []RenderedNavLink {
	here := CurrentPage(requestPath)
	items := make([]RenderedNavLink, 0, len(links))
	for _, link := range links {
		items = append(items, RenderedNavLink{
			NavLink: link,
			Active:  strings.HasSuffix(link.Href, here),
		})
	}
	return items
}
