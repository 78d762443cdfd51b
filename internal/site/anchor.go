package site

import "strings"

// AnchorTarget returns the element id an in-page link scrolls to.
// Only "#id" hrefs qualify; "", "#" and links to other pages are ignored.
func AnchorTarget(href string) (string, bool) {
	if !strings.HasPrefix(href, "#") || len(href) == 1 {
		return "", false
	}
	return href[1:], true
}
