package site

import "slices"

// FilterAll shows every service card.
const FilterAll = "all"

// FilterServices returns the cards visible under filter. FilterAll and the
// empty filter keep every card.
func FilterServices(cards []ServiceCard, filter string) []ServiceCard {
	if filter == "" || filter == FilterAll {
		return slices.Clone(cards)
	}
	visible := make([]ServiceCard, 0, len(cards))
	for _, card := range cards {
		if slices.Contains(card.CategoryList(), filter) {
			visible = append(visible, card)
		}
	}
	return visible
}

// ResolveFilter returns param when it names one of the filter buttons and
// FilterAll otherwise.
func ResolveFilter(filters []Filter, param string) string {
	if param == "" {
		return FilterAll
	}
	for _, f := range filters {
		if f.Key == param {
			return param
		}
	}
	return FilterAll
}
