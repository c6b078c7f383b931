package services

import (
	"fmt"
	"sort"
	"strings"

	"netpoleon-site/internal/models"
)

// ResourceFilter holds the user-controlled predicates for the resource list.
// A nil TypeID means no category filtering.
type ResourceFilter struct {
	Search string
	TypeID *uint
}

// matchesSearch reports whether any of the candidate fields contains term,
// case-insensitively. An empty or whitespace-only term matches everything.
func matchesSearch(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// FilterEvents returns the events whose title, location or description
// contains the search term. The output is a new slice preserving the input
// order; filtering to nothing yields an empty slice, never nil.
func FilterEvents(items []models.Event, search string) []models.Event {
	out := make([]models.Event, 0, len(items))
	for _, e := range items {
		if matchesSearch(search, e.Title, e.Location, e.Description) {
			out = append(out, e)
		}
	}
	return out
}

// FilterResources returns the resources passing both the search predicate
// (over title, content and description) and the category predicate. The two
// predicates compose with AND.
func FilterResources(items []models.Resource, filter ResourceFilter) []models.Resource {
	out := make([]models.Resource, 0, len(items))
	for _, r := range items {
		if !matchesSearch(filter.Search, r.Title, r.Content, r.Description) {
			continue
		}
		if filter.TypeID != nil {
			if r.TypeID == nil || *r.TypeID != *filter.TypeID {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

// FilterVendors returns the vendors whose name or description contains the
// search term, optionally restricted to a category label.
func FilterVendors(items []models.Vendor, search, category string) []models.Vendor {
	out := make([]models.Vendor, 0, len(items))
	for _, v := range items {
		if !matchesSearch(search, v.Name, v.Description) {
			continue
		}
		if category != "" && !VendorHasType(v, category) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// SortEventsByDate orders events chronologically; stable so equal dates keep
// their relative order.
func SortEventsByDate(items []models.Event, newestFirst bool) {
	sort.SliceStable(items, func(i, j int) bool {
		if newestFirst {
			return items[i].EventDate > items[j].EventDate
		}
		return items[i].EventDate < items[j].EventDate
	})
}

// SortVendorsByName orders vendors alphabetically, case-insensitively
func SortVendorsByName(items []models.Vendor) {
	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
}

// EventCountLabel renders the total shown under the admin events table
func EventCountLabel(n int) string {
	return fmt.Sprintf("%d events total", n)
}

// SplitVendorTypes breaks a vendor's comma-joined category string into clean
// labels. The stored representation is left as-is; this is the read-side
// adapter.
func SplitVendorTypes(joined string) []string {
	parts := strings.Split(joined, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// VendorHasType reports whether the vendor carries the given category label,
// case-insensitively
func VendorHasType(v models.Vendor, label string) bool {
	for _, t := range SplitVendorTypes(v.Type) {
		if strings.EqualFold(t, label) {
			return true
		}
	}
	return false
}
