// Package selector implements shorthand element lookup over a driver
// search scope. A Query names an element by exactly one locator kind,
// optionally narrowed to a parent element, and resolves through All or
// First.
package selector

import (
	"context"
	"fmt"
	"strings"

	"github.com/entrhq/webdrive/pkg/driver"
)

// Query identifies elements by exactly one locator field. Populating zero
// or more than one of the locator fields makes the query invalid; Parent
// optionally narrows the search to the subtree of a single matching
// element and may itself be nil (search from the given scope).
type Query struct {
	// Exactly one of the following must be set.
	ID          string
	ClassName   string
	Name        string
	TagName     string
	XPath       string
	CSSSelector string

	// Parent optionally scopes the search to the first element matching
	// it. A nil Parent searches from the scope the query is resolved
	// against.
	Parent *Query
}

// IsZero reports whether no locator field is populated.
func (q Query) IsZero() bool {
	return q.ID == "" && q.ClassName == "" && q.Name == "" &&
		q.TagName == "" && q.XPath == "" && q.CSSSelector == ""
}

// Locator validates the query and returns its locator strategy and value.
// It fails with driver.ErrInvalidQuery unless exactly one locator field is
// populated.
func (q Query) Locator() (driver.By, string, error) {
	type candidate struct {
		by    driver.By
		value string
	}
	var set []candidate
	for _, c := range []candidate{
		{driver.ByID, q.ID},
		{driver.ByClassName, q.ClassName},
		{driver.ByName, q.Name},
		{driver.ByTagName, q.TagName},
		{driver.ByXPath, q.XPath},
		{driver.ByCSSSelector, q.CSSSelector},
	} {
		if c.value != "" {
			set = append(set, c)
		}
	}

	switch len(set) {
	case 0:
		return "", "", fmt.Errorf("%w: no locator field set", driver.ErrInvalidQuery)
	case 1:
		return set[0].by, set[0].value, nil
	default:
		kinds := make([]string, len(set))
		for i, c := range set {
			kinds[i] = string(c.by)
		}
		return "", "", fmt.Errorf("%w: element can be located by one field only, got %s",
			driver.ErrInvalidQuery, strings.Join(kinds, ", "))
	}
}

// String describes the query for error messages and logs.
func (q Query) String() string {
	by, value, err := q.Locator()
	if err != nil {
		return "invalid query"
	}
	desc := fmt.Sprintf("%s=%q", by, value)
	if q.Parent != nil {
		desc = fmt.Sprintf("%s within %s", desc, q.Parent.String())
	}
	return desc
}

// All resolves every element matching the query beneath scope. When the
// query carries a Parent, the parent is resolved to a single element first
// (failing with driver.ErrNoSuchElement when absent) and the search runs
// inside it. No match is an empty slice, not an error.
func All(ctx context.Context, scope driver.SearchScope, q Query) ([]driver.Element, error) {
	by, value, err := q.Locator()
	if err != nil {
		return nil, err
	}

	root := scope
	if q.Parent != nil {
		parent, err := First(ctx, scope, *q.Parent)
		if err != nil {
			return nil, err
		}
		root = parent
	}

	return root.FindElements(ctx, by, value)
}

// First resolves the first element matching the query beneath scope.
// "First" is whatever order the driver reports, document order for most
// backends. Fails with driver.ErrNoSuchElement when nothing matches.
func First(ctx context.Context, scope driver.SearchScope, q Query) (driver.Element, error) {
	elms, err := All(ctx, scope, q)
	if err != nil {
		return nil, err
	}
	if len(elms) == 0 {
		return nil, fmt.Errorf("%w: %s", driver.ErrNoSuchElement, q.String())
	}
	return elms[0], nil
}
