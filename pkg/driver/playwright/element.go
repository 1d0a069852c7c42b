package playwright

import (
	"context"

	pw "github.com/playwright-community/playwright-go"

	"github.com/entrhq/webdrive/pkg/driver"
)

// element implements driver.Element on a playwright element handle.
type element struct {
	handle pw.ElementHandle
}

var _ driver.Element = (*element)(nil)

func wrapElements(handles []pw.ElementHandle) []driver.Element {
	elms := make([]driver.Element, len(handles))
	for i, h := range handles {
		elms[i] = &element{handle: h}
	}
	return elms
}

// FindElements searches within the element's subtree.
func (e *element) FindElements(ctx context.Context, by driver.By, value string) ([]driver.Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sel, err := toSelector(by, value)
	if err != nil {
		return nil, err
	}
	found, err := e.handle.QuerySelectorAll(sel)
	if err != nil {
		return nil, mapError(err)
	}
	return wrapElements(found), nil
}

func (e *element) IsDisplayed(context.Context) (bool, error) {
	visible, err := e.handle.IsVisible()
	if err != nil {
		return false, mapError(err)
	}
	return visible, nil
}

func (e *element) GetAttribute(_ context.Context, name string) (string, error) {
	// innerHTML and textContent are properties, not attributes; fetch
	// them through their dedicated calls.
	switch name {
	case "innerHTML":
		value, err := e.handle.InnerHTML()
		if err != nil {
			return "", mapError(err)
		}
		return value, nil
	case "textContent":
		value, err := e.handle.TextContent()
		if err != nil {
			return "", mapError(err)
		}
		return value, nil
	}
	value, err := e.handle.GetAttribute(name)
	if err != nil {
		return "", mapError(err)
	}
	return value, nil
}

func (e *element) Click(context.Context) error {
	if err := e.handle.Click(); err != nil {
		return mapError(err)
	}
	return nil
}

func (e *element) Text(context.Context) (string, error) {
	text, err := e.handle.TextContent()
	if err != nil {
		return "", mapError(err)
	}
	return text, nil
}
