package playwright

import (
	"fmt"
	"strings"

	"github.com/entrhq/webdrive/pkg/driver"
)

// toSelector translates a locator strategy into a playwright selector
// engine expression. CSS expressions pass through untouched; xpath gets
// the explicit engine prefix so playwright never mis-sniffs it; the
// attribute-based kinds become CSS attribute selectors, which unlike the
// shorthand forms survive values containing CSS metacharacters.
func toSelector(by driver.By, value string) (string, error) {
	switch by {
	case driver.ByID:
		return fmt.Sprintf(`[id=%s]`, quoteCSS(value)), nil
	case driver.ByClassName:
		return fmt.Sprintf(`[class~=%s]`, quoteCSS(value)), nil
	case driver.ByName:
		return fmt.Sprintf(`[name=%s]`, quoteCSS(value)), nil
	case driver.ByTagName:
		return value, nil
	case driver.ByXPath:
		return "xpath=" + value, nil
	case driver.ByCSSSelector:
		return value, nil
	}
	return "", fmt.Errorf("%w: unknown locator strategy %q", driver.ErrInvalidQuery, by)
}

// quoteCSS wraps a value as a double-quoted CSS string.
func quoteCSS(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `"`, `\"`)
	return `"` + value + `"`
}
