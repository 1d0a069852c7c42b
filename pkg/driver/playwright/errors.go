package playwright

import (
	"fmt"
	"strings"

	"github.com/entrhq/webdrive/pkg/driver"
)

// mapError folds playwright failures into the driver taxonomy. Playwright
// reports conditions as message strings, so classification is textual;
// anything unrecognized passes through unchanged.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "not attached to the DOM"),
		strings.Contains(msg, "Element is not attached"):
		return fmt.Errorf("%w: %v", driver.ErrStaleElement, err)
	case strings.Contains(msg, "Target page, context or browser has been closed"),
		strings.Contains(msg, "Target closed"):
		return fmt.Errorf("%w: %v", driver.ErrNoSuchWindow, err)
	}
	return err
}
