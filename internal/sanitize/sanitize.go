package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Strict policy: no tags, no attributes. User text is stored as plain
// text only.
var policy = bluemonday.StrictPolicy()

// Strip removes all markup from user-supplied text and trims surrounding
// whitespace. The result may be empty; callers validate emptiness after
// stripping, not before.
func Strip(s string) string {
	return strings.TrimSpace(policy.Sanitize(s))
}
