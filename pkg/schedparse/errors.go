package schedparse

import "errors"

// ErrUnresolvedTime is returned when no valid calendar instant could be
// constructed from the text. The message is user-facing and rendered as-is by
// delivery layers.
var ErrUnresolvedTime = errors.New("Could not parse time/date")
