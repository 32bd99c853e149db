package otcswap

import (
	"github.com/iov-one/weave/errors"
)

// ErrTradeLocked is returned when a trade settlement is attempted before
// the timelock counted from the trade creation has elapsed.
var ErrTradeLocked = errors.Register(1100, "trade still locked")
