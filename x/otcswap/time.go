package otcswap

import (
	"time"

	"github.com/iov-one/weave"
)

// SettleTimelock is the period counted from the trade creation during
// which the trade cannot be settled. Returning the trade to the maker is
// possible at any time.
const SettleTimelock = 5 * 24 * time.Hour

// IsExpired returns true if given time is in the past as compared to the "now"
// as declared for the block. Expiration is inclusive, meaning that if current
// time is equal to the expiration time than this function returns true.
//
// This function panic if the block time is not provided in the context. This
// must never happen. The panic is here to prevent from broken setup to be
// processing data incorrectly.
func IsExpired(ctx weave.Context, t weave.UnixTime) bool {
	return t <= blockNow(ctx)
}

// blockNow returns the current time as declared for the block.
func blockNow(ctx weave.Context) weave.UnixTime {
	blockTime, err := weave.BlockTime(ctx)
	if err != nil {
		panic("block time is not present")
	}
	return weave.AsUnixTime(blockTime)
}
