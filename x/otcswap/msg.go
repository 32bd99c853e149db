package otcswap

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	// Migration needs to be registered for every message introduced in the codec.
	// This is the convention to message versioning.
	migration.MustRegister(1, &CreateMsg{}, migration.NoModification)
	migration.MustRegister(1, &SettleMsg{}, migration.NoModification)
	migration.MustRegister(1, &ReturnMsg{}, migration.NoModification)
}

const (
	pathCreateTrade = "otcswap/create"
	pathSettleTrade = "otcswap/settle"
	pathReturnTrade = "otcswap/return"
)

// trade key is the maker address followed by the 8 byte seed
var tradeKeySize = weave.AddressLength + 8

var _ weave.Msg = (*CreateMsg)(nil)
var _ weave.Msg = (*SettleMsg)(nil)
var _ weave.Msg = (*ReturnMsg)(nil)

// ROUTING, Path method fulfills weave.Msg interface to allow routing

func (CreateMsg) Path() string {
	return pathCreateTrade
}

func (SettleMsg) Path() string {
	return pathSettleTrade
}

func (ReturnMsg) Path() string {
	return pathReturnTrade
}

// VALIDATION, Validate method makes sure basic rules are enforced upon input data and fulfills weave.Msg interface

func (m *CreateMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if m.Maker != nil {
		if err := m.Maker.Validate(); err != nil {
			return errors.Wrap(err, "maker")
		}
	}
	if err := validateCoin(m.Deposit); err != nil {
		return errors.Wrap(err, "deposit")
	}
	if err := validateCoin(m.Price); err != nil {
		return errors.Wrap(err, "price")
	}
	if m.Deposit.Ticker == m.Price.Ticker {
		return errors.Wrapf(errors.ErrCurrency, "deposit and price both in %s", m.Deposit.Ticker)
	}
	return nil
}

func (m *SettleMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return validateTradeID(m.TradeID)
}

func (m *ReturnMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return validateTradeID(m.TradeID)
}

// validateCoin makes sure the coin is set, positive and of valid format
func validateCoin(c *coin.Coin) error {
	if c == nil {
		return errors.Wrap(errors.ErrAmount, "is required")
	}
	if err := c.Validate(); err != nil {
		return errors.Wrap(err, "invalid coin")
	}
	if !c.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount %q", c)
	}
	return nil
}

func validateTradeID(id []byte) error {
	if len(id) != tradeKeySize {
		return errors.Wrapf(errors.ErrInput, "trade id must be exactly %d bytes", tradeKeySize)
	}
	return nil
}
