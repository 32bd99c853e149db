package otcswap

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
	"github.com/iov-one/weave/x/cash"
)

const (
	// pay trade cost up-front
	createTradeCost int64 = 300
	settleTradeCost int64 = 0
	returnTradeCost int64 = 0
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r weave.Registry, auth x.Authenticator, cashctrl cash.Controller) {
	r = migration.SchemaMigratingRegistry("otcswap", r)
	bucket := NewBucket()

	r.Handle(&CreateMsg{}, CreateTradeHandler{auth, bucket, cashctrl})
	r.Handle(&SettleMsg{}, SettleTradeHandler{auth, bucket, cashctrl})
	r.Handle(&ReturnMsg{}, ReturnTradeHandler{auth, bucket, cashctrl})
}

// RegisterQuery will register this bucket as "/trades"
func RegisterQuery(qr weave.QueryRouter) {
	NewBucket().Register("trades", qr)
}

// CreateTradeHandler opens a trade and locks the deposit in custody.
type CreateTradeHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	bank   cash.CoinMover
}

var _ weave.Handler = CreateTradeHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h CreateTradeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	_, _, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	res := &weave.CheckResult{
		GasAllocated: createTradeCost,
	}
	return res, nil
}

// Deliver persists the trade and moves the deposit from the maker wallet
// to the custody account if all preconditions are met.
func (h CreateTradeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, maker, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	key := TradeKey(maker, msg.Seed)
	trade := &Trade{
		Metadata:  msg.Metadata,
		Seed:      msg.Seed,
		Maker:     maker,
		Deposit:   msg.Deposit,
		Price:     msg.Price,
		CreatedAt: blockNow(ctx),
		Address:   Condition(key).Address(),
	}
	if _, err := h.bucket.Put(db, key, trade); err != nil {
		return nil, errors.Wrap(err, "cannot store trade")
	}

	// Lock the deposit in the custody account.
	if err := cash.MoveCoins(db, h.bank, maker, trade.Address, coin.Coins{msg.Deposit}); err != nil {
		return nil, err
	}

	// return the trade key to use in future calls
	return &weave.DeliverResult{Data: key}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h CreateTradeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CreateMsg, weave.Address, error) {
	var msg CreateMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	// Maker must authorize this (if not set, defaults to MainSigner).
	maker := msg.Maker
	if maker == nil {
		signer := x.MainSigner(ctx, h.auth)
		if signer == nil {
			return nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
		}
		maker = signer.Address()
	} else if !h.auth.HasAddress(ctx, maker) {
		return nil, nil, errors.ErrUnauthorized
	}

	// A (maker, seed) pair maps to exactly one trade.
	switch err := h.bucket.Has(db, TradeKey(maker, msg.Seed)); {
	case err == nil:
		return nil, nil, errors.Wrapf(errors.ErrDuplicate, "trade with seed %d exists", msg.Seed)
	case !errors.ErrNotFound.Is(err):
		return nil, nil, errors.Wrap(err, "cannot check trade existence")
	}

	return &msg, maker, nil
}

// SettleTradeHandler executes a trade. The signer pays the price to the
// maker and receives the custody balance in exchange.
type SettleTradeHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	bank   cash.Controller
}

var _ weave.Handler = SettleTradeHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h SettleTradeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	_, _, _, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	return &weave.CheckResult{GasAllocated: settleTradeCost}, nil
}

// Deliver swaps the funds. The taker pays the price to the maker, the
// custody balance goes to the taker and the emptied trade is deleted.
func (h SettleTradeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, trade, taker, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// The taker pays the asking price directly to the maker.
	if err := cash.MoveCoins(db, h.bank, taker, trade.Maker, coin.Coins{trade.Price}); err != nil {
		return nil, err
	}

	// The taker receives everything held in custody.
	available, err := h.bank.Balance(db, trade.Address)
	if err != nil {
		return nil, err
	}
	if err := cash.MoveCoins(db, h.bank, trade.Address, taker, available); err != nil {
		return nil, err
	}

	// Delete trade when empty.
	if err := h.bucket.Delete(db, msg.TradeID); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h SettleTradeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*SettleMsg, *Trade, weave.Address, error) {
	var msg SettleMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}

	var trade Trade
	if err := h.bucket.One(db, msg.TradeID, &trade); err != nil {
		return nil, nil, nil, errors.Wrap(err, "cannot load trade from the store")
	}

	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}

	unlocked := trade.CreatedAt.Add(SettleTimelock)
	if !IsExpired(ctx, unlocked) {
		return nil, nil, nil, errors.Wrapf(ErrTradeLocked, "settlement possible at %s", unlocked)
	}

	return &msg, &trade, signer.Address(), nil
}

// ReturnTradeHandler cancels a trade and gives the custody balance back
// to the maker. Not gated by the timelock.
type ReturnTradeHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	bank   cash.Controller
}

var _ weave.Handler = ReturnTradeHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h ReturnTradeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	_, _, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	return &weave.CheckResult{GasAllocated: returnTradeCost}, nil
}

// Deliver moves all the tokens from the custody account back to the maker
// if all preconditions are met. The trade is deleted afterwards.
func (h ReturnTradeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, trade, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	available, err := h.bank.Balance(db, trade.Address)
	if err != nil {
		return nil, err
	}

	// withdraw all coins from custody back to the maker
	if err := cash.MoveCoins(db, h.bank, trade.Address, trade.Maker, available); err != nil {
		return nil, err
	}
	if err := h.bucket.Delete(db, msg.TradeID); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h ReturnTradeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*ReturnMsg, *Trade, error) {
	var msg ReturnMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	var trade Trade
	if err := h.bucket.One(db, msg.TradeID, &trade); err != nil {
		return nil, nil, errors.Wrap(err, "cannot load trade from the store")
	}

	// Only the maker can take the deposit back.
	if !h.auth.HasAddress(ctx, trade.Maker) {
		return nil, nil, errors.ErrUnauthorized
	}

	return &msg, &trade, nil
}
