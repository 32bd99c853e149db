package otcswap_test

import (
	"context"
	"testing"
	"time"

	"github.com/iov-one/otcswapd/x/otcswap"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/iov-one/weave/x"
	"github.com/iov-one/weave/x/cash"
)

var (
	blockNow = time.Now()
)

func TestCreateTradeHandler(t *testing.T) {
	alice := weavetest.NewCondition()
	pete := weavetest.NewCondition()

	deposit := coin.NewCoin(10, 0, "ATK")
	price := coin.NewCoin(10, 0, "BTK")

	bank := cash.NewBucket()
	ctrl := cash.NewController(bank)
	bucket := otcswap.NewBucket()

	setBalance := func(t *testing.T, db weave.KVStore, addr weave.Address, coins coin.Coins) {
		acct, err := cash.WalletWith(addr, coins...)
		assert.Nil(t, err)
		err = bank.Save(db, acct)
		assert.Nil(t, err)
	}

	r := app.NewRouter()
	authenticator := &weavetest.CtxAuth{Key: "auth"}
	auth := x.ChainAuth(authenticator)
	otcswap.RegisterRoutes(r, auth, ctrl)

	tradeID := otcswap.TradeKey(alice.Address(), 123)

	cases := map[string]struct {
		setup          func(ctx weave.Context, db weave.KVStore) weave.Context
		check          func(t *testing.T, db weave.KVStore)
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		mutator        func(msg *otcswap.CreateMsg)
	}{
		"Happy path": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				setBalance(t, db, alice.Address(), coin.Coins{&deposit})
				return authenticator.SetConditions(ctx, alice)
			},
			check: func(t *testing.T, db weave.KVStore) {
				var trade otcswap.Trade
				assert.Nil(t, bucket.One(db, tradeID, &trade))
				assert.Equal(t, alice.Address(), trade.Maker)
				assert.Equal(t, uint64(123), trade.Seed)
				assert.Equal(t, weave.AsUnixTime(blockNow), trade.CreatedAt)
				assert.Equal(t, otcswap.Condition(tradeID).Address(), trade.Address)

				// the deposit must be locked in custody
				locked, err := ctrl.Balance(db, trade.Address)
				assert.Nil(t, err)
				want, err := coin.CombineCoins(deposit)
				assert.Nil(t, err)
				assert.Equal(t, true, locked.Equals(want))

				// and gone from the maker wallet
				left, err := ctrl.Balance(db, alice.Address())
				assert.Nil(t, err)
				assert.Equal(t, false, left.IsPositive())
			},
		},
		"Maker defaults to the main signer": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				setBalance(t, db, alice.Address(), coin.Coins{&deposit})
				return authenticator.SetConditions(ctx, alice)
			},
			mutator: func(msg *otcswap.CreateMsg) {
				msg.Maker = nil
			},
			check: func(t *testing.T, db weave.KVStore) {
				var trade otcswap.Trade
				assert.Nil(t, bucket.One(db, tradeID, &trade))
				assert.Equal(t, alice.Address(), trade.Maker)
			},
		},
		"Invalid msg": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				return authenticator.SetConditions(ctx, alice)
			},
			mutator: func(msg *otcswap.CreateMsg) {
				msg.Price = &deposit
			},
			wantCheckErr:   errors.ErrCurrency,
			wantDeliverErr: errors.ErrCurrency,
		},
		"Invalid auth": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				return authenticator.SetConditions(ctx, pete)
			},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"No signer at all": {
			mutator: func(msg *otcswap.CreateMsg) {
				msg.Maker = nil
			},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"Empty account": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				return authenticator.SetConditions(ctx, alice)
			},
			wantCheckErr:   nil,
			wantDeliverErr: errors.ErrEmpty,
		},
		"Duplicate seed": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				double, err := coin.CombineCoins(deposit, deposit)
				assert.Nil(t, err)
				setBalance(t, db, alice.Address(), double)
				ctx = authenticator.SetConditions(ctx, alice)
				tx := &weavetest.Tx{Msg: &otcswap.CreateMsg{
					Metadata: &weave.Metadata{Schema: 1},
					Maker:    alice.Address(),
					Seed:     123,
					Deposit:  &deposit,
					Price:    &price,
				}}
				_, err = r.Deliver(ctx, db, tx)
				assert.Nil(t, err)
				return ctx
			},
			wantCheckErr:   errors.ErrDuplicate,
			wantDeliverErr: errors.ErrDuplicate,
		},
	}

	for name, spec := range cases {
		createMsg := &otcswap.CreateMsg{
			Metadata: &weave.Metadata{Schema: 1},
			Maker:    alice.Address(),
			Seed:     123,
			Deposit:  &deposit,
			Price:    &price,
		}
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "otcswap", "cash")

			ctx := weave.WithHeight(context.Background(), 500)
			ctx = weave.WithBlockTime(ctx, blockNow)
			if spec.setup != nil {
				ctx = spec.setup(ctx, db)
			}
			if spec.mutator != nil {
				spec.mutator(createMsg)
			}
			cache := db.CacheWrap()

			tx := &weavetest.Tx{Msg: createMsg}
			if _, err := r.Check(ctx, cache, tx); !spec.wantCheckErr.Is(err) {
				t.Fatalf("check expected: %+v  but got %+v", spec.wantCheckErr, err)
			}

			cache.Discard()

			if _, err := r.Deliver(ctx, cache, tx); !spec.wantDeliverErr.Is(err) {
				t.Fatalf("check expected: %+v  but got %+v", spec.wantDeliverErr, err)
			}
			if spec.check != nil {
				spec.check(t, cache)
			}
		})
	}
}

func TestSettleTradeHandler(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()

	deposit := coin.NewCoin(10, 0, "ATK")
	price := coin.NewCoin(10, 0, "BTK")
	partial := coin.NewCoin(5, 0, "BTK")

	bank := cash.NewBucket()
	ctrl := cash.NewController(bank)
	bucket := otcswap.NewBucket()

	setBalance := func(t *testing.T, db weave.KVStore, addr weave.Address, coins coin.Coins) {
		acct, err := cash.WalletWith(addr, coins...)
		assert.Nil(t, err)
		err = bank.Save(db, acct)
		assert.Nil(t, err)
	}

	r := app.NewRouter()
	authenticator := &weavetest.CtxAuth{Key: "auth"}
	auth := x.ChainAuth(authenticator)
	otcswap.RegisterRoutes(r, auth, ctrl)

	tradeID := otcswap.TradeKey(alice.Address(), 123)
	custody := otcswap.Condition(tradeID).Address()

	cases := map[string]struct {
		takerCoins     coin.Coins
		at             time.Time
		noSigner       bool
		settleBefore   bool
		check          func(t *testing.T, db weave.KVStore)
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		mutator        func(msg *otcswap.SettleMsg)
	}{
		"Happy path": {
			takerCoins: coin.Coins{&price},
			check: func(t *testing.T, db weave.KVStore) {
				// the maker received the asking price
				got, err := ctrl.Balance(db, alice.Address())
				assert.Nil(t, err)
				want, err := coin.CombineCoins(price)
				assert.Nil(t, err)
				assert.Equal(t, true, got.Equals(want))

				// the taker received the deposit
				got, err = ctrl.Balance(db, bob.Address())
				assert.Nil(t, err)
				want, err = coin.CombineCoins(deposit)
				assert.Nil(t, err)
				assert.Equal(t, true, got.Equals(want))

				// custody is drained and the trade is gone
				left, err := ctrl.Balance(db, custody)
				assert.Nil(t, err)
				assert.Equal(t, false, left.IsPositive())
				var trade otcswap.Trade
				if err := bucket.One(db, tradeID, &trade); !errors.ErrNotFound.Is(err) {
					t.Fatalf("expected the trade to be deleted, got %+v", err)
				}
			},
		},
		// SettleTimelock is a fixed package constant, not a per-trade
		// or genesis parameter. The boundary is inclusive.
		"Unlocks exactly at the timelock boundary": {
			takerCoins: coin.Coins{&price},
			at:         blockNow.Add(otcswap.SettleTimelock),
		},
		"Still locked": {
			takerCoins:     coin.Coins{&price},
			at:             blockNow.Add(otcswap.SettleTimelock - time.Second),
			wantCheckErr:   otcswap.ErrTradeLocked,
			wantDeliverErr: otcswap.ErrTradeLocked,
		},
		"Unknown trade": {
			takerCoins: coin.Coins{&price},
			mutator: func(msg *otcswap.SettleMsg) {
				msg.TradeID = otcswap.TradeKey(bob.Address(), 123)
			},
			wantCheckErr:   errors.ErrNotFound,
			wantDeliverErr: errors.ErrNotFound,
		},
		"No signer": {
			takerCoins:     coin.Coins{&price},
			noSigner:       true,
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"Taker has no funds": {
			wantCheckErr:   nil,
			wantDeliverErr: errors.ErrEmpty,
		},
		"Taker has insufficient funds": {
			takerCoins:     coin.Coins{&partial},
			wantCheckErr:   nil,
			wantDeliverErr: errors.ErrAmount,
		},
		"Already settled": {
			takerCoins:     coin.Coins{&price},
			settleBefore:   true,
			wantCheckErr:   errors.ErrNotFound,
			wantDeliverErr: errors.ErrNotFound,
		},
	}

	for name, spec := range cases {
		settleMsg := &otcswap.SettleMsg{
			Metadata: &weave.Metadata{Schema: 1},
			TradeID:  tradeID,
		}
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "otcswap", "cash")

			setBalance(t, db, alice.Address(), coin.Coins{&deposit})
			if spec.takerCoins != nil {
				setBalance(t, db, bob.Address(), spec.takerCoins)
			}

			// the maker opens the trade first
			createCtx := weave.WithHeight(context.Background(), 500)
			createCtx = weave.WithBlockTime(createCtx, blockNow)
			createCtx = authenticator.SetConditions(createCtx, alice)
			createTx := &weavetest.Tx{Msg: &otcswap.CreateMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Maker:    alice.Address(),
				Seed:     123,
				Deposit:  &deposit,
				Price:    &price,
			}}
			_, err := r.Deliver(createCtx, db, createTx)
			assert.Nil(t, err)

			at := spec.at
			if at.IsZero() {
				at = blockNow.Add(otcswap.SettleTimelock + time.Second)
			}
			ctx := weave.WithHeight(context.Background(), 501)
			ctx = weave.WithBlockTime(ctx, at)
			if !spec.noSigner {
				ctx = authenticator.SetConditions(ctx, bob)
			}
			if spec.mutator != nil {
				spec.mutator(settleMsg)
			}

			tx := &weavetest.Tx{Msg: settleMsg}
			if spec.settleBefore {
				_, err := r.Deliver(ctx, db, tx)
				assert.Nil(t, err)
			}
			cache := db.CacheWrap()

			if _, err := r.Check(ctx, cache, tx); !spec.wantCheckErr.Is(err) {
				t.Fatalf("check expected: %+v  but got %+v", spec.wantCheckErr, err)
			}

			cache.Discard()

			if _, err := r.Deliver(ctx, cache, tx); !spec.wantDeliverErr.Is(err) {
				t.Fatalf("check expected: %+v  but got %+v", spec.wantDeliverErr, err)
			}
			if spec.check != nil {
				spec.check(t, cache)
			}
		})
	}
}

func TestReturnTradeHandler(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()

	deposit := coin.NewCoin(10, 0, "ATK")
	price := coin.NewCoin(10, 0, "BTK")

	bank := cash.NewBucket()
	ctrl := cash.NewController(bank)
	bucket := otcswap.NewBucket()

	setBalance := func(t *testing.T, db weave.KVStore, addr weave.Address, coins coin.Coins) {
		acct, err := cash.WalletWith(addr, coins...)
		assert.Nil(t, err)
		err = bank.Save(db, acct)
		assert.Nil(t, err)
	}

	r := app.NewRouter()
	authenticator := &weavetest.CtxAuth{Key: "auth"}
	auth := x.ChainAuth(authenticator)
	otcswap.RegisterRoutes(r, auth, ctrl)

	tradeID := otcswap.TradeKey(alice.Address(), 123)
	custody := otcswap.Condition(tradeID).Address()

	cases := map[string]struct {
		at             time.Time
		signer         weave.Condition
		returnBefore   bool
		check          func(t *testing.T, db weave.KVStore)
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		mutator        func(msg *otcswap.ReturnMsg)
	}{
		// the maker does not have to wait for the timelock
		"Happy path, still locked": {
			signer: alice,
			check: func(t *testing.T, db weave.KVStore) {
				// the deposit is back in the maker wallet
				got, err := ctrl.Balance(db, alice.Address())
				assert.Nil(t, err)
				want, err := coin.CombineCoins(deposit)
				assert.Nil(t, err)
				assert.Equal(t, true, got.Equals(want))

				// custody is drained and the trade is gone
				left, err := ctrl.Balance(db, custody)
				assert.Nil(t, err)
				assert.Equal(t, false, left.IsPositive())
				var trade otcswap.Trade
				if err := bucket.One(db, tradeID, &trade); !errors.ErrNotFound.Is(err) {
					t.Fatalf("expected the trade to be deleted, got %+v", err)
				}
			},
		},
		"Works after the timelock as well": {
			signer: alice,
			at:     blockNow.Add(otcswap.SettleTimelock + time.Second),
		},
		"Not the maker": {
			signer:         bob,
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"Unknown trade": {
			signer: alice,
			mutator: func(msg *otcswap.ReturnMsg) {
				msg.TradeID = otcswap.TradeKey(bob.Address(), 123)
			},
			wantCheckErr:   errors.ErrNotFound,
			wantDeliverErr: errors.ErrNotFound,
		},
		"Already returned": {
			signer:         alice,
			returnBefore:   true,
			wantCheckErr:   errors.ErrNotFound,
			wantDeliverErr: errors.ErrNotFound,
		},
	}

	for name, spec := range cases {
		returnMsg := &otcswap.ReturnMsg{
			Metadata: &weave.Metadata{Schema: 1},
			TradeID:  tradeID,
		}
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "otcswap", "cash")

			setBalance(t, db, alice.Address(), coin.Coins{&deposit})

			// the maker opens the trade first
			createCtx := weave.WithHeight(context.Background(), 500)
			createCtx = weave.WithBlockTime(createCtx, blockNow)
			createCtx = authenticator.SetConditions(createCtx, alice)
			createTx := &weavetest.Tx{Msg: &otcswap.CreateMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Maker:    alice.Address(),
				Seed:     123,
				Deposit:  &deposit,
				Price:    &price,
			}}
			_, err := r.Deliver(createCtx, db, createTx)
			assert.Nil(t, err)

			at := spec.at
			if at.IsZero() {
				at = blockNow.Add(time.Minute)
			}
			ctx := weave.WithHeight(context.Background(), 501)
			ctx = weave.WithBlockTime(ctx, at)
			ctx = authenticator.SetConditions(ctx, spec.signer)
			if spec.mutator != nil {
				spec.mutator(returnMsg)
			}

			tx := &weavetest.Tx{Msg: returnMsg}
			if spec.returnBefore {
				_, err := r.Deliver(ctx, db, tx)
				assert.Nil(t, err)
			}
			cache := db.CacheWrap()

			if _, err := r.Check(ctx, cache, tx); !spec.wantCheckErr.Is(err) {
				t.Fatalf("check expected: %+v  but got %+v", spec.wantCheckErr, err)
			}

			cache.Discard()

			if _, err := r.Deliver(ctx, cache, tx); !spec.wantDeliverErr.Is(err) {
				t.Fatalf("check expected: %+v  but got %+v", spec.wantDeliverErr, err)
			}
			if spec.check != nil {
				spec.check(t, cache)
			}
		})
	}
}
