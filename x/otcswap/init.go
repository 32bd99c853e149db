package otcswap

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/x/cash"
	"github.com/pkg/errors"
)

var _ weave.Initializer = (*Initializer)(nil)

// Initializer fulfils the Initializer interface to load data from the genesis file
type Initializer struct {
	Minter cash.CoinMinter
}

// FromGenesis will parse initial trade info from genesis and save it in the database.
func (i *Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, db weave.KVStore) error {
	var trades []struct {
		Maker     weave.Address  `json:"maker"`
		Seed      uint64         `json:"seed"`
		Deposit   *coin.Coin     `json:"deposit"`
		Price     *coin.Coin     `json:"price"`
		CreatedAt weave.UnixTime `json:"created_at"`
	}

	if err := opts.ReadOptions("otcswap", &trades); err != nil {
		return err
	}

	bucket := NewBucket()
	for j, t := range trades {
		key := TradeKey(t.Maker, t.Seed)
		trade := Trade{
			Metadata:  &weave.Metadata{Schema: 1},
			Seed:      t.Seed,
			Maker:     t.Maker,
			Deposit:   t.Deposit,
			Price:     t.Price,
			CreatedAt: t.CreatedAt,
			Address:   Condition(key).Address(),
		}
		if err := trade.Validate(); err != nil {
			return errors.Wrapf(err, "invalid trade at position: %d", j)
		}
		if _, err := bucket.Put(db, key, &trade); err != nil {
			return errors.Wrapf(err, "cannot store trade at position: %d", j)
		}
		// The deposit was never withdrawn from any account, issue it
		// directly into custody.
		if err := i.Minter.CoinMint(db, trade.Address, *t.Deposit); err != nil {
			return errors.Wrap(err, "failed to issue coins")
		}
	}
	return nil
}
