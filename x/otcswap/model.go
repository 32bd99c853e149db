package otcswap

import (
	"encoding/binary"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Trade{}, migration.NoModification)
}

var _ orm.CloneableData = (*Trade)(nil)

// Validate ensures the trade is valid
func (t *Trade) Validate() error {
	if err := t.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := t.Maker.Validate(); err != nil {
		return errors.Wrap(err, "maker")
	}
	if err := validateCoin(t.Deposit); err != nil {
		return errors.Wrap(err, "deposit")
	}
	if err := validateCoin(t.Price); err != nil {
		return errors.Wrap(err, "price")
	}
	if t.Deposit.Ticker == t.Price.Ticker {
		return errors.Wrapf(errors.ErrCurrency, "deposit and price both in %s", t.Deposit.Ticker)
	}
	if t.CreatedAt == 0 {
		return errors.Wrap(errors.ErrInput, "created at is required")
	}
	if err := t.CreatedAt.Validate(); err != nil {
		return errors.Wrap(err, "invalid created at value")
	}
	if err := t.Address.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	return nil
}

// Copy makes a new trade
func (t *Trade) Copy() orm.CloneableData {
	return &Trade{
		Metadata:  t.Metadata.Copy(),
		Seed:      t.Seed,
		Maker:     t.Maker,
		Deposit:   t.Deposit,
		Price:     t.Price,
		CreatedAt: t.CreatedAt,
		Address:   t.Address.Clone(),
	}
}

// AsTrade extracts a *Trade value or nil from the object
// Must be called on a Bucket result that is a *Trade,
// will panic on bad type.
func AsTrade(obj orm.Object) *Trade {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*Trade)
}

// TradeKey returns the primary key of the trade opened by the maker with
// the given seed. The key is the maker address followed by the little
// endian encoding of the seed. A maker cannot open two trades with the
// same seed.
func TradeKey(maker weave.Address, seed uint64) []byte {
	key := make([]byte, len(maker)+8)
	copy(key, maker)
	binary.LittleEndian.PutUint64(key[len(maker):], seed)
	return key
}

// Condition calculates the custody account condition of a trade given
// the key. The condition address holds the deposit until the trade is
// settled or returned.
func Condition(key []byte) weave.Condition {
	return weave.NewCondition("otcswap", "trade", key)
}

func NewBucket() orm.ModelBucket {
	b := orm.NewModelBucket("trade", &Trade{},
		orm.WithIndex("maker", idxMaker, false),
	)
	return migration.NewModelBucket("otcswap", b)
}

func toTrade(obj orm.Object) (*Trade, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "Cannot take index of nil")
	}
	t, ok := obj.Value().(*Trade)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "Can only take index of Trade")
	}
	return t, nil
}

func idxMaker(obj orm.Object) ([]byte, error) {
	t, err := toTrade(obj)
	if err != nil {
		return nil, err
	}
	return t.Maker, nil
}
