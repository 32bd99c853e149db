package app

import (
	"github.com/iov-one/otcswapd/x/otcswap"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/commands"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
)

// Examples generates some example structs to dump out with testgen
func Examples() []commands.Example {
	wallet := &cash.Set{
		Coins: []*coin.Coin{
			{Whole: 50000, Ticker: "ATK"},
			{Whole: 150, Fractional: 567000, Ticker: "BTK"},
		},
	}

	priv := crypto.GenPrivKeyEd25519()
	pub := priv.PublicKey()
	user := &sigs.UserData{
		Pubkey:   pub,
		Sequence: 17,
	}

	maker := pub.Address()
	deposit := coin.NewCoin(10, 0, "ATK")
	price := coin.NewCoin(10, 0, "BTK")
	msg := &otcswap.CreateMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Maker:    maker,
		Seed:     123,
		Deposit:  &deposit,
		Price:    &price,
	}

	tradeID := otcswap.TradeKey(maker, 123)
	trade := &otcswap.Trade{
		Metadata:  &weave.Metadata{Schema: 1},
		Seed:      123,
		Maker:     maker,
		Deposit:   &deposit,
		Price:     &price,
		CreatedAt: weave.UnixTime(1567000000),
		Address:   otcswap.Condition(tradeID).Address(),
	}

	settleMsg := &otcswap.SettleMsg{
		Metadata: &weave.Metadata{Schema: 1},
		TradeID:  tradeID,
	}

	unsigned := Tx{
		Sum: &Tx_CreateTradeMsg{msg},
	}
	tx := unsigned
	sig, err := sigs.SignTx(priv, &tx, "test-123", 17)
	if err != nil {
		panic(err)
	}
	tx.Signatures = []*sigs.StdSignature{sig}

	return []commands.Example{
		{Filename: "wallet", Obj: wallet},
		{Filename: "priv_key", Obj: priv},
		{Filename: "pub_key", Obj: pub},
		{Filename: "user", Obj: user},
		{Filename: "trade", Obj: trade},
		{Filename: "create_trade_msg", Obj: msg},
		{Filename: "settle_trade_msg", Obj: settleMsg},
		{Filename: "unsigned_tx", Obj: &unsigned},
		{Filename: "signed_tx", Obj: &tx},
	}
}
