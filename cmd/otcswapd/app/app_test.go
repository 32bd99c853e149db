package app_test

import (
	"encoding/json"
	"testing"
	"time"

	swapapp "github.com/iov-one/otcswapd/cmd/otcswapd/app"
	"github.com/iov-one/otcswapd/x/otcswap"
	"github.com/iov-one/weave"
	weaveApp "github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/commands/server"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

func TestApp(t *testing.T) {
	chainID := "test-net-22"
	maker := &Signer{pk: crypto.GenPrivKeyEd25519()}
	taker := &Signer{pk: crypto.GenPrivKeyEd25519()}

	// header times are whole seconds, the store keeps unix time
	genesisTime := time.Unix(1567000000, 0).UTC()

	myApp := newTestApp(t, chainID, genesisTime, maker, taker)

	// maker starts with 50 ATK, taker with 50 BTK
	queryAndCheckWallet(t, myApp, maker.address(), coin.Coins{
		{Ticker: "ATK", Whole: 50},
	})
	queryAndCheckWallet(t, myApp, taker.address(), coin.Coins{
		{Ticker: "BTK", Whole: 50},
	})

	// open a trade, the deposit moves into custody
	createdAt := genesisTime.Add(time.Minute)
	tx := &swapapp.Tx{
		Sum: &swapapp.Tx_CreateTradeMsg{CreateTradeMsg: &otcswap.CreateMsg{
			Metadata: &weave.Metadata{Schema: 1},
			Maker:    maker.address(),
			Seed:     7,
			Deposit:  coin.NewCoinp(10, 0, "ATK"),
			Price:    coin.NewCoinp(10, 0, "BTK"),
		}},
	}
	dres := signAndCommit(t, myApp, tx, []*Signer{maker}, chainID, 2, createdAt)
	tradeID := dres.Data
	assert.Equal(t, otcswap.TradeKey(maker.address(), 7), tradeID)

	var trade otcswap.Trade
	queryOne(t, myApp, "/trades", tradeID, &trade)
	assert.Equal(t, maker.address(), trade.Maker)
	assert.Equal(t, weave.AsUnixTime(createdAt), trade.CreatedAt)
	queryAndCheckWallet(t, myApp, trade.Address, coin.Coins{
		{Ticker: "ATK", Whole: 10},
	})
	queryAndCheckWallet(t, myApp, maker.address(), coin.Coins{
		{Ticker: "ATK", Whole: 40},
	})

	// the taker cannot settle while the trade is locked
	locked := &swapapp.Tx{
		Sum: &swapapp.Tx_SettleTradeMsg{SettleTradeMsg: &otcswap.SettleMsg{
			Metadata: &weave.Metadata{Schema: 1},
			TradeID:  tradeID,
		}},
	}
	checkMustFail(t, myApp, locked, []*Signer{taker}, chainID, 3,
		createdAt.Add(time.Hour), otcswap.ErrTradeLocked.ABCICode())

	// settlement unlocks exactly when the timelock elapses
	settle := &swapapp.Tx{
		Sum: &swapapp.Tx_SettleTradeMsg{SettleTradeMsg: &otcswap.SettleMsg{
			Metadata: &weave.Metadata{Schema: 1},
			TradeID:  tradeID,
		}},
	}
	signAndCommit(t, myApp, settle, []*Signer{taker}, chainID, 3,
		createdAt.Add(otcswap.SettleTimelock))

	queryAndCheckWallet(t, myApp, maker.address(), coin.Coins{
		{Ticker: "ATK", Whole: 40},
		{Ticker: "BTK", Whole: 10},
	})
	queryAndCheckWallet(t, myApp, taker.address(), coin.Coins{
		{Ticker: "ATK", Whole: 10},
		{Ticker: "BTK", Whole: 40},
	})
	queryNone(t, myApp, "/trades", tradeID)

	// a second trade can be cancelled by the maker right away
	tx2 := &swapapp.Tx{
		Sum: &swapapp.Tx_CreateTradeMsg{CreateTradeMsg: &otcswap.CreateMsg{
			Metadata: &weave.Metadata{Schema: 1},
			Maker:    maker.address(),
			Seed:     8,
			Deposit:  coin.NewCoinp(10, 0, "ATK"),
			Price:    coin.NewCoinp(10, 0, "BTK"),
		}},
	}
	dres2 := signAndCommit(t, myApp, tx2, []*Signer{maker}, chainID, 4,
		createdAt.Add(otcswap.SettleTimelock+time.Minute))
	queryAndCheckWallet(t, myApp, maker.address(), coin.Coins{
		{Ticker: "ATK", Whole: 30},
		{Ticker: "BTK", Whole: 10},
	})

	ret := &swapapp.Tx{
		Sum: &swapapp.Tx_ReturnTradeMsg{ReturnTradeMsg: &otcswap.ReturnMsg{
			Metadata: &weave.Metadata{Schema: 1},
			TradeID:  dres2.Data,
		}},
	}
	signAndCommit(t, myApp, ret, []*Signer{maker}, chainID, 5,
		createdAt.Add(otcswap.SettleTimelock+2*time.Minute))
	queryAndCheckWallet(t, myApp, maker.address(), coin.Coins{
		{Ticker: "ATK", Whole: 40},
		{Ticker: "BTK", Whole: 10},
	})
	queryNone(t, myApp, "/trades", dres2.Data)
}

func TestGenInitOptions(t *testing.T) {
	opts, err := swapapp.GenInitOptions(nil)
	assert.Nil(t, err)

	var state struct {
		Cash []struct {
			Address string       `json:"address"`
			Coins   []*coin.Coin `json:"coins"`
		} `json:"cash"`
	}
	assert.Nil(t, json.Unmarshal(opts, &state))
	assert.Equal(t, 1, len(state.Cash))
	// funded in both tickers so a dev chain can settle a trade
	assert.Equal(t, 2, len(state.Cash[0].Coins))
	assert.Equal(t, "ATK", state.Cash[0].Coins[0].Ticker)
	assert.Equal(t, "BTK", state.Cash[0].Coins[1].Ticker)
}

type Signer struct {
	pk    *crypto.PrivateKey
	nonce int64
}

func (s *Signer) address() weave.Address {
	return s.pk.PublicKey().Address()
}

// newTestApp creates an in-memory application, funds the maker with
// ATK and the taker with BTK and commits the genesis block.
func newTestApp(t *testing.T, chainID string, genesisTime time.Time, maker, taker *Signer) weaveApp.BaseApp {
	t.Helper()

	abciApp, err := swapapp.GenerateApp(&server.Options{
		MinFee: coin.Coin{},
		Home:   "",
		Logger: log.NewNopLogger(),
		Debug:  true,
	})
	assert.Nil(t, err)
	myApp := abciApp.(weaveApp.BaseApp)

	type dict map[string]interface{}
	appState, err := json.Marshal(dict{
		"cash": []dict{
			{
				"address": maker.address(),
				"coins":   []dict{{"whole": 50, "ticker": "ATK"}},
			},
			{
				"address": taker.address(),
				"coins":   []dict{{"whole": 50, "ticker": "BTK"}},
			},
		},
		"conf": dict{
			"cash": cash.Configuration{
				CollectorAddress: weave.NewCondition("sigs", "ed25519", maker.address()).Address(),
				MinimalFee:       coin.Coin{},
			},
			"migration": dict{
				"admin": maker.address(),
			},
		},
		"initialize_schema": []dict{
			{"pkg": "cash", "ver": 1},
			{"pkg": "sigs", "ver": 1},
			{"pkg": "utils", "ver": 1},
			{"pkg": "otcswap", "ver": 1},
		},
	})
	assert.Nil(t, err)

	myApp.InitChain(abci.RequestInitChain{AppStateBytes: appState, ChainId: chainID})
	header := abci.Header{Height: 1, Time: genesisTime}
	myApp.BeginBlock(abci.RequestBeginBlock{Header: header})
	myApp.EndBlock(abci.RequestEndBlock{})
	cres := myApp.Commit()
	assert.Equal(t, true, len(cres.Data) != 0)
	assert.Equal(t, chainID, myApp.GetChainID())
	return myApp
}

// signAndCommit signs the transaction, runs it through a full block
// and requires both check and deliver to pass.
func signAndCommit(t *testing.T, myApp weaveApp.BaseApp, tx *swapapp.Tx,
	signers []*Signer, chainID string, height int64, blockTime time.Time) abci.ResponseDeliverTx {
	t.Helper()

	for _, signer := range signers {
		sig, err := sigs.SignTx(signer.pk, tx, chainID, signer.nonce)
		assert.Nil(t, err)
		signer.nonce++
		tx.Signatures = append(tx.Signatures, sig)
	}

	txBytes, err := tx.Marshal()
	assert.Nil(t, err)

	header := abci.Header{Height: height, Time: blockTime}
	myApp.BeginBlock(abci.RequestBeginBlock{Header: header})

	chres := myApp.CheckTx(txBytes)
	if chres.Code != 0 {
		t.Fatalf("check failed: %s", chres.Log)
	}
	dres := myApp.DeliverTx(txBytes)
	if dres.Code != 0 {
		t.Fatalf("deliver failed: %s", dres.Log)
	}

	myApp.EndBlock(abci.RequestEndBlock{})
	cres := myApp.Commit()
	assert.Equal(t, true, len(cres.Data) != 0)
	return dres
}

// checkMustFail signs the transaction and requires CheckTx to be
// rejected with the given code. The block is committed empty so the
// check state rolls back and nonces stay in sync.
func checkMustFail(t *testing.T, myApp weaveApp.BaseApp, tx *swapapp.Tx,
	signers []*Signer, chainID string, height int64, blockTime time.Time, code uint32) {
	t.Helper()

	for _, signer := range signers {
		sig, err := sigs.SignTx(signer.pk, tx, chainID, signer.nonce)
		assert.Nil(t, err)
		tx.Signatures = append(tx.Signatures, sig)
	}
	txBytes, err := tx.Marshal()
	assert.Nil(t, err)

	header := abci.Header{Height: height, Time: blockTime}
	myApp.BeginBlock(abci.RequestBeginBlock{Header: header})
	chres := myApp.CheckTx(txBytes)
	assert.Equal(t, code, chres.Code)
	myApp.EndBlock(abci.RequestEndBlock{})
	myApp.Commit()
}

func queryOne(t *testing.T, myApp weaveApp.BaseApp, path string, data []byte, obj weave.Persistent) {
	t.Helper()
	res := myApp.Query(abci.RequestQuery{Path: path, Data: data})
	assert.Equal(t, uint32(0), res.Code)
	assert.Equal(t, true, len(res.Value) != 0)
	assert.Nil(t, weaveApp.UnmarshalOneResult(res.Value, obj))
}

func queryNone(t *testing.T, myApp weaveApp.BaseApp, path string, data []byte) {
	t.Helper()
	res := myApp.Query(abci.RequestQuery{Path: path, Data: data})
	assert.Equal(t, uint32(0), res.Code)
	assert.Equal(t, 0, len(res.Value))
}

func queryAndCheckWallet(t *testing.T, myApp weaveApp.BaseApp, addr weave.Address, expected coin.Coins) {
	t.Helper()
	var set cash.Set
	queryOne(t, myApp, "/wallets", addr, &set)
	assert.Equal(t, []*coin.Coin(expected), set.Coins)
}
