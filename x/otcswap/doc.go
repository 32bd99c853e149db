/*

Package otcswap implements a custodial over-the-counter token trade.

A maker locks an amount of one token (the deposit) in a custody account
and names a price in another token. Any taker can settle the trade by
paying the price: the price goes to the maker, the deposit goes to the
taker, and the trade is deleted. The maker can return the trade at any
time and recover the deposit.

Settlement is gated by a timelock: a trade cannot be settled before five
days have passed since its creation. The return path is deliberately not
gated, so a maker is never trapped waiting for the lock to elapse.

The custody account is a condition-derived address computed from the
maker address and a maker-chosen seed. No private key controls it; only
the handlers in this package can move its funds. Anyone knowing the
maker and the seed can recompute the trade key and the custody address,
so trades are discoverable without an index.

Each trade ends in exactly one of two ways: settled or returned. Both
delete the record and drain the custody account, so a second settle or
return against the same trade fails with a not found error.

*/
package otcswap
