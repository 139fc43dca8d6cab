package chain

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Hard-coded ABI fragments covering exactly the surface the gateway calls.
// The factory and child contracts themselves are out of scope for this
// repository — they are opaque resources living at the configured RPC
// endpoint (spec §1's explicit Non-goal).
const factoryABIJSON = `[
	{"type":"function","name":"tokenCount","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"getTokenInfo","stateMutability":"view","inputs":[{"name":"id","type":"uint256"}],
	 "outputs":[
		{"name":"kindTag","type":"uint8"},
		{"name":"tokenAddress","type":"address"},
		{"name":"owner","type":"address"},
		{"name":"name","type":"string"},
		{"name":"symbol","type":"string"},
		{"name":"metadataURI","type":"string"},
		{"name":"createdAt","type":"uint256"},
		{"name":"burnable","type":"bool"},
		{"name":"pausable","type":"bool"},
		{"name":"listedOnDex","type":"bool"}
	 ]},
	{"type":"function","name":"getOwnerTokens","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],
	 "outputs":[{"name":"ids","type":"uint256[]"}]},
	{"type":"function","name":"getTokenIdByAddress","stateMutability":"view","inputs":[{"name":"addr","type":"address"}],
	 "outputs":[{"name":"id","type":"uint256"}]},
	{"type":"function","name":"createERC20","stateMutability":"nonpayable","inputs":[
		{"name":"name","type":"string"},
		{"name":"symbol","type":"string"},
		{"name":"supply","type":"uint256"},
		{"name":"metadataURI","type":"string"},
		{"name":"burnable","type":"bool"},
		{"name":"pausable","type":"bool"},
		{"name":"listOnDex","type":"bool"}
	 ],"outputs":[]},
	{"type":"function","name":"createERC721","stateMutability":"nonpayable","inputs":[
		{"name":"name","type":"string"},
		{"name":"symbol","type":"string"},
		{"name":"baseURI","type":"string"},
		{"name":"burnable","type":"bool"}
	 ],"outputs":[]},
	{"type":"function","name":"updateMetadataURI","stateMutability":"nonpayable","inputs":[
		{"name":"id","type":"uint256"},{"name":"uri","type":"string"}
	 ],"outputs":[]},
	{"type":"function","name":"listOnETCSwap","stateMutability":"nonpayable","inputs":[
		{"name":"id","type":"uint256"}
	 ],"outputs":[]},
	{"type":"event","name":"TokenCreated","anonymous":false,"inputs":[
		{"name":"id","type":"uint256","indexed":true},
		{"name":"kindTag","type":"uint8","indexed":false},
		{"name":"tokenAddress","type":"address","indexed":true},
		{"name":"owner","type":"address","indexed":false},
		{"name":"name","type":"string","indexed":false},
		{"name":"symbol","type":"string","indexed":false},
		{"name":"metadataURI","type":"string","indexed":false}
	 ]},
	{"type":"event","name":"TokenListedOnETCSwap","anonymous":false,"inputs":[
		{"name":"id","type":"uint256","indexed":true},
		{"name":"tokenAddress","type":"address","indexed":false}
	 ]},
	{"type":"event","name":"MetadataURIUpdated","anonymous":false,"inputs":[
		{"name":"id","type":"uint256","indexed":true},
		{"name":"uri","type":"string","indexed":false}
	 ]}
]`

// fungibleABIJSON covers the minimal surface needed for an ERC-20-shaped
// child: name, symbol, decimals, balance, transfer, mint, burn, and
// pause/unpause.
const fungibleABIJSON = `[
	{"type":"function","name":"name","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"symbol","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"decimals","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"burn","stateMutability":"nonpayable","inputs":[{"name":"amount","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"pause","stateMutability":"nonpayable","inputs":[],"outputs":[]},
	{"type":"function","name":"unpause","stateMutability":"nonpayable","inputs":[],"outputs":[]}
]`

// nonFungibleABIJSON covers the minimal surface needed for an ERC-721-shaped
// child: name, symbol, ownerOf-style balance, transferFrom, mint-with-uri,
// burn-by-unit.
const nonFungibleABIJSON = `[
	{"type":"function","name":"name","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"symbol","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"transferFrom","stateMutability":"nonpayable","inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"unitId","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"uri","type":"string"}],"outputs":[{"name":"unitId","type":"uint256"}]},
	{"type":"function","name":"burn","stateMutability":"nonpayable","inputs":[{"name":"unitId","type":"uint256"}],"outputs":[]}
]`

var (
	factoryABI     abi.ABI
	fungibleABI    abi.ABI
	nonFungibleABI abi.ABI
)

func init() {
	var err error
	factoryABI, err = abi.JSON(strings.NewReader(factoryABIJSON))
	if err != nil {
		panic("chain: invalid factory ABI: " + err.Error())
	}
	fungibleABI, err = abi.JSON(strings.NewReader(fungibleABIJSON))
	if err != nil {
		panic("chain: invalid fungible child ABI: " + err.Error())
	}
	nonFungibleABI, err = abi.JSON(strings.NewReader(nonFungibleABIJSON))
	if err != nil {
		panic("chain: invalid non-fungible child ABI: " + err.Error())
	}
}
