package evm

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// creditContractABI is the call surface of the hydrogen credit contract.
const creditContractABI = `[
  {"type":"function","name":"issueCredit","stateMutability":"nonpayable",
   "inputs":[{"name":"creditId","type":"string"},{"name":"holder","type":"address"},{"name":"amount","type":"uint256"}],
   "outputs":[]},
  {"type":"function","name":"transferCredit","stateMutability":"nonpayable",
   "inputs":[{"name":"creditId","type":"string"},{"name":"to","type":"address"}],
   "outputs":[]},
  {"type":"function","name":"retireCredit","stateMutability":"nonpayable",
   "inputs":[{"name":"creditId","type":"string"}],
   "outputs":[]},
  {"type":"function","name":"getCredit","stateMutability":"view",
   "inputs":[{"name":"creditId","type":"string"}],
   "outputs":[{"name":"","type":"tuple","components":[
     {"name":"id","type":"string"},
     {"name":"amount","type":"uint256"},
     {"name":"timestamp","type":"uint256"},
     {"name":"retired","type":"bool"},
     {"name":"issuer","type":"address"},
     {"name":"holder","type":"address"}]}]},
  {"type":"function","name":"getAllCredits","stateMutability":"view",
   "inputs":[],
   "outputs":[{"name":"","type":"tuple[]","components":[
     {"name":"id","type":"string"},
     {"name":"amount","type":"uint256"},
     {"name":"timestamp","type":"uint256"},
     {"name":"retired","type":"bool"},
     {"name":"issuer","type":"address"},
     {"name":"holder","type":"address"}]}]}
]`

// creditRecord mirrors the contract's credit struct. Field names must match
// the ABI component names for abi.ConvertType.
type creditRecord struct {
	Id        string
	Amount    *big.Int
	Timestamp *big.Int
	Retired   bool
	Issuer    common.Address
	Holder    common.Address
}

func parseCreditABI() (abi.ABI, error) {
	return abi.JSON(strings.NewReader(creditContractABI))
}
