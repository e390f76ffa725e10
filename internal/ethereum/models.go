package ethereum

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// RawCampaign mirrors the Campaign struct stored by the CrowdFunding contract.
// Field order follows the Solidity tuple.
type RawCampaign struct {
	Owner           common.Address
	Title           string
	Description     string
	Target          *big.Int
	Deadline        *big.Int
	AmountCollected *big.Int
	Image           string
	Donators        []common.Address
	Donations       []*big.Int
}

// Donors holds the two parallel sequences returned by getDonars.
type Donors struct {
	Addresses []common.Address
	Amounts   []*big.Int
}

type ReceiptStatus string

const (
	ReceiptPending ReceiptStatus = "pending"
	ReceiptSuccess ReceiptStatus = "success"
	ReceiptFailed  ReceiptStatus = "failed"
)

type ReceiptResult struct {
	Receipt *Receipt
	Error   error
}

type Receipt struct {
	TransactionHash string
	Status          ReceiptStatus
	BlockNumber     uint64
	GasUsed         uint64
}
