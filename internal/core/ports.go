package core

import (
	"context"
	"crowdfund/internal/ethereum"
	"crowdfund/internal/repository"
	"crowdfund/internal/wallet"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Contract . Contract
type Contract interface {
	CreateCampaign(ctx context.Context, opts *bind.TransactOpts, owner common.Address, title, description string, target, deadline *big.Int, image string) (*types.Transaction, error)
	DonateToCampaign(ctx context.Context, opts *bind.TransactOpts, id *big.Int) (*types.Transaction, error)
	GetCampaigns(ctx context.Context) ([]ethereum.RawCampaign, error)
	GetDonars(ctx context.Context, id *big.Int) (ethereum.Donors, error)
}

//counterfeiter:generate -o fake -fake-name Wallet . Wallet
type Wallet interface {
	Connect(ctx context.Context) (wallet.Connection, error)
	TransactOpts(ctx context.Context, value *big.Int) (*bind.TransactOpts, error)
}

//counterfeiter:generate -o fake -fake-name Journal . Journal
type Journal interface {
	RecordTransaction(ctx context.Context, entry repository.Transaction) error
	ListTransactions(ctx context.Context, from string) ([]repository.Transaction, error)
}

//counterfeiter:generate -o fake -fake-name ReceiptFetcher . ReceiptFetcher
type ReceiptFetcher interface {
	FetchReceipts(ctx context.Context, hashes []string) ([]*ethereum.Receipt, error)
}
