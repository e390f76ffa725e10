package core

import (
	"context"
	"crowdfund/internal/ethereum"
	"crowdfund/internal/repository"
	"crowdfund/internal/units"
	"crowdfund/internal/wallet"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

var (
	ErrInvalidForm       error = errors.New("invalid campaign form")
	ErrInvalidCampaignID error = errors.New("invalid campaign id")
	ErrNoSigner          error = errors.New("no signing key configured")
)

// Crowdfund is a session against the CrowdFunding contract. It owns the
// connection state; every other operation is a call into the contract whose
// result is reshaped into plain records.
type Crowdfund struct {
	logs     *zap.SugaredLogger
	wallet   Wallet
	contract Contract
	journal  Journal
	receipts ReceiptFetcher

	mu      sync.RWMutex
	address string
}

// NewCrowdfund is a constructor function for the Crowdfund type. A nil wallet
// gives a read-only session: Connect fails with ErrNoSigner and state-changing
// calls with wallet.ErrNotConnected.
func NewCrowdfund(logger *zap.SugaredLogger, w Wallet, contract Contract, journal Journal, receipts ReceiptFetcher) *Crowdfund {
	return &Crowdfund{
		logs:     logger,
		wallet:   w,
		contract: contract,
		journal:  journal,
		receipts: receipts,
	}
}

// Connect runs the wallet connect flow. Failures are reported in the result,
// never as a return error.
func (c *Crowdfund) Connect(ctx context.Context) ConnectResult {
	if c.wallet == nil {
		c.logs.Errorw("wallet connect failed", "error", ErrNoSigner)
		return ConnectResult{Err: ErrNoSigner}
	}

	conn, err := c.wallet.Connect(ctx)
	if err != nil {
		c.logs.Errorw("wallet connect failed", "error", err)
		return ConnectResult{Err: err}
	}

	address := conn.Address.Hex()

	c.mu.Lock()
	c.address = address
	c.mu.Unlock()

	c.logs.Infow("wallet connected", "address", address, "chainId", conn.ChainID.String())

	return ConnectResult{
		Address: address,
		ChainID: conn.ChainID,
	}
}

// Address returns the connected address, if any.
func (c *Crowdfund) Address() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.address, c.address != ""
}

// CreateCampaign publishes form with the connected address as owner. Only an
// invalid form is reported back; a failed submission is logged and journaled,
// and the call still returns nil.
func (c *Crowdfund) CreateCampaign(ctx context.Context, form CampaignForm) error {
	if err := form.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	address, ok := c.Address()
	if !ok {
		c.logs.Errorw("contract call failure",
			"method", ethereum.MethodCreateCampaign,
			"error", wallet.ErrNotConnected)
		return nil
	}

	tx, err := c.createCampaign(ctx, address, form)
	c.record(ctx, ethereum.MethodCreateCampaign, address, nil, nil, tx, err)
	if err != nil {
		c.logs.Errorw("contract call failure",
			"method", ethereum.MethodCreateCampaign,
			"owner", address,
			"error", err)
		return nil
	}

	c.logs.Infow("campaign submitted",
		"owner", address,
		"title", form.Title,
		"transactionHash", txHash(tx))

	return nil
}

func (c *Crowdfund) createCampaign(ctx context.Context, address string, form CampaignForm) (*types.Transaction, error) {
	opts, err := c.wallet.TransactOpts(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("transact opts: %w", err)
	}

	return c.contract.CreateCampaign(ctx, opts,
		common.HexToAddress(address),
		form.Title,
		form.Description,
		form.Target,
		big.NewInt(form.Deadline.UnixMilli()),
		form.Image,
	)
}

// GetCampaigns returns every campaign in the contract, tagged with its
// position as PID.
func (c *Crowdfund) GetCampaigns(ctx context.Context) ([]Campaign, error) {
	raw, err := c.contract.GetCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("get campaigns: %w", err)
	}

	campaigns := make([]Campaign, len(raw))
	for i, rc := range raw {
		campaigns[i] = Campaign{
			Owner:           rc.Owner.Hex(),
			Title:           rc.Title,
			Description:     rc.Description,
			Target:          units.FormatEther(rc.Target),
			Deadline:        int64Of(rc.Deadline),
			AmountCollected: units.FormatEther(rc.AmountCollected),
			Image:           rc.Image,
			PID:             i,
		}
	}

	return campaigns, nil
}

// GetUserCampaigns returns the campaigns owned by the connected address. It
// is empty when no wallet is connected.
func (c *Crowdfund) GetUserCampaigns(ctx context.Context) ([]Campaign, error) {
	address, ok := c.Address()
	if !ok {
		return []Campaign{}, nil
	}

	all, err := c.GetCampaigns(ctx)
	if err != nil {
		return nil, err
	}

	owned := make([]Campaign, 0, len(all))
	for _, campaign := range all {
		if campaign.Owner == address {
			owned = append(owned, campaign)
		}
	}

	return owned, nil
}

// Donate sends amount, a decimal in ether, to campaign pID. The transaction is
// returned as soon as the node accepts it.
func (c *Crowdfund) Donate(ctx context.Context, pID int, amount string) (*types.Transaction, error) {
	if pID < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCampaignID, pID)
	}

	value, err := units.ParseEther(amount)
	if err != nil {
		return nil, fmt.Errorf("parse amount: %w", err)
	}

	if _, ok := c.Address(); !ok {
		return nil, wallet.ErrNotConnected
	}

	opts, err := c.wallet.TransactOpts(ctx, value)
	if err != nil {
		return nil, fmt.Errorf("transact opts: %w", err)
	}

	campaignID := int64(pID)
	tx, err := c.contract.DonateToCampaign(ctx, opts, big.NewInt(campaignID))
	c.record(ctx, ethereum.MethodDonateToCampaign, opts.From.Hex(), &campaignID, value, tx, err)
	if err != nil {
		return nil, fmt.Errorf("donate to campaign %d: %w", pID, err)
	}

	c.logs.Infow("donation submitted",
		"pId", pID,
		"from", opts.From.Hex(),
		"value", value.String(),
		"transactionHash", txHash(tx))

	return tx, nil
}

// GetDonations returns the donations made to campaign pID. Donors without a
// matching amount are reported with a zero donation.
func (c *Crowdfund) GetDonations(ctx context.Context, pID int) ([]Donation, error) {
	if pID < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCampaignID, pID)
	}

	donors, err := c.contract.GetDonars(ctx, big.NewInt(int64(pID)))
	if err != nil {
		return nil, fmt.Errorf("get donations: %w", err)
	}

	donations := make([]Donation, len(donors.Addresses))
	for i, donator := range donors.Addresses {
		var amount *big.Int
		if i < len(donors.Amounts) {
			amount = donors.Amounts[i]
		}
		donations[i] = Donation{
			Donator:  donator.Hex(),
			Donation: units.FormatEther(amount),
		}
	}

	return donations, nil
}

// GetTransactions returns the journal of the connected wallet, newest first,
// with receipt state looked up from the node. Receipt lookups that fail are
// logged and leave the record without receipt state.
func (c *Crowdfund) GetTransactions(ctx context.Context) ([]TransactionRecord, error) {
	address, ok := c.Address()
	if !ok {
		return nil, wallet.ErrNotConnected
	}

	entries, err := c.journal.ListTransactions(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	hashes := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.TransactionHash != "" {
			hashes = append(hashes, entry.TransactionHash)
		}
	}

	receipts := map[string]*ethereum.Receipt{}
	if len(hashes) > 0 {
		fetched, err := c.receipts.FetchReceipts(ctx, hashes)
		if err != nil {
			c.logs.Errorw("fetching receipts from node", "error", err)
		}
		for _, receipt := range fetched {
			receipts[receipt.TransactionHash] = receipt
		}
	}

	records := make([]TransactionRecord, len(entries))
	for i, entry := range entries {
		records[i] = journalToRecord(entry)
		if receipt, ok := receipts[entry.TransactionHash]; ok {
			records[i].ReceiptStatus = string(receipt.Status)
			records[i].BlockNumber = receipt.BlockNumber
			records[i].GasUsed = receipt.GasUsed
		}
	}

	return records, nil
}

func (c *Crowdfund) record(ctx context.Context, method, from string, campaignID *int64, value *big.Int, tx *types.Transaction, callErr error) {
	entry := repository.Transaction{
		TransactionHash: txHash(tx),
		Method:          method,
		FromAddress:     from,
		CampaignID:      campaignID,
		Value:           "0",
		Status:          repository.StatusSubmitted,
	}
	if value != nil {
		entry.Value = value.String()
	}
	if callErr != nil {
		entry.Status = repository.StatusFailed
		entry.Error = callErr.Error()
	}

	if err := c.journal.RecordTransaction(ctx, entry); err != nil {
		c.logs.Errorw("failed to record transaction",
			"error", err,
			"method", method,
			"transactionHash", entry.TransactionHash)
	}
}

func journalToRecord(entry repository.Transaction) TransactionRecord {
	value, _ := new(big.Int).SetString(entry.Value, 10)

	return TransactionRecord{
		ID:              entry.ID,
		TransactionHash: entry.TransactionHash,
		Method:          entry.Method,
		From:            entry.FromAddress,
		CampaignID:      entry.CampaignID,
		Value:           units.FormatEther(value),
		Status:          entry.Status,
		Error:           entry.Error,
		CreatedAt:       entry.CreatedAt,
	}
}

func txHash(tx *types.Transaction) string {
	if tx == nil {
		return ""
	}
	return tx.Hash().Hex()
}

func int64Of(v *big.Int) int64 {
	if v == nil {
		return 0
	}
	return v.Int64()
}
