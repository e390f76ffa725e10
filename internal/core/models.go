package core

import (
	"math/big"
	"time"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

// ConnectResult carries either the connection data or the error of a
// connect attempt.
type ConnectResult struct {
	Address string
	ChainID *big.Int
	Err     error
}

// Campaign is a read projection of a campaign stored in the contract. PID is
// the campaign's position in the contract's list.
type Campaign struct {
	Owner           string `json:"owner"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Target          string `json:"target"`
	Deadline        int64  `json:"deadline"`
	AmountCollected string `json:"amountCollected"`
	Image           string `json:"image"`
	PID             int    `json:"pId"`
}

type Donation struct {
	Donator  string `json:"donator"`
	Donation string `json:"donation"`
}

// CampaignForm is the input of CreateCampaign. Target is in base units.
type CampaignForm struct {
	Title       string
	Description string
	Target      *big.Int
	Deadline    time.Time
	Image       string
}

func (f CampaignForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.Required),
		validation.Field(&f.Description, validation.Required),
		validation.Field(&f.Target, validation.Required, validation.By(positiveAmount)),
		validation.Field(&f.Deadline, validation.Required),
		validation.Field(&f.Image, validation.Required, is.URL),
	)
}

func positiveAmount(value any) error {
	amount, _ := value.(*big.Int)
	if amount == nil || amount.Sign() <= 0 {
		return validation.NewError("validation_amount_positive", "must be greater than zero")
	}
	return nil
}

// TransactionRecord is a journaled contract submission together with the
// current state of its receipt.
type TransactionRecord struct {
	ID              string    `json:"id"`
	TransactionHash string    `json:"transactionHash,omitempty"`
	Method          string    `json:"method"`
	From            string    `json:"from"`
	CampaignID      *int64    `json:"pId,omitempty"`
	Value           string    `json:"value"`
	Status          string    `json:"status"`
	ReceiptStatus   string    `json:"receiptStatus,omitempty"`
	BlockNumber     uint64    `json:"blockNumber,omitempty"`
	GasUsed         uint64    `json:"gasUsed,omitempty"`
	Error           string    `json:"error,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}
