package payload

import (
	"crowdfund/internal/core"
	"crowdfund/internal/units"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

var ErrInvalidCampaignID error = errors.New("campaign id must be a non-negative integer")

var deadlineLayouts = []string{time.RFC3339, time.DateOnly}

type CreateCampaignRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Target      string `json:"target"`
	Deadline    string `json:"deadline"`
	Image       string `json:"image"`
}

func (c CreateCampaignRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&c.Description, validation.Required),
		validation.Field(&c.Target, validation.Required, validation.By(positiveEther)),
		validation.Field(&c.Deadline, validation.Required, validation.By(deadline)),
		validation.Field(&c.Image, validation.Required, is.URL),
	)
}

// ToCampaignForm converts a validated request. Target is given in ether.
func (c CreateCampaignRequest) ToCampaignForm() (core.CampaignForm, error) {
	target, err := units.ParseEther(c.Target)
	if err != nil {
		return core.CampaignForm{}, fmt.Errorf("parse target: %w", err)
	}

	deadline, err := parseDeadline(c.Deadline)
	if err != nil {
		return core.CampaignForm{}, err
	}

	return core.CampaignForm{
		Title:       c.Title,
		Description: c.Description,
		Target:      target,
		Deadline:    deadline,
		Image:       c.Image,
	}, nil
}

type DonationRequest struct {
	Amount string `json:"amount"`
}

func (d DonationRequest) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Amount, validation.Required, validation.By(positiveEther)),
	)
}

// ParseCampaignID parses the pId path parameter.
func ParseCampaignID(raw string) (int, error) {
	pID, err := strconv.Atoi(raw)
	if err != nil || pID < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCampaignID, raw)
	}
	return pID, nil
}

func positiveEther(value any) error {
	s, _ := value.(string)
	amount, err := units.ParseEther(s)
	if err != nil {
		return validation.NewError("validation_amount_format", "must be a decimal amount with at most 18 decimals")
	}
	if amount.Sign() <= 0 {
		return validation.NewError("validation_amount_positive", "must be greater than zero")
	}
	return nil
}

func deadline(value any) error {
	s, _ := value.(string)
	if _, err := parseDeadline(s); err != nil {
		return validation.NewError("validation_deadline_format", "must be a date (2006-01-02) or an RFC3339 timestamp")
	}
	return nil
}

func parseDeadline(s string) (time.Time, error) {
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse deadline %q", s)
}

var signatureRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{130}$`)

// ConnectRequest answers a challenge issued by POST /wallet/challenge.
type ConnectRequest struct {
	Nonce     string `json:"nonce"`
	Signature string `json:"signature"`
}

func (c ConnectRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Nonce, validation.Required, is.UUID),
		validation.Field(&c.Signature, validation.Required, validation.Match(signatureRegex)),
	)
}

// SignatureBytes decodes the hex signature of a validated request.
func (c ConnectRequest) SignatureBytes() ([]byte, error) {
	sig, err := hexutil.Decode(c.Signature)
	if err != nil {
		return nil, fmt.Errorf("decode signature: %w", err)
	}
	return sig, nil
}
