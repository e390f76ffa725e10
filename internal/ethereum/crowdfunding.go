package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

const (
	MethodCreateCampaign   = "createCampaign"
	MethodGetCampaigns     = "getCampaigns"
	MethodDonateToCampaign = "donateToCampaign"
	MethodGetDonars        = "getDonars"
)

var ErrUnexpectedOutput error = errors.New("unexpected contract output")

// CrowdFunding is a client for the CrowdFunding contract. Call and Transact
// are generic; the remaining methods are typed wrappers around them.
type CrowdFunding struct {
	contract BoundContract
}

// NewCrowdFunding binds the contract deployed at address to the given backend.
func NewCrowdFunding(address common.Address, backend bind.ContractBackend) (*CrowdFunding, error) {
	parsed, err := abi.JSON(strings.NewReader(CrowdFundingABI))
	if err != nil {
		return nil, fmt.Errorf("parse contract abi: %w", err)
	}

	contract := bind.NewBoundContract(address, parsed, backend, backend, backend)
	return NewCrowdFundingWithContract(contract), nil
}

func NewCrowdFundingWithContract(contract BoundContract) *CrowdFunding {
	return &CrowdFunding{
		contract: contract,
	}
}

// Call performs a read-only contract call and returns the unpacked outputs.
func (c *CrowdFunding) Call(ctx context.Context, method string, args ...any) ([]any, error) {
	var out []any
	err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, method, args...)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}

	return out, nil
}

// Transact submits a state-changing call signed with opts. The value to attach,
// if any, is carried by opts.Value.
func (c *CrowdFunding) Transact(ctx context.Context, opts *bind.TransactOpts, method string, args ...any) (*types.Transaction, error) {
	opts.Context = ctx

	tx, err := c.contract.Transact(opts, method, args...)
	if err != nil {
		return nil, fmt.Errorf("transact %s: %w", method, err)
	}

	return tx, nil
}

func (c *CrowdFunding) CreateCampaign(ctx context.Context, opts *bind.TransactOpts, owner common.Address, title, description string, target, deadline *big.Int, image string) (*types.Transaction, error) {
	return c.Transact(ctx, opts, MethodCreateCampaign, owner, title, description, target, deadline, image)
}

func (c *CrowdFunding) DonateToCampaign(ctx context.Context, opts *bind.TransactOpts, id *big.Int) (*types.Transaction, error) {
	return c.Transact(ctx, opts, MethodDonateToCampaign, id)
}

func (c *CrowdFunding) GetCampaigns(ctx context.Context) ([]RawCampaign, error) {
	out, err := c.Call(ctx, MethodGetCampaigns)
	if err != nil {
		return nil, err
	}

	if len(out) < 1 {
		return nil, fmt.Errorf("%w: %s returned %d values", ErrUnexpectedOutput, MethodGetCampaigns, len(out))
	}

	campaigns, err := convert[[]RawCampaign](out[0])
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", MethodGetCampaigns, err)
	}

	return campaigns, nil
}

func (c *CrowdFunding) GetDonars(ctx context.Context, id *big.Int) (Donors, error) {
	out, err := c.Call(ctx, MethodGetDonars, id)
	if err != nil {
		return Donors{}, err
	}

	if len(out) < 2 {
		return Donors{}, fmt.Errorf("%w: %s returned %d values", ErrUnexpectedOutput, MethodGetDonars, len(out))
	}

	addresses, err := convert[[]common.Address](out[0])
	if err != nil {
		return Donors{}, fmt.Errorf("decode %s donators: %w", MethodGetDonars, err)
	}

	amounts, err := convert[[]*big.Int](out[1])
	if err != nil {
		return Donors{}, fmt.Errorf("decode %s donations: %w", MethodGetDonars, err)
	}

	return Donors{
		Addresses: addresses,
		Amounts:   amounts,
	}, nil
}

// convert copies an unpacked abi value into T. abi.ConvertType panics when the
// shapes differ, which is reported as ErrUnexpectedOutput instead.
func convert[T any](in any) (out T, err error) {
	if v, ok := in.(T); ok {
		return v, nil
	}
	if in == nil {
		return out, fmt.Errorf("%w: nil value", ErrUnexpectedOutput)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrUnexpectedOutput, r)
		}
	}()

	converted, ok := abi.ConvertType(in, new(T)).(*T)
	if !ok {
		return out, fmt.Errorf("%w: got %T", ErrUnexpectedOutput, in)
	}

	return *converted, nil
}
