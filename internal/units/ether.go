package units

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/params"
)

// Decimals is the number of fractional digits of the chain's native unit.
const Decimals = 18

var ErrInvalidAmount error = errors.New("invalid amount")

var (
	weiPerEther = big.NewInt(params.Ether)
	amountRegex = regexp.MustCompile(`^(-)?([0-9]*)(?:\.([0-9]*))?$`)
)

// FormatEther renders a base-unit amount as a decimal string with 18 places
// of precision. Trailing zeros are dropped but one fractional digit is kept.
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0.0"
	}

	abs := new(big.Int).Abs(wei)
	whole, frac := new(big.Int).QuoRem(abs, weiPerEther, new(big.Int))

	fracStr := frac.String()
	fracStr = strings.Repeat("0", Decimals-len(fracStr)) + fracStr
	fracStr = strings.TrimRight(fracStr, "0")
	if fracStr == "" {
		fracStr = "0"
	}

	sign := ""
	if wei.Sign() < 0 {
		sign = "-"
	}

	return fmt.Sprintf("%s%s.%s", sign, whole.String(), fracStr)
}

// ParseEther converts a decimal string into base units.
func ParseEther(amount string) (*big.Int, error) {
	amount = strings.TrimSpace(amount)

	match := amountRegex.FindStringSubmatch(amount)
	if match == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}

	negative, whole, frac := match[1] != "", match[2], match[3]
	if whole == "" && frac == "" {
		return nil, fmt.Errorf("%w: %q has no digits", ErrInvalidAmount, amount)
	}
	if len(frac) > Decimals {
		return nil, fmt.Errorf("%w: %q exceeds %d decimals", ErrInvalidAmount, amount, Decimals)
	}

	digits := whole + frac + strings.Repeat("0", Decimals-len(frac))
	wei, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}

	if negative {
		wei.Neg(wei)
	}

	return wei, nil
}
