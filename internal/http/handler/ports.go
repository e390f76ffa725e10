package handler

import (
	"context"
	"crowdfund/internal/core"
	"crowdfund/internal/wallet"
	tokenIssuer "crowdfund/pkg/jwt"
	"net/http"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name CrowdfundService . CrowdfundService
type CrowdfundService interface {
	Connect(ctx context.Context) core.ConnectResult
	Address() (string, bool)
	CreateCampaign(ctx context.Context, form core.CampaignForm) error
	GetCampaigns(ctx context.Context) ([]core.Campaign, error)
	GetUserCampaigns(ctx context.Context) ([]core.Campaign, error)
	Donate(ctx context.Context, pID int, amount string) (*types.Transaction, error)
	GetDonations(ctx context.Context, pID int) ([]core.Donation, error)
	GetTransactions(ctx context.Context) ([]core.TransactionRecord, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name TokenIssuer . TokenIssuer
type TokenIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name ChallengeStore . ChallengeStore
type ChallengeStore interface {
	Issue() wallet.Challenge
	Consume(nonce string) (wallet.Challenge, error)
}
