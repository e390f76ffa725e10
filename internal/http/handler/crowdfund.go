package handler

import (
	"crowdfund/internal/core"
	"crowdfund/internal/http/handler/middleware"
	"crowdfund/internal/http/payload"
	"crowdfund/internal/units"
	"crowdfund/internal/wallet"
	tokenIssuer "crowdfund/pkg/jwt"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

const (
	AuthTokenHeader = "AUTH_TOKEN"
	sessionDuration = 24 * time.Hour
)

var (
	ChallengeWallet  = "POST /wallet/challenge"
	ConnectWallet    = "POST /wallet/connect"
	GetCampaigns     = "GET /campaigns"
	GetUserCampaigns = "GET /campaigns/mine"
	CreateCampaign   = "POST /campaigns"
	Donate           = "POST /campaigns/{pId}/donations"
	GetDonations     = "GET /campaigns/{pId}/donations"
	GetTransactions  = "GET /transactions"
)

var (
	errSessionMismatch error = errors.New("token was not issued to the connected wallet")
	errSignerMismatch  error = errors.New("challenge was not signed by the server wallet")
)

type CrowdfundHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	crowdfund        CrowdfundService
	tokens           TokenIssuer
	challenges       ChallengeStore
}

func NewCrowdfundHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, crowdfund CrowdfundService, tokens TokenIssuer, challenges ChallengeStore) *CrowdfundHandler {
	return &CrowdfundHandler{
		logs:             logger,
		requestValidator: requestValidator,
		crowdfund:        crowdfund,
		tokens:           tokens,
		challenges:       challenges,
	}
}

// Register adds every route to mux.
func (h *CrowdfundHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc(ChallengeWallet, h.HandleChallenge)
	mux.HandleFunc(ConnectWallet, h.HandleConnect)
	mux.HandleFunc(GetCampaigns, h.HandleGetCampaigns)
	mux.HandleFunc(GetUserCampaigns, h.HandleGetUserCampaigns)
	mux.HandleFunc(CreateCampaign, h.HandleCreateCampaign)
	mux.HandleFunc(Donate, h.HandleDonate)
	mux.HandleFunc(GetDonations, h.HandleGetDonations)
	mux.HandleFunc(GetTransactions, h.HandleGetTransactions)
}

func (h *CrowdfundHandler) HandleChallenge(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	challenge := h.challenges.Issue()

	h.respond(w, ChallengeResponse{
		Nonce:     challenge.Nonce,
		Message:   challenge.Message,
		ExpiresAt: challenge.ExpiresAt,
	}, http.StatusOK, requestId)
}

// HandleConnect issues a session token once the caller proves it holds the
// server wallet's key by signing a challenge from HandleChallenge.
func (h *CrowdfundHandler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.ConnectRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respondBadRequest(w, "Could not connect wallet", err, ConnectWallet, requestId)
		return
	}

	signer, err := h.recoverSigner(req)
	if err != nil {
		h.respondUnauthorized(w, "Could not connect wallet", err, ConnectWallet, requestId)
		return
	}

	res := h.crowdfund.Connect(r.Context())
	if res.Err != nil {
		code := http.StatusBadGateway
		if errors.Is(res.Err, core.ErrNoSigner) {
			code = http.StatusConflict
		}
		h.respond(w, Response{
			Message: "Could not connect wallet",
			Error:   res.Err.Error(),
		}, code, requestId)
		h.logs.Errorw("wallet connect failed",
			"error", res.Err,
			"handler", ConnectWallet,
			"request_id", requestId)
		return
	}

	if signer.Hex() != res.Address {
		h.respondUnauthorized(w, "Could not connect wallet", errSignerMismatch, ConnectWallet, requestId)
		return
	}

	chainID := res.ChainID.String()
	signed, err := h.tokens.Sign(h.tokens.Generate(tokenIssuer.TokenInfo{
		Address:    res.Address,
		ChainID:    chainID,
		Expiration: sessionDuration,
	}))
	if err != nil {
		h.respond(w, Response{
			Message: "Could not connect wallet",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to sign session token",
			"error", err,
			"handler", ConnectWallet,
			"request_id", requestId)
		return
	}

	h.logs.Infow("wallet connected",
		"address", res.Address,
		"chainId", chainID,
		"handler", ConnectWallet,
		"request_id", requestId)

	h.respond(w, ConnectResponse{
		Address: res.Address,
		ChainID: chainID,
		Token:   signed,
	}, http.StatusOK, requestId)
}

func (h *CrowdfundHandler) HandleGetCampaigns(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	campaigns, err := h.crowdfund.GetCampaigns(r.Context())
	if err != nil {
		h.respondUnexpected(w, "Could not retrieve campaigns", err, GetCampaigns, requestId)
		return
	}

	h.respond(w, map[string][]core.Campaign{
		"campaigns": campaigns,
	}, http.StatusOK, requestId)
}

func (h *CrowdfundHandler) HandleGetUserCampaigns(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	campaigns, err := h.crowdfund.GetUserCampaigns(r.Context())
	if err != nil {
		h.respondUnexpected(w, "Could not retrieve campaigns", err, GetUserCampaigns, requestId)
		return
	}

	h.respond(w, map[string][]core.Campaign{
		"campaigns": campaigns,
	}, http.StatusOK, requestId)
}

// HandleCreateCampaign accepts the campaign for submission. The outcome of
// the submission itself is only visible through GetTransactions.
func (h *CrowdfundHandler) HandleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	if !h.authorize(w, r, CreateCampaign, requestId) {
		return
	}

	var req payload.CreateCampaignRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respondBadRequest(w, "Could not create campaign", err, CreateCampaign, requestId)
		return
	}

	form, err := req.ToCampaignForm()
	if err != nil {
		h.respondBadRequest(w, "Could not create campaign", err, CreateCampaign, requestId)
		return
	}

	if err := h.crowdfund.CreateCampaign(r.Context(), form); err != nil {
		if errors.Is(err, core.ErrInvalidForm) {
			h.respondBadRequest(w, "Could not create campaign", err, CreateCampaign, requestId)
			return
		}
		h.respondUnexpected(w, "Could not create campaign", err, CreateCampaign, requestId)
		return
	}

	h.respond(w, Response{
		Message: "Campaign submitted",
	}, http.StatusAccepted, requestId)
}

func (h *CrowdfundHandler) HandleDonate(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	if !h.authorize(w, r, Donate, requestId) {
		return
	}

	pID, err := payload.ParseCampaignID(r.PathValue("pId"))
	if err != nil {
		h.respondBadRequest(w, "Could not donate", err, Donate, requestId)
		return
	}

	var req payload.DonationRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respondBadRequest(w, "Could not donate", err, Donate, requestId)
		return
	}

	tx, err := h.crowdfund.Donate(r.Context(), pID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, units.ErrInvalidAmount), errors.Is(err, core.ErrInvalidCampaignID):
			h.respondBadRequest(w, "Could not donate", err, Donate, requestId)
		case errors.Is(err, wallet.ErrNotConnected):
			h.respond(w, Response{
				Message: "Could not donate",
				Error:   err.Error(),
			}, http.StatusConflict, requestId)
		default:
			h.respond(w, Response{
				Message: "Could not donate",
				Error:   fmt.Errorf("donate: %w", err).Error(),
			}, http.StatusBadGateway, requestId)
			h.logs.Errorw("donation failed",
				"error", err,
				"pId", pID,
				"handler", Donate,
				"request_id", requestId)
		}
		return
	}

	h.logs.Infow("donation submitted",
		"pId", pID,
		"transactionHash", tx.Hash().Hex(),
		"handler", Donate,
		"request_id", requestId)

	h.respond(w, DonationResponse{
		TransactionHash: tx.Hash().Hex(),
		Nonce:           tx.Nonce(),
		Value:           units.FormatEther(tx.Value()),
	}, http.StatusOK, requestId)
}

func (h *CrowdfundHandler) HandleGetDonations(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	pID, err := payload.ParseCampaignID(r.PathValue("pId"))
	if err != nil {
		h.respondBadRequest(w, "Could not retrieve donations", err, GetDonations, requestId)
		return
	}

	donations, err := h.crowdfund.GetDonations(r.Context(), pID)
	if err != nil {
		h.respondUnexpected(w, "Could not retrieve donations", err, GetDonations, requestId)
		return
	}

	h.respond(w, map[string][]core.Donation{
		"donations": donations,
	}, http.StatusOK, requestId)
}

func (h *CrowdfundHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	if !h.authorize(w, r, GetTransactions, requestId) {
		return
	}

	transactions, err := h.crowdfund.GetTransactions(r.Context())
	if err != nil {
		h.respondUnexpected(w, "Could not retrieve transactions", err, GetTransactions, requestId)
		return
	}

	h.respond(w, map[string][]core.TransactionRecord{
		"transactions": transactions,
	}, http.StatusOK, requestId)
}

// authorize checks that the request carries a session token issued to the
// connected wallet. It writes the error response itself.
func (h *CrowdfundHandler) authorize(w http.ResponseWriter, r *http.Request, route, requestId string) bool {
	authToken := r.Header.Get(AuthTokenHeader)
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   AuthTokenHeader + " header is required",
		}, http.StatusUnauthorized, requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", route, "request_id", requestId)
		return false
	}

	err := h.checkSession(authToken)
	if err != nil {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   err.Error(),
		}, http.StatusUnauthorized, requestId)
		h.logs.Errorw("session token rejected", "error", err, "handler", route, "request_id", requestId)
		return false
	}

	return true
}

func (h *CrowdfundHandler) checkSession(authToken string) error {
	claims, err := h.tokens.Validate(authToken)
	if err != nil {
		return fmt.Errorf("validate jwt token: %w", err)
	}

	subject, err := tokenIssuer.Subject(claims)
	if err != nil {
		return err
	}

	address, ok := h.crowdfund.Address()
	if !ok || address != subject {
		return errSessionMismatch
	}

	return nil
}

func (h *CrowdfundHandler) recoverSigner(req payload.ConnectRequest) (common.Address, error) {
	challenge, err := h.challenges.Consume(req.Nonce)
	if err != nil {
		return common.Address{}, fmt.Errorf("consume challenge: %w", err)
	}

	signature, err := req.SignatureBytes()
	if err != nil {
		return common.Address{}, fmt.Errorf("decode signature: %w", err)
	}

	return wallet.RecoverSigner(challenge.Message, signature)
}

func (h *CrowdfundHandler) respondUnauthorized(w http.ResponseWriter, message string, err error, route, requestId string) {
	h.respond(w, Response{
		Message: message,
		Error:   err.Error(),
	}, http.StatusUnauthorized, requestId)
	h.logs.Errorw("wallet ownership not proven",
		"error", err,
		"handler", route,
		"request_id", requestId)
}

func (h *CrowdfundHandler) respondBadRequest(w http.ResponseWriter, message string, err error, route, requestId string) {
	h.respond(w, Response{
		Message: message,
		Error:   fmt.Errorf("invalid request: %w", err).Error(),
	}, http.StatusBadRequest, requestId)
	h.logs.Errorw("failed to decode and validate request",
		"error", err,
		"handler", route,
		"request_id", requestId)
}

func (h *CrowdfundHandler) respondUnexpected(w http.ResponseWriter, message string, err error, route, requestId string) {
	h.respond(w, Response{
		Message: message,
		Error:   err.Error(),
	}, http.StatusInternalServerError, requestId)
	h.logs.Errorw(message,
		"error", err,
		"handler", route,
		"request_id", requestId)
}

func (h *CrowdfundHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
