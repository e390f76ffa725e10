package handler

import "time"

const oopsErr = "Oops! Something went wrong. Please try again later."

type Response struct {
	Message string `json:"message,omitempty"` // short message for humans
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

type ConnectResponse struct {
	Address string `json:"address"`
	ChainID string `json:"chainId"`
	Token   string `json:"token"`
}

type DonationResponse struct {
	TransactionHash string `json:"transactionHash"`
	Nonce           uint64 `json:"nonce"`
	Value           string `json:"value"`
}

type ChallengeResponse struct {
	Nonce     string    `json:"nonce"`
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expiresAt"`
}
