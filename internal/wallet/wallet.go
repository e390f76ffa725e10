package wallet

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	ErrNotConnected  error = errors.New("wallet not connected")
	ErrChainMismatch error = errors.New("chain id mismatch")
)

// Connection describes an established wallet connection.
type Connection struct {
	Address common.Address
	ChainID *big.Int
}

// Wallet signs transactions with a single local key. It is considered
// connected once the node's chain id has been confirmed.
type Wallet struct {
	client          ChainClient
	key             *ecdsa.PrivateKey
	expectedChainID *big.Int

	mu   sync.RWMutex
	conn *Connection
}

// NewFromPrivateKey builds a wallet from a hex encoded secp256k1 key. A nil
// expectedChainID accepts whatever chain the node reports.
func NewFromPrivateKey(client ChainClient, hexKey string, expectedChainID *big.Int) (*Wallet, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}

	return newWallet(client, key, expectedChainID), nil
}

// NewFromKeystore builds a wallet from an encrypted keystore file.
func NewFromKeystore(client ChainClient, keyJSON []byte, passphrase string, expectedChainID *big.Int) (*Wallet, error) {
	key, err := keystore.DecryptKey(keyJSON, passphrase)
	if err != nil {
		return nil, fmt.Errorf("decrypt keystore: %w", err)
	}

	return newWallet(client, key.PrivateKey, expectedChainID), nil
}

func newWallet(client ChainClient, key *ecdsa.PrivateKey, expectedChainID *big.Int) *Wallet {
	return &Wallet{
		client:          client,
		key:             key,
		expectedChainID: expectedChainID,
	}
}

// Connect confirms the chain the node is on and marks the wallet connected.
func (w *Wallet) Connect(ctx context.Context) (Connection, error) {
	chainID, err := w.client.ChainID(ctx)
	if err != nil {
		return Connection{}, fmt.Errorf("get chain id: %w", err)
	}

	if w.expectedChainID != nil && w.expectedChainID.Cmp(chainID) != 0 {
		return Connection{}, fmt.Errorf("%w: node reports %s, expected %s", ErrChainMismatch, chainID, w.expectedChainID)
	}

	conn := Connection{
		Address: crypto.PubkeyToAddress(w.key.PublicKey),
		ChainID: chainID,
	}

	w.mu.Lock()
	w.conn = &conn
	w.mu.Unlock()

	return conn, nil
}

// Address returns the connected address, if any.
func (w *Wallet) Address() (common.Address, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.conn == nil {
		return common.Address{}, false
	}
	return w.conn.Address, true
}

// TransactOpts returns signing options for the connected chain with value
// attached. A nil value sends no funds.
func (w *Wallet) TransactOpts(ctx context.Context, value *big.Int) (*bind.TransactOpts, error) {
	w.mu.RLock()
	conn := w.conn
	w.mu.RUnlock()

	if conn == nil {
		return nil, ErrNotConnected
	}

	opts, err := bind.NewKeyedTransactorWithChainID(w.key, conn.ChainID)
	if err != nil {
		return nil, fmt.Errorf("create transactor: %w", err)
	}

	opts.Context = ctx
	opts.Value = value

	return opts, nil
}
