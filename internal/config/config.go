package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
)

var (
	errEnvVarNotFound error = errors.New("environment variable not found")
	errInvalidValue   error = errors.New("invalid environment variable value")
)

const (
	contractAddressEnvKey = "CONTRACT_ADDRESS"
	ethNodeEnvKey         = "ETH_NODE_URL"
	chainIDEnvKey         = "CHAIN_ID"
	privateKeyEnvKey      = "WALLET_PRIVATE_KEY"
	keystoreEnvKey        = "WALLET_KEYSTORE"
	passphraseEnvKey      = "WALLET_PASSPHRASE"
	dbConnEnvKey          = "DB_CONNECTION_URL"
	apiPortEnvKey         = "API_PORT"
	jwtSecretEnvKey       = "JWT_SECRET"
)

// Client holds what every command needs to reach the contract.
type Client struct {
	NodeURL         string
	ContractAddress common.Address
	// ChainID is nil when any chain is accepted.
	ChainID *big.Int

	// At most one of PrivateKey and KeystorePath is set. With neither, only
	// read calls are possible.
	PrivateKey   string
	KeystorePath string
	Passphrase   string

	// DBConnectionURL is empty when the transaction journal is disabled.
	DBConnectionURL string
}

type Server struct {
	Client
	Port      string
	JWTSecret string
}

// LoadEnvFiles loads variables from the given dotenv files without overriding
// the ones already set. Missing files are skipped.
func LoadEnvFiles(files ...string) error {
	for _, file := range files {
		err := godotenv.Load(file)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load env file %q: %w", file, err)
		}
	}
	return nil
}

func NewClient() (Client, error) {
	nodeURL, ok := os.LookupEnv(ethNodeEnvKey)
	if !ok {
		return Client{}, fmt.Errorf("%w: %s", errEnvVarNotFound, ethNodeEnvKey)
	}

	contract, ok := os.LookupEnv(contractAddressEnvKey)
	if !ok {
		return Client{}, fmt.Errorf("%w: %s", errEnvVarNotFound, contractAddressEnvKey)
	}
	if !common.IsHexAddress(contract) {
		return Client{}, fmt.Errorf("%w: %s is not an address", errInvalidValue, contractAddressEnvKey)
	}

	var chainID *big.Int
	if raw, ok := os.LookupEnv(chainIDEnvKey); ok && raw != "" {
		id, ok := new(big.Int).SetString(raw, 10)
		if !ok || id.Sign() <= 0 {
			return Client{}, fmt.Errorf("%w: %s=%q", errInvalidValue, chainIDEnvKey, raw)
		}
		chainID = id
	}

	cfg := Client{
		NodeURL:         nodeURL,
		ContractAddress: common.HexToAddress(contract),
		ChainID:         chainID,
		DBConnectionURL: os.Getenv(dbConnEnvKey),
	}

	if key, ok := os.LookupEnv(privateKeyEnvKey); ok && key != "" {
		cfg.PrivateKey = key
		return cfg, nil
	}

	keystore, ok := os.LookupEnv(keystoreEnvKey)
	if !ok || keystore == "" {
		// read-only: no signing key configured
		return cfg, nil
	}
	passphrase, ok := os.LookupEnv(passphraseEnvKey)
	if !ok {
		return Client{}, fmt.Errorf("%w: %s", errEnvVarNotFound, passphraseEnvKey)
	}
	cfg.KeystorePath = keystore
	cfg.Passphrase = passphrase

	return cfg, nil
}

// HasSigner reports whether a signing key is configured.
func (c Client) HasSigner() bool {
	return c.PrivateKey != "" || c.KeystorePath != ""
}

func NewServer() (Server, error) {
	client, err := NewClient()
	if err != nil {
		return Server{}, err
	}

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return Server{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return Server{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	return Server{
		Client:    client,
		Port:      port,
		JWTSecret: jwtSecret,
	}, nil
}
