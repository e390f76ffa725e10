package cmd

import (
	"context"
	"crowdfund/internal/config"
	"crowdfund/internal/core"
	"crowdfund/internal/db"
	"crowdfund/internal/ethereum"
	"crowdfund/internal/repository"
	"crowdfund/internal/wallet"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

// session is a Crowdfund wired to a node, a wallet and the journal, together
// with the resources to release once done.
type session struct {
	crowdfund *core.Crowdfund
	closers   []func()
}

func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

func newSession(ctx context.Context, logger *zap.SugaredLogger, cfg config.Client) (*session, error) {
	s := &session{}

	client, err := ethclient.DialContext(ctx, cfg.NodeURL)
	if err != nil {
		logger.Errorw("eth node connection failed", "error", err)
		return nil, fmt.Errorf("dial eth node: %w", err)
	}
	s.closers = append(s.closers, client.Close)

	w, err := newWallet(client, cfg)
	if err != nil {
		s.Close()
		return nil, err
	}

	contract, err := ethereum.NewCrowdFunding(cfg.ContractAddress, client)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("bind contract: %w", err)
	}

	journal, err := newJournal(logger, cfg, s)
	if err != nil {
		s.Close()
		return nil, err
	}

	s.crowdfund = core.NewCrowdfund(
		logger,
		w,
		contract,
		journal,
		ethereum.NewReceiptService(client))

	return s, nil
}

// newWallet returns nil when no signing key is configured, which leaves the
// session read-only.
func newWallet(client wallet.ChainClient, cfg config.Client) (core.Wallet, error) {
	if !cfg.HasSigner() {
		return nil, nil
	}

	if cfg.PrivateKey != "" {
		return wallet.NewFromPrivateKey(client, cfg.PrivateKey, cfg.ChainID)
	}

	keyJSON, err := os.ReadFile(cfg.KeystorePath)
	if err != nil {
		return nil, fmt.Errorf("read keystore file: %w", err)
	}

	return wallet.NewFromKeystore(client, keyJSON, cfg.Passphrase, cfg.ChainID)
}

// newJournal returns the postgres journal, or a no-op one when no database is
// configured.
func newJournal(logger *zap.SugaredLogger, cfg config.Client, s *session) (core.Journal, error) {
	if cfg.DBConnectionURL == "" {
		logger.Infow("no database configured, transaction journal disabled")
		return repository.NopJournal{}, nil
	}

	dbConn, err := db.NewPostgresDB(cfg.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return nil, err
	}
	s.closers = append(s.closers, func() {
		if err := dbConn.Close(); err != nil {
			logger.Errorw("failed to close database", "error", err)
		}
	})

	repo := repository.NewJournalRepository(dbConn)
	if err := repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return nil, err
	}

	return repo, nil
}

// open builds a session from the environment without connecting its wallet.
func open(ctx context.Context, logger *zap.SugaredLogger) (*session, error) {
	cfg, err := config.NewClient()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return nil, err
	}

	return newSession(ctx, logger, cfg)
}

// connected opens a session and connects its wallet.
func connected(ctx context.Context, logger *zap.SugaredLogger) (*session, error) {
	s, err := open(ctx, logger)
	if err != nil {
		return nil, err
	}

	if res := s.crowdfund.Connect(ctx); res.Err != nil {
		s.Close()
		return nil, fmt.Errorf("connect wallet: %w", res.Err)
	}

	return s, nil
}
