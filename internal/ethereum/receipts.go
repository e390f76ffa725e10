package ethereum

import (
	"context"
	"errors"
	"fmt"
	"sync"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ReceiptService looks up receipts of previously submitted transactions.
type ReceiptService struct {
	client EthClient
}

func NewReceiptService(ethClient EthClient) *ReceiptService {
	return &ReceiptService{
		client: ethClient,
	}
}

// FetchReceipts resolves the receipts of hashes concurrently. Transactions not
// yet mined are reported as pending. Failed lookups are joined into the error
// and left out of the results.
func (s *ReceiptService) FetchReceipts(ctx context.Context, hashes []string) ([]*Receipt, error) {
	resultsChan := make(chan *ReceiptResult)

	var wg sync.WaitGroup
	for _, hashStr := range hashes {
		wg.Add(1)
		go func(hashStr string) {
			defer wg.Done()
			res := s.getReceipt(ctx, common.HexToHash(hashStr))
			if res.Error != nil {
				res.Error = fmt.Errorf("fetching receipt %q: %w", hashStr, res.Error)
			}
			resultsChan <- res
		}(hashStr)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	var results []*Receipt
	var aggrErr error
	for result := range resultsChan {
		if result.Error != nil {
			aggrErr = errors.Join(aggrErr, result.Error)
			continue
		}
		results = append(results, result.Receipt)
	}

	return results, aggrErr
}

func (s *ReceiptService) getReceipt(ctx context.Context, hash common.Hash) *ReceiptResult {
	receipt, err := s.client.TransactionReceipt(ctx, hash)
	if errors.Is(err, goethereum.NotFound) {
		return &ReceiptResult{
			Receipt: &Receipt{
				TransactionHash: hash.Hex(),
				Status:          ReceiptPending,
			},
		}
	}
	if err != nil {
		return &ReceiptResult{nil, err}
	}

	status := ReceiptFailed
	if receipt.Status == types.ReceiptStatusSuccessful {
		status = ReceiptSuccess
	}

	var blockNumber uint64
	if receipt.BlockNumber != nil {
		blockNumber = receipt.BlockNumber.Uint64()
	}

	return &ReceiptResult{
		Receipt: &Receipt{
			TransactionHash: hash.Hex(),
			Status:          status,
			BlockNumber:     blockNumber,
			GasUsed:         receipt.GasUsed,
		},
	}
}
