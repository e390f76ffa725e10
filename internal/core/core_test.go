package core_test

import (
	"context"
	"crowdfund/internal/core"
	"crowdfund/internal/core/fake"
	"crowdfund/internal/ethereum"
	"crowdfund/internal/repository"
	"crowdfund/internal/units"
	"crowdfund/internal/wallet"
	"errors"
	"math/big"
	"math/rand"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("Crowdfund", func() {
	var (
		fakeWallet   *fake.Wallet
		fakeContract *fake.Contract
		fakeJournal  *fake.Journal
		fakeReceipts *fake.ReceiptFetcher
		logs         *observer.ObservedLogs
		ctx          context.Context

		crowdfund *core.Crowdfund

		owner   common.Address
		other   common.Address
		fakeErr error
		oneEth  *big.Int
		tx      *types.Transaction
	)

	BeforeEach(func() {
		fakeWallet = new(fake.Wallet)
		fakeContract = new(fake.Contract)
		fakeJournal = new(fake.Journal)
		fakeReceipts = new(fake.ReceiptFetcher)
		ctx = context.Background()

		var observed zapcore.Core
		observed, logs = observer.New(zapcore.InfoLevel)
		logger := zap.New(observed).Sugar()

		crowdfund = core.NewCrowdfund(logger, fakeWallet, fakeContract, fakeJournal, fakeReceipts)

		owner = common.HexToAddress("0x00000000000000000000000000000000000000aA")
		other = common.HexToAddress("0x00000000000000000000000000000000000000bB")
		fakeErr = errors.New("fake error")
		oneEth = big.NewInt(1_000_000_000_000_000_000)
		tx = types.NewTransaction(7, owner, big.NewInt(0), 21000, big.NewInt(1), nil)

		fakeWallet.ConnectReturns(wallet.Connection{Address: owner, ChainID: big.NewInt(5)}, nil)
		fakeWallet.TransactOptsStub = func(_ context.Context, value *big.Int) (*bind.TransactOpts, error) {
			return &bind.TransactOpts{From: owner, Value: value}, nil
		}
	})

	connect := func() {
		res := crowdfund.Connect(ctx)
		Expect(res.Err).NotTo(HaveOccurred())
	}

	rawCampaign := func(owner common.Address, title string) ethereum.RawCampaign {
		return ethereum.RawCampaign{
			Owner:           owner,
			Title:           title,
			Description:     "description of " + title,
			Target:          oneEth,
			Deadline:        big.NewInt(1700000000000),
			AmountCollected: big.NewInt(0),
			Image:           "https://example.com/" + title + ".png",
		}
	}

	Describe("Connect", func() {
		When("the wallet connects", func() {
			It("should expose the connected address", func() {
				res := crowdfund.Connect(ctx)
				Expect(res.Err).NotTo(HaveOccurred())
				Expect(res.Address).To(Equal(owner.Hex()))
				Expect(res.ChainID).To(Equal(big.NewInt(5)))

				address, ok := crowdfund.Address()
				Expect(ok).To(BeTrue())
				Expect(address).To(Equal(owner.Hex()))
			})
		})

		When("the wallet fails to connect", func() {
			BeforeEach(func() {
				fakeWallet.ConnectReturns(wallet.Connection{}, fakeErr)
			})

			It("should report the error in the result", func() {
				res := crowdfund.Connect(ctx)
				Expect(res.Err).To(MatchError(fakeErr))
				Expect(res.Address).To(BeEmpty())

				_, ok := crowdfund.Address()
				Expect(ok).To(BeFalse())
			})
		})
	})

	Describe("GetCampaigns", func() {
		var (
			campaigns []core.Campaign
			err       error
		)

		JustBeforeEach(func() {
			campaigns, err = crowdfund.GetCampaigns(ctx)
		})

		When("the contract returns a single campaign", func() {
			BeforeEach(func() {
				fakeContract.GetCampaignsReturns([]ethereum.RawCampaign{rawCampaign(owner, "roof")}, nil)
			})

			It("should reshape it with decimal amounts and pId 0", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(campaigns).To(Equal([]core.Campaign{{
					Owner:           owner.Hex(),
					Title:           "roof",
					Description:     "description of roof",
					Target:          "1.0",
					Deadline:        1700000000000,
					AmountCollected: "0.0",
					Image:           "https://example.com/roof.png",
					PID:             0,
				}}))
			})
		})

		When("the contract returns many campaigns", func() {
			var count int

			BeforeEach(func() {
				count = rand.Intn(50) + 1
				raw := make([]ethereum.RawCampaign, count)
				for i := range raw {
					raw[i] = rawCampaign(owner, "c")
					raw[i].AmountCollected = big.NewInt(int64(i))
				}
				fakeContract.GetCampaignsReturns(raw, nil)
			})

			It("should keep the length and tag each campaign with its position", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(campaigns).To(HaveLen(count))
				for i, c := range campaigns {
					Expect(c.PID).To(Equal(i))
					Expect(c.AmountCollected).To(Equal(units.FormatEther(big.NewInt(int64(i)))))
				}
			})
		})

		When("the contract has no campaigns", func() {
			BeforeEach(func() {
				fakeContract.GetCampaignsReturns(nil, nil)
			})

			It("should return an empty slice", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(campaigns).NotTo(BeNil())
				Expect(campaigns).To(BeEmpty())
			})
		})

		When("the read call fails", func() {
			BeforeEach(func() {
				fakeContract.GetCampaignsReturns(nil, fakeErr)
			})

			It("should propagate the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(campaigns).To(BeNil())
			})
		})
	})

	Describe("GetUserCampaigns", func() {
		BeforeEach(func() {
			fakeContract.GetCampaignsReturns([]ethereum.RawCampaign{
				rawCampaign(owner, "first"),
				rawCampaign(other, "second"),
				rawCampaign(owner, "third"),
			}, nil)
		})

		When("no wallet is connected", func() {
			It("should return an empty slice without calling the contract", func() {
				campaigns, err := crowdfund.GetUserCampaigns(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(campaigns).To(BeEmpty())
				Expect(fakeContract.GetCampaignsCallCount()).To(BeZero())
			})
		})

		When("a wallet is connected", func() {
			BeforeEach(connect)

			It("should keep only the campaigns it owns with their original pId", func() {
				campaigns, err := crowdfund.GetUserCampaigns(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(campaigns).To(HaveLen(2))
				Expect(campaigns[0].Title).To(Equal("first"))
				Expect(campaigns[0].PID).To(Equal(0))
				Expect(campaigns[1].Title).To(Equal("third"))
				Expect(campaigns[1].PID).To(Equal(2))
			})

			It("should propagate read errors", func() {
				fakeContract.GetCampaignsReturns(nil, fakeErr)
				_, err := crowdfund.GetUserCampaigns(ctx)
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("CreateCampaign", func() {
		var (
			form     core.CampaignForm
			err      error
			deadline time.Time
		)

		BeforeEach(func() {
			deadline = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
			form = core.CampaignForm{
				Title:       "roof",
				Description: "panels for the school",
				Target:      oneEth,
				Deadline:    deadline,
				Image:       "https://example.com/roof.png",
			}
			fakeContract.CreateCampaignReturns(tx, nil)
		})

		JustBeforeEach(func() {
			err = crowdfund.CreateCampaign(ctx, form)
		})

		When("a wallet is connected", func() {
			BeforeEach(connect)

			It("should submit the campaign owned by the connected address", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeContract.CreateCampaignCallCount()).To(Equal(1))

				_, opts, argOwner, title, description, target, argDeadline, image := fakeContract.CreateCampaignArgsForCall(0)
				Expect(opts.From).To(Equal(owner))
				Expect(opts.Value).To(BeNil())
				Expect(argOwner).To(Equal(owner))
				Expect(title).To(Equal("roof"))
				Expect(description).To(Equal("panels for the school"))
				Expect(target.Cmp(oneEth)).To(BeZero())
				Expect(argDeadline.Int64()).To(Equal(deadline.UnixMilli()))
				Expect(image).To(Equal("https://example.com/roof.png"))
			})

			It("should journal the submission", func() {
				Expect(fakeJournal.RecordTransactionCallCount()).To(Equal(1))
				_, entry := fakeJournal.RecordTransactionArgsForCall(0)
				Expect(entry.Method).To(Equal(ethereum.MethodCreateCampaign))
				Expect(entry.FromAddress).To(Equal(owner.Hex()))
				Expect(entry.TransactionHash).To(Equal(tx.Hash().Hex()))
				Expect(entry.Status).To(Equal(repository.StatusSubmitted))
				Expect(entry.CampaignID).To(BeNil())
			})

			When("the contract rejects the call", func() {
				BeforeEach(func() {
					fakeContract.CreateCampaignReturns(nil, fakeErr)
				})

				It("should resolve without error and log the failure", func() {
					Expect(err).NotTo(HaveOccurred())
					entries := logs.FilterMessage("contract call failure").All()
					Expect(entries).To(HaveLen(1))
					Expect(entries[0].Level).To(Equal(zapcore.ErrorLevel))
					Expect(entries[0].ContextMap()).To(HaveKeyWithValue("method", ethereum.MethodCreateCampaign))
				})

				It("should journal the failure", func() {
					_, entry := fakeJournal.RecordTransactionArgsForCall(0)
					Expect(entry.Status).To(Equal(repository.StatusFailed))
					Expect(entry.Error).To(ContainSubstring("fake error"))
					Expect(entry.TransactionHash).To(BeEmpty())
				})
			})

			When("the journal fails", func() {
				BeforeEach(func() {
					fakeJournal.RecordTransactionReturns(fakeErr)
				})

				It("should not change the outcome", func() {
					Expect(err).NotTo(HaveOccurred())
					Expect(logs.FilterMessage("failed to record transaction").Len()).To(Equal(1))
				})
			})
		})

		When("no wallet is connected", func() {
			It("should log the failure without calling the contract or the journal", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeContract.CreateCampaignCallCount()).To(BeZero())
				Expect(fakeJournal.RecordTransactionCallCount()).To(BeZero())
				Expect(logs.FilterMessage("contract call failure").Len()).To(Equal(1))
			})
		})

		When("the form is invalid", func() {
			BeforeEach(func() {
				connect()
				form.Image = "not a url"
				form.Target = big.NewInt(0)
			})

			It("should return a validation error", func() {
				Expect(err).To(MatchError(core.ErrInvalidForm))
				Expect(err.Error()).To(ContainSubstring("Image"))
				Expect(err.Error()).To(ContainSubstring("Target"))
				Expect(fakeContract.CreateCampaignCallCount()).To(BeZero())
			})
		})
	})

	Describe("Donate", func() {
		var (
			result *types.Transaction
			pID    int
			amount string
			err    error
		)

		BeforeEach(func() {
			pID = 3
			amount = "0.5"
			fakeContract.DonateToCampaignReturns(tx, nil)
		})

		JustBeforeEach(func() {
			result, err = crowdfund.Donate(ctx, pID, amount)
		})

		When("a wallet is connected", func() {
			BeforeEach(connect)

			It("should attach the amount in base units", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(Equal(tx))

				_, value := fakeWallet.TransactOptsArgsForCall(0)
				Expect(value.String()).To(Equal("500000000000000000"))

				_, opts, id := fakeContract.DonateToCampaignArgsForCall(0)
				Expect(opts.Value.String()).To(Equal("500000000000000000"))
				Expect(id.Int64()).To(Equal(int64(3)))
			})

			It("should journal the donation", func() {
				_, entry := fakeJournal.RecordTransactionArgsForCall(0)
				Expect(entry.Method).To(Equal(ethereum.MethodDonateToCampaign))
				Expect(*entry.CampaignID).To(Equal(int64(3)))
				Expect(entry.Value).To(Equal("500000000000000000"))
			})

			When("the contract rejects the donation", func() {
				BeforeEach(func() {
					fakeContract.DonateToCampaignReturns(nil, fakeErr)
				})

				It("should propagate the error", func() {
					Expect(err).To(MatchError(fakeErr))
					Expect(result).To(BeNil())

					_, entry := fakeJournal.RecordTransactionArgsForCall(0)
					Expect(entry.Status).To(Equal(repository.StatusFailed))
				})
			})

			When("the amount is malformed", func() {
				BeforeEach(func() {
					amount = "one ether"
				})

				It("should return an invalid amount error", func() {
					Expect(err).To(MatchError(units.ErrInvalidAmount))
					Expect(fakeContract.DonateToCampaignCallCount()).To(BeZero())
				})
			})

			When("the campaign id is negative", func() {
				BeforeEach(func() {
					pID = -1
				})

				It("should return an invalid campaign id error", func() {
					Expect(err).To(MatchError(core.ErrInvalidCampaignID))
				})
			})
		})

		When("no wallet is connected", func() {
			BeforeEach(func() {
				fakeWallet.TransactOptsStub = nil
				fakeWallet.TransactOptsReturns(nil, wallet.ErrNotConnected)
			})

			It("should return ErrNotConnected", func() {
				Expect(err).To(MatchError(wallet.ErrNotConnected))
				Expect(fakeWallet.TransactOptsCallCount()).To(BeZero())
				Expect(fakeContract.DonateToCampaignCallCount()).To(BeZero())
			})
		})
	})

	Describe("GetDonations", func() {
		var (
			donations []core.Donation
			err       error
		)

		JustBeforeEach(func() {
			donations, err = crowdfund.GetDonations(ctx, 1)
		})

		When("both sequences have the same length", func() {
			BeforeEach(func() {
				fakeContract.GetDonarsReturns(ethereum.Donors{
					Addresses: []common.Address{owner, other},
					Amounts:   []*big.Int{oneEth, big.NewInt(250_000_000_000_000_000)},
				}, nil)
			})

			It("should zip them by index", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(donations).To(Equal([]core.Donation{
					{Donator: owner.Hex(), Donation: "1.0"},
					{Donator: other.Hex(), Donation: "0.25"},
				}))

				_, id := fakeContract.GetDonarsArgsForCall(0)
				Expect(id.Int64()).To(Equal(int64(1)))
			})
		})

		When("the amounts sequence is shorter", func() {
			BeforeEach(func() {
				fakeContract.GetDonarsReturns(ethereum.Donors{
					Addresses: []common.Address{owner, other, owner},
					Amounts:   []*big.Int{oneEth},
				}, nil)
			})

			It("should follow the donor sequence length", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(donations).To(HaveLen(3))
				Expect(donations[1].Donation).To(Equal("0.0"))
			})
		})

		When("the read call fails", func() {
			BeforeEach(func() {
				fakeContract.GetDonarsReturns(ethereum.Donors{}, fakeErr)
			})

			It("should propagate the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetTransactions", func() {
		var (
			records []core.TransactionRecord
			err     error
			pID     int64
		)

		JustBeforeEach(func() {
			records, err = crowdfund.GetTransactions(ctx)
		})

		When("no wallet is connected", func() {
			It("should return ErrNotConnected", func() {
				Expect(err).To(MatchError(wallet.ErrNotConnected))
			})
		})

		When("a wallet is connected", func() {
			BeforeEach(func() {
				connect()
				pID = 2
				fakeJournal.ListTransactionsReturns([]repository.Transaction{
					{ID: "a", TransactionHash: "0x01", Method: "donateToCampaign", FromAddress: owner.Hex(), CampaignID: &pID, Value: "500000000000000000", Status: repository.StatusSubmitted},
					{ID: "b", Method: "createCampaign", FromAddress: owner.Hex(), Value: "0", Status: repository.StatusFailed, Error: "rejected"},
				}, nil)
				fakeReceipts.FetchReceiptsReturns([]*ethereum.Receipt{
					{TransactionHash: "0x01", Status: ethereum.ReceiptSuccess, BlockNumber: 10, GasUsed: 21000},
				}, nil)
			})

			It("should merge receipts into the journal", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(2))
				Expect(records[0].Value).To(Equal("0.5"))
				Expect(records[0].ReceiptStatus).To(Equal(string(ethereum.ReceiptSuccess)))
				Expect(records[0].BlockNumber).To(Equal(uint64(10)))
				Expect(records[0].GasUsed).To(Equal(uint64(21000)))
				Expect(records[1].ReceiptStatus).To(BeEmpty())
				Expect(records[1].Error).To(Equal("rejected"))

				_, from := fakeJournal.ListTransactionsArgsForCall(0)
				Expect(from).To(Equal(owner.Hex()))
				_, hashes := fakeReceipts.FetchReceiptsArgsForCall(0)
				Expect(hashes).To(Equal([]string{"0x01"}))
			})

			When("receipt lookups fail", func() {
				BeforeEach(func() {
					fakeReceipts.FetchReceiptsReturns(nil, fakeErr)
				})

				It("should still return the journal", func() {
					Expect(err).NotTo(HaveOccurred())
					Expect(records).To(HaveLen(2))
					Expect(records[0].ReceiptStatus).To(BeEmpty())
				})
			})

			When("the journal fails", func() {
				BeforeEach(func() {
					fakeJournal.ListTransactionsReturns(nil, fakeErr)
				})

				It("should return the error", func() {
					Expect(err).To(MatchError(fakeErr))
				})
			})
		})
	})

	Describe("a session without a wallet", func() {
		var readOnly *core.Crowdfund

		BeforeEach(func() {
			readOnly = core.NewCrowdfund(zap.NewNop().Sugar(), nil, fakeContract, fakeJournal, fakeReceipts)
			fakeContract.GetCampaignsReturns([]ethereum.RawCampaign{rawCampaign(owner, "roof")}, nil)
			fakeContract.GetDonarsReturns(ethereum.Donors{
				Addresses: []common.Address{other},
				Amounts:   []*big.Int{oneEth},
			}, nil)
		})

		It("should serve read calls", func() {
			campaigns, err := readOnly.GetCampaigns(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(campaigns).To(HaveLen(1))

			donations, err := readOnly.GetDonations(ctx, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(donations).To(Equal([]core.Donation{{Donator: other.Hex(), Donation: "1.0"}}))

			mine, err := readOnly.GetUserCampaigns(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(mine).To(BeEmpty())
		})

		It("should refuse to connect", func() {
			res := readOnly.Connect(ctx)
			Expect(res.Err).To(MatchError(core.ErrNoSigner))

			_, ok := readOnly.Address()
			Expect(ok).To(BeFalse())
		})

		It("should refuse state-changing calls", func() {
			_, err := readOnly.Donate(ctx, 0, "1")
			Expect(err).To(MatchError(wallet.ErrNotConnected))

			Expect(readOnly.CreateCampaign(ctx, core.CampaignForm{
				Title:       "roof",
				Description: "panels",
				Target:      oneEth,
				Deadline:    time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
				Image:       "https://example.com/roof.png",
			})).To(Succeed())

			Expect(fakeContract.DonateToCampaignCallCount()).To(BeZero())
			Expect(fakeContract.CreateCampaignCallCount()).To(BeZero())
		})
	})
})
