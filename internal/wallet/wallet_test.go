package wallet_test

import (
	"context"
	"crowdfund/internal/wallet"
	"crowdfund/internal/wallet/fake"
	"crypto/ecdsa"
	"encoding/hex"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Wallet", func() {
	var (
		w          *wallet.Wallet
		fakeClient *fake.ChainClient
		privateKey *ecdsa.PrivateKey
		address    common.Address
		expected   *big.Int
		ctx        context.Context
		testErr    error
	)

	BeforeEach(func() {
		var err error
		privateKey, err = crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())
		address = crypto.PubkeyToAddress(privateKey.PublicKey)

		fakeClient = new(fake.ChainClient)
		fakeClient.ChainIDReturns(big.NewInt(5), nil)
		expected = nil
		ctx = context.Background()
		testErr = errors.New("test error")
	})

	JustBeforeEach(func() {
		var err error
		w, err = wallet.NewFromPrivateKey(fakeClient, "0x"+hex.EncodeToString(crypto.FromECDSA(privateKey)), expected)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Connect", func() {
		When("the node is reachable", func() {
			It("should connect with the key's address", func() {
				conn, err := w.Connect(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(conn.Address).To(Equal(address))
				Expect(conn.ChainID).To(Equal(big.NewInt(5)))

				addr, ok := w.Address()
				Expect(ok).To(BeTrue())
				Expect(addr).To(Equal(address))
			})
		})

		When("the chain id does not match", func() {
			BeforeEach(func() {
				expected = big.NewInt(1)
			})

			It("should refuse to connect", func() {
				_, err := w.Connect(ctx)
				Expect(err).To(MatchError(wallet.ErrChainMismatch))

				_, ok := w.Address()
				Expect(ok).To(BeFalse())
			})
		})

		When("the node fails", func() {
			BeforeEach(func() {
				fakeClient.ChainIDReturns(nil, testErr)
			})

			It("should return the error", func() {
				_, err := w.Connect(ctx)
				Expect(err).To(MatchError(testErr))
			})
		})
	})

	Describe("TransactOpts", func() {
		When("not connected", func() {
			It("should return ErrNotConnected", func() {
				_, err := w.TransactOpts(ctx, nil)
				Expect(err).To(MatchError(wallet.ErrNotConnected))
			})
		})

		When("connected", func() {
			JustBeforeEach(func() {
				_, err := w.Connect(ctx)
				Expect(err).NotTo(HaveOccurred())
			})

			It("should sign as the connected address with the value attached", func() {
				opts, err := w.TransactOpts(ctx, big.NewInt(99))
				Expect(err).NotTo(HaveOccurred())
				Expect(opts.From).To(Equal(address))
				Expect(opts.Value).To(Equal(big.NewInt(99)))
				Expect(opts.Context).To(Equal(ctx))
			})
		})
	})

	Describe("NewFromPrivateKey", func() {
		It("should reject malformed keys", func() {
			_, err := wallet.NewFromPrivateKey(fakeClient, "not-hex", nil)
			Expect(err).To(MatchError(ContainSubstring("parse private key")))
		})
	})

	Describe("NewFromKeystore", func() {
		var keyJSON []byte

		BeforeEach(func() {
			var err error
			keyJSON, err = keystore.EncryptKey(&keystore.Key{
				Id:         uuid.New(),
				Address:    address,
				PrivateKey: privateKey,
			}, "secret", keystore.LightScryptN, keystore.LightScryptP)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should decrypt the key with the right passphrase", func() {
			ksWallet, err := wallet.NewFromKeystore(fakeClient, keyJSON, "secret", nil)
			Expect(err).NotTo(HaveOccurred())

			conn, err := ksWallet.Connect(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(conn.Address).To(Equal(address))
		})

		It("should fail with the wrong passphrase", func() {
			_, err := wallet.NewFromKeystore(fakeClient, keyJSON, "wrong", nil)
			Expect(err).To(MatchError(keystore.ErrDecrypt))
		})
	})
})
