package wallet_test

import (
	"crowdfund/internal/wallet"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RecoverSigner", func() {
	const message = "Sign in to crowdfund\nNonce: 1"

	It("should recover the address that signed the message", func() {
		key, err := crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())

		sig, err := crypto.Sign(accounts.TextHash([]byte(message)), key)
		Expect(err).NotTo(HaveOccurred())

		signer, err := wallet.RecoverSigner(message, sig)
		Expect(err).NotTo(HaveOccurred())
		Expect(signer).To(Equal(crypto.PubkeyToAddress(key.PublicKey)))

		sig[crypto.RecoveryIDOffset] += 27
		signer, err = wallet.RecoverSigner(message, sig)
		Expect(err).NotTo(HaveOccurred())
		Expect(signer).To(Equal(crypto.PubkeyToAddress(key.PublicKey)))
	})

	It("should reject a signature of the wrong length", func() {
		_, err := wallet.RecoverSigner(message, []byte{1, 2, 3})
		Expect(err).To(MatchError(wallet.ErrInvalidSignature))
	})
})

var _ = Describe("ChallengeStore", func() {
	var store *wallet.ChallengeStore

	BeforeEach(func() {
		store = wallet.NewChallengeStore(time.Minute)
	})

	AfterEach(func() {
		wallet.TimeNow = time.Now
	})

	It("should accept a challenge once", func() {
		challenge := store.Issue()
		Expect(challenge.Message).To(ContainSubstring(challenge.Nonce))

		consumed, err := store.Consume(challenge.Nonce)
		Expect(err).NotTo(HaveOccurred())
		Expect(consumed).To(Equal(challenge))

		_, err = store.Consume(challenge.Nonce)
		Expect(err).To(MatchError(wallet.ErrUnknownChallenge))
	})

	It("should reject an unknown nonce", func() {
		_, err := store.Consume("00000000-0000-0000-0000-000000000000")
		Expect(err).To(MatchError(wallet.ErrUnknownChallenge))
	})

	It("should reject an expired challenge", func() {
		challenge := store.Issue()
		wallet.TimeNow = func() time.Time { return time.Now().Add(2 * time.Minute) }

		_, err := store.Consume(challenge.Nonce)
		Expect(err).To(MatchError(wallet.ErrChallengeExpired))
	})
})
