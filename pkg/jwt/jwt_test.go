package jwt_test

import (
	tokenIssuer "crowdfund/pkg/jwt"
	"time"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		info    tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("test-secret"))
		info = tokenIssuer.TokenInfo{
			Address:    "0x00000000000000000000000000000000000000aA",
			ChainID:    "5",
			Expiration: time.Hour,
		}
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	issue := func() string {
		signed, err := service.Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())
		return signed
	}

	It("should validate a token it signed", func() {
		claims, err := service.Validate(issue())
		Expect(err).NotTo(HaveOccurred())
		Expect(claims["chainId"]).To(Equal("5"))

		sub, err := tokenIssuer.Subject(claims)
		Expect(err).NotTo(HaveOccurred())
		Expect(sub).To(Equal(info.Address))
	})

	It("should reject a token signed with another secret", func() {
		other := tokenIssuer.NewJWTService([]byte("other-secret"))
		signed, err := other.Sign(other.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("should reject garbage", func() {
		_, err := service.Validate("not.a.token")
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("should reject an expired token", func() {
		tokenIssuer.TimeNow = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		signed := issue()
		tokenIssuer.TimeNow = time.Now

		_, err := service.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
	})

	It("should reject a token once the clock passes its expiry", func() {
		signed := issue()
		tokenIssuer.TimeNow = func() time.Time { return time.Now().Add(2 * time.Hour) }

		_, err := service.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
	})

	Describe("Subject", func() {
		It("should fail without a subject", func() {
			_, err := tokenIssuer.Subject(jwt.MapClaims{})
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})
	})
})
