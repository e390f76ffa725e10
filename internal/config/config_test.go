package config

import (
	"math/big"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const contractHex = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

var allKeys = []string{
	contractAddressEnvKey,
	ethNodeEnvKey,
	chainIDEnvKey,
	privateKeyEnvKey,
	keystoreEnvKey,
	passphraseEnvKey,
	dbConnEnvKey,
	apiPortEnvKey,
	jwtSecretEnvKey,
}

func setEnv(key, value string) {
	Expect(os.Setenv(key, value)).To(Succeed())
}

var _ = Describe("Config", func() {
	BeforeEach(func() {
		saved := map[string]string{}
		for _, key := range allKeys {
			if v, ok := os.LookupEnv(key); ok {
				saved[key] = v
			}
			Expect(os.Unsetenv(key)).To(Succeed())
		}

		DeferCleanup(func() {
			for _, key := range allKeys {
				os.Unsetenv(key)
				if v, ok := saved[key]; ok {
					os.Setenv(key, v)
				}
			}
		})

		setEnv(ethNodeEnvKey, "http://localhost:8545")
		setEnv(contractAddressEnvKey, contractHex)
		setEnv(privateKeyEnvKey, "0xabc")
	})

	Describe("NewClient", func() {
		It("should read the required variables", func() {
			cfg, err := NewClient()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.NodeURL).To(Equal("http://localhost:8545"))
			Expect(cfg.ContractAddress).To(Equal(common.HexToAddress(contractHex)))
			Expect(cfg.PrivateKey).To(Equal("0xabc"))
			Expect(cfg.ChainID).To(BeNil())
			Expect(cfg.DBConnectionURL).To(BeEmpty())
		})

		It("should parse the chain id", func() {
			setEnv(chainIDEnvKey, "11155111")
			cfg, err := NewClient()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.ChainID).To(Equal(big.NewInt(11155111)))
		})

		It("should reject a malformed chain id", func() {
			setEnv(chainIDEnvKey, "sepolia")
			_, err := NewClient()
			Expect(err).To(MatchError(errInvalidValue))
		})

		It("should reject a malformed contract address", func() {
			setEnv(contractAddressEnvKey, "crowdfunding")
			_, err := NewClient()
			Expect(err).To(MatchError(errInvalidValue))
		})

		It("should fail without a contract address", func() {
			Expect(os.Unsetenv(contractAddressEnvKey)).To(Succeed())
			_, err := NewClient()
			Expect(err).To(MatchError(errEnvVarNotFound))
			Expect(err.Error()).To(ContainSubstring(contractAddressEnvKey))
		})

		When("a keystore is used instead of a private key", func() {
			BeforeEach(func() {
				Expect(os.Unsetenv(privateKeyEnvKey)).To(Succeed())
				setEnv(keystoreEnvKey, "/keys/wallet.json")
			})

			It("should require a passphrase", func() {
				_, err := NewClient()
				Expect(err).To(MatchError(errEnvVarNotFound))
				Expect(err.Error()).To(ContainSubstring(passphraseEnvKey))
			})

			It("should read the keystore settings", func() {
				setEnv(passphraseEnvKey, "secret")
				cfg, err := NewClient()
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.KeystorePath).To(Equal("/keys/wallet.json"))
				Expect(cfg.Passphrase).To(Equal("secret"))
			})
		})

		It("should read a keyless configuration", func() {
			Expect(os.Unsetenv(privateKeyEnvKey)).To(Succeed())
			cfg, err := NewClient()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.HasSigner()).To(BeFalse())
			Expect(cfg.NodeURL).To(Equal("http://localhost:8545"))
			Expect(cfg.ContractAddress).To(Equal(common.HexToAddress(contractHex)))
		})

		It("should treat empty key variables as unset", func() {
			setEnv(privateKeyEnvKey, "")
			setEnv(keystoreEnvKey, "")
			cfg, err := NewClient()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.HasSigner()).To(BeFalse())
		})

		It("should report a configured signer", func() {
			cfg, err := NewClient()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.HasSigner()).To(BeTrue())
		})
	})

	Describe("NewServer", func() {
		It("should start without a signing key", func() {
			Expect(os.Unsetenv(privateKeyEnvKey)).To(Succeed())
			setEnv(apiPortEnvKey, "8080")
			setEnv(jwtSecretEnvKey, "secret")
			cfg, err := NewServer()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.HasSigner()).To(BeFalse())
		})

		It("should require the api port", func() {
			setEnv(jwtSecretEnvKey, "secret")
			_, err := NewServer()
			Expect(err).To(MatchError(errEnvVarNotFound))
			Expect(err.Error()).To(ContainSubstring(apiPortEnvKey))
		})

		It("should read the server variables", func() {
			setEnv(apiPortEnvKey, "8080")
			setEnv(jwtSecretEnvKey, "secret")
			cfg, err := NewServer()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Port).To(Equal("8080"))
			Expect(cfg.JWTSecret).To(Equal("secret"))
			Expect(cfg.NodeURL).To(Equal("http://localhost:8545"))
		})
	})

	Describe("LoadEnvFiles", func() {
		var dir string

		BeforeEach(func() {
			var err error
			dir, err = os.MkdirTemp("", "crowdfund-env")
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(os.RemoveAll, dir)
		})

		It("should load variables that are not already set", func() {
			file := filepath.Join(dir, ".env")
			content := "API_PORT=9090\nETH_NODE_URL=http://ignored\n"
			Expect(os.WriteFile(file, []byte(content), 0o600)).To(Succeed())

			Expect(LoadEnvFiles(file)).To(Succeed())
			Expect(os.Getenv(apiPortEnvKey)).To(Equal("9090"))
			Expect(os.Getenv(ethNodeEnvKey)).To(Equal("http://localhost:8545"))
		})

		It("should skip missing files", func() {
			Expect(LoadEnvFiles(filepath.Join(dir, "missing.env"))).To(Succeed())
		})
	})
})
