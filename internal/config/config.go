package config

import (
	"os"
	"time"
)

// UAT endpoints and merchant credentials. Production values arrive via env
// and override these defaults; nothing here is mutated after Load.
const (
	defaultAPIURL        = "https://uatcheckout.yagoutpay.com/ms-transaction-core-1-0/apiRedirection/apiIntegration"
	defaultLinkURL       = "https://uatcheckout.yagoutpay.com/ms-transaction-core-1-0/sdk/paymentByLinkResponse"
	defaultHostedPostURL = "https://uatcheckout.yagoutpay.com/ms-transaction-core-1-0/paymentRedirection/checksumGatewayPage"
	defaultMerchantID    = "202508080001"
	defaultAggregatorID  = "yagout"
)

// Config is the immutable environment configuration injected into services at
// construction. UAT/production swaps happen here, not through globals.
type Config struct {
	Port string

	MerchantID    string
	EncryptionKey string // base64, decodes to 32 bytes
	AggregatorID  string

	// Hosted flow may use separate credentials; falls back to the API pair.
	MerchantIDHosted    string
	EncryptionKeyHosted string

	APIURL         string
	PaymentLinkURL string
	StaticLinkURL  string
	HostedPostURL  string

	// InsecureTLS disables certificate verification on the outbound gateway
	// client. UAT only; must stay off in production.
	InsecureTLS bool

	HTTPTimeout time.Duration
}

// Load reads the configuration from the environment with UAT defaults.
func Load() Config {
	cfg := Config{
		Port:                getEnv("PORT", "3000"),
		MerchantID:          getEnv("YAGOUT_MERCHANT_ID", defaultMerchantID),
		EncryptionKey:       os.Getenv("YAGOUT_ENCRYPTION_KEY"),
		AggregatorID:        getEnv("YAGOUT_AGGREGATOR_ID", defaultAggregatorID),
		MerchantIDHosted:    os.Getenv("YAGOUT_MERCHANT_ID_HOSTED"),
		EncryptionKeyHosted: os.Getenv("YAGOUT_KEY_HOSTED"),
		APIURL:              getEnv("YAGOUT_API_URL", defaultAPIURL),
		PaymentLinkURL:      getEnv("YAGOUT_PAYMENT_LINK_URL", defaultLinkURL),
		StaticLinkURL:       getEnv("YAGOUT_STATIC_LINK_URL", defaultLinkURL),
		HostedPostURL:       getEnv("YAGOUT_HOSTED_POST_URL", defaultHostedPostURL),
		InsecureTLS:         os.Getenv("YAGOUT_INSECURE_TLS") == "true",
		HTTPTimeout:         30 * time.Second,
	}
	if cfg.MerchantIDHosted == "" {
		cfg.MerchantIDHosted = cfg.MerchantID
	}
	if cfg.EncryptionKeyHosted == "" {
		cfg.EncryptionKeyHosted = cfg.EncryptionKey
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
