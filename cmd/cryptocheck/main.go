package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"shoepay_app_echo/internal/config"
	"shoepay_app_echo/internal/yagout"
)

// Round-trip smoke tool for the gateway codec: encrypts a sample (or a blob
// from the gateway) with the configured key and prints both directions.
func main() {
	plaintext := flag.String("text", `{"ping":"shoepay"}`, "Plaintext to encrypt")
	decryptB64 := flag.String("decrypt", "", "Base64 ciphertext to decrypt instead")
	flag.Parse()

	// Load envs
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found")
	}

	cfg := config.Load()
	if cfg.EncryptionKey == "" {
		log.Fatal("YAGOUT_ENCRYPTION_KEY is required")
	}
	codec := yagout.NewCodec(cfg.EncryptionKey)

	if *decryptB64 != "" {
		plain, err := codec.DecryptB64(*decryptB64)
		if err != nil {
			log.Fatalf("Decrypt failed: %v", err)
		}
		log.Printf("Decrypted: %s", plain)
		result := yagout.ParseDecrypted(plain)
		log.Printf("Parsed: status=%s message=%q link=%q", result.Status, result.Message, result.PaymentLink)
		return
	}

	encrypted, err := codec.EncryptB64(*plaintext)
	if err != nil {
		log.Fatalf("Encrypt failed: %v", err)
	}
	log.Printf("Encrypted: %s", encrypted)

	roundTrip, err := codec.DecryptB64(encrypted)
	if err != nil {
		log.Fatalf("Round-trip decrypt failed: %v", err)
	}
	if roundTrip != *plaintext {
		log.Fatalf("Round trip mismatch: got %q", roundTrip)
	}
	log.Println("Round trip OK")
}
