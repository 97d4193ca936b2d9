//go:build ignore

// generate_keys prints random API keys for the API_KEYS setting.
// Run with: go run scripts/generate_keys.go -n 3
package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"strings"
)

func randomKey(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func main() {
	count := flag.Int("n", 1, "number of API keys")
	size := flag.Int("bytes", 24, "random bytes per key")
	flag.Parse()

	keys := make([]string, 0, *count)
	for i := 0; i < *count; i++ {
		key, err := randomKey(*size)
		if err != nil {
			fmt.Fprintf(os.Stderr, "generate key: %v\n", err)
			os.Exit(1)
		}
		keys = append(keys, key)
	}

	fmt.Printf("API_KEYS=%s\n", strings.Join(keys, ","))
	fmt.Println()
	fmt.Println("# JWT_SECRET_KEY must match the secret of the auth service that issues tokens.")
}
