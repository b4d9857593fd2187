package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cryptoprim/cp-digest/pkg/sha256"
	"github.com/spf13/pflag"

	"golang.org/x/sync/semaphore"
)

func main() {
	concurrency := pflag.Int64("concurrency", 1, "Maximum number of files to hash in parallel")
	pflag.Parse()

	paths := pflag.Args()
	if len(paths) == 0 {
		message, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal("Failed to read from standard input: ", err)
		}
		digest, err := sha256.Sum(message)
		if err != nil {
			log.Fatal("Failed to hash standard input: ", err)
		}
		fmt.Printf("%s  -\n", hex.EncodeToString(digest[:]))
		return
	}

	messages := make([][]byte, 0, len(paths))
	for _, path := range paths {
		message, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("Failed to read %s: %s", path, err)
		}
		messages = append(messages, message)
	}
	digests, err := sha256.HashAll(
		context.Background(),
		sha256.NewMetricsHasher(sha256.NewHasher(), "cp_digest"),
		messages,
		semaphore.NewWeighted(*concurrency))
	if err != nil {
		log.Fatal("Failed to hash files: ", err)
	}
	for i, path := range paths {
		fmt.Printf("%s  %s\n", hex.EncodeToString(digests[i][:]), path)
	}
}
