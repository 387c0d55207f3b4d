// ABOUTME: Basic example showing in-process email exposure analysis with the Email Shield library
// ABOUTME: Reads the SerpApi key from the environment and prints per-scope mention counts

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	shield "email-shield-api/shieldlib"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: basic <email>")
	}

	client, err := shield.NewClient(
		shield.WithAPIKey(os.Getenv("SERPAPI_KEY")),
		shield.WithQueryTimeout(5*time.Second),
		shield.WithQuietMode(),
	)
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}

	features, err := client.AnalyzeEmail(context.Background(), os.Args[1])
	if err != nil {
		if shield.IsValidationError(err) {
			log.Fatalf("Invalid email: %v", err)
		}
		log.Fatal(err)
	}

	fmt.Printf("Web:           %d\n", features.TotalMentions)
	fmt.Printf("Pastebin:      %d\n", features.PastebinMentions)
	fmt.Printf("GitHub:        %d\n", features.GitHubMentions)
	fmt.Printf("StackOverflow: %d\n", features.StackOverflowMentions)

	for _, r := range features.PastebinResults {
		fmt.Printf("  paste: %s (%s)\n", r.Title, r.Link)
	}
}
