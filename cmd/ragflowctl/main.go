// Package main provides the entry point for the ragflowctl CLI client.
//
// Usage:
//
//	ragflowctl register --email you@example.com --password 'secret:pw!' --nickname You
//	ragflowctl login --email you@example.com --password 'secret:pw!'
//	ragflowctl create-kb --name demo
//	ragflowctl upload --kb-id <id> --file ./handbook.pdf
//	ragflowctl start-parsing --kb-id <id>
//	ragflowctl list-documents --kb-id <id>
//	ragflowctl configure-rag --kb-id <id> --graphrag
//	ragflowctl run-task --kb-id <id> --task graphrag
//	ragflowctl check-task --kb-id <id> --task graphrag
//	ragflowctl test-retrieval --kb-id <id> --question "refund policy"
//
// Global flags:
//
//	--base-url     API root URL (default: https://rag-api.guardennes.ai)
//	--timeout      Request timeout duration (default: 30s)
//	--token-file   Where the API token is persisted (default: .ragflow_token)
//	--config       Optional config file path
//	--verbose      Debug logging of API requests
//
// Successful commands print to stdout; failures print one ❌-prefixed line
// to stderr and exit 1.
package main

import (
	"fmt"
	"os"

	"ragflowctl/internal/client/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}
