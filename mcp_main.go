//go:build mcp

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"quagmire_solve/internal/dictionary"
	"quagmire_solve/internal/ngram"
	"quagmire_solve/mcp_server"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SolveInput defines the input for the solve_cipher tool. Fields mirror
// the solve subcommand's flags (see cmd/solve.go); zero-valued numeric
// fields fall back to cmd.DefaultSolveParams' values.
type SolveInput struct {
	CipherText               string  `json:"cipherText" jsonschema:"Uppercase ciphertext letters to recover the plaintext for"`
	Crib                     string  `json:"crib,omitempty" jsonschema:"Known-plaintext fragment, same length as cipherText, _ at unknown positions"`
	CipherType               int     `json:"cipherType" jsonschema:"0 Vigenere, 1-4 Quagmire I-IV, 5 Beaufort"`
	Variant                  bool    `json:"variant,omitempty" jsonschema:"Swap encrypt/decrypt roles"`
	MaxKeywordLen            int     `json:"maxKeywordLen,omitempty" jsonschema:"Upper bound on keyword length when unpinned (default: 12)"`
	KeywordLen               int     `json:"keywordLen,omitempty" jsonschema:"Pin both plaintext and ciphertext keyword length"`
	PlaintextKeywordLen      int     `json:"plaintextKeywordLen,omitempty" jsonschema:"Pin the plaintext keyword length"`
	CiphertextKeywordLen     int     `json:"ciphertextKeywordLen,omitempty" jsonschema:"Pin the ciphertext keyword length"`
	MaxCyclewordLen          int     `json:"maxCyclewordLen,omitempty" jsonschema:"Upper bound on candidate cycleword lengths (default: 20)"`
	CyclewordLen             int     `json:"cyclewordLen,omitempty" jsonschema:"Pin the cycleword length, skipping period estimation"`
	NHillClimbs              int     `json:"nHillClimbs,omitempty" jsonschema:"Hill-climb iterations per restart (default: 1000)"`
	NRestarts                int     `json:"nRestarts,omitempty" jsonschema:"Shotgun restarts per search tuple (default: 50)"`
	Seed                     uint64  `json:"seed,omitempty" jsonschema:"Deterministic RNG seed; 0 seeds from the process clock"`
	FrequencyWeightedPerturb bool    `json:"frequencyWeightedPerturb,omitempty" jsonschema:"Weight keyword perturbation by English monogram frequency"`
	WeightNgram              float64 `json:"weightNgram,omitempty" jsonschema:"Fitness weight on n-gram log-likelihood (default: 1.0)"`
	WeightCrib               float64 `json:"weightCrib,omitempty" jsonschema:"Fitness weight on crib match ratio (default: 1.0)"`
	WeightIoC                float64 `json:"weightIoc,omitempty" jsonschema:"Fitness weight on IoC proximity to English (default: 1.0)"`
	WeightEntropy            float64 `json:"weightEntropy,omitempty" jsonschema:"Fitness weight on entropy proximity to English (default: 1.0)"`
}

// SolveOutput defines the output for the solve_cipher tool.
type SolveOutput struct {
	Score                float64  `json:"score" jsonschema:"Composite fitness score of the best decryption found"`
	Type                 string   `json:"type" jsonschema:"Cipher type that was solved for"`
	PlaintextKeyword     string   `json:"plaintextKeyword" jsonschema:"Recovered plaintext-side keyword permutation"`
	CiphertextKeyword    string   `json:"ciphertextKeyword" jsonschema:"Recovered ciphertext-side keyword permutation"`
	Cycleword            string   `json:"cycleword" jsonschema:"Recovered periodic cycleword"`
	Plaintext            string   `json:"plaintext" jsonschema:"Recovered plaintext"`
	Words                []string `json:"words,omitempty" jsonschema:"Dictionary words spotted in the recovered plaintext"`
	CyclewordLen         int      `json:"cyclewordLen" jsonschema:"Length of the recovered cycleword"`
	PlaintextKeywordLen  int      `json:"plaintextKeywordLen" jsonschema:"Length of the recovered plaintext keyword"`
	CiphertextKeywordLen int      `json:"ciphertextKeywordLen" jsonschema:"Length of the recovered ciphertext keyword"`
}

// QuagmireSolveServer holds the n-gram model and optional dictionary
// loaded once at startup, the same load-once-reuse-per-request shape
// as the teacher's PuzzleHelperServer.
type QuagmireSolveServer struct {
	service mcp_server.SolveService
}

func (s *QuagmireSolveServer) handleSolve(ctx context.Context, req *mcp.CallToolRequest, input SolveInput) (*mcp.CallToolResult, SolveOutput, error) {
	if input.CipherText == "" {
		return nil, SolveOutput{}, fmt.Errorf("cipherText is required")
	}

	resp, err := s.service.Solve(ctx, &mcp_server.SolveRequest{
		CipherText:               input.CipherText,
		Crib:                     input.Crib,
		CipherType:               input.CipherType,
		Variant:                  input.Variant,
		MaxKeywordLen:            input.MaxKeywordLen,
		KeywordLen:               input.KeywordLen,
		PlaintextKeywordLen:      input.PlaintextKeywordLen,
		CiphertextKeywordLen:     input.CiphertextKeywordLen,
		MaxCyclewordLen:          input.MaxCyclewordLen,
		CyclewordLen:             input.CyclewordLen,
		NHillClimbs:              input.NHillClimbs,
		NRestarts:                input.NRestarts,
		Seed:                     input.Seed,
		FrequencyWeightedPerturb: input.FrequencyWeightedPerturb,
		WeightNgram:              input.WeightNgram,
		WeightCrib:               input.WeightCrib,
		WeightIoC:                input.WeightIoC,
		WeightEntropy:            input.WeightEntropy,
	})
	if err != nil {
		return nil, SolveOutput{}, err
	}

	result := resp.Result
	output := SolveOutput{
		Score:                result.Score,
		Type:                 result.Type,
		PlaintextKeyword:     result.PlaintextKeyword,
		CiphertextKeyword:    result.CiphertextKeyword,
		Cycleword:            result.Cycleword,
		Plaintext:            result.Plaintext,
		Words:                result.Words,
		CyclewordLen:         result.CyclewordLen,
		PlaintextKeywordLen:  result.PlaintextKeywordLen,
		CiphertextKeywordLen: result.CiphertextKeywordLen,
	}

	var textBuilder strings.Builder
	fmt.Fprintf(&textBuilder, "score: %.2f\n", output.Score)
	fmt.Fprintf(&textBuilder, "plaintext: %s\n", output.Plaintext)
	fmt.Fprintf(&textBuilder, "plaintext keyword: %s\n", output.PlaintextKeyword)
	fmt.Fprintf(&textBuilder, "ciphertext keyword: %s\n", output.CiphertextKeyword)
	fmt.Fprintf(&textBuilder, "cycleword: %s\n", output.Cycleword)
	if len(output.Words) > 0 {
		fmt.Fprintf(&textBuilder, "dictionary words: %s\n", strings.Join(output.Words, " "))
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: textBuilder.String()},
		},
	}, output, nil
}

func main() {
	var ngramFile string
	var ngramSize int
	var dictionaryFile string
	var port string
	var transport string

	flag.StringVar(&ngramFile, "ngram-frequency-file", "", "path to the NGRAM\\tCOUNT frequency file (required)")
	flag.IntVar(&ngramSize, "ngram-size", 4, "n in the n-gram model")
	flag.StringVar(&dictionaryFile, "dictionary", "", "optional dictionary file for post-hoc word spotting")
	flag.StringVar(&port, "port", "8080", "port to listen on for HTTP MCP server")
	flag.StringVar(&transport, "transport", "stdio", "transport type: 'stdio' for Claude Desktop or 'http' for Kubernetes")
	flag.Parse()

	if ngramFile == "" {
		log.Fatalf("--ngram-frequency-file is required")
	}

	reader, err := os.Open(ngramFile)
	if err != nil {
		log.Fatalf("Error opening ngram frequency file: %v", err)
	}
	model, err := ngram.Load(reader, ngramSize)
	reader.Close()
	if err != nil {
		log.Fatalf("Error loading ngram frequency file: %v", err)
	}
	log.Printf("Ngram model loaded successfully (ngram size: %d)\n", ngramSize)

	var dict *dictionary.Trie
	if dictionaryFile != "" {
		dictReader, err := os.Open(dictionaryFile)
		if err != nil {
			log.Fatalf("Error opening dictionary file: %v", err)
		}
		dict = dictionary.New()
		if err := dict.Load(dictReader); err != nil {
			log.Fatalf("Error loading dictionary file: %v", err)
		}
		dictReader.Close()
		log.Println("Dictionary loaded successfully")
	} else {
		log.Println("Warning: --dictionary not provided. solve_cipher will run without word spotting.")
	}

	server := &QuagmireSolveServer{service: mcp_server.NewSolveService(model, dict)}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "quagmire-solve",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "solve_cipher",
		Description: "Recovers keyword(s), cycleword, and plaintext for a Vigenere-family cipher (Vigenere, Beaufort, Quagmire I-IV) from ciphertext and an optional partial crib, using a shotgun-restarted hill climber.",
	}, server.handleSolve)

	switch transport {
	case "stdio":
		log.Println("Starting quagmire-solve MCP server on stdio...")
		if err := mcpServer.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
			log.Fatalf("Server error: %v", err)
		}

	case "http":
		httpHandler := mcp.NewStreamableHTTPHandler(
			func(r *http.Request) *mcp.Server {
				return mcpServer
			},
			nil,
		)

		http.Handle("/mcp", httpHandler)

		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ok"))
		})

		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
		})

		addr := ":" + port
		log.Printf("Starting quagmire-solve MCP server on http://0.0.0.0%s/mcp\n", addr)
		if err := http.ListenAndServe(addr, nil); err != nil {
			log.Fatalf("Server error: %v", err)
		}

	default:
		log.Fatalf("Unknown transport: %s (use 'stdio' or 'http')", transport)
	}
}
