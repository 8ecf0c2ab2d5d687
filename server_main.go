//go:build http

package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"quagmire_solve/internal/dictionary"
	"quagmire_solve/internal/ngram"
	"quagmire_solve/mcp_server"
)

func main() {
	var ngramFrequencyFile string
	var ngramSize int
	var dictionaryFile string
	var addr string

	flag.StringVar(&ngramFrequencyFile, "ngram-frequency-file", "", "path to the NGRAM\\tCOUNT frequency file (required)")
	flag.IntVar(&ngramSize, "ngram-size", 4, "n in the n-gram model")
	flag.StringVar(&dictionaryFile, "dictionary", "", "optional dictionary file for post-hoc word spotting")
	flag.StringVar(&addr, "addr", ":8080", "address to listen on")
	flag.Parse()

	if ngramFrequencyFile == "" {
		log.Fatalf("--ngram-frequency-file is required")
	}

	ngramReader, err := os.Open(ngramFrequencyFile)
	if err != nil {
		log.Fatalf("Error opening ngram frequency file: %v", err)
	}
	model, err := ngram.Load(ngramReader, ngramSize)
	ngramReader.Close()
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
		log.Println("Warning: --dictionary not provided. /solve will run without word spotting.")
	}

	solveService := mcp_server.NewSolveService(model, dict)
	http.HandleFunc("/solve", mcp_server.HandleSolve(solveService))

	log.Printf("Starting quagmire-solve HTTP server on %s\n", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
