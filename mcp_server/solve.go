package mcp_server

import (
	"context"

	"quagmire_solve/cmd"
)

// SolveRequest defines the input for the Quagmire-family solve operation.
// Fields mirror the solve subcommand's flags (see cmd/solve.go); numeric
// fields left at zero fall back to cmd.DefaultSolveParams' values.
type SolveRequest struct {
	CipherText               string  `json:"cipherText"`
	Crib                     string  `json:"crib,omitempty"`
	CipherType               int     `json:"cipherType"`
	Variant                  bool    `json:"variant,omitempty"`
	MaxKeywordLen            int     `json:"maxKeywordLen,omitempty"`
	KeywordLen               int     `json:"keywordLen,omitempty"`
	PlaintextKeywordLen      int     `json:"plaintextKeywordLen,omitempty"`
	CiphertextKeywordLen     int     `json:"ciphertextKeywordLen,omitempty"`
	MaxCyclewordLen          int     `json:"maxCyclewordLen,omitempty"`
	CyclewordLen             int     `json:"cyclewordLen,omitempty"`
	NSigmaThreshold          float64 `json:"nSigmaThreshold,omitempty"`
	IoCThreshold             float64 `json:"iocThreshold,omitempty"`
	NHillClimbs              int     `json:"nHillClimbs,omitempty"`
	NRestarts                int     `json:"nRestarts,omitempty"`
	BacktrackProb            float64 `json:"backtrackProb,omitempty"`
	KeywordPermProb          float64 `json:"keywordPermProb,omitempty"`
	SlipProb                 float64 `json:"slipProb,omitempty"`
	WeightNgram              float64 `json:"weightNgram,omitempty"`
	WeightCrib               float64 `json:"weightCrib,omitempty"`
	WeightIoC                float64 `json:"weightIoc,omitempty"`
	WeightEntropy            float64 `json:"weightEntropy,omitempty"`
	FrequencyWeightedPerturb bool    `json:"frequencyWeightedPerturb,omitempty"`
	Seed                     uint64  `json:"seed,omitempty"`
}

// SolveResponse defines the output for the solve operation.
type SolveResponse struct {
	Result *cmd.SolveResult `json:"result"`
}

// SolveService defines the interface for the solve operation.
type SolveService interface {
	Solve(ctx context.Context, req *SolveRequest) (*SolveResponse, error)
}
