package mcp_server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"quagmire_solve/cmd"
	"quagmire_solve/internal/dictionary"
	"quagmire_solve/internal/ngram"
)

type solveServiceImpl struct {
	model *ngram.Model
	dict  *dictionary.Trie
}

// NewSolveService builds a SolveService around an n-gram model (and
// optional dictionary trie) loaded once at server startup, the same
// load-once-reuse-per-request pattern the teacher used for
// NewHillclimbService's ngramFrequencyMap.
func NewSolveService(model *ngram.Model, dict *dictionary.Trie) SolveService {
	return &solveServiceImpl{model: model, dict: dict}
}

func (s *solveServiceImpl) Solve(ctx context.Context, req *SolveRequest) (*SolveResponse, error) {
	if s.model == nil {
		return nil, fmt.Errorf("ngram model not loaded")
	}

	params := cmd.DefaultSolveParams()
	params.CipherType = req.CipherType
	params.Variant = req.Variant
	params.Crib = req.Crib
	if req.MaxKeywordLen != 0 {
		params.MaxKeywordLen = req.MaxKeywordLen
	}
	params.KeywordLen = req.KeywordLen
	params.PlaintextKeywordLen = req.PlaintextKeywordLen
	params.CiphertextKeywordLen = req.CiphertextKeywordLen
	if req.MaxCyclewordLen != 0 {
		params.MaxCyclewordLen = req.MaxCyclewordLen
	}
	params.CyclewordLen = req.CyclewordLen
	if req.NSigmaThreshold != 0 {
		params.NSigmaThreshold = req.NSigmaThreshold
	}
	if req.IoCThreshold != 0 {
		params.IoCThreshold = req.IoCThreshold
	}
	if req.NHillClimbs != 0 {
		params.NHillClimbs = req.NHillClimbs
	}
	if req.NRestarts != 0 {
		params.NRestarts = req.NRestarts
	}
	if req.BacktrackProb != 0 {
		params.BacktrackProb = req.BacktrackProb
	}
	if req.KeywordPermProb != 0 {
		params.KeywordPermProb = req.KeywordPermProb
	}
	if req.SlipProb != 0 {
		params.SlipProb = req.SlipProb
	}
	if req.WeightNgram != 0 {
		params.WeightNgram = req.WeightNgram
	}
	if req.WeightCrib != 0 {
		params.WeightCrib = req.WeightCrib
	}
	if req.WeightIoC != 0 {
		params.WeightIoC = req.WeightIoC
	}
	if req.WeightEntropy != 0 {
		params.WeightEntropy = req.WeightEntropy
	}
	params.FrequencyWeightedPerturb = req.FrequencyWeightedPerturb
	params.Seed = req.Seed

	result, err := cmd.PerformSolve(req.CipherText, s.model, s.dict, params)
	if err != nil {
		return nil, err
	}

	return &SolveResponse{Result: result}, nil
}

// HandleSolve provides an HTTP handler for the solve operation.
func HandleSolve(service SolveService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Only POST method is supported", http.StatusMethodNotAllowed)
			return
		}

		var req SolveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}

		resp, err := service.Solve(r.Context(), &req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}
