/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"quagmire_solve/internal/alphabet"
	"quagmire_solve/internal/cipher"
	"quagmire_solve/internal/crib"
	"quagmire_solve/internal/dictionary"
	"quagmire_solve/internal/driver"
	"quagmire_solve/internal/fitness"
	"quagmire_solve/internal/ngram"
)

var (
	solveCipherType      int
	solveCipherFile      string
	solveCribFile        string
	solveNgramSize       int
	solveNgramFile       string
	solveMaxKeywordLen   int
	solveKeywordLen      int
	solvePlaintextKwLen  int
	solveCiphertextKwLen int
	solveMaxCyclewordLen int
	solveCyclewordLen    int
	solveNSigmaThreshold float64
	solveIoCThreshold    float64
	solveNHillClimbs     int
	solveNRestarts       int
	solveBacktrackProb   float64
	solveKeywordPermProb float64
	solveSlipProb        float64
	solveWeightNgram     float64
	solveWeightCrib      float64
	solveWeightIoC       float64
	solveWeightEntropy   float64
	solveVariant         bool
	solveDictionaryFile  string
	solveVerbose         bool
	solveSeed            int64
	solveFrequencyWeight bool
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Recover keyword(s), cycleword, and plaintext for a Vigenere-family cipher",
	Long: `Runs the shotgun-restarted hill climber over a ciphertext (and
optional partial crib) to recover the keyword permutation(s), cycleword, and
plaintext for one of Vigenere, Beaufort, or Quagmire I-IV.

Exit codes follow the conventional Go/Unix mapping: 0 on success, nonzero on
any startup error (missing input, length mismatch, invalid symbol, or an
unrecognized -type). This is a deliberate departure from the original
C implementation's inverted convention - see SPEC_FULL.md.`,
	Run: runSolve,
}

func init() {
	flags := solveCmd.Flags()
	flags.IntVar(&solveCipherType, "type", 0, "0 Vigenere, 1-4 Quagmire I-IV, 5 Beaufort")
	flags.StringVar(&solveCipherFile, "cipher", "", "ciphertext file (first whitespace-delimited token)")
	flags.StringVar(&solveCribFile, "crib", "", "crib file, same length as ciphertext, _ for unknown positions")
	flags.IntVar(&solveNgramSize, "ngramsize", 4, "n in the n-gram model")
	flags.StringVar(&solveNgramFile, "ngramfile", "", "NGRAM\\tCOUNT frequency table, see the ngrams subcommand")
	flags.IntVar(&solveMaxKeywordLen, "maxkeywordlen", 12, "upper bound on both k_P and k_C when unpinned")
	flags.IntVar(&solveKeywordLen, "keywordlen", 0, "pin both k_P and k_C to this exact length")
	flags.IntVar(&solvePlaintextKwLen, "plaintextkeywordlen", 0, "pin k_P to this exact length")
	flags.IntVar(&solveCiphertextKwLen, "ciphertextkeywordlen", 0, "pin k_C to this exact length")
	flags.IntVar(&solveMaxCyclewordLen, "maxcyclewordlen", 20, "upper bound on candidate cycleword lengths")
	flags.IntVar(&solveCyclewordLen, "cyclewordlen", 0, "pin the cycleword length, skipping period estimation")
	flags.Float64Var(&solveNSigmaThreshold, "nsigmathreshold", 1.0, "period estimator z-score acceptance threshold")
	flags.Float64Var(&solveIoCThreshold, "iocthreshold", 0.047, "period estimator absolute mean-IoC acceptance threshold")
	flags.IntVar(&solveNHillClimbs, "nhillclimbs", 1000, "hill-climb iterations per restart")
	flags.IntVar(&solveNRestarts, "nrestarts", 50, "shotgun restarts per search tuple")
	flags.Float64Var(&solveBacktrackProb, "backtrackprob", 0.1, "probability of restarting from the global best instead of fresh random state")
	flags.Float64Var(&solveKeywordPermProb, "keywordpermprob", 0.5, "probability of perturbing the keyword instead of the cycleword")
	flags.Float64Var(&solveSlipProb, "slipprob", 0.05, "probability of accepting a non-improving move")
	flags.Float64Var(&solveWeightNgram, "weightngram", 1.0, "fitness weight on n-gram log-likelihood")
	flags.Float64Var(&solveWeightCrib, "weightcrib", 1.0, "fitness weight on crib match ratio")
	flags.Float64Var(&solveWeightIoC, "weightioc", 1.0, "fitness weight on IoC proximity to English")
	flags.Float64Var(&solveWeightEntropy, "weightentropy", 1.0, "fitness weight on entropy proximity to English")
	flags.BoolVar(&solveVariant, "variant", false, "swap encrypt/decrypt roles")
	flags.StringVar(&solveDictionaryFile, "dictionary", "", "optional dictionary file for post-hoc word spotting")
	flags.BoolVar(&solveVerbose, "verbose", false, "print search diagnostics after the summary line")
	flags.Int64Var(&solveSeed, "seed", 0, "deterministic RNG seed; 0 seeds from the process clock")
	flags.BoolVar(&solveFrequencyWeight, "frequencyweightedperturb", false, "weight keyword perturbation target selection by English monogram frequency")
	rootCmd.AddCommand(solveCmd)
}

// SolveParams bundles every tunable knob from spec.md §6 that isn't the
// ciphertext/crib/dictionary text itself, so PerformSolve can be driven
// equally by the CLI (file-backed flags) and the MCP/HTTP transports
// (JSON request fields), the same split the teacher used for
// PerformHillclimbSolve and its cmd/hillclimb.go flag-parsing caller.
type SolveParams struct {
	CipherType               int
	Variant                  bool
	Crib                     string // "" = no crib
	MaxKeywordLen            int
	KeywordLen               int
	PlaintextKeywordLen      int
	CiphertextKeywordLen     int
	MaxCyclewordLen          int
	CyclewordLen             int
	NSigmaThreshold          float64
	IoCThreshold             float64
	NHillClimbs              int
	NRestarts                int
	BacktrackProb            float64
	KeywordPermProb          float64
	SlipProb                 float64
	WeightNgram              float64
	WeightCrib               float64
	WeightIoC                float64
	WeightEntropy            float64
	FrequencyWeightedPerturb bool
	Seed                     uint64
}

// DefaultSolveParams mirrors the solve subcommand's flag defaults, for
// callers (like the MCP/HTTP transports) that only want to override a few
// fields.
func DefaultSolveParams() SolveParams {
	return SolveParams{
		MaxKeywordLen:   12,
		MaxCyclewordLen: 20,
		NSigmaThreshold: 1.0,
		IoCThreshold:    0.047,
		NHillClimbs:     1000,
		NRestarts:       50,
		BacktrackProb:   0.1,
		KeywordPermProb: 0.5,
		SlipProb:        0.05,
		WeightNgram:     1.0,
		WeightCrib:      1.0,
		WeightIoC:       1.0,
		WeightEntropy:   1.0,
	}
}

// SolveResult is PerformSolve's transport-agnostic output: everything
// cmd/solve.go's summary line and the MCP/HTTP JSON responses need.
type SolveResult struct {
	Score                float64
	Type                 string
	Ciphertext           string
	PlaintextKeyword     string
	CiphertextKeyword    string
	Cycleword            string
	Plaintext            string
	Words                []string
	Backtracks           int
	Slips                int
	Contradictions       int
	CyclewordLen         int
	PlaintextKeywordLen  int
	CiphertextKeywordLen int
}

// PerformSolve runs the full period-estimate -> crib-gate -> hill-climb
// search described in spec.md §4 over ciphertext (an uppercase letters-only
// string), using model as the n-gram language model and, if dict is
// non-nil, spotting dictionary words in the recovered plaintext. It never
// exits the process - every validation failure is returned as an error so
// the MCP/HTTP transports can report it per-request instead of dying.
func PerformSolve(ciphertext string, model *ngram.Model, dict *dictionary.Trie, params SolveParams) (*SolveResult, error) {
	if params.CipherType < 0 || params.CipherType > 5 {
		return nil, fmt.Errorf("type must be in [0,5], got %d", params.CipherType)
	}
	if len(ciphertext) < 2 {
		return nil, fmt.Errorf("ciphertext must be at least 2 symbols long")
	}
	if !isAllLetters(ciphertext) {
		return nil, fmt.Errorf("ciphertext contains a non-letter symbol")
	}
	ctIndices := cipher.OrdString(ciphertext)

	var cribs []crib.Crib
	if params.Crib != "" {
		if len(params.Crib) != len(ciphertext) {
			return nil, fmt.Errorf("crib length %d does not match ciphertext length %d", len(params.Crib), len(ciphertext))
		}
		if !isAllLettersOrBlank(params.Crib) {
			return nil, fmt.Errorf("crib contains a symbol that is neither a letter nor '_'")
		}
		for i := 0; i < len(params.Crib); i++ {
			if params.Crib[i] != '_' {
				cribs = append(cribs, crib.Crib{Position: i, Plaintext: alphabet.Index(params.Crib[i])})
			}
		}
	}

	cyclewordLengths := cyclewordLengthsFor(ctIndices, params)
	if len(cyclewordLengths) == 0 {
		return nil, fmt.Errorf("no candidate cycleword lengths cleared the period estimator's thresholds; pin one with CyclewordLen")
	}

	minKeywordLen := 1
	if params.KeywordLen > 0 {
		minKeywordLen = params.KeywordLen
	}

	req := driver.Request{
		CipherType:                    cipher.Type(params.CipherType),
		Swap:                          params.Variant,
		Ciphertext:                    ctIndices,
		Cribs:                         cribs,
		Model:                         model,
		Weights:                       fitness.Weights{Ngram: params.WeightNgram, Crib: params.WeightCrib, IoC: params.WeightIoC, Entropy: params.WeightEntropy},
		CyclewordLengths:              cyclewordLengths,
		PlaintextKeywordLen:           resolvePinned(params.KeywordLen, params.PlaintextKeywordLen),
		CiphertextKeywordLen:          resolvePinned(params.KeywordLen, params.CiphertextKeywordLen),
		MinKeywordLen:                 minKeywordLen,
		MaxPlaintextKeywordLen:        params.MaxKeywordLen,
		MaxCiphertextKeywordLen:       params.MaxKeywordLen,
		Iterations:                    params.NHillClimbs,
		Restarts:                      params.NRestarts,
		BacktrackProb:                 params.BacktrackProb,
		KeywordPermProb:               params.KeywordPermProb,
		SlipProb:                      params.SlipProb,
		FrequencyWeightedPerturbation: params.FrequencyWeightedPerturb,
		CheckCribsBeforeClimbing:      len(cribs) > 0,
		Seed:                          resolveSeedValue(params.Seed),
	}

	best := driver.Run(req)
	if best == nil {
		return nil, fmt.Errorf("no search tuple survived the crib feasibility gate")
	}

	plaintext := cipher.TextString(best.Decrypted)
	var words []string
	if dict != nil {
		words = dict.FindWords(plaintext)
	}

	return &SolveResult{
		Score:                best.Score,
		Type:                 cipher.Type(params.CipherType).String(),
		Ciphertext:           ciphertext,
		PlaintextKeyword:     cipher.TextString(best.PlaintextKeyword),
		CiphertextKeyword:    cipher.TextString(best.CiphertextKeyword),
		Cycleword:            cipher.TextString(best.Cycleword),
		Plaintext:            plaintext,
		Words:                words,
		Backtracks:           best.Backtracks,
		Slips:                best.Slips,
		Contradictions:       best.Contradictions,
		CyclewordLen:         best.CyclewordLen,
		PlaintextKeywordLen:  best.PlaintextKeywordLen,
		CiphertextKeywordLen: best.CiphertextKeywordLen,
	}, nil
}

// solveExit prints a message to stderr and exits nonzero, the normalized
// (Go/Unix) equivalent of the original source's startup error handling -
// every path here corresponds to one of spec.md §7's fatal error kinds.
func solveExit(kind, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", kind, fmt.Sprintf(format, args...))
	os.Exit(1)
}

func runSolve(cmd *cobra.Command, args []string) {
	if solveCipherFile == "" {
		solveExit("MissingInput", "-cipher is required")
	}
	if solveNgramFile == "" {
		solveExit("MissingInput", "-ngramfile is required")
	}

	cipherToken, err := readFirstToken(solveCipherFile)
	if err != nil {
		solveExit("MissingInput", "could not read -cipher file %s: %v", solveCipherFile, err)
	}

	var cribToken string
	if solveCribFile != "" {
		cribToken, err = readFirstToken(solveCribFile)
		if err != nil {
			solveExit("MissingInput", "could not read -crib file %s: %v", solveCribFile, err)
		}
	}

	ngramFile, err := os.Open(solveNgramFile)
	if err != nil {
		solveExit("MissingInput", "could not open -ngramfile %s: %v", solveNgramFile, err)
	}
	defer ngramFile.Close()
	model, err := ngram.Load(ngramFile, solveNgramSize)
	if err != nil {
		solveExit("MissingInput", "could not load -ngramfile %s: %v", solveNgramFile, err)
	}

	var dict *dictionary.Trie
	if solveDictionaryFile != "" {
		dict = dictionary.New()
		entries := make(chan string)
		go feedDictionaryPaths(entries, solveDictionaryFile)
		for word := range entries {
			dict.Add(word)
		}
	}

	params := SolveParams{
		CipherType:               solveCipherType,
		Variant:                  solveVariant,
		Crib:                     cribToken,
		MaxKeywordLen:            solveMaxKeywordLen,
		KeywordLen:               solveKeywordLen,
		PlaintextKeywordLen:      solvePlaintextKwLen,
		CiphertextKeywordLen:     solveCiphertextKwLen,
		MaxCyclewordLen:          solveMaxCyclewordLen,
		CyclewordLen:             solveCyclewordLen,
		NSigmaThreshold:          solveNSigmaThreshold,
		IoCThreshold:             solveIoCThreshold,
		NHillClimbs:              solveNHillClimbs,
		NRestarts:                solveNRestarts,
		BacktrackProb:            solveBacktrackProb,
		KeywordPermProb:          solveKeywordPermProb,
		SlipProb:                 solveSlipProb,
		WeightNgram:              solveWeightNgram,
		WeightCrib:               solveWeightCrib,
		WeightIoC:                solveWeightIoC,
		WeightEntropy:            solveWeightEntropy,
		FrequencyWeightedPerturb: solveFrequencyWeight,
		Seed:                     uint64(solveSeed),
	}

	// These two error kinds (LengthMismatch, InvalidSymbol/UnknownFlag) are
	// detected inside PerformSolve so the MCP/HTTP transports can share the
	// same validation; the CLI just maps the single returned error back
	// onto spec.md §7's fatal-at-startup behavior.
	result, err := PerformSolve(cipherToken, model, dict, params)
	if err != nil {
		solveExit("SolveError", "%v", err)
	}

	printSummary(result, solveCipherFile)

	if solveVerbose {
		fmt.Printf("restarts=%d iterations/restart=%d backtracks=%d slips=%d contradictions=%d\n",
			solveNRestarts, solveNHillClimbs, result.Backtracks, result.Slips, result.Contradictions)
		fmt.Printf("cycleword_len=%d plaintext_keyword_len=%d ciphertext_keyword_len=%d\n",
			result.CyclewordLen, result.PlaintextKeywordLen, result.CiphertextKeywordLen)
	}
}

// printSummary writes the pipeline-consumer summary line:
// `>>> score, [words, ] type, cipher_file, ciphertext, PT_perm, CT_perm, cycleword, plaintext`.
// Grounded on the original source's final printf block.
func printSummary(result *SolveResult, cipherFile string) {
	var sb strings.Builder
	fmt.Fprintf(&sb, ">>> %.2f, ", result.Score)
	if len(result.Words) > 0 {
		fmt.Fprintf(&sb, "%s, ", strings.Join(result.Words, " "))
	}
	fmt.Fprintf(&sb, "%s, %s, %s, %s, %s, %s, %s\n",
		result.Type,
		cipherFile,
		result.Ciphertext,
		result.PlaintextKeyword,
		result.CiphertextKeyword,
		result.Cycleword,
		result.Plaintext,
	)
	fmt.Print(sb.String())
}

// cyclewordLengthsFor returns the candidate cycleword lengths to search:
// the pinned CyclewordLen value if given, otherwise the period estimator's
// accepted candidates over [1, MaxCyclewordLen].
func cyclewordLengthsFor(ciphertext []int, params SolveParams) []int {
	if params.CyclewordLen > 0 {
		return []int{params.CyclewordLen}
	}
	candidates := driver.EstimatePeriods(ciphertext, params.MaxCyclewordLen, params.NSigmaThreshold, params.IoCThreshold)
	lengths := make([]int, len(candidates))
	for i, c := range candidates {
		lengths[i] = c.Length
	}
	return lengths
}

// resolveSeedValue returns seed if nonzero, otherwise a process-clock-
// derived seed, matching the original source's srand(time(NULL)) while
// still allowing deterministic reruns via an explicit seed.
func resolveSeedValue(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}
	return uint64(time.Now().UnixNano())
}

// resolvePinned returns the more specific of a shared pin (KeywordLen) and
// a per-role pin (PlaintextKeywordLen/CiphertextKeywordLen), preferring the
// per-role value when both are set.
func resolvePinned(shared, perRole int) int {
	if perRole > 0 {
		return perRole
	}
	return shared
}

// readFirstToken opens path and returns its first whitespace-delimited
// token, upper-cased. Grounded on the original source's
// fscanf(fp, "%s", ...) ciphertext/crib reads.
func readFirstToken(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanWords)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("file is empty")
	}
	return strings.ToUpper(scanner.Text()), nil
}

func isAllLetters(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

func isAllLettersOrBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '_' {
			continue
		}
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
