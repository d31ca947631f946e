package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"google.golang.org/api/iterator"

	"crosswarped.com/wordsquare"
	"crosswarped.com/wordsquare/internal/wordlist"
	"crosswarped.com/wordsquare/pkg/dictionary"
)

type WordCluePair struct {
	Word string `json:"word"`
	Clue string `json:"clue"`
}

type GeneratePuzzleRequest struct {
	Randomness *float64       `json:"randomness"`
	MaxTries   int            `json:"maxTries"`
	Seed       uint64         `json:"seed"`
	WordScope  string         `json:"wordScope"`
	Entries    []WordCluePair `json:"entries"`
}

type GeneratePuzzleResponse struct {
	Success  bool     `json:"success"`
	Grid     []string `json:"grid,omitempty"`
	Across   []string `json:"across,omitempty"`
	Down     []string `json:"down,omitempty"`
	Attempts int      `json:"attempts,omitempty"`
	Error    string   `json:"error,omitempty"`
}

type service struct {
	cfg    Config
	log    *slog.Logger
	gemini *GeminiClient
}

func (s *service) getEntries(ctx context.Context, scope string) ([]dictionary.Entry, error) {
	client, err := bigquery.NewClient(ctx, s.cfg.BigQueryProject)
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	query := fmt.Sprintf("SELECT word, clue FROM `%s` WHERE scope = %q AND LENGTH(word) = %d",
		s.cfg.BigQueryTable, scope, wordsquare.Size)
	q := client.Query(query)
	q.Location = s.cfg.BigQueryLocation

	job, err := q.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}

	var entries []dictionary.Entry
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}

		word, ok := row[0].(string)
		if !ok {
			return nil, fmt.Errorf("row[0] is not a string: %v", row[0])
		}
		clue, ok := row[1].(string)
		if !ok {
			return nil, fmt.Errorf("row[1] is not a string: %v", row[1])
		}
		entries = append(entries, dictionary.Entry{Word: strings.ToLower(word), Clue: clue})
	}
	return entries, nil
}

func (s *service) execute(ctx context.Context, req GeneratePuzzleRequest) (*wordsquare.Puzzle, error) {
	randomness := s.cfg.DefaultRandomness
	if req.Randomness != nil {
		randomness = *req.Randomness
	}
	if randomness < 0 || randomness > 1 {
		return nil, fmt.Errorf("randomness must be in [0, 1]")
	}

	maxTries := req.MaxTries
	if maxTries == 0 {
		maxTries = s.cfg.DefaultMaxTries
	}
	if maxTries < 1 || maxTries > 10000 {
		return nil, fmt.Errorf("maxTries must be between 1 and 10000")
	}

	var entries []dictionary.Entry
	for _, p := range req.Entries {
		word := strings.ToLower(strings.TrimSpace(p.Word))
		if err := wordlist.CheckWord(word); err != nil {
			return nil, fmt.Errorf("entries: %w", err)
		}
		entries = append(entries, dictionary.Entry{Word: word, Clue: p.Clue})
	}

	if req.WordScope != "" {
		scoped, err := s.getEntries(ctx, req.WordScope)
		if err != nil {
			return nil, fmt.Errorf("getEntries: %w", err)
		}
		s.log.Info("loaded scoped words", "scope", req.WordScope, "count", len(scoped))
		entries = append(entries, scoped...)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("entries or wordScope must be provided")
	}

	seed := req.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	gen := wordsquare.CreateGenerator(dictionary.FromEntries(entries), rng, wordsquare.GeneratorParams{
		Randomness: randomness,
		MaxTries:   maxTries,
	})

	puzzle, err := gen.Generate(ctx)
	if err != nil {
		return nil, err
	}

	s.writeMissingClues(ctx, puzzle)
	return puzzle, nil
}

// writeMissingClues asks Gemini for clues the dictionary could not supply.
// Failures keep the placeholder; the puzzle is already valid.
func (s *service) writeMissingClues(ctx context.Context, puzzle *wordsquare.Puzzle) {
	if s.gemini == nil {
		return
	}
	for i := 0; i < wordsquare.Size; i++ {
		if puzzle.Clues.Across[i] == wordsquare.NoClueFound {
			if clue, err := s.gemini.WriteClue(ctx, puzzle.Grid.Row(i)); err == nil {
				puzzle.Clues.Across[i] = clue
			} else {
				s.log.Warn("gemini clue failed", "word", puzzle.Grid.Row(i), "error", err)
			}
		}
		if puzzle.Clues.Down[i] == wordsquare.NoClueFound {
			if clue, err := s.gemini.WriteClue(ctx, puzzle.Grid.Column(i)); err == nil {
				puzzle.Clues.Down[i] = clue
			} else {
				s.log.Warn("gemini clue failed", "word", puzzle.Grid.Column(i), "error", err)
			}
		}
	}
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func (s *service) generatePuzzle(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		fmt.Fprintf(w, `{"success": false, "error": "Method %s not allowed"}`, r.Method)
		return
	}

	var req GeneratePuzzleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.log.Error("invalid request body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(GeneratePuzzleResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid JSON: %v", err),
		})
		return
	}

	puzzle, err := s.execute(r.Context(), req)

	var response GeneratePuzzleResponse
	if err != nil {
		var exhausted *wordsquare.ExhaustedError
		switch {
		case errors.As(err, &exhausted):
			s.log.Warn("generation exhausted", "attempts", exhausted.Attempts)
		default:
			s.log.Error("generation failed", "error", err)
		}
		response = GeneratePuzzleResponse{Success: false, Error: err.Error()}
	} else {
		s.log.Info("generated puzzle", "attempts", puzzle.Attempts)
		response = GeneratePuzzleResponse{
			Success:  true,
			Grid:     strings.Split(puzzle.Grid.Repr(), "\n"),
			Across:   puzzle.Clues.Across[:],
			Down:     puzzle.Clues.Down[:],
			Attempts: puzzle.Attempts,
		}
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		s.log.Error("encoding response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"success": false, "error": "Internal server error"}`)
	}
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		slog.Error("loading config", "error", err)
		panic(err)
	}
	log := newLogger(cfg)

	s := &service{cfg: cfg, log: log}

	ctx := context.Background()
	if cfg.GeminiProject != "" {
		gemini, err := NewGeminiClient(ctx, cfg.GeminiProject, cfg.GeminiRegion)
		if err != nil {
			log.Error("initializing gemini", "error", err)
			panic(err)
		}
		defer gemini.Close()
		s.gemini = gemini
		log.Info("gemini clue writer enabled", "project", cfg.GeminiProject)
	} else {
		log.Info("GCP_PROJECT_ID not set, gemini clue writer disabled")
	}

	funcframework.RegisterHTTPFunction("/generate-puzzle", s.generatePuzzle)

	hostname := ""
	if cfg.LocalOnly {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, cfg.Port); err != nil {
		log.Error("funcframework.StartHostPort", "error", err)
		panic(err)
	}
}
