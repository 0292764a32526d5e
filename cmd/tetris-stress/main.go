package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/plus3/tetrion/tetris"
)

const (
	boardWidth  = 10
	boardHeight = 20
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	fill := flag.Float64("fill", 0.3, "Fraction of rows seeded with garbage cells.")
	seed := flag.Int64("seed", 1, "Seed for the garbage generator.")
	algorithm := flag.String("algorithm", "PathSearch", "Search algorithm to stress.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting placement-search stress test...")

	search, err := tetris.SearchAlgorithms().Create(*algorithm)
	if err != nil {
		log.Fatalf("Unknown search algorithm: %v", err)
	}
	system, err := tetris.RotationSystems().Create("SRS")
	if err != nil {
		log.Fatalf("Unknown rotation system: %v", err)
	}

	report := &Report{
		Duration:       *duration,
		BoardWidth:     boardWidth,
		BoardHeight:    boardHeight,
		Algorithm:      *algorithm,
		Fill:           *fill,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running searches for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	rng := rand.New(rand.NewSource(*seed))
	startTime := time.Now()

	var mu sync.Mutex

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}

		gs, err := randomGameState(system, rng, *fill)
		if err != nil {
			log.Fatalf("Failed to build a game state: %v", err)
		}

		// One search per piece type, concurrently; the engine itself is
		// synchronous, but independent searches over clones are free to fan
		// out.
		var group errgroup.Group
		for _, pieceType := range tetris.PieceTypes() {
			group.Go(func() error {
				clone := gs.Clone()
				if ok, err := clone.SpawnPiece(pieceType); err != nil {
					return err
				} else if !ok {
					return nil
				}

				searchStart := time.Now()
				landings := search.FindLandingPositions(clone, clone.CurrentPiece(), 0)
				elapsed := time.Since(searchStart)

				mu.Lock()
				report.TotalSearches++
				report.TotalLandings += int64(len(landings))
				report.SearchTime.Samples = append(report.SearchTime.Samples, elapsed)
				mu.Unlock()
				return nil
			})
		}
		if err := group.Wait(); err != nil {
			log.Fatalf("Search failed: %v", err)
		}
		report.TotalBoards++
	}

	report.TotalTime = time.Since(startTime)
	report.SearchTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Stress test finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// randomGameState builds a game state whose lower rows carry random garbage
// with one guaranteed hole per row, resembling a mid-game stack.
func randomGameState(system tetris.RotationSystem, rng *rand.Rand, fill float64) (*tetris.GameState, error) {
	gs, err := tetris.NewGameState(boardWidth, boardHeight, system)
	if err != nil {
		return nil, err
	}

	garbageRows := int(float64(boardHeight) * fill)
	for y := 0; y < garbageRows; y++ {
		hole := rng.Intn(boardWidth)
		for x := 0; x < boardWidth; x++ {
			if x == hole {
				continue
			}
			if rng.Float64() < 0.8 {
				gs.Board().FillCell(x, y)
			}
		}
	}
	return gs, nil
}
