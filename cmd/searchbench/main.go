package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"xfchess-engine/engine"
	"xfchess-engine/rules"
)

// run is one search of one position.
type run struct {
	index int
	fen   string
	res   engine.Result
}

func main() {
	depthFlag := flag.Int("depth", 0, "search depth in plies (0 = limited by -budget only)")
	budgetFlag := flag.Duration("budget", 0, "time budget per search")
	repeatFlag := flag.Int("repeat", 1, "number of searches per position")
	fenFlag := flag.String("fen", "", "FENs to search, separated by '|' (empty = startpos)")
	parallelFlag := flag.Int("parallel", 1, "searches running at once, each with its own searcher")
	ttFlag := flag.Int("tt", engine.DefaultConfig().TTSizeMB, "transposition table size in MB per searcher")
	verboseFlag := flag.Bool("v", false, "print info lines and cut statistics (forces -parallel 1)")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	if *depthFlag <= 0 && *budgetFlag <= 0 {
		log.Fatalf("need a positive -depth or -budget")
	}
	if *parallelFlag <= 0 || *verboseFlag {
		*parallelFlag = 1
	}

	fens := []string{rules.FENStartPos}
	if *fenFlag != "" {
		fens = strings.Split(*fenFlag, "|")
	}
	for _, fen := range fens {
		if _, err := rules.ParseFEN(strings.TrimSpace(fen)); err != nil {
			log.Fatalf("bad FEN %q: %v", fen, err)
		}
	}

	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	cfg := engine.DefaultConfig()
	cfg.TTSizeMB = *ttFlag
	if *verboseFlag {
		cfg.Output = os.Stdout
		cfg.PrintCutStats = true
	}
	limits := engine.Limits{Depth: *depthFlag, Budget: *budgetFlag}
	tables := rules.BuildTables()

	fmt.Printf("searchbench: positions=%d depth=%d budget=%s repeat=%d parallel=%d\n",
		len(fens), *depthFlag, *budgetFlag, *repeatFlag, *parallelFlag)

	// Each worker owns a searcher; searchers are not shared between goroutines.
	searchers := make(chan *engine.Searcher, *parallelFlag)
	for i := 0; i < *parallelFlag; i++ {
		searchers <- engine.NewSearcher(tables, cfg)
	}

	var (
		mu      sync.Mutex
		results []run
	)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*parallelFlag)
	startAll := time.Now()
	for i := 0; i < len(fens)*(*repeatFlag); i++ {
		i := i
		fen := strings.TrimSpace(fens[i%len(fens)])
		g.Go(func() error {
			s := <-searchers
			defer func() { searchers <- s }()
			s.ClearCache()
			res, err := s.Search(ctx, rules.MustParseFEN(fen), limits)
			if err != nil {
				return fmt.Errorf("search %d (%s): %w", i+1, fen, err)
			}
			mu.Lock()
			results = append(results, run{index: i, fen: fen, res: res})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	totalElapsed := time.Since(startAll)
	sort.Slice(results, func(i, j int) bool { return results[i].index < results[j].index })

	var totalNodes uint64
	for _, r := range results {
		totalNodes += r.res.Nodes
		fmt.Printf("search %d: bestmove %s score %d depth %d nodes %d time=%v\n",
			r.index+1, r.res.Move, r.res.Score, r.res.Depth, r.res.Nodes, r.res.Elapsed)
	}
	fmt.Printf("total time: %v nodes: %d nps: %.0f\n",
		totalElapsed, totalNodes, float64(totalNodes)/totalElapsed.Seconds())

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}
}
