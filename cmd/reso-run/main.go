// Command reso-run simulates boards without a window and writes the rendered
// frames to disk.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"reso/internal/board"
	"reso/internal/render"

	"github.com/pkg/errors"
)

type options struct {
	ticks   int
	out     string
	format  render.Format
	text    bool
	seed    int64
	verbose bool
}

type job struct {
	index int
	path  string
}

type runResult struct {
	path    string
	name    string
	settled int
	summary string
	err     error
}

func main() {
	ticks := flag.Int("ticks", 16, "ticks to simulate per board")
	out := flag.String("out", "", "directory for rendered frames, empty disables output")
	format := flag.String("format", "png", "frame format: png or bmp")
	text := flag.Bool("text", false, "also write the final state as a text board")
	seed := flag.Int64("seed", 0, "scramble wire states before the first tick, 0 keeps the image states")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	verbose := flag.Bool("v", false, "log board statistics")
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		log.Fatal("usage: reso-run [flags] board.png [board.txt ...]")
	}
	f, err := render.ParseFormat(*format)
	if err != nil {
		log.Fatal(err)
	}
	opts := options{ticks: *ticks, out: *out, format: f, text: *text, seed: *seed, verbose: *verbose}
	if opts.out != "" {
		if err := os.MkdirAll(opts.out, 0o755); err != nil {
			log.Fatalf("create output dir: %v", err)
		}
	}

	jobs := make(chan job)
	results := make(chan runResult)
	var wg sync.WaitGroup

	for i := 0; i < max(*workers, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- run(j, opts)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i, p := range paths {
			jobs <- job{index: i, path: p}
		}
		close(jobs)
	}()

	start := time.Now()
	var all []runResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].path < all[j].path })

	failed := 0
	for _, res := range all {
		if res.err != nil {
			failed++
			fmt.Printf("%s: %v\n", res.path, res.err)
			continue
		}
		state := "still changing"
		if res.settled >= 0 {
			state = fmt.Sprintf("settled at tick %d", res.settled)
		}
		fmt.Printf("%s: %s, %s\n", res.name, state, res.summary)
	}
	fmt.Printf("\n%d boards, %d failed (elapsed %s)\n", len(all), failed, time.Since(start).Round(time.Millisecond))
	if failed > 0 {
		os.Exit(1)
	}
}

func run(j job, opts options) runResult {
	res := runResult{path: j.path, settled: -1}
	cfg := board.DefaultConfig()
	if opts.verbose {
		cfg.Logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	b, err := board.LoadWithConfig(j.path, cfg)
	if err != nil {
		res.err = err
		return res
	}
	res.name = b.Name()
	if opts.seed != 0 {
		b.Reset(opts.seed)
	}

	var dir string
	if opts.out != "" {
		dir = boardDir(opts.out, j.index, b.Name())
		if err := os.MkdirAll(dir, 0o755); err != nil {
			res.err = errors.Wrap(err, "create board dir")
			return res
		}
	}
	if err := writeFrame(b, dir, opts.format); err != nil {
		res.err = err
		return res
	}
	prev := b.Circuit().Snapshot(nil)
	next := make([]bool, len(prev))
	for i := 0; i < opts.ticks; i++ {
		b.Iterate()
		next = b.Circuit().Snapshot(next)
		if slices.Equal(prev, next) {
			if res.settled < 0 {
				res.settled = b.Ticks() - 1
			}
		} else {
			res.settled = -1
		}
		prev, next = next, prev
		if err := writeFrame(b, dir, opts.format); err != nil {
			res.err = err
			return res
		}
	}

	if opts.text && dir != "" {
		if err := writeText(b, dir); err != nil {
			res.err = err
			return res
		}
	}
	res.summary = summarize(b)
	return res
}

// boardDir is the output directory of the index-th board on the command
// line. The index keeps boards that share a file name apart.
func boardDir(out string, index int, name string) string {
	return filepath.Join(out, fmt.Sprintf("%03d_%s", index, name))
}

func writeFrame(b *board.Board, dir string, format render.Format) error {
	if dir == "" {
		return nil
	}
	name := fmt.Sprintf("%s_%04d.%s", b.Name(), b.Ticks(), format)
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return errors.Wrap(err, "create frame")
	}
	if err := render.Encode(f, b.Frame(), format); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "close frame")
}

func writeText(b *board.Board, dir string) error {
	f, err := os.Create(filepath.Join(dir, b.Name()+board.TextExt))
	if err != nil {
		return errors.Wrap(err, "create text board")
	}
	if err := board.EncodeText(f, b); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "close text board")
}

func summarize(b *board.Board) string {
	snap := b.Parameters()
	var parts []string
	for _, key := range []string{"w", "h", "regions", "circuits", "wires_high", "wires_low"} {
		if p, ok := snap.Lookup(key); ok {
			parts = append(parts, p.Key+"="+p.Value)
		}
	}
	return strings.Join(parts, " ")
}
