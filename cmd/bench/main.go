package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/performer"
)

func main() {
	count := flag.Int("count", 1000, "Number of articles to generate")
	adapter := flag.String("adapter", "fs", "Storage adapter (fs, sqlite)")
	keep := flag.Bool("keep", false, "Keep the benchmark project after running")
	flag.Parse()

	benchDir, err := os.MkdirTemp("", "performer_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))

	project, err := performer.Open(ctx, benchDir,
		performer.WithAdapter(*adapter),
		performer.WithLogger(logger),
	)
	if err != nil {
		panic(err)
	}
	defer project.Close()

	fmt.Printf("Creating %d articles in %s (%s)...\n", *count, benchDir, *adapter)
	start := time.Now()
	for i := 0; i < *count; i++ {
		a := performer.NewArticle(fmt.Sprintf("name_%d", i), fmt.Sprintf("first_%d last_%d", i, i))
		if err := project.Articles.Create(ctx, a); err != nil {
			panic(err)
		}
	}
	fmt.Printf("Create took: %v\n", time.Since(start))

	start = time.Now()
	articles, err := project.Articles.List(ctx)
	if err != nil {
		panic(err)
	}
	fmt.Printf("List took: %v (%d articles)\n", time.Since(start), len(articles))

	start = time.Now()
	for _, a := range articles {
		if _, err := project.Wiring.Article(a).View(); err != nil {
			panic(err)
		}
	}
	elapsed := time.Since(start)
	fmt.Printf("Render took: %v (%v per article)\n", elapsed, elapsed/time.Duration(max(len(articles), 1)))
}
