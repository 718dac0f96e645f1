package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/cheggaaa/pb/v3"
	"github.com/urfave/cli/v3"
	_ "go.uber.org/automaxprocs"

	"github.com/postindex/belindex/addrparse"
	"github.com/postindex/belindex/belpost"
	"github.com/postindex/belindex/geocoder"
	"github.com/postindex/belindex/search"
	"github.com/postindex/belindex/server"
	"github.com/postindex/belindex/streetbook"
)

func main() {
	app := &cli.App{
		Name:        "belindex",
		Description: "Belarusian postal code search over the public lookup source",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "serve the postal code search api",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
					},
				}, pipelineFlags()...),
				Action: serve,
			},
			{
				Name:    "batch",
				Aliases: []string{"b"},
				Usage:   "resolve postal codes for a file of addresses",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:      "input",
						Aliases:   []string{"i"},
						Required:  true,
						TakesFile: true,
					},
					&cli.StringFlag{
						Name:     "output",
						Aliases:  []string{"o"},
						Required: true,
					},
					&cli.IntFlag{
						Name:        "workers",
						Aliases:     []string{"w"},
						Value:       4,
						DefaultText: "4",
					},
				}, pipelineFlags()...),
				Action: batch,
			},
			{
				Name:  "streetbook",
				Usage: "build the reference street corpus from the address database",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:      "db",
						Required:  true,
						TakesFile: true,
					},
					&cli.StringFlag{
						Name:     "output",
						Aliases:  []string{"o"},
						Required: true,
					},
				},
				Action: buildStreetBook,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func pipelineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "geocoder-url",
			Value: envOr("GEOCODER_URL", "http://localhost:8000"),
		},
		&cli.StringFlag{
			Name:      "street-book",
			Value:     envOr("STREET_BOOK_FILE", "streets_book.txt"),
			TakesFile: true,
		},
		&cli.Float64Flag{
			Name:  "correction-threshold",
			Value: streetbook.DefaultThreshold,
		},
		&cli.IntFlag{
			Name:  "max-sessions",
			Value: belpost.ConfigDefault().MaxSessions,
		},
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func buildPipeline(ctx *cli.Context) (*search.Service, *addrparse.Parser, *geocoder.Client, *belpost.Client) {
	geo := geocoder.NewClient(ctx.String("geocoder-url"))
	corrector := streetbook.NewCorrector(ctx.String("street-book"), ctx.Float64("correction-threshold"))
	parser := addrparse.NewParser(geo, corrector)

	cfg := belpost.ConfigDefault()
	cfg.MaxSessions = ctx.Int("max-sessions")
	lookup := belpost.NewClient(cfg)

	return search.NewService(parser, lookup), parser, geo, lookup
}

func serve(ctx *cli.Context) error {
	svc, parser, geo, lookup := buildPipeline(ctx)
	defer lookup.Close()

	runCtx, stop := signal.NotifyContext(ctx.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.Run(runCtx, ctx.String("listen"), svc, parser, geo)
}

func batch(ctx *cli.Context) error {
	svc, _, _, lookup := buildPipeline(ctx)
	defer lookup.Close()

	addresses, err := readAddresses(ctx.String("input"))
	if err != nil {
		return err
	}
	if len(addresses) == 0 {
		return fmt.Errorf("no addresses in %s", ctx.String("input"))
	}

	bar := pb.StartNew(len(addresses))
	entries, err := svc.Batch(ctx.Context, addresses, ctx.Int("workers"), func() { bar.Increment() })
	bar.Finish()
	if err != nil {
		return err
	}

	out, err := os.Create(ctx.String("output"))
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer out.Close()

	if strings.EqualFold(filepath.Ext(ctx.String("output")), ".xlsx") {
		return search.WriteXLSX(out, entries)
	}
	return search.WriteCSV(out, entries)
}

func buildStreetBook(ctx *cli.Context) error {
	count, err := streetbook.Build(ctx.Context, ctx.String("db"), ctx.String("output"))
	if err != nil {
		return err
	}
	fmt.Printf("Street book written: %d entries\n", count)
	return nil
}

// readAddresses loads one address per line, skipping blanks.
func readAddresses(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	var addresses []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		addresses = append(addresses, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}
	return addresses, nil
}
