package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/stablescan/walletstat/internal/config"
	"github.com/stablescan/walletstat/internal/covalent"
	"github.com/stablescan/walletstat/internal/domain"
	"github.com/stablescan/walletstat/internal/export"
	"github.com/stablescan/walletstat/internal/portfolio"
	"github.com/stablescan/walletstat/internal/worker"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := &cli.App{
		Name:  "walletstat",
		Usage: "compute what share of a wallet's holdings are stablecoins",
		Commands: []*cli.Command{
			checkCommand(),
			exportCommand(),
			watchCommand(),
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

// newAggregator wires the balance client and the aggregator from config.
func newAggregator(cfg config.Config) *portfolio.Service {
	client := covalent.NewClient(cfg.ChainDataURL, cfg.ChainDataAPIKey, cfg.RequestTimeout)
	return portfolio.NewService(client, cfg.Networks, domain.DefaultClassifier(), cfg.RequestDelay)
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "print the stablecoin share of a wallet",
		ArgsUsage: "<address>",
		Action: func(c *cli.Context) error {
			svc := newAggregator(config.Load())

			b, err := svc.Breakdown(c.Context, c.Args().First())
			if errors.Is(err, portfolio.ErrEmptyAddress) {
				return cli.Exit("address must not be empty", 1)
			}
			if err != nil {
				return err
			}

			printBreakdown(b)
			return nil
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "write a wallet breakdown report to a spreadsheet",
		ArgsUsage: "<address>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Usage: "path of the .xlsx file to write"},
			&cli.StringFlag{Name: "spreadsheet-id", Usage: "Google Sheets spreadsheet to update"},
			&cli.StringFlag{Name: "credentials-file", Usage: "service account JSON for Google Sheets"},
		},
		Action: func(c *cli.Context) error {
			writer, err := newReportWriter(c)
			if err != nil {
				return err
			}

			svc := newAggregator(config.Load())
			b, err := svc.Breakdown(c.Context, c.Args().First())
			if errors.Is(err, portfolio.ErrEmptyAddress) {
				return cli.Exit("address must not be empty", 1)
			}
			if err != nil {
				return err
			}

			if err := export.NewService(writer).Export(c.Context, b); err != nil {
				return err
			}

			printBreakdown(b)
			return nil
		},
	}
}

func watchCommand() *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "recompute the breakdown of a wallet on an interval",
		ArgsUsage: "<address>",
		Flags: []cli.Flag{
			&cli.DurationFlag{Name: "interval", Usage: "override the check interval"},
			&cli.StringFlag{Name: "out", Usage: "rewrite this .xlsx report after every check"},
		},
		Action: func(c *cli.Context) error {
			cfg := config.Load()
			address := c.Args().First()
			if address == "" {
				return cli.Exit("address must not be empty", 1)
			}

			interval := cfg.WatchInterval
			if c.Duration("interval") > 0 {
				interval = c.Duration("interval")
			}

			var hook worker.ExportHook
			if out := c.String("out"); out != "" {
				hook = export.NewService(export.NewXLSXWriter(out))
			}

			w := worker.NewWatchWorker(newAggregator(cfg), address, interval, hook)
			w.Run(c.Context)
			return nil
		},
	}
}

// newReportWriter picks the spreadsheet destination from the export flags.
func newReportWriter(c *cli.Context) (export.ReportWriter, error) {
	out := c.String("out")
	spreadsheetID := c.String("spreadsheet-id")

	switch {
	case out != "" && spreadsheetID != "":
		return nil, cli.Exit("use either --out or --spreadsheet-id, not both", 1)
	case out != "":
		return export.NewXLSXWriter(out), nil
	case spreadsheetID != "":
		credsFile := c.String("credentials-file")
		if credsFile == "" {
			return nil, cli.Exit("--spreadsheet-id requires --credentials-file", 1)
		}
		creds, err := os.ReadFile(credsFile)
		if err != nil {
			return nil, fmt.Errorf("reading credentials file: %w", err)
		}
		return export.NewSheetsWriter(c.Context, spreadsheetID, string(creds))
	default:
		return nil, cli.Exit("either --out or --spreadsheet-id is required", 1)
	}
}

func printBreakdown(b domain.Breakdown) {
	fmt.Printf("Address:  %s\n", b.Address)
	fmt.Printf("Total:    $%s\n", domain.FormatUSD(b.Total))
	fmt.Printf("Stable:   $%s\n", domain.FormatUSD(b.Stable))
	fmt.Printf("Stable %%: %s%%\n", domain.FormatPercent(b.Percentage()))
	fmt.Println()

	for _, n := range b.Networks {
		if n.Skipped {
			fmt.Printf("  %-20s skipped: %s\n", n.Network, n.SkipReason)
			continue
		}
		fmt.Printf("  %-20s total $%s, stable $%s\n",
			n.Network, domain.FormatUSD(n.Total), domain.FormatUSD(n.Stable))
	}

	if b.Total.IsZero() {
		fmt.Println("\nNo balances found on the configured networks.")
	}
}
