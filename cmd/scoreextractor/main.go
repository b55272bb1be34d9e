// Command scoreextractor is the entrypoint, built on gopkg.in/urfave/cli.v1
// the way every klaytn cmd/* binary is (cmd/kcn/main.go: utils.NewApp,
// nodeFlags slice, app.Action).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/urfave/cli.v1"

	"github.com/namada-testnet/score-extractor/internal/config"
	"github.com/namada-testnet/score-extractor/internal/db"
	"github.com/namada-testnet/score-extractor/internal/driver"
	"github.com/namada-testnet/score-extractor/internal/log"
)

var logger = log.NewModuleLogger("main")

func main() {
	app := cli.NewApp()
	app.Name = "scoreextractor"
	app.Usage = "periodic scoring worker for the Namada Shielded Expedition testnet"
	app.Flags = config.Flags
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cliCtx *cli.Context) error {
	log.SetMaxLevel(log.Level(cliCtx.Int(config.VerbosityFlag.Name)))

	if cliCtx.String(config.DatabaseURLFlag.Name) == "" {
		return cli.NewExitError("--database-url is required", 1)
	}
	if cliCtx.String(config.CometBFTURLFlag.Name) == "" {
		return cli.NewExitError("--cometbft-url is required", 1)
	}

	conn, err := db.Open(cliCtx.String(config.DatabaseURLFlag.Name))
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("open database: %v", err), 1)
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cx, err := config.NewContext(ctx, cliCtx, conn)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("build context: %v", err), 1)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("interrupt received")
		cancel()
	}()

	driver.Run(ctx, cx)
	logger.Info("shutdown complete")
	return nil
}
