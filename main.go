package main

import (
	"log/slog"
	"os"

	"cgarip/extract"
	"cgarip/inspect"
	"cgarip/palette"
	"cgarip/parallel"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Verbose bool `help:"Log every texture" short:"v"`
	Workers int  `help:"Number of binaries processed at once, 0 for one per CPU" default:"0"`

	Extract extract.CLICmd `cmd:"" default:"withargs" help:"Extract the textures of game binaries into one composite image"`
	List    inspect.CLICmd `cmd:"" help:"List the texture records of a game binary and their placement"`
	Palette palette.CLICmd `cmd:"" help:"List or export palettes"`
}

func exit(code int) {
	if code != 0 {
		code = -1
	}
	os.Exit(code)
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("cgarip"),
		kong.Description("Extracts CGA textures embedded in game binaries."),
		kong.UsageOnError(),
		kong.Exit(exit),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	pool := parallel.Start(cli.Workers, len(cli.Extract.Files))
	err := kctx.Run(parallel.WorkerFunc(pool.Do), parallel.WaitFunc(pool.Wait))
	pool.Cancel()
	if err != nil {
		slog.Error("failed", "command", kctx.Command(), "error", err)
		exit(1)
	}
}
