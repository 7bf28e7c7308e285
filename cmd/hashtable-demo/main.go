package main

import (
	"fmt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/skybi/hashtable/internal/config"
	"github.com/skybi/hashtable/internal/hashmap"
	"github.com/skybi/hashtable/internal/random"
	"io"
	"os"
)

// sampleLines are inserted into every demo table; with the default capacity of 2 at least two of them collide
var sampleLines = []struct {
	key   string
	value string
}{
	{"line_1", "Tiny hash table"},
	{"line_2", "Filled beyond capacity"},
	{"line_3", "Linked list saves the day!"},
}

func main() {
	// Set up zerolog to use pretty printing
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out: os.Stderr,
	})

	// Load the application configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load the configuration")
	}
	if cfg.IsEnvProduction() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Debug().Str("config", fmt.Sprintf("%+v", cfg)).Msg("")

	if err := run(cfg, os.Stdout, log.Logger); err != nil {
		log.Fatal().Err(err).Msg("the demonstration failed")
	}
}

func run(cfg *config.Config, out io.Writer, logger zerolog.Logger) error {
	table, err := hashmap.New(cfg.Capacity, hashmap.WithLogger(logger))
	if err != nil {
		return err
	}
	defer func() {
		if !table.Destroyed() {
			table.Destroy()
		}
	}()

	for _, line := range sampleLines {
		table.Insert(line.key, line.value)
	}
	for key, value := range random.Pairs(cfg.Fill, 16) {
		table.Insert(key, value)
	}

	for _, line := range sampleLines {
		value, ok := table.Retrieve(line.key)
		if !ok {
			return fmt.Errorf("could not retrieve %q", line.key)
		}
		fmt.Fprintln(out, value)
	}

	for i := 0; i < cfg.Resizes; i++ {
		oldCapacity := table.Capacity()
		resized, err := table.Resize()
		if err != nil {
			return err
		}
		table = resized
		fmt.Fprintf(out, "\nResizing hash table from %d to %d.\n", oldCapacity, table.Capacity())
	}

	stats := table.Stats()
	logger.Info().
		Int("capacity", stats.Capacity).
		Int("size", stats.Size).
		Int("used_buckets", stats.UsedBuckets).
		Int("longest_chain", stats.LongestChain).
		Float64("load_factor", stats.LoadFactor).
		Msg("table statistics")

	return table.Check()
}
