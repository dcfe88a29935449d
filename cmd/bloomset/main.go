// Command bloomset is an interactive shell around a bloom filter.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/codegangsta/cli"
	"github.com/jcalabro/bloomset"
)

// Sizes used when neither explicit nor derived parameters are given.
const (
	defaultBits   = 1000
	defaultHashes = 3
)

var globalFlags = []cli.Flag{
	cli.Uint64Flag{
		Name:   "items, n",
		Usage:  "Expected number of items; derives bits and hashes",
		EnvVar: "BLOOMSET_ITEMS",
	},
	cli.Float64Flag{
		Name:   "fp-rate, p",
		Usage:  "Target false positive rate in (0, 1), used with --items",
		Value:  0.01,
		EnvVar: "BLOOMSET_FP_RATE",
	},
	cli.Uint64Flag{
		Name:   "bits, m",
		Usage:  "Explicit bit array size",
		EnvVar: "BLOOMSET_BITS",
	},
	cli.Uint64Flag{
		Name:   "hashes, k",
		Usage:  "Explicit number of hash probes",
		EnvVar: "BLOOMSET_HASHES",
	},
	cli.StringFlag{
		Name:   "hash",
		Usage:  "Index hasher: sha256, xxh3, murmur3 or xxhash",
		Value:  bloomset.SHA256.Name(),
		EnvVar: "BLOOMSET_HASH",
	},
}

// filterConfig is the parsed form of the global flags.
type filterConfig struct {
	items  uint64
	fpRate float64
	bits   uint64
	hashes uint64
	hash   string
}

func configFromContext(c *cli.Context) filterConfig {
	return filterConfig{
		items:  c.GlobalUint64("items"),
		fpRate: c.GlobalFloat64("fp-rate"),
		bits:   c.GlobalUint64("bits"),
		hashes: c.GlobalUint64("hashes"),
		hash:   c.GlobalString("hash"),
	}
}

// newFilter builds a filter from explicit sizes if either was given,
// otherwise from the expected item count, otherwise from the defaults.
func (cfg filterConfig) newFilter() (*bloomset.Filter, error) {
	h, err := bloomset.HasherByName(cfg.hash)
	if err != nil {
		return nil, err
	}

	switch {
	case cfg.bits > 0 || cfg.hashes > 0:
		bits, hashes := cfg.bits, cfg.hashes
		if bits == 0 {
			bits = defaultBits
		}
		if hashes == 0 {
			hashes = defaultHashes
		}
		if hashes > 1<<32-1 {
			return nil, fmt.Errorf("%w: hash count %d too large", bloomset.ErrInvalidArgument, hashes)
		}
		return bloomset.NewWithParams(bits, uint32(hashes), bloomset.WithHasher(h))
	case cfg.items > 0:
		return bloomset.New(cfg.items, cfg.fpRate, bloomset.WithHasher(h))
	default:
		return bloomset.NewWithParams(defaultBits, defaultHashes, bloomset.WithHasher(h))
	}
}

func printStats(w io.Writer, f *bloomset.Filter) {
	fmt.Fprintf(w, "bits: %d\n", f.Cap())
	fmt.Fprintf(w, "hashes: %d (%s)\n", f.K(), f.Hasher().Name())
	fmt.Fprintf(w, "items: %d\n", f.Count())
	fmt.Fprintf(w, "fill ratio: %.4f\n", f.EstimatedFillRatio())
	fmt.Fprintf(w, "estimated fp rate: %.6f\n", f.EstimatedFalsePositiveRate())
}

func runShell(c *cli.Context) error {
	f, err := configFromContext(c).newFilter()
	if err != nil {
		return err
	}
	log.Printf("filter ready: %d bits, %d hashes, %s", f.Cap(), f.K(), f.Hasher().Name())

	fmt.Println("Bloom Filter Demo (type 'exit' to quit, '.help' for commands)")
	return newShell(f).Run(os.Stdin, os.Stdout, prompt)
}

func showParams(c *cli.Context) error {
	cfg := configFromContext(c)
	if cfg.items == 0 {
		cfg.items = 1000
	}
	bits, hashes, err := bloomset.OptimalParams(cfg.items, cfg.fpRate)
	if err != nil {
		return err
	}
	fmt.Printf("items: %d\nfp rate: %v\nbits: %d\nhashes: %d\nbytes: %d\n",
		cfg.items, cfg.fpRate, bits, hashes, (bits+7)/8)
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("bloomset: ")

	app := cli.NewApp()
	app.Name = "bloomset"
	app.Usage = "probabilistic set membership shell"
	app.Flags = globalFlags
	app.Action = runShell
	app.Commands = []cli.Command{
		{
			Name:    "shell",
			Aliases: []string{"sh"},
			Usage:   "Add and check items interactively",
			Action:  runShell,
		},
		{
			Name:   "params",
			Usage:  "Show derived bits and hashes for --items and --fp-rate",
			Action: showParams,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
