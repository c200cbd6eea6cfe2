// Command kjvsource converts the CrossWire KJV OSIS document into
// per-verse structured records with word-level lexical annotations and
// gematria encodings.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-json"

	"github.com/metaxiamultimedia/scriptures-go-source-crosswire-kjv/core/ref"
	"github.com/metaxiamultimedia/scriptures-go-source-crosswire-kjv/core/strongs"
	"github.com/metaxiamultimedia/scriptures-go-source-crosswire-kjv/internal/books"
	"github.com/metaxiamultimedia/scriptures-go-source-crosswire-kjv/internal/config"
	"github.com/metaxiamultimedia/scriptures-go-source-crosswire-kjv/internal/fetch"
	"github.com/metaxiamultimedia/scriptures-go-source-crosswire-kjv/internal/logging"
	"github.com/metaxiamultimedia/scriptures-go-source-crosswire-kjv/internal/osis"
	"github.com/metaxiamultimedia/scriptures-go-source-crosswire-kjv/internal/store"
)

const version = "0.1.0"

// CLI defines the command-line interface for kjvsource.
var CLI struct {
	Config string `name:"config" short:"c" help:"Config file path" type:"path"`

	Fetch   FetchCmd   `cmd:"" help:"Download and cache the OSIS source document"`
	Convert ConvertCmd `cmd:"" help:"Convert an OSIS document into per-verse records"`
	Info    InfoCmd    `cmd:"" help:"Show OSIS document header metadata"`
	Show    ShowCmd    `cmd:"" help:"Convert and print a single verse record"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

func loadConfig() (*config.Config, error) {
	return config.Load(CLI.Config)
}

// FetchCmd downloads the source document into the local cache.
type FetchCmd struct {
	URL string `arg:"" optional:"" help:"Source URL (defaults to the configured KJV source)"`
}

func (c *FetchCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	url := c.URL
	if url == "" {
		url = cfg.Source.URL
	}

	path, cached, err := fetch.Fetch(context.Background(), url, cfg.Cache.Dir)
	if err != nil {
		return err
	}
	logging.FetchEvent(url, path, cached)
	fmt.Println(path)
	return nil
}

// ConvertCmd runs a full conversion pass and persists every verse.
type ConvertCmd struct {
	Path          string `arg:"" help:"OSIS document (.xml, .xml.gz, .xml.xz, or .zip)" type:"existingfile"`
	Store         string `help:"Store backend: dir or sqlite (defaults to config)" enum:",dir,sqlite" default:""`
	Out           string `help:"Store output path (defaults to config)"`
	DefaultPrefix string `name:"default-prefix" help:"System prefix for unprefixed Strong's numbers" enum:"H,G" default:"H"`
}

func (c *ConvertCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	backend := c.Store
	if backend == "" {
		backend = cfg.Store.Backend
	}
	out := c.Out
	if out == "" {
		out = cfg.Store.Path
	}

	res, err := convertFile(c.Path, osis.Options{
		Strongs: strongs.Policy{DefaultPrefix: c.DefaultPrefix},
	})
	if err != nil {
		return err
	}

	st, err := openStore(backend, out)
	if err != nil {
		return err
	}
	defer st.Close()

	for _, v := range res.Verses {
		if err := st.Put(v); err != nil {
			return err
		}
	}

	logging.ConversionRun(res.RunID, res.Books, len(res.Verses), res.Words,
		"store", backend, "out", out)
	for _, d := range res.Dropped {
		logging.DroppedColophon(d.Book, d.Words)
	}
	return nil
}

// InfoCmd prints header metadata without converting.
type InfoCmd struct {
	Path string `arg:"" help:"OSIS document" type:"existingfile"`
}

func (c *InfoCmd) Run() error {
	rc, err := fetch.Open(c.Path)
	if err != nil {
		return err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return err
	}

	info, err := osis.Inspect(data)
	if err != nil {
		return err
	}

	fmt.Println(info.Summary())
	fmt.Printf("  work:       %s\n", info.Work)
	if info.RefSystem != "" {
		fmt.Printf("  refsystem:  %s\n", info.RefSystem)
	}
	if info.Publisher != "" {
		fmt.Printf("  publisher:  %s\n", info.Publisher)
	}
	if info.Books != books.Count {
		fmt.Printf("  note: %d book divs (canon has %d)\n", info.Books, books.Count)
	}
	return nil
}

// ShowCmd converts in memory and prints one verse record as JSON.
type ShowCmd struct {
	Path string `arg:"" help:"OSIS document" type:"existingfile"`
	Ref  string `arg:"" help:"Verse reference, e.g. Gen.1.1"`
}

func (c *ShowCmd) Run() error {
	r, err := ref.Parse(c.Ref)
	if err != nil {
		return err
	}
	if !r.IsVerse() {
		return fmt.Errorf("reference %q does not name a single verse", c.Ref)
	}

	res, err := convertFile(c.Path, osis.Options{})
	if err != nil {
		return err
	}

	for _, v := range res.Verses {
		if v.Book == r.Book && v.Chapter == r.Chapter && v.Number == r.Verse {
			data, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}
	}
	return fmt.Errorf("verse not found: %s", r)
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("kjvsource %s\n", version)
	return nil
}

func convertFile(path string, opts osis.Options) (*osis.Result, error) {
	rc, err := fetch.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return osis.Convert(rc, opts)
}

func openStore(backend, path string) (store.Store, error) {
	switch backend {
	case config.BackendSQLite:
		return store.OpenSQLite(path)
	default:
		return store.OpenDir(path)
	}
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("kjvsource"),
		kong.Description("CrossWire KJV OSIS to per-verse record converter"),
		kong.UsageOnError(),
	)
	if err := ctx.Run(); err != nil {
		logging.Error("command failed", "error", err.Error())
		os.Exit(1)
	}
}
