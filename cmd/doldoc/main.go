package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/templetools/doldoc"
	"github.com/templetools/doldoc/extract"
	"github.com/templetools/doldoc/sprite"
)

func main() {
	var (
		outDir      = flag.String("out", "", "Extract decoded geometry to this directory")
		configPath  = flag.String("config", "", "Path to TOML config file")
		strict      = flag.Bool("strict", false, "Reject chunks whose element stream does not consume the declared size")
		legacy      = flag.Bool("legacy", false, "Decode using the legacy format revision")
		interactive = flag.Bool("i", false, "Interactive browser (TUI)")
		verbose     = flag.Bool("v", false, "Verbose decode logging")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: doldoc [-strict] [-legacy] [-config file.toml] <file>...")
		fmt.Fprintln(os.Stderr, "       doldoc -out <dir> <file>...  (extract geometry)")
		fmt.Fprintln(os.Stderr, "       doldoc -i <file>             (interactive mode)")
		os.Exit(1)
	}

	cfg := appConfig{Out: *outDir, Strict: *strict, Legacy: *legacy}
	if *configPath != "" {
		var err error
		cfg, err = loadConfig(*configPath, cfg, flagsSet())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		doldoc.SetLogger(logger)
		defer logger.Sync()
	}

	opts := doldoc.DefaultOptions()
	if cfg.Strict {
		opts.SizePolicy = doldoc.SizePolicyStrict
	}
	if cfg.Legacy {
		opts.Revision = sprite.RevisionLegacy
	}

	if *interactive {
		if flag.NArg() != 1 {
			fmt.Fprintln(os.Stderr, "Error: interactive mode takes exactly one file")
			os.Exit(1)
		}
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(flag.Arg(0), opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	for _, path := range flag.Args() {
		if err := run(path, cfg.Out, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
			os.Exit(1)
		}
	}
}

// flagsSet reports which flags were given on the command line, so config
// file values do not override explicit flags.
func flagsSet() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

func run(path, outDir string, opts doldoc.Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	doc, err := doldoc.ParseDocumentWithOptions(data, opts)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	if outDir != "" {
		written, err := extract.Extract(doc, outDir)
		if err != nil {
			return fmt.Errorf("extract: %w", err)
		}
		for _, p := range written {
			fmt.Println(p)
		}
		return nil
	}

	list(path, doc)
	return nil
}

func list(path string, doc *doldoc.Document) {
	fmt.Printf("# %s\n", path)
	if doc.Preamble != "" {
		fmt.Printf("preamble: %q\n", doc.Preamble)
	}
	for _, chunk := range doc.Chunks {
		fmt.Printf("chunk %d flags=0x%08X size=%d refs=%d (%d elements)\n",
			chunk.ID, chunk.Flags, chunk.Size, chunk.RefCount, len(chunk.Elements))
		for _, elem := range chunk.Elements {
			fmt.Printf("  %s\n", elem)
		}
	}
}
