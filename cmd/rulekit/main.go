package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/goccy/go-json"

	"github.com/reoring/rulekit"
	"github.com/reoring/rulekit/i18n"
	"github.com/reoring/rulekit/ruleconf"
	"github.com/reoring/rulekit/source"
)

// Exit codes.
const (
	exitValid   = 0
	exitInvalid = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return exitUsage
	}
	switch args[0] {
	case "validate":
		return validateCmd(args[1:], stdout, stderr)
	case "rules":
		for _, n := range ruleconf.Default.Names() {
			fmt.Fprintln(stdout, n)
		}
		return exitValid
	default:
		usage(stderr)
		return exitUsage
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "rulekit CLI\n\nUsage:\n  rulekit validate -rules rules.yaml -data doc.json [-locale ja] [-catalog messages.yaml] [-format text|json] [-sep .] [-env .env]\n  rulekit rules\n\nEnvironment:\n  RULEKIT_LOCALE, RULEKIT_CATALOG, RULEKIT_SEPARATOR, RULEKIT_LOG_LEVEL, RULEKIT_FORMAT\n\nExit status is 0 when the document is valid, 1 when it is not and 2 on usage or configuration errors.")
}

func validateCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		rulesPath, dataPath, envFile string
		locale, catalog, format, sep string
	)
	fs.StringVar(&rulesPath, "rules", "", "rule set file (YAML or JSON)")
	fs.StringVar(&dataPath, "data", "", "document to validate (JSON or YAML, - for stdin)")
	fs.StringVar(&envFile, "env", "", "dotenv file to load before reading the environment")
	fs.StringVar(&locale, "locale", "", "message locale (overrides RULEKIT_LOCALE)")
	fs.StringVar(&catalog, "catalog", "", "extra YAML message catalog (overrides RULEKIT_CATALOG)")
	fs.StringVar(&format, "format", "", "output format: text or json (overrides RULEKIT_FORMAT)")
	fs.StringVar(&sep, "sep", "", "path separator (overrides RULEKIT_SEPARATOR)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if rulesPath == "" || dataPath == "" {
		fs.Usage()
		return exitUsage
	}

	var envFiles []string
	if envFile != "" {
		envFiles = append(envFiles, envFile)
	}
	cfg, err := loadConfig(envFiles...)
	if err != nil {
		return fatalf(stderr, "config: %v", err)
	}
	override(&cfg.Locale, locale)
	override(&cfg.Catalog, catalog)
	override(&cfg.Format, format)
	override(&cfg.Separator, sep)
	if cfg.Format != "text" && cfg.Format != "json" {
		return fatalf(stderr, "unknown format %q", cfg.Format)
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	translator, err := buildCatalog(cfg.Catalog, logger)
	if err != nil {
		return fatalf(stderr, "catalog: %v", err)
	}
	rs, err := ruleconf.LoadFile(rulesPath)
	if err != nil {
		return fatalf(stderr, "rules: %v", err)
	}
	data, err := source.ReadFile(dataPath)
	if err != nil {
		return fatalf(stderr, "data: %v", err)
	}

	v := rulekit.NewValidator(
		rulekit.WithTranslator(translator),
		rulekit.WithLocale(cfg.Locale),
		rulekit.WithLogger(logger),
	)
	res, err := v.Validate(data, rs)
	if err != nil {
		return fatalf(stderr, "validate: %v", err)
	}
	logger.Debug("validated", "rules", rulesPath, "data", dataPath, "errors", len(res.Errors()))

	if err := printResult(stdout, res, cfg.Format, cfg.Separator); err != nil {
		return fatalf(stderr, "output: %v", err)
	}
	if !res.IsValid() {
		return exitInvalid
	}
	return exitValid
}

func buildCatalog(path string, logger *slog.Logger) (*i18n.Catalog, error) {
	c := i18n.DefaultCatalog(i18n.WithLogger(logger))
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	extra, err := i18n.LoadCatalogYAML(raw, i18n.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	c.Merge(extra)
	return c, nil
}

func printResult(w io.Writer, res *rulekit.Result, format, sep string) error {
	byPath := res.ErrorMessagesIndexedByPath(sep)
	if format == "json" {
		b, err := json.MarshalIndent(byPath, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}
	paths := make([]string, 0, len(byPath))
	for p := range byPath {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		for _, m := range byPath[p] {
			if p == "" {
				fmt.Fprintln(w, m)
				continue
			}
			fmt.Fprintf(w, "%s: %s\n", p, m)
		}
	}
	return nil
}

func override(dst *string, flagValue string) {
	if flagValue != "" {
		*dst = flagValue
	}
}

func fatalf(w io.Writer, format string, a ...any) int {
	fmt.Fprintf(w, "error: "+format+"\n", a...)
	return exitUsage
}
