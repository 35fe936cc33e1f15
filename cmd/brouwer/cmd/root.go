package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	brwast "github.com/AugmentedFifth/brouwer/ast"
	brwconfig "github.com/AugmentedFifth/brouwer/core/config"
	brwerror "github.com/AugmentedFifth/brouwer/core/error"
	brwlog "github.com/AugmentedFifth/brouwer/core/log"
	"github.com/AugmentedFifth/brouwer/parser"
)

var (
	cfgFile string
	verbose bool
	format  string
)

var rootCmd = &cobra.Command{
	Use:   "brouwer FILE",
	Short: "Parser for the brouwer language",
	Long: `brouwer parses a brouwer source file and prints its parse tree.

The default output is a depth-first dump, one node per line, indented
two spaces per tree depth. Leaf nodes carry their literal source text
in double quotes. Syntax errors report the failing position and the
surrounding source text on stderr.`,
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Argument validation has passed; from here on errors are
		// parse results, not usage mistakes.
		cmd.SilenceUsage = true

		err := runParse(cmd, args[0])
		if err != nil {
			printParseError(cmd.ErrOrStderr(), err)
		}

		return err
	},
}

// Execute runs the root command. The caller maps the returned error to
// a process exit code.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: discover brouwer.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"debug logging")
	rootCmd.Flags().StringVar(&format, "format", "tree",
		"output format: tree, json, or yaml")
}

func runParse(cmd *cobra.Command, path string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)

	p := parser.New(parser.Options{
		Logger:   logger.WithName("parser"),
		MaxDepth: cfg.GetIntDefault("parser.max_depth", parser.DefaultMaxDepth),
	})

	root, err := p.ParseFile(path)
	if err != nil {
		return err
	}

	return emit(cmd.OutOrStdout(), root)
}

// emit writes the tree in the selected output format.
func emit(w io.Writer, root *brwast.Node) error {
	switch format {
	case "tree":
		if err := brwast.Fprint(w, root); err != nil {
			return err
		}

		_, err := fmt.Fprintln(w)

		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(root)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(root); err != nil {
			return err
		}

		return enc.Close()
	default:
		return brwerror.New("unknown output format: " + format).
			WithCode(brwerror.CodeConfigError)
	}
}

// printParseError writes the contract error output: an empty program
// reports the fixed parse-failure line, everything else reports the
// error's own message.
func printParseError(w io.Writer, err error) {
	if brwerror.HasCode(err, brwerror.CodeEmptyProgram) {
		fmt.Fprintln(w, "Parse failed.")

		return
	}

	fmt.Fprintln(w, err)
}

// loadConfig resolves the configuration: the --config flag, then the
// BROUWER_CONFIG environment variable, then discovery across the
// conventional locations. Absent configuration is not an error, but a
// present configuration must pass validation.
func loadConfig() (*brwconfig.Config, error) {
	path := cfgFile
	if path == "" {
		path = os.Getenv("BROUWER_CONFIG")
	}

	var (
		cfg *brwconfig.Config
		err error
	)

	if path != "" {
		cfg, err = brwconfig.LoadWithOptions(path, brwconfig.LoadOptions{
			Format:    brwconfig.FormatAuto,
			EnvPrefix: "BROUWER",
		})
	} else {
		cfg, err = brwconfig.Discover(brwconfig.DefaultDiscoveryOptions())
	}

	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(configRules()); err != nil {
		return nil, err
	}

	return cfg, nil
}

// configRules covers the keys the CLI reads.
func configRules() brwconfig.ValidationRules {
	return brwconfig.ValidationRules{
		"parser.max_depth": {Type: "int", Min: 1},
		"log.level": {
			Type: "string",
			OneOf: []string{
				"trace", "debug", "info", "warn", "warning", "error", "fatal",
			},
		},
		"log.format": {
			Type:  "string",
			OneOf: []string{"json", "text", "console"},
		},
	}
}

// newLogger builds the CLI logger. Logs go to stderr so stdout stays
// reserved for tree output.
func newLogger(cfg *brwconfig.Config) *brwlog.Logger {
	level := brwlog.DefaultLevel()

	if s, ok := cfg.GetString("log.level"); ok {
		if parsed, err := brwlog.ParseLevel(s); err == nil {
			level = parsed
		}
	}

	if verbose {
		level = brwlog.LevelDebug
	}

	logFormat := brwlog.FormatJSON
	if s, ok := cfg.GetString("log.format"); ok {
		if parsed, err := brwlog.ParseFormat(s); err == nil {
			logFormat = parsed
		}
	}

	return brwlog.NewWithConfig(brwlog.Config{
		Level:  level,
		Format: logFormat,
		Output: os.Stderr,
		Name:   "brouwer",
	})
}
