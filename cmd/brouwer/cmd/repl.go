package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	brwast "github.com/AugmentedFifth/brouwer/ast"
	brwerror "github.com/AugmentedFifth/brouwer/core/error"
	"github.com/AugmentedFifth/brouwer/parser"
)

const (
	replPrompt  = "brouwer> "
	replCont    = "     ... "
	historyName = ".brouwer_history"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse expressions interactively",
	Long: `repl reads expressions from the terminal and prints the parse tree
for each one. Block constructs such as case continue onto indented
continuation lines; an empty line finishes the block.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		err := runRepl(cmd, args)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
		}

		return err
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)

	p := parser.New(parser.Options{
		Logger:   logger.WithName("repl"),
		MaxDepth: cfg.GetIntDefault("parser.max_depth", parser.DefaultMaxDepth),
	})

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "brouwer repl - Ctrl+C cancels the current input, Ctrl+D exits.")

	for {
		src, ok := readEntry(ln, p)
		if !ok {
			fmt.Fprintln(out)

			break
		}

		if strings.TrimSpace(src) == "" {
			continue
		}

		expr, err := p.ParseExpr(src)
		if err != nil {
			printParseError(cmd.ErrOrStderr(), err)
		} else if err := brwast.Fprint(out, expr); err != nil {
			return err
		}

		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
	}

	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}

	return nil
}

// readEntry accumulates lines until the parser accepts the buffer or
// fails somewhere before the end of input. An error at the very end of
// the buffer means the entry is incomplete and another line may finish
// it, so reading continues with the continuation prompt.
func readEntry(ln *liner.State, p *parser.Parser) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error

		if b.Len() == 0 {
			line, err = ln.Prompt(replPrompt)
		} else {
			line, err = ln.Prompt(replCont)
		}

		if errors.Is(err, io.EOF) {
			return "", false
		}

		if err != nil {
			// Ctrl+C drops the pending input and starts over.
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.TrimSpace(src) == "" {
			return src, true
		}

		if _, perr := p.ParseExpr(src); perr == nil || !incompleteAt(perr, src) {
			return src, true
		}
	}
}

// incompleteAt reports whether err is a syntax error positioned at the
// end of src, the signature of an entry that more input could still
// complete.
func incompleteAt(err error, src string) bool {
	var brwErr *brwerror.Error
	if !errors.As(err, &brwErr) {
		return false
	}

	offset, ok := brwErr.Details()["offset"].(int)

	return ok && offset >= utf8.RuneCountInString(src)
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, historyName)
}
