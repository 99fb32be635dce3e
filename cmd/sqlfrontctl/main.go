package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/kynessa/sqlfront"
	"github.com/kynessa/sqlfront/ast"
	"github.com/kynessa/sqlfront/parser"
)

// CLI is sqlfrontctl's flag and subcommand surface, parsed by kong.
var CLI struct {
	Config string `help:"Path to a YAML config file" default:""`
	Script bool   `help:"Treat input as a ';'-separated script rather than a single statement"`
	Dump   bool   `help:"Print an indented AST tree instead of just success/failure"`
	Path   string `arg:"" optional:"" help:"SQL file to parse (omit or '-' to read stdin)"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("sqlfrontctl"),
		kong.Description("Parse SQL text with the sqlfront engine and report the result."))

	if err := run(); err != nil {
		fmt.Fprintln(color.Output, color.RedString("error: %v", err))
		os.Exit(1)
	}
}

func run() error {
	sql, err := readInput(CLI.Path)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	cfg, err := sqlfront.LoadConfig(CLI.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var log *slog.Logger
	if cfg.Mode == "debug" {
		log = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	p := parser.New(cfg.ToParserConfig(), log)

	if CLI.Script {
		return runScript(p, sql)
	}
	return runSingle(p, sql)
}

func runSingle(p *parser.Parser, sql string) error {
	root, err := p.Parse(sql)
	if err != nil {
		return err
	}
	color.Green("parsed ok (%d nodes, %d bytes)", p.NodeCount(), p.MemoryUsed())
	if CLI.Dump {
		fmt.Println(ast.Dump(root))
	}
	return nil
}

func runScript(p *parser.Parser, sql string) error {
	roots, err := p.ParseScript(sql)
	if CLI.Dump {
		for i, root := range roots {
			fmt.Printf("-- statement %d --\n", i+1)
			fmt.Println(ast.Dump(root))
		}
	}
	if err != nil {
		color.Yellow("parsed %d statement(s) before failing", len(roots))
		return err
	}
	color.Green("parsed %d statement(s) ok", len(roots))
	return nil
}

func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}
