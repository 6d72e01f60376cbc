package main

import (
	"fmt"
	"os"

	"github.com/sanity-io/litter"
	"github.com/urfave/cli/v2"

	"github.com/kdkasad/eqnp/internal/input_errors"
	l "github.com/kdkasad/eqnp/internal/lexer"
	"github.com/kdkasad/eqnp/internal/parser"
)

func main() {
	cliApp := &cli.App{
		Name:  "eqnp",
		Usage: "Parse mathematical expressions into syntax trees.",
		Commands: []*cli.Command{
			{
				Name:        "tokens",
				Usage:       "Print the token stream for an expression",
				ArgsUsage:   "<expression>",
				Description: "Tokenizes the expression and prints one token per line.",
				Action:      tokensAction,
			},
			{
				Name:        "parse",
				Usage:       "Parse an expression and dump its syntax tree",
				ArgsUsage:   "<expression>",
				Description: "Parses the expression and dumps the resulting tree.",
				Action:      parseAction,
			},
		},
	}
	err := cliApp.Run(os.Args)
	if err != nil {
		fmt.Printf("\nError: %s\n", err.Error())
		os.Exit(2)
	}
}

func expressionArg(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", fmt.Errorf("expected exactly one expression argument, got %d", c.NArg())
	}
	return c.Args().First(), nil
}

func tokensAction(c *cli.Context) error {
	input, err := expressionArg(c)
	if err != nil {
		return err
	}

	tokens, err := l.NewLexer([]byte(input)).Tokenize()
	if err != nil {
		input_errors.Print(os.Stderr, input, err)
		return cli.Exit("", 1)
	}

	for _, token := range tokens {
		fmt.Println(token.String())
	}
	return nil
}

func parseAction(c *cli.Context) error {
	input, err := expressionArg(c)
	if err != nil {
		return err
	}

	expr, err := parser.ParseExpression(input)
	if err != nil {
		input_errors.Print(os.Stderr, input, err)
		return cli.Exit("", 1)
	}

	litter.Dump(expr)
	return nil
}
