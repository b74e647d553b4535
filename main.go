package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"

	"github.com/Dfsantana1/sintactico/lexer"
	"github.com/Dfsantana1/sintactico/parser"
	"github.com/Dfsantana1/sintactico/render"
	"github.com/Dfsantana1/sintactico/runner"
)

func main() {
	app := &cli.App{
		Name:  "sintactico",
		Usage: "BMinor lexer and parser",
		Commands: []*cli.Command{
			{
				Name:  "parse",
				Usage: "parse a file and print its syntax tree",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "plain",
						Value: false,
						Usage: "print the tree without styling",
					},
				},
				Action: func(c *cli.Context) error {
					file := c.Args().First()
					if file == "" {
						fmt.Println("no file provided")
						os.Exit(1)
					}

					program, err := parser.ParseFile(file)
					if err != nil {
						tracerr.PrintSourceColor(err)
						os.Exit(1)
					}

					if c.Bool("plain") {
						fmt.Print(render.Plain(program))
					} else {
						fmt.Print(render.Tree(program))
					}
					return nil
				},
			},
			{
				Name:  "lex",
				Usage: "dump the token stream of a file",
				Action: func(c *cli.Context) error {
					file := c.Args().First()
					if file == "" {
						fmt.Println("no file provided")
						os.Exit(1)
					}

					handle, err := os.Open(file)
					if err != nil {
						tracerr.PrintSourceColor(err)
						os.Exit(1)
					}
					defer handle.Close()

					tokens, err := lexer.NewLexer(handle, file).LexAll()
					if err != nil {
						tracerr.PrintSourceColor(err)
						os.Exit(1)
					}

					for _, tok := range tokens {
						fmt.Printf("%-12s %-16q %s\n", tok.Kind, tok.Lexeme, tok.Location)
					}
					return nil
				},
			},
			{
				Name:  "dump",
				Usage: "parse a file and dump the raw tree",
				Action: func(c *cli.Context) error {
					file := c.Args().First()
					if file == "" {
						fmt.Println("no file provided")
						os.Exit(1)
					}

					program, err := parser.ParseFile(file)
					if err != nil {
						tracerr.PrintSourceColor(err)
						os.Exit(1)
					}

					repr.Println(program)
					return nil
				},
			},
			{
				Name:  "test",
				Usage: "run a YAML suite of parser cases",
				Action: func(c *cli.Context) error {
					file := c.Args().First()
					if file == "" {
						fmt.Println("no suite provided")
						os.Exit(1)
					}

					suite, err := runner.Load(file)
					if err != nil {
						tracerr.PrintSourceColor(err)
						os.Exit(1)
					}

					_, failed := suite.Run(os.Stdout)
					if failed > 0 {
						os.Exit(1)
					}
					return nil
				},
			},
		},
	}
	app.Run(os.Args)
}
