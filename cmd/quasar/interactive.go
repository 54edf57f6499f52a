package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
)

func newInteractiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Start interactive search mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(configFromContext(cmd.Context()))
			if err != nil {
				return err
			}

			fmt.Println("Quasar Interactive Search")
			fmt.Println("Type a query, 'stats' for statistics, or 'quit' to exit.")

			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					break
				}
				line := strings.TrimSpace(scanner.Text())
				switch line {
				case "":
					continue
				case "quit", "exit":
					return nil
				case "stats":
					stats, err := engine.Stats()
					if err != nil {
						return err
					}
					pp.Println(stats)
				default:
					printResults(os.Stdout, line, engine.Search(line, 10))
				}
			}
			return scanner.Err()
		},
	}
}
