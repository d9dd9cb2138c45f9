package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/odit-bit/spesabot/api"
	"github.com/spf13/cobra"
)

func init() {
	ChatCMD.Flags().StringVar(&GlobEndpoint, "addr", "http://localhost:8990", "")
	ChatCMD.Flags().StringVar(&GlobListID, "list", "cli", "list identifier")
}

var (
	GlobEndpoint = ""
	GlobListID   = ""
)

var ChatCMD = cobra.Command{
	Use:  "chat",
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {

		start(cmd.Context())

		return nil
	},
}

func start(ctx context.Context) {
	c := api.NewClient(GlobEndpoint)
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("comandi: aggiungi, lista, rimuovi, svuota, suggerisci, categorie, pasti, /exit")
	fmt.Println("qualsiasi altro testo viene girato all'assistente")

	scanner.Split(bufio.ScanLines)
	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "/exit" {
			return
		}

		if err := dispatch(ctx, c, input); err != nil {
			fmt.Printf(">error: %s \n", err)
		}
		fmt.Printf("\n")
	}
}

func dispatch(ctx context.Context, c *api.Client, input string) error {
	cmd, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "aggiungi":
		res, err := c.AddItem(ctx, GlobListID, rest)
		if err != nil {
			return err
		}
		fmt.Printf("> aggiunto: %s (%s) [%s]\n", res.Item.Name, res.Item.Quantity, res.Item.Category)

	case "lista":
		res, err := c.List(ctx, GlobListID)
		if err != nil {
			return err
		}
		if len(res.Items) == 0 {
			fmt.Println("> lista vuota")
			return nil
		}
		for i, it := range res.Items {
			fmt.Printf("%d. %s (%s) [%s]\n", i+1, it.Name, it.Quantity, it.Category)
		}

	case "rimuovi":
		n, err := strconv.Atoi(rest)
		if err != nil || n < 1 {
			return fmt.Errorf("numero non valido: %q", rest)
		}
		res, err := c.RemoveItem(ctx, GlobListID, n-1)
		if err != nil {
			return err
		}
		fmt.Printf("> rimosso: %s\n", res.Item.Name)

	case "svuota":
		if err := c.ClearList(ctx, GlobListID); err != nil {
			return err
		}
		fmt.Println("> lista svuotata")

	case "suggerisci":
		return printAssist(c.Suggest(ctx, GlobListID))

	case "categorie":
		return printAssist(c.Categories(ctx, GlobListID))

	case "pasti":
		return printAssist(c.MealPlan(ctx, GlobListID))

	default:
		return printAssist(c.Ask(ctx, GlobListID, input))
	}
	return nil
}

func printAssist(res *api.AssistResponse, err error) error {
	if err != nil {
		return err
	}
	fmt.Printf(">assistente: %s \n", res.Text)
	return nil
}
