package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Print the articles price",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		project := openProject(context.Background())
		defer project.Close()

		price, err := project.Wiring.ArticleClass().ArticlesPrice()
		if err != nil {
			fatal("Error formatting price", err)
		}
		fmt.Println(price)
	},
}

func init() {
	rootCmd.AddCommand(priceCmd)
}
