package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/performer"
	"github.com/aretw0/performer/pkg/article"
)

var (
	articleName   string
	articleAuthor string
	articleJSON   bool
)

var articleCmd = &cobra.Command{
	Use:   "article",
	Short: "Manage articles",
}

var articleCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an article",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		project := openProject(ctx)
		defer project.Close()

		a := performer.NewArticle(articleName, articleAuthor)
		if err := project.Articles.Create(ctx, a); err != nil {
			fatal("Error creating article", err)
		}
		fmt.Println(a.ToParam())
	},
}

var articleShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show an article and its derived values",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		project := openProject(ctx)
		defer project.Close()

		a, err := project.Articles.Get(ctx, article.IDFromParam(args[0]))
		if err != nil {
			fatal("Error reading article", err)
		}

		view, err := project.Wiring.Article(a).View()
		if err != nil {
			fatal("Error rendering article", err)
		}

		if articleJSON {
			printJSON(view)
			return
		}

		fmt.Printf("id:            %s\n", a.ToParam())
		fmt.Printf("name:          %s\n", view.Name)
		fmt.Printf("author:        %s\n", view.Author)
		fmt.Printf("first name:    %s\n", view.AuthorFirstName)
		fmt.Printf("price:         %s\n", view.ArticlesPrice)
		fmt.Printf("articles link: %s\n", view.ArticlesLink)
		if view.CustomHelperMethod != nil {
			fmt.Printf("custom helper: %v\n", view.CustomHelperMethod)
		}
		for _, p := range view.Problems {
			fmt.Fprintf(os.Stderr, "warning: %s\n", p)
		}
	},
}

var articleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List articles",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		project := openProject(ctx)
		defer project.Close()

		articles, err := project.Articles.List(ctx)
		if err != nil {
			fatal("Error listing articles", err)
		}

		if articleJSON {
			views := make([]any, 0, len(articles))
			for _, a := range articles {
				v, err := project.Wiring.Article(a).View()
				if err != nil {
					fatal("Error rendering article", err)
				}
				views = append(views, v)
			}
			printJSON(views)
			return
		}

		for _, a := range articles {
			fmt.Printf("%s - %s (%s)\n", a.ToParam(), a.Name, a.Author)
		}
	},
}

var articleDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete an article",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		project := openProject(ctx)
		defer project.Close()

		if err := project.Articles.Delete(ctx, article.IDFromParam(args[0])); err != nil {
			fatal("Error deleting article", err)
		}
		fmt.Printf("Article deleted: %s\n", args[0])
	},
}

func printJSON(v any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		fatal("Error encoding JSON", err)
	}
}

func init() {
	rootCmd.AddCommand(articleCmd)
	articleCmd.AddCommand(articleCreateCmd, articleShowCmd, articleListCmd, articleDeleteCmd)

	articleCreateCmd.Flags().StringVar(&articleName, "name", "", "Article name (required)")
	articleCreateCmd.Flags().StringVar(&articleAuthor, "author", "", "Author, e.g. \"First Last\"")
	articleCreateCmd.MarkFlagRequired("name")

	articleShowCmd.Flags().BoolVar(&articleJSON, "json", false, "Output in JSON format")
	articleListCmd.Flags().BoolVar(&articleJSON, "json", false, "Output in JSON format")
}
