package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matt-dz/cookbook/internal/listing"
	"github.com/matt-dz/cookbook/internal/recipe"
)

func newRecipesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "recipes",
		Aliases: []string{"recipe"},
		Short:   "List, show and manage recipes",
	}
	cmd.AddCommand(
		newRecipesListCmd(a),
		newRecipesGetCmd(a),
		newRecipesRecommendCmd(a),
		newRecipesCreateCmd(a),
		newRecipesDeleteCmd(a),
	)
	return cmd
}

func newRecipesListCmd(a *app) *cobra.Command {
	var flags criteriaFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := flags.criteria(cmd, a.env.Config.PageSize)
			if err != nil {
				return err
			}

			ctrl := listing.New(a.env.Client(a.session()), criteria, listing.WithLogger(a.env.Logger))
			ctrl.Refresh(cmd.Context())
			ctrl.Wait()
			state := ctrl.State()

			out := cmd.OutOrStdout()
			if a.flagJSON {
				return printJSON(out, struct {
					Content    []recipe.Recipe `json:"content"`
					Pagination any             `json:"pagination"`
				}{state.Content, state.Pagination})
			}
			if state.Err != nil {
				return fmt.Errorf("%s: %w", listing.Message(state.Err), state.Err)
			}
			if len(state.Content) == 0 {
				fmt.Fprintln(out, "No recipes found.")
				return nil
			}

			tw := newTable(out, "ID", "TITLE", "DIFFICULTY", "TIME", "TYPE")
			for _, r := range state.Content {
				row(tw, r.ID, r.Title, orDash(r.Difficulty.String()), minutes(r), orDash(r.CategoryType))
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			p := state.Pagination
			fmt.Fprintf(out, "\nPage %d of %d (%d recipes)\n", p.Number+1, p.TotalPages, p.TotalElements)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newRecipesGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			r, err := a.service().GetRecipe(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.flagJSON {
				return printJSON(out, r)
			}
			printRecipe(cmd, r)
			return nil
		},
	}
}

func printRecipe(cmd *cobra.Command, r recipe.Recipe) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (#%d)\n", r.Title, r.ID)
	if r.Description != "" {
		fmt.Fprintf(out, "%s\n", r.Description)
	}
	fmt.Fprintf(out, "\nDifficulty: %s  Time: %s\n", orDash(r.Difficulty.String()), minutes(r))
	if len(r.Tags) > 0 {
		fmt.Fprintf(out, "Tags: %s\n", strings.Join(r.Tags, ", "))
	}

	fmt.Fprintln(out, "\nIngredients:")
	for _, ing := range r.Ingredients {
		amount := ""
		if ing.Amount != nil {
			amount = fmt.Sprintf("%g %s ", *ing.Amount, ing.Unit)
		}
		fmt.Fprintf(out, "  - %s%s\n", amount, ing.Name)
	}

	fmt.Fprintln(out, "\nInstructions:")
	for _, step := range r.Instructions {
		fmt.Fprintf(out, "  %d. %s\n", step.StepNumber, step.Description)
	}
}

func newRecipesRecommendCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "recommend <ingredient>...",
		Short: "Recommend recipes for the ingredients you have",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, err := a.service().Recommend(cmd.Context(), recipe.RecommendRequest{Ingredients: args})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.flagJSON {
				return printJSON(out, recipes)
			}
			if len(recipes) == 0 {
				fmt.Fprintln(out, "No recipes found.")
				return nil
			}
			tw := newTable(out, "ID", "TITLE", "DIFFICULTY", "TIME")
			for _, r := range recipes {
				row(tw, r.ID, r.Title, orDash(r.Difficulty.String()), minutes(r))
			}
			return tw.Flush()
		},
	}
}

func newRecipesCreateCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a recipe from a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			contents, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("reading recipe: %w", err)
			}
			var r recipe.Recipe
			if err := json.Unmarshal(contents, &r); err != nil {
				return fmt.Errorf("parsing recipe: %w", err)
			}

			created, err := a.service().CreateRecipe(cmd.Context(), r)
			if err != nil {
				return err
			}
			if a.flagJSON {
				return printJSON(cmd.OutOrStdout(), created)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created recipe #%d\n", created.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Recipe JSON file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newRecipesDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.service().DeleteRecipe(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted recipe #%d\n", id)
			return nil
		},
	}
}
