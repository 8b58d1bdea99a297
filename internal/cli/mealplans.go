package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matt-dz/cookbook/internal/mealplan"
)

func newMealPlansCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "mealplans",
		Aliases: []string{"meal-plans", "plans"},
		Short:   "List and manage meal plans",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, userID, err := a.loggedIn(cmd.Context())
			if err != nil {
				return err
			}
			plans, err := svc.MealPlans(cmd.Context(), userID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.flagJSON {
				return printJSON(out, plans)
			}
			if len(plans) == 0 {
				fmt.Fprintln(out, "No meal plans yet.")
				return nil
			}
			tw := newTable(out, "ID", "NAME", "FROM", "TO", "MEALS")
			for _, p := range plans {
				row(tw, p.ID, p.Name, p.StartDate, p.EndDate, len(p.Items))
			}
			return tw.Flush()
		},
	}

	cmd.AddCommand(
		newMealPlanShowCmd(a),
		newMealPlanCreateCmd(a),
		newMealPlanUpdateCmd(a),
		newMealPlanDeleteCmd(a),
		newMealPlanAddItemCmd(a),
		newMealPlanRemoveItemCmd(a),
	)
	return cmd
}

func newMealPlanShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a meal plan day by day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			svc, _, err := a.loggedIn(cmd.Context())
			if err != nil {
				return err
			}
			plan, err := svc.MealPlan(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.flagJSON {
				return printJSON(out, plan)
			}
			fmt.Fprintf(out, "%s (%s to %s)\n", plan.Name, plan.StartDate, plan.EndDate)
			for _, day := range plan.Days() {
				fmt.Fprintf(out, "\n%s\n", day.Date)
				for _, it := range day.Items {
					title := fmt.Sprintf("recipe #%d", it.RecipeID)
					if it.Recipe != nil {
						title = it.Recipe.Title
					}
					fmt.Fprintf(out, "  %-9s %s x%d  (item #%d)\n", it.MealType, title, it.Servings, it.ID)
				}
			}
			return nil
		},
	}
}

func newMealPlanCreateCmd(a *app) *cobra.Command {
	var (
		plan mealplan.MealPlan
		days int
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a meal plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, userID, err := a.loggedIn(cmd.Context())
			if err != nil {
				return err
			}

			plan.Name = args[0]
			plan.UserID = userID
			if plan.StartDate == "" {
				plan.StartDate = time.Now().Format(mealplan.DateLayout)
			}
			if plan.EndDate == "" {
				start, err := time.Parse(mealplan.DateLayout, plan.StartDate)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", plan.StartDate, err)
				}
				plan.EndDate = start.AddDate(0, 0, max(days, 1)-1).Format(mealplan.DateLayout)
			}

			created, err := svc.CreateMealPlan(cmd.Context(), plan)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created meal plan #%d (%s to %s)\n",
				created.ID, created.StartDate, created.EndDate)
			return nil
		},
	}

	cmd.Flags().StringVar(&plan.StartDate, "start", "", "First day (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&plan.EndDate, "end", "", "Last day (YYYY-MM-DD)")
	cmd.Flags().IntVar(&days, "days", 7, "Plan length when --end is omitted")
	return cmd
}

func newMealPlanUpdateCmd(a *app) *cobra.Command {
	var name, start, end string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Rename a meal plan or move its dates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if !flags.Changed("name") && !flags.Changed("start") && !flags.Changed("end") {
				return fmt.Errorf("nothing to update, pass --name, --start or --end")
			}

			svc, _, err := a.loggedIn(cmd.Context())
			if err != nil {
				return err
			}
			plan, err := svc.MealPlan(cmd.Context(), id)
			if err != nil {
				return err
			}
			if flags.Changed("name") {
				plan.Name = name
			}
			if flags.Changed("start") {
				plan.StartDate = start
			}
			if flags.Changed("end") {
				plan.EndDate = end
			}

			updated, err := svc.UpdateMealPlan(cmd.Context(), id, plan)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated meal plan #%d: %s (%s to %s)\n",
				updated.ID, updated.Name, updated.StartDate, updated.EndDate)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&start, "start", "", "New first day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "New last day (YYYY-MM-DD)")
	return cmd
}

func newMealPlanDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a meal plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			svc, _, err := a.loggedIn(cmd.Context())
			if err != nil {
				return err
			}
			if err := svc.DeleteMealPlan(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted meal plan #%d\n", id)
			return nil
		},
	}
}

func newMealPlanAddItemCmd(a *app) *cobra.Command {
	var (
		item     mealplan.Item
		mealType string
	)

	cmd := &cobra.Command{
		Use:   "add <plan-id> <recipe-id>",
		Short: "Plan a recipe for a meal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			planID, err := parseID(args[0])
			if err != nil {
				return err
			}
			if item.RecipeID, err = parseID(args[1]); err != nil {
				return err
			}
			item.MealType = mealplan.MealType(mealType)
			if item.Date == "" {
				item.Date = time.Now().Format(mealplan.DateLayout)
			}

			svc, _, err := a.loggedIn(cmd.Context())
			if err != nil {
				return err
			}
			added, err := svc.AddMealPlanItem(cmd.Context(), planID, item)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Planned recipe #%d for %s on %s (item #%d)\n",
				added.RecipeID, added.MealType, added.Date, added.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&item.Date, "date", "", "Day (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&mealType, "meal", string(mealplan.MealDinner), "breakfast, lunch, dinner or snack")
	cmd.Flags().IntVar(&item.Servings, "servings", 2, "Servings")
	return cmd
}

func newMealPlanRemoveItemCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <plan-id> <item-id>",
		Short: "Remove a planned meal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			planID, err := parseID(args[0])
			if err != nil {
				return err
			}
			itemID, err := parseID(args[1])
			if err != nil {
				return err
			}
			svc, _, err := a.loggedIn(cmd.Context())
			if err != nil {
				return err
			}
			if err := svc.RemoveMealPlanItem(cmd.Context(), planID, itemID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed item #%d\n", itemID)
			return nil
		},
	}
}
