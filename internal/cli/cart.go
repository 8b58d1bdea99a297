package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/matt-dz/cookbook/internal/cart"
)

func newCartCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show the shopping cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, userID, err := a.loggedIn(cmd.Context())
			if err != nil {
				return err
			}
			c, err := svc.Cart(cmd.Context(), userID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.flagJSON {
				return printJSON(out, c)
			}
			if c == nil || len(c.Items) == 0 {
				fmt.Fprintln(out, "Your cart is empty.")
				return nil
			}

			groups := c.ByCategory()
			names := make([]string, 0, len(groups))
			for name := range groups {
				names = append(names, name)
			}
			sort.Strings(names)

			tw := newTable(out, "ID", "ITEM", "AMOUNT", "CATEGORY", "DONE")
			for _, name := range names {
				for _, it := range groups[name] {
					done := ""
					if it.Checked {
						done = "x"
					}
					row(tw, it.ID, it.Name, fmt.Sprintf("%g %s", it.Amount, it.Unit), orDash(name), done)
				}
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%d of %d items left\n", c.Remaining(), len(c.Items))
			return nil
		},
	}

	cmd.AddCommand(
		newCartAddCmd(a),
		newCartCheckCmd(a),
		newCartRemoveCmd(a),
		newCartClearCmd(a),
	)
	return cmd
}

func newCartAddCmd(a *app) *cobra.Command {
	var item cart.Item

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an item to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, userID, err := a.loggedIn(cmd.Context())
			if err != nil {
				return err
			}
			item.Name = args[0]
			added, err := svc.AddToCart(cmd.Context(), userID, item)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (#%d)\n", added.Name, added.ID)
			return nil
		},
	}

	cmd.Flags().Float64Var(&item.Amount, "amount", 1, "Amount")
	cmd.Flags().StringVar(&item.Unit, "unit", "", "Unit")
	cmd.Flags().StringVar(&item.Category, "category", "", "Grocery category")
	return cmd
}

func newCartCheckCmd(a *app) *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "check <item-id>",
		Short: "Check an item off",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := parseID(args[0])
			if err != nil {
				return err
			}
			svc, userID, err := a.loggedIn(cmd.Context())
			if err != nil {
				return err
			}
			checked := !undo
			updated, err := svc.UpdateCartItem(cmd.Context(), userID, itemID, cart.ItemUpdate{Checked: &checked})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: checked=%t\n", updated.Name, updated.Checked)
			return nil
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "Uncheck the item")
	return cmd
}

func newCartRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <item-id>",
		Short: "Remove an item from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := parseID(args[0])
			if err != nil {
				return err
			}
			svc, userID, err := a.loggedIn(cmd.Context())
			if err != nil {
				return err
			}
			if err := svc.RemoveCartItem(cmd.Context(), userID, itemID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed item #%d\n", itemID)
			return nil
		},
	}
}

func newCartClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, userID, err := a.loggedIn(cmd.Context())
			if err != nil {
				return err
			}
			if err := svc.ClearCart(cmd.Context(), userID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cart cleared")
			return nil
		},
	}
}
