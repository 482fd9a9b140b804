package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gorestaurant/order-client/internal/domain"
	"gorestaurant/order-client/internal/favorite"
	"gorestaurant/order-client/internal/history"
	"gorestaurant/order-client/internal/page"
	"gorestaurant/order-client/internal/submission"
	"gorestaurant/pricing"

	"github.com/spf13/cobra"
)

func (a *app) menuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "List the foods on the menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			foods, err := a.backend.ListFoods(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, food := range foods {
				fmt.Fprintf(out, "%d\t%s\t%s\n", food.ID, food.Name, pricing.FormatValue(food.Price))
			}
			return nil
		},
	}
}

func (a *app) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <food-id>",
		Short: "Show a food with its extras",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := a.openPage(cmd.Context(), args[0], nil)
			if err != nil {
				return err
			}
			printDetails(cmd.OutOrStdout(), details)
			return nil
		},
	}
}

func (a *app) orderCommand() *cobra.Command {
	var (
		quantity int
		extras   []string
	)

	cmd := &cobra.Command{
		Use:   "order <food-id>",
		Short: "Compose and submit an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if quantity < 1 {
				return fmt.Errorf("invalid quantity %d: must be at least 1", quantity)
			}

			out := cmd.OutOrStdout()
			term := terminal{out: out}
			submitter := submission.New(a.backend, term,
				submission.WithConfirmer(term),
				submission.WithDelay(a.settings.ConfirmationDelay),
				submission.WithLogger(a.logger),
			)

			details, err := a.openPage(cmd.Context(), args[0], submitter)
			if err != nil {
				return err
			}

			for i := 1; i < quantity; i++ {
				details.State.IncrementFood()
			}
			for _, spec := range extras {
				id, qty, err := parseExtra(spec)
				if err != nil {
					return err
				}
				for i := 0; i < qty; i++ {
					if !details.State.IncrementExtra(id) {
						fmt.Fprintf(out, "extra %d is not offered for %s\n", id, details.State.Food().Name)
						break
					}
				}
			}

			printDetails(out, details)
			if _, err := details.Submit(cmd.Context()); err != nil {
				return err
			}
			return submitter.Wait(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&quantity, "quantity", "q", 1, "how many of the food to order")
	cmd.Flags().StringSliceVarP(&extras, "extra", "e", nil, "extra to add as id or id=quantity, repeatable")
	return cmd
}

func (a *app) favoriteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <food-id>",
		Short: "Toggle whether a food is a favorite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := a.openPage(cmd.Context(), args[0], nil)
			if err != nil {
				return err
			}

			result := details.ToggleFavorite(cmd.Context())
			if result.Err != nil {
				return fmt.Errorf("toggle favorite: %w", result.Err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", details.State.Food().Name, favorite.IconName(result.IsFavorite))
			return nil
		},
	}
}

func (a *app) ordersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "List past orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := history.NewLoader(a.backend, a.logger)
			entries, err := loader.Reload(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, entry := range entries {
				fmt.Fprintf(out, "#%d\t%s\t%dx %s\t%s\n",
					entry.ID, entry.Name, entry.Quantity, entry.FormattedPrice, entry.TotalOrderValue)
			}
			fmt.Fprintf(out, "total spent\t%s\n", pricing.FormatValue(loader.Spent()))
			return nil
		},
	}
}

func printDetails(out io.Writer, details *page.FoodDetails) {
	state := details.State
	food := state.Food()

	fmt.Fprintf(out, "%s (%s) [%s]\n", food.Name, state.FormattedPrice(), details.FavoriteIcon())
	if food.Description != "" {
		fmt.Fprintln(out, food.Description)
	}
	fmt.Fprintf(out, "quantity: %d\n", state.BaseQuantity())
	for _, line := range state.Extras() {
		fmt.Fprintf(out, "  %d %s %s x%d\n", line.ID, line.Name, pricing.FormatValue(line.Value), line.Quantity)
	}
	fmt.Fprintf(out, "total: %s\n", state.FormattedTotal())
}

// parseExtra accepts "id" or "id=quantity".
func parseExtra(spec string) (int, int, error) {
	idPart, qtyPart, hasQty := strings.Cut(spec, "=")
	id, err := strconv.Atoi(strings.TrimSpace(idPart))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid extra %q", spec)
	}
	if !hasQty {
		return id, 1, nil
	}
	qty, err := strconv.Atoi(strings.TrimSpace(qtyPart))
	if err != nil || qty < 0 {
		return 0, 0, fmt.Errorf("invalid extra quantity %q", spec)
	}
	return id, qty, nil
}

// terminal shows the confirmation and the navigation on the command output.
type terminal struct {
	out io.Writer
}

func (t terminal) ShowConfirmation(order domain.Order) {
	fmt.Fprintf(t.out, "order #%d confirmed: %s\n", order.ID, pricing.FormatValue(order.Total))
}

func (t terminal) HideConfirmation() {}

func (t terminal) NavigateToDefault() {
	fmt.Fprintln(t.out, "back to the menu")
}
