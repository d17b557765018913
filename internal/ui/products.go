package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/glenxmac/crewboard/internal/crew"
	"github.com/glenxmac/crewboard/internal/events"
)

func (a *App) productsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage the product catalog",
	}
	cmd.AddCommand(a.productsListCmd())
	cmd.AddCommand(a.productsAddCmd())
	cmd.AddCommand(a.productsRmCmd())
	return cmd
}

func (a *App) productsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}
			products, err := a.store.ListProducts(context.Background())
			if err != nil {
				return fmt.Errorf("listing products: %w", err)
			}
			if len(products) == 0 {
				fmt.Println("No products yet. Add one with 'crewboard products add'.")
				return nil
			}
			for _, p := range products {
				category := p.Category
				if category == "" {
					category = "-"
				}
				fmt.Printf("  %-28s %-14s %s\n",
					truncateCell(p.Name, 28), category, formatMuted(shortID(p.ID)))
			}
			return nil
		},
	}
}

func (a *App) productsAddCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:     "add [name]",
		Short:   "Add a product",
		Example: `  crewboard products add "Roller blind 120cm" --category=blinds`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}
			p := &crew.Product{Name: args[0], Category: category}
			created, err := a.store.CreateProduct(context.Background(), p)
			if err != nil {
				return fmt.Errorf("creating product: %w", err)
			}
			a.bus.Publish(events.ProductsUpdated)
			fmt.Printf("Created product %s\n", created.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Product category")

	return cmd
}

func (a *App) productsRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [product]",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}
			ctx := context.Background()
			p, err := a.resolveProduct(ctx, args[0])
			if err != nil {
				return err
			}
			if err := a.store.DeleteProduct(ctx, p.ID); err != nil {
				return fmt.Errorf("deleting product: %w", err)
			}
			a.bus.Publish(events.ProductsUpdated)
			fmt.Printf("Deleted product %s\n", p.Name)
			return nil
		},
	}
}

// resolveProduct finds a product by id or by case-insensitive name.
func (a *App) resolveProduct(ctx context.Context, idOrName string) (*crew.Product, error) {
	products, err := a.store.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	for _, p := range products {
		if p.ID == idOrName || strings.EqualFold(p.Name, idOrName) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no product matching %q", idOrName)
}
