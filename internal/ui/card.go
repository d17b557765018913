package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/glenxmac/crewboard/internal/crew"
)

func (a *App) cardCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:   "card [id]",
		Short: "Print a job card for a booking",
		Long: `Print a job card for a booking: everything the crew needs on site,
in a plain-text block that pastes cleanly into a message.

With --copy the card is also placed on the system clipboard.`,
		Example: `  crewboard card 3f2a...
  crewboard card 3f2a... --copy`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}
			ctx := context.Background()

			b, err := a.store.GetBooking(ctx, args[0])
			if err != nil {
				return err
			}

			card, err := a.buildJobCard(ctx, b)
			if err != nil {
				return err
			}

			fmt.Println(card)

			if copyToClipboard {
				if err := clipboard.WriteAll(card); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Println(formatMuted("Copied to clipboard."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the card to the clipboard")

	return cmd
}

// buildJobCard renders a booking as a plain-text job card. No color codes,
// so the same text is safe to copy.
func (a *App) buildJobCard(ctx context.Context, b *crew.Booking) (string, error) {
	teams, err := a.store.ListTeams(ctx)
	if err != nil {
		return "", fmt.Errorf("listing teams: %w", err)
	}
	people, err := a.store.ListPeople(ctx)
	if err != nil {
		return "", fmt.Errorf("listing people: %w", err)
	}
	products, err := a.store.ListProducts(ctx)
	if err != nil {
		return "", fmt.Errorf("listing products: %w", err)
	}

	personName := func(id string) string {
		for _, p := range people {
			if p.ID == id {
				return p.Name
			}
		}
		return id
	}

	var sb strings.Builder
	write := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&sb, "%-10s %s\n", label+":", value)
	}

	fmt.Fprintf(&sb, "=== %s ===\n", b.CustomerName)
	write("When", fmt.Sprintf("%s %s-%s",
		b.Date.Format("Mon 2 Jan 2006"), b.StartTime, b.EndTime()))
	write("Job", string(b.JobType))

	for _, t := range teams {
		if t.ID == b.TeamID {
			write("Team", t.Name)
			break
		}
	}
	if len(b.Crew) > 0 {
		names := make([]string, 0, len(b.Crew))
		for _, id := range b.Crew {
			names = append(names, personName(id))
		}
		write("Crew", strings.Join(names, ", "))
	}

	write("Address", b.Address)
	write("Phone", b.ClientPhone)
	write("Email", b.ClientEmail)
	write("Orders", b.OrderNumbers)
	if b.SalespersonID != "" {
		write("Sales", personName(b.SalespersonID))
	}

	if len(b.Products) > 0 {
		sb.WriteString("Products:\n")
		for _, line := range b.Products {
			name := line.ProductID
			for _, p := range products {
				if p.ID == line.ProductID {
					name = p.Name
					break
				}
			}
			fmt.Fprintf(&sb, "  %dx %s\n", line.Quantity, name)
		}
	}

	if b.Notes != "" {
		fmt.Fprintf(&sb, "Notes:\n  %s\n", b.Notes)
	}

	return strings.TrimRight(sb.String(), "\n"), nil
}
