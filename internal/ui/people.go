package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glenxmac/crewboard/internal/crew"
	"github.com/glenxmac/crewboard/internal/events"
)

func (a *App) peopleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "people",
		Short: "Manage people",
	}
	cmd.AddCommand(a.peopleListCmd())
	cmd.AddCommand(a.peopleAddCmd())
	cmd.AddCommand(a.peopleRmCmd())
	return cmd
}

func (a *App) peopleListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List people",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}
			people, err := a.store.ListPeople(context.Background())
			if err != nil {
				return fmt.Errorf("listing people: %w", err)
			}
			if len(people) == 0 {
				fmt.Println("No people yet. Add one with 'crewboard people add'.")
				return nil
			}
			for _, p := range people {
				phone := p.Phone
				if phone == "" {
					phone = "-"
				}
				fmt.Printf("  %-20s %-7s %-14s %s\n",
					truncateCell(p.Name, 20), p.Role, phone, formatMuted(shortID(p.ID)))
			}
			return nil
		},
	}
}

func (a *App) peopleAddCmd() *cobra.Command {
	var (
		role  string
		phone string
	)

	cmd := &cobra.Command{
		Use:     "add [name]",
		Short:   "Add a person",
		Example: `  crewboard people add "Sam Reyes" --role=fitter --phone="+34 600 111 222"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}
			p := &crew.Person{
				Name:  args[0],
				Role:  crew.ParseRole(role),
				Phone: phone,
			}
			created, err := a.store.CreatePerson(context.Background(), p)
			if err != nil {
				return fmt.Errorf("creating person: %w", err)
			}
			a.bus.Publish(events.PeopleUpdated)
			fmt.Printf("Created person %s [%s]\n", created.Name, created.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "fitter", "Role: fitter, sales, admin or other")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")

	return cmd
}

func (a *App) peopleRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [person]",
		Short: "Delete a person",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}
			ctx := context.Background()
			p, err := a.resolvePerson(ctx, args[0])
			if err != nil {
				return err
			}
			if err := a.store.DeletePerson(ctx, p.ID); err != nil {
				return fmt.Errorf("deleting person: %w", err)
			}
			a.bus.Publish(events.PeopleUpdated)
			fmt.Printf("Deleted person %s\n", p.Name)
			return nil
		},
	}
}
