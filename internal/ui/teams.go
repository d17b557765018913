package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/glenxmac/crewboard/internal/crew"
	"github.com/glenxmac/crewboard/internal/events"
)

func (a *App) teamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "Manage teams",
	}
	cmd.AddCommand(a.teamsListCmd())
	cmd.AddCommand(a.teamsAddCmd())
	cmd.AddCommand(a.teamsUpdateCmd())
	cmd.AddCommand(a.teamsRmCmd())
	return cmd
}

func (a *App) teamsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List teams and their members",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}
			teams, err := a.store.ListTeams(context.Background())
			if err != nil {
				return fmt.Errorf("listing teams: %w", err)
			}
			if len(teams) == 0 {
				fmt.Println("No teams yet. Create one with 'crewboard teams add'.")
				return nil
			}
			for _, t := range teams {
				fmt.Printf("%s %s\n", formatHeader(t.Name), formatMuted(shortID(t.ID)))
				for _, p := range t.Members {
					marker := " "
					if p.ID == t.TeamLeadID {
						marker = "*"
					}
					fmt.Printf("  %s %s %s\n", marker, p.Name, formatMuted(string(p.Role)))
				}
			}
			return nil
		},
	}
}

func (a *App) teamsAddCmd() *cobra.Command {
	var (
		lead    string
		members []string
	)

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a new team",
		Long: `Add a team. Lead and members accept person ids or names; the lead is
always included in the member list.`,
		Example: `  crewboard teams add "Team Alpha" --lead="Sam Reyes" --members="Kim Soto,Ana Vela"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}
			ctx := context.Background()

			t := &crew.Team{Name: args[0]}
			if lead != "" {
				p, err := a.resolvePerson(ctx, lead)
				if err != nil {
					return err
				}
				t.TeamLeadID = p.ID
			}
			for _, m := range members {
				p, err := a.resolvePerson(ctx, m)
				if err != nil {
					return err
				}
				t.MemberIDs = append(t.MemberIDs, p.ID)
			}

			created, err := a.store.CreateTeam(ctx, t)
			if err != nil {
				return fmt.Errorf("creating team: %w", err)
			}
			a.bus.Publish(events.TeamsUpdated)
			fmt.Printf("Created team %s (%d members)\n", created.Name, len(created.MemberIDs))
			return nil
		},
	}

	cmd.Flags().StringVar(&lead, "lead", "", "Team lead (person id or name)")
	cmd.Flags().StringSliceVar(&members, "members", nil, "Members (person ids or names, comma-separated)")

	return cmd
}

func (a *App) teamsUpdateCmd() *cobra.Command {
	var (
		name    string
		lead    string
		members []string
	)

	cmd := &cobra.Command{
		Use:   "update [team]",
		Short: "Update a team's name, lead or members",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}
			ctx := context.Background()

			t, err := a.resolveTeam(ctx, args[0])
			if err != nil {
				return err
			}
			t = t.Clone()

			if name != "" {
				t.Name = name
			}
			if lead != "" {
				p, err := a.resolvePerson(ctx, lead)
				if err != nil {
					return err
				}
				t.TeamLeadID = p.ID
			}
			if members != nil {
				t.MemberIDs = nil
				for _, m := range members {
					p, err := a.resolvePerson(ctx, m)
					if err != nil {
						return err
					}
					t.MemberIDs = append(t.MemberIDs, p.ID)
				}
			}

			updated, err := a.store.UpdateTeam(ctx, t)
			if err != nil {
				return fmt.Errorf("updating team: %w", err)
			}
			a.bus.Publish(events.TeamsUpdated)
			fmt.Printf("Updated team %s\n", updated.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New team name")
	cmd.Flags().StringVar(&lead, "lead", "", "New team lead (person id or name)")
	cmd.Flags().StringSliceVar(&members, "members", nil, "Replacement member list")

	return cmd
}

func (a *App) teamsRmCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "rm [team]",
		Short: "Delete a team and all its bookings",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}
			ctx := context.Background()

			t, err := a.resolveTeam(ctx, args[0])
			if err != nil {
				return err
			}

			if !force {
				q := fmt.Sprintf("Delete team %q and every booking scheduled for it?", t.Name)
				if !promptYesNo(q) {
					return nil
				}
			}

			if err := a.store.DeleteTeam(ctx, t.ID); err != nil {
				return fmt.Errorf("deleting team: %w", err)
			}
			a.bus.Publish(events.TeamsUpdated)
			a.bus.Publish(events.BookingsUpdated)
			fmt.Printf("Deleted team %s\n", t.Name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}

// resolvePerson finds a person by id or by case-insensitive name.
func (a *App) resolvePerson(ctx context.Context, idOrName string) (*crew.Person, error) {
	people, err := a.store.ListPeople(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing people: %w", err)
	}
	for _, p := range people {
		if p.ID == idOrName || strings.EqualFold(p.Name, idOrName) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no person matching %q", idOrName)
}
