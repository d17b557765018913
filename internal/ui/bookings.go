package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/glenxmac/crewboard/internal/crew"
	"github.com/glenxmac/crewboard/internal/dateutil"
	"github.com/glenxmac/crewboard/internal/events"
	"github.com/glenxmac/crewboard/internal/schedule"
)

func (a *App) bookingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Manage bookings",
	}
	cmd.AddCommand(a.bookingsListCmd())
	cmd.AddCommand(a.bookingsAddCmd())
	cmd.AddCommand(a.bookingsMoveCmd())
	cmd.AddCommand(a.bookingsRmCmd())
	return cmd
}

func (a *App) bookingsListCmd() *cobra.Command {
	var (
		date string
		week bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bookings for a day or week",
		Long: `List bookings for a single day, or for the whole week containing it.

The date accepts YYYY-MM-DD as well as relative forms like "today",
"tomorrow" or a weekday name.`,
		Example: `  crewboard bookings list
  crewboard bookings list --date=2025-06-02
  crewboard bookings list --date=monday --week`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}

			day, err := dateutil.ParseRelativeDate(date, time.Now())
			if err != nil {
				return err
			}

			ctx := context.Background()
			var bookings []*crew.Booking
			if week {
				bookings, err = a.store.ListBookingsForWeek(ctx, dateutil.Monday(day))
			} else {
				bookings, err = a.store.ListBookingsForDay(ctx, day)
			}
			if err != nil {
				return fmt.Errorf("listing bookings: %w", err)
			}

			if len(bookings) == 0 {
				fmt.Println("No bookings found.")
				return nil
			}

			teams, err := a.store.ListTeams(ctx)
			if err != nil {
				return fmt.Errorf("listing teams: %w", err)
			}
			names := teamNames(teams)
			custWidth := customerColWidth(termWidth())

			// Print bookings grouped by date
			var currentDate string
			for _, b := range bookings {
				d := dateutil.FormatISO(b.Date)
				if d != currentDate {
					if currentDate != "" {
						fmt.Println()
					}
					fmt.Printf("=== %s ===\n", formatHeader(b.Date.Format("Monday, January 2")))
					currentDate = d
				}
				printBookingRow(b, names, custWidth)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD or relative, defaults to today)")
	cmd.Flags().BoolVar(&week, "week", false, "List the whole week containing the date")

	return cmd
}

func (a *App) bookingsAddCmd() *cobra.Command {
	var (
		date     string
		team     string
		start    string
		duration float64
		job      string
		address  string
		notes    string
		crewFlag []string
	)

	cmd := &cobra.Command{
		Use:   "add [customer]",
		Short: "Add a new booking",
		Long: `Add a booking for a team. The team flag accepts a team id or name.

The write is rejected when the booking does not fit inside the working
day or overlaps another booking of the same team on the same date.
Assigning a crew member who is already booked elsewhere at the same time
prints a warning but does not block the save.`,
		Example: `  crewboard bookings add "Garcia kitchen" --team="Team Alpha" --date=2025-06-02 --start=09:00 --duration=2 --job=install`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}
			ctx := context.Background()

			t, err := a.resolveTeam(ctx, team)
			if err != nil {
				return err
			}

			b, err := crew.New(date, t.ID, start, duration, job)
			if err != nil {
				return err
			}
			b.CustomerName = args[0]
			b.Address = address
			b.Notes = notes
			for _, member := range crewFlag {
				p, err := a.resolvePerson(ctx, member)
				if err != nil {
					return err
				}
				b.Crew = append(b.Crew, p.ID)
			}

			slots := schedule.NewSlots(a.config.Schedule.DayStart, a.config.Schedule.DayEnd, a.config.Schedule.SlotMinutes)
			if !schedule.FitsInDay(slots, b) {
				return fmt.Errorf("booking %s +%.1fh does not fit in the working day (%s-%s)",
					b.StartTime, b.DurationHours, a.config.Schedule.DayStart, a.config.Schedule.DayEnd)
			}

			// Same-time assignments elsewhere warn but never block.
			if len(b.Crew) > 0 {
				sameDay, err := a.store.ListBookingsForDay(ctx, b.Date)
				if err != nil {
					return fmt.Errorf("listing bookings: %w", err)
				}
				for _, personID := range schedule.CrewConflicts(b, sameDay) {
					name := personID
					if p, err := a.resolvePerson(ctx, personID); err == nil {
						name = p.Name
					}
					fmt.Println(formatWarn(fmt.Sprintf("warning: %s is also booked elsewhere that day", name)))
				}
			}

			created, err := a.store.CreateBooking(ctx, b)
			if err != nil {
				return fmt.Errorf("creating booking: %w", err)
			}
			a.bus.Publish(events.BookingsUpdated)

			fmt.Printf("Created booking %s: %s [%s] %s %s-%s (%s)\n",
				created.ID,
				created.CustomerName,
				created.JobType,
				dateutil.FormatISO(created.Date),
				created.StartTime,
				created.EndTime(),
				t.Name,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&team, "team", "", "Team id or name (required)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM, required)")
	cmd.Flags().Float64Var(&duration, "duration", 1, "Duration in hours (multiple of 0.5)")
	cmd.Flags().StringVar(&job, "job", "other", "Job type: measure, install, service, transit or other")
	cmd.Flags().StringVar(&address, "address", "", "Job site address")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().StringSliceVar(&crewFlag, "crew", nil, "Crew members (person ids or names, comma-separated)")

	_ = cmd.MarkFlagRequired("team")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func (a *App) bookingsMoveCmd() *cobra.Command {
	var (
		date     string
		team     string
		start    string
		duration float64
	)

	cmd := &cobra.Command{
		Use:   "move [id]",
		Short: "Move or resize a booking",
		Long: `Change a booking's date, team, start time or duration.

Only the given flags change; everything else is kept. The write is
rejected on overlap, exactly as a drag on the board would be.`,
		Example: `  crewboard bookings move 3f2a... --start=13:00
  crewboard bookings move 3f2a... --date=tomorrow --team="Team Beta"`,
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
			candidate := b.Clone()
			slots := schedule.NewSlots(a.config.Schedule.DayStart, a.config.Schedule.DayEnd, a.config.Schedule.SlotMinutes)

			if date != "" {
				day, err := dateutil.ParseRelativeDate(date, time.Now())
				if err != nil {
					return err
				}
				candidate.Date = day
			}
			if team != "" {
				t, err := a.resolveTeam(ctx, team)
				if err != nil {
					return err
				}
				candidate.TeamID = t.ID
			}
			if start != "" {
				if _, ok := slots.Index(start); !ok {
					return fmt.Errorf("start time %q is not on the slot grid", start)
				}
				candidate.StartTime = start
			}
			if duration > 0 {
				if err := crew.ValidateDuration(duration); err != nil {
					return err
				}
				candidate.DurationHours = duration
			}

			if !schedule.FitsInDay(slots, candidate) {
				return fmt.Errorf("booking %s +%.1fh does not fit in the working day (%s-%s)",
					candidate.StartTime, candidate.DurationHours, a.config.Schedule.DayStart, a.config.Schedule.DayEnd)
			}

			updated, err := a.store.UpdateBooking(ctx, candidate)
			if err != nil {
				return fmt.Errorf("moving booking: %w", err)
			}
			a.bus.Publish(events.BookingsUpdated)

			fmt.Printf("Moved booking %s: %s %s-%s\n",
				updated.ID,
				dateutil.FormatISO(updated.Date),
				updated.StartTime,
				updated.EndTime(),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "New date (YYYY-MM-DD or relative)")
	cmd.Flags().StringVar(&team, "team", "", "New team id or name")
	cmd.Flags().StringVar(&start, "start", "", "New start time (HH:MM)")
	cmd.Flags().Float64Var(&duration, "duration", 0, "New duration in hours")

	return cmd
}

func (a *App) bookingsRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}
			if err := a.store.DeleteBooking(context.Background(), args[0]); err != nil {
				return fmt.Errorf("deleting booking: %w", err)
			}
			a.bus.Publish(events.BookingsUpdated)
			fmt.Printf("Deleted booking %s\n", args[0])
			return nil
		},
	}
}

// resolveTeam finds a team by id or by case-insensitive name.
func (a *App) resolveTeam(ctx context.Context, idOrName string) (*crew.Team, error) {
	if idOrName == "" {
		return nil, crew.ErrMissingTeam
	}
	teams, err := a.store.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}
	for _, t := range teams {
		if t.ID == idOrName || strings.EqualFold(t.Name, idOrName) {
			return t, nil
		}
	}
	return nil, fmt.Errorf("no team matching %q", idOrName)
}

func teamNames(teams []*crew.Team) map[string]string {
	names := make(map[string]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.Name
	}
	return names
}

// customerColWidth sizes the customer column to the terminal, leaving room
// for the time range, job type, team name and short id.
func customerColWidth(termWidth int) int {
	w := termWidth - 48
	if w < 16 {
		return 16
	}
	if w > 40 {
		return 40
	}
	return w
}

func printBookingRow(b *crew.Booking, teamNames map[string]string, custWidth int) {
	team := teamNames[b.TeamID]
	if team == "" {
		team = b.TeamID
	}
	// Pad before coloring so ANSI codes do not skew the columns.
	job := formatJob(b.JobType, fmt.Sprintf("%-8s", b.JobType))
	fmt.Printf("  %s-%s %s %-*s %s %s\n",
		b.StartTime,
		b.EndTime(),
		job,
		custWidth,
		truncateCell(b.CustomerName, custWidth),
		formatMuted(team),
		formatMuted(shortID(b.ID)),
	)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// truncateCell shortens s for a fixed-width column.
func truncateCell(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
