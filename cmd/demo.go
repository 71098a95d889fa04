package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/roomsched/internal/domain/booking"
)

// newDemoCmd books a short sample stay against the seeded catalogs and
// prints the resulting ledger, mirroring how the system is exercised by
// hand during development.
func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Seed the catalogs, book a sample stay, print the ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, log, err := newEngine()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			checkIn := booking.MidnightUTC(time.Now()).AddDate(0, 0, 7)
			dates, err := booking.NewDateRange(checkIn, checkIn.AddDate(0, 0, 5))
			if err != nil {
				return err
			}

			res, ok := eng.Create(1, 1, dates, booking.FlatRate{})
			if !ok {
				fmt.Println("could not book the sample stay")
			} else {
				fmt.Println("booked:", res)
			}

			for _, r := range eng.Reservations() {
				fmt.Println(r)
			}
			return nil
		},
	}
}
