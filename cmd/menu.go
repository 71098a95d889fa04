package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/roomsched/internal/application/engine"
	"github.com/example/roomsched/internal/directory"
	"github.com/example/roomsched/internal/domain/booking"
	"github.com/example/roomsched/internal/seed"
)

func newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive booking console",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, log, err := newEngine()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			m := &menu{
				eng:   eng,
				staff: seed.Staff(),
				in:    bufio.NewScanner(os.Stdin),
				out:   os.Stdout,
			}
			m.run()
			return nil
		},
	}
}

type menu struct {
	eng   *engine.Engine
	staff *directory.Directory
	in    *bufio.Scanner
	out   io.Writer
}

func (m *menu) run() {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "1) List reservations")
		fmt.Fprintln(m.out, "2) Check availability")
		fmt.Fprintln(m.out, "3) Create reservation")
		fmt.Fprintln(m.out, "4) Update reservation")
		fmt.Fprintln(m.out, "5) Cancel reservation (staff)")
		fmt.Fprintln(m.out, "0) Exit")

		choice, ok := m.promptInt("choice")
		if !ok {
			return
		}
		switch choice {
		case 0:
			return
		case 1:
			m.list()
		case 2:
			m.checkAvailability()
		case 3:
			m.create()
		case 4:
			m.update()
		case 5:
			m.cancel()
		default:
			fmt.Fprintln(m.out, "unknown option")
		}
	}
}

func (m *menu) list() {
	all := m.eng.Reservations()
	if len(all) == 0 {
		fmt.Fprintln(m.out, "no reservations")
		return
	}
	for _, r := range all {
		fmt.Fprintln(m.out, r)
	}
}

func (m *menu) checkAvailability() {
	id, ok := m.promptInt("resource id")
	if !ok {
		return
	}
	dates, ok := m.promptDates()
	if !ok {
		return
	}
	if m.eng.Available(id, dates) {
		fmt.Fprintln(m.out, "available")
	} else {
		fmt.Fprintln(m.out, "not available")
	}
}

func (m *menu) create() {
	resourceID, ok := m.promptInt("resource id")
	if !ok {
		return
	}
	requesterID, ok := m.promptInt("requester id")
	if !ok {
		return
	}
	dates, ok := m.promptDates()
	if !ok {
		return
	}
	policy, ok := m.promptPolicy()
	if !ok {
		return
	}
	res, ok := m.eng.Create(resourceID, requesterID, dates, policy)
	if !ok {
		fmt.Fprintln(m.out, "could not book: dates invalid, in the past, unknown ids, or not available")
		return
	}
	fmt.Fprintln(m.out, "booked:", res)
	fmt.Fprintln(m.out, "confirmation:", res.Confirmation)
}

func (m *menu) update() {
	id, ok := m.promptInt("reservation id")
	if !ok {
		return
	}
	dates, ok := m.promptDates()
	if !ok {
		return
	}
	policy, ok := m.promptPolicy()
	if !ok {
		return
	}
	res, ok := m.eng.Update(id, dates, policy)
	if !ok {
		fmt.Fprintln(m.out, "could not update: unknown id, dates invalid, or not available")
		return
	}
	fmt.Fprintln(m.out, "updated:", res)
}

func (m *menu) cancel() {
	staffID, ok := m.promptInt("staff id")
	if !ok {
		return
	}
	if !m.staff.HasRole(staffID, directory.RoleReception, directory.RoleManager) {
		fmt.Fprintln(m.out, "cancellation requires a reception or manager staff id")
		return
	}
	id, ok := m.promptInt("reservation id")
	if !ok {
		return
	}
	if m.eng.Cancel(id) {
		fmt.Fprintln(m.out, "cancelled")
	} else {
		fmt.Fprintln(m.out, "no reservation with that id")
	}
}

func (m *menu) promptPolicy() (booking.PricingPolicy, bool) {
	fmt.Fprintln(m.out, "pricing: 1) flat  2) seasonal +20%  3) discount -10%")
	n, ok := m.promptInt("pricing")
	if !ok {
		return nil, false
	}
	switch n {
	case 1:
		return booking.FlatRate{}, true
	case 2:
		return booking.SeasonalMultiplier{}, true
	case 3:
		return booking.DiscountMultiplier{}, true
	}
	fmt.Fprintln(m.out, "unknown pricing option")
	return nil, false
}

func (m *menu) promptDates() (booking.DateRange, bool) {
	checkIn, ok := m.promptDate("check-in (YYYY-MM-DD)")
	if !ok {
		return booking.DateRange{}, false
	}
	checkOut, ok := m.promptDate("check-out (YYYY-MM-DD)")
	if !ok {
		return booking.DateRange{}, false
	}
	dates, err := booking.NewDateRange(checkIn, checkOut)
	if err != nil {
		fmt.Fprintln(m.out, err)
		return booking.DateRange{}, false
	}
	return dates, true
}

func (m *menu) promptDate(label string) (time.Time, bool) {
	line, ok := m.promptLine(label)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", line)
	if err != nil {
		fmt.Fprintln(m.out, "expected a YYYY-MM-DD date")
		return time.Time{}, false
	}
	return t, true
}

func (m *menu) promptInt(label string) (int, bool) {
	line, ok := m.promptLine(label)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintln(m.out, "expected a number")
		return 0, false
	}
	return n, true
}

func (m *menu) promptLine(label string) (string, bool) {
	fmt.Fprintf(m.out, "%s: ", label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}
