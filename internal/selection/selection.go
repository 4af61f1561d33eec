// Package selection sequences the three-step booking choice on the client
// side: a service, then a date, then a start time, and only then confirmation.
// The machine owns all selection state explicitly and talks to the page
// through a Renderer, so the transition table is testable on its own.
package selection

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

type State string

const (
	StateNoService       State = "NoServiceSelected"
	StateServiceSelected State = "ServiceSelected"
	StateDateSelected    State = "DateSelected"
	StateTimeSelected    State = "TimeSelected"
)

// FlatRate is the price shown for services without one of their own.
var FlatRate = decimal.NewFromInt(240)

var ErrIncompleteSelection = errors.New("service, date and time must all be selected")

// ServiceOption is what the booking page knows about a selectable service.
type ServiceOption struct {
	Name            string
	DurationMinutes int
	Price           decimal.NullDecimal
}

// Schedule supplies the bookable start times for a date.
type Schedule interface {
	TimesFor(date string) []string
}

// Renderer is the page surface the machine drives. Implementations render a
// times list, the booking summary, and the confirm control.
type Renderer interface {
	ShowTimes(times []string)
	ShowSummary(s Summary)
	ClearSummary()
	SetConfirmEnabled(enabled bool)
	Prompt(message string)
}

type Summary struct {
	ServiceName string
	Date        string
	Start       string
	End         string
	Price       decimal.Decimal
	Total       decimal.Decimal
}

// Confirmation is handed to the submission layer on a successful confirm.
type Confirmation struct {
	ServiceName string
	// Appointment is the combined "YYYY-MM-DD H:MM AM/PM" string the
	// submission endpoint expects.
	Appointment string
}

type Machine struct {
	schedule Schedule
	render   Renderer

	service *ServiceOption
	date    string
	start   string
}

func New(schedule Schedule, render Renderer) *Machine {
	return &Machine{schedule: schedule, render: render}
}

func (m *Machine) State() State {
	switch {
	case m.service == nil:
		return StateNoService
	case m.date == "":
		return StateServiceSelected
	case m.start == "":
		return StateDateSelected
	default:
		return StateTimeSelected
	}
}

// SelectService starts the selection over: any chosen date and time are
// dropped, the summary is cleared and confirmation disabled until all three
// steps are redone.
func (m *Machine) SelectService(opt ServiceOption) {
	m.service = &opt
	m.date = ""
	m.start = ""
	m.render.ClearSummary()
	m.render.SetConfirmEnabled(false)
}

// SelectDate is a no-op (rejected transition) until a service is chosen.
// Choosing a date drops any chosen time and shows the times offered that day.
func (m *Machine) SelectDate(date string) bool {
	if m.service == nil {
		return false
	}
	m.date = date
	m.start = ""
	m.render.ClearSummary()
	m.render.SetConfirmEnabled(false)
	m.render.ShowTimes(m.schedule.TimesFor(date))
	return true
}

// SelectTime is a no-op (rejected transition) until a date is chosen. On
// success the summary is rendered and confirmation enabled.
func (m *Machine) SelectTime(start string) bool {
	if m.service == nil || m.date == "" {
		return false
	}

	end, err := EndTime(start, m.service.DurationMinutes)
	if err != nil {
		return false
	}
	m.start = start

	price := FlatRate
	if m.service.Price.Valid {
		price = m.service.Price.Decimal
	}
	m.render.ShowSummary(Summary{
		ServiceName: m.service.Name,
		Date:        m.date,
		Start:       start,
		End:         end,
		Price:       price,
		Total:       price,
	})
	m.render.SetConfirmEnabled(true)
	return true
}

// Confirm succeeds only with service, date and time all selected; otherwise
// the user is prompted to complete the selection.
func (m *Machine) Confirm() (Confirmation, error) {
	if m.State() != StateTimeSelected {
		m.render.Prompt("Please select a service, date and time before confirming.")
		return Confirmation{}, ErrIncompleteSelection
	}
	return Confirmation{
		ServiceName: m.service.Name,
		Appointment: fmt.Sprintf("%s %s", m.date, m.start),
	}, nil
}
