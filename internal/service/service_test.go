package service

import (
	"context"
	"github.com/half-nothing/simple-fms/internal/base"
	"github.com/half-nothing/simple-fms/internal/database"
	"github.com/half-nothing/simple-fms/internal/interfaces/config"
	"github.com/half-nothing/simple-fms/internal/interfaces/operation"
	. "github.com/half-nothing/simple-fms/internal/interfaces/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhpk/randstr"
	"io"
	"testing"
	"time"
)

// sequenceNumbers 按顺序返回给定航班号, 用尽后重复最后一个
type sequenceNumbers struct {
	numbers []string
	index   int
}

func (s *sequenceNumbers) Next() string {
	number := s.numbers[min(s.index, len(s.numbers)-1)]
	s.index++
	return number
}

type testEnv struct {
	now          time.Time
	operations   *operation.DatabaseOperations
	numbers      *sequenceNumbers
	flights      *FlightService
	pilots       *PilotService
	destinations *DestinationService
	audit        *AuditLogService
	paris        *operation.Destination
	cdg          *operation.Airport
	lhr          *operation.Airport
}

func newTestEnv(t *testing.T, mutate func(cfg *config.Config)) *testEnv {
	t.Helper()
	logger := base.NewLogger()
	logger.InitWithWriter(io.Discard, false, false)

	cfg := config.DefaultConfig()
	cfg.Database.Database = "file:" + randstr.Hex(8) + "?mode=memory&cache=shared"
	cfg.Database.ServerMaxConnections = 1
	if mutate != nil {
		mutate(cfg)
	}
	require.False(t, cfg.CheckValid(logger).IsFail())

	closer, operations, err := database.ConnectDatabase(logger, cfg, false)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, closer.Invoke(context.Background())) })

	env := &testEnv{
		now:        time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC),
		operations: operations,
		numbers:    &sequenceNumbers{numbers: []string{"NY100"}},
	}
	clock := func() time.Time { return env.now }
	env.flights = NewFlightService(logger, cfg.Schedule, operations, env.numbers, clock)
	env.pilots = NewPilotService(logger, cfg.Schedule, operations, clock)
	env.destinations = NewDestinationService(logger, operations)
	env.audit = NewAuditService(logger, operations.AuditLogOperation())

	paris := env.destinations.AddDestination(&RequestAddDestination{City: "Paris", Country: "France"})
	require.True(t, paris.Ok())
	london := env.destinations.AddDestination(&RequestAddDestination{City: "London", Country: "United Kingdom"})
	require.True(t, london.Ok())
	cdg := env.destinations.AddAirport(&RequestAddAirport{DestinationId: paris.Data.ID, Name: "Charles de Gaulle", IataCode: "cdg"})
	require.True(t, cdg.Ok())
	lhr := env.destinations.AddAirport(&RequestAddAirport{DestinationId: london.Data.ID, Name: "Heathrow", IataCode: "LHR"})
	require.True(t, lhr.Ok())
	env.paris, env.cdg, env.lhr = paris.Data, cdg.Data, lhr.Data
	return env
}

func (env *testEnv) schedule(t *testing.T, number string, departure time.Time, hours, minutes int) *operation.Flight {
	t.Helper()
	env.numbers.numbers, env.numbers.index = []string{number}, 0
	res := env.flights.ScheduleFlight(&RequestScheduleFlight{
		DepartureAirportId: env.cdg.ID,
		ArrivalAirportId:   env.lhr.ID,
		DepartureTime:      departure,
		Hours:              hours,
		Minutes:            minutes,
	})
	require.True(t, res.Ok(), res.Message)
	return res.Data
}

func (env *testEnv) pilot(t *testing.T, first, last, license string) *operation.Pilot {
	t.Helper()
	res := env.pilots.AddPilot(&RequestAddPilot{FirstName: first, LastName: last, LicenseNumber: license})
	require.True(t, res.Ok(), res.Message)
	return res.Data
}

func at(day, hour, minute int) time.Time {
	return time.Date(2025, 6, day, hour, minute, 0, 0, time.UTC)
}

func TestScheduleFlight(t *testing.T) {
	env := newTestEnv(t, nil)
	assert.Equal(t, "CDG", env.cdg.IataCode)

	flight := env.schedule(t, "NY100", at(1, 10, 0), 2, 30)
	assert.Equal(t, at(1, 12, 30), flight.ArrivalTime.UTC())
	assert.Equal(t, operation.Scheduled, flight.Status)
	assert.Nil(t, flight.PilotId)
	assert.Equal(t, "NY100", flight.FlightNumber)

	tests := []struct {
		name string
		req  RequestScheduleFlight
		code string
	}{
		{"same airport", RequestScheduleFlight{DepartureAirportId: env.cdg.ID, ArrivalAirportId: env.cdg.ID, DepartureTime: at(1, 10, 0), Hours: 1, Minutes: 0}, ErrInvalidRoute.StatusName},
		{"missing airport", RequestScheduleFlight{DepartureAirportId: env.cdg.ID, ArrivalAirportId: 0, DepartureTime: at(1, 10, 0), Hours: 1, Minutes: 0}, ErrIllegalParam.StatusName},
		{"unknown airport", RequestScheduleFlight{DepartureAirportId: env.cdg.ID, ArrivalAirportId: 999, DepartureTime: at(1, 10, 0), Hours: 1, Minutes: 0}, ErrAirportNotFound.StatusName},
		{"departure in past", RequestScheduleFlight{DepartureAirportId: env.cdg.ID, ArrivalAirportId: env.lhr.ID, DepartureTime: env.now, Hours: 1, Minutes: 0}, ErrDepartureInPast.StatusName},
		{"zero duration", RequestScheduleFlight{DepartureAirportId: env.cdg.ID, ArrivalAirportId: env.lhr.ID, DepartureTime: at(1, 10, 0), Hours: 0, Minutes: 0}, ErrInvalidDuration.StatusName},
		{"too long", RequestScheduleFlight{DepartureAirportId: env.cdg.ID, ArrivalAirportId: env.lhr.ID, DepartureTime: at(1, 10, 0), Hours: 36, Minutes: 1}, ErrInvalidDuration.StatusName},
		{"overflowing hours", RequestScheduleFlight{DepartureAirportId: env.cdg.ID, ArrivalAirportId: env.lhr.ID, DepartureTime: at(1, 10, 0), Hours: 5124096, Minutes: 0}, ErrInvalidDuration.StatusName},
		{"minutes out of range", RequestScheduleFlight{DepartureAirportId: env.cdg.ID, ArrivalAirportId: env.lhr.ID, DepartureTime: at(1, 10, 0), Hours: 1, Minutes: 60}, ErrInvalidDuration.StatusName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			res := env.flights.ScheduleFlight(&req)
			assert.False(t, res.Ok())
			assert.Equal(t, tt.code, res.Code)
		})
	}
}

func TestScheduleFlightRetriesTakenNumber(t *testing.T) {
	env := newTestEnv(t, func(cfg *config.Config) { cfg.Schedule.FlightNumberAttempts = 3 })
	env.schedule(t, "NY100", at(1, 10, 0), 1, 0)

	env.numbers.numbers, env.numbers.index = []string{"NY100", "NY100", "LA200"}, 0
	res := env.flights.ScheduleFlight(&RequestScheduleFlight{DepartureAirportId: env.cdg.ID, ArrivalAirportId: env.lhr.ID, DepartureTime: at(2, 10, 0), Hours: 1, Minutes: 0})
	require.True(t, res.Ok(), res.Message)
	assert.Equal(t, "LA200", res.Data.FlightNumber)
	assert.Equal(t, 3, env.numbers.index)

	env.numbers.numbers, env.numbers.index = []string{"NY100"}, 0
	res = env.flights.ScheduleFlight(&RequestScheduleFlight{DepartureAirportId: env.cdg.ID, ArrivalAirportId: env.lhr.ID, DepartureTime: at(3, 10, 0), Hours: 1, Minutes: 0})
	assert.Equal(t, ErrFlightNumberExhausted.StatusName, res.Code)
	assert.Equal(t, 3, env.numbers.index)

	flights, err := env.operations.FlightOperation().GetFlights(&operation.FlightFilter{})
	require.NoError(t, err)
	assert.Len(t, flights, 2)
}

func TestRescheduleFlight(t *testing.T) {
	env := newTestEnv(t, nil)
	flight := env.schedule(t, "NY100", at(1, 10, 0), 2, 30)

	res := env.flights.RescheduleFlight(&RequestRescheduleFlight{FlightId: flight.ID, DepartureTime: at(2, 9, 0)})
	require.True(t, res.Ok(), res.Message)
	assert.Equal(t, at(2, 11, 30), res.Data.ArrivalTime.UTC())

	stored, err := env.operations.FlightOperation().GetFlightById(flight.ID)
	require.NoError(t, err)
	assert.Equal(t, at(2, 9, 0), stored.DepartureTime.UTC())
	assert.Equal(t, at(2, 11, 30), stored.ArrivalTime.UTC())

	res = env.flights.RescheduleFlight(&RequestRescheduleFlight{FlightId: flight.ID, DepartureTime: env.now.Add(-time.Hour)})
	assert.Equal(t, ErrDepartureInPast.StatusName, res.Code)

	res = env.flights.RescheduleFlight(&RequestRescheduleFlight{FlightId: 999, DepartureTime: at(2, 9, 0)})
	assert.Equal(t, ErrFlightNotFound.StatusName, res.Code)
}

func TestRescheduleRejectsPilotConflict(t *testing.T) {
	env := newTestEnv(t, nil)
	pilot := env.pilot(t, "Amelia", "Earhart", "LIC-1")
	first := env.schedule(t, "NY100", at(1, 9, 0), 2, 0)
	second := env.schedule(t, "NY200", at(1, 14, 0), 2, 0)
	require.True(t, env.flights.AssignPilot(&RequestAssignPilot{FlightId: first.ID, PilotId: pilot.ID}).Ok())
	require.True(t, env.flights.AssignPilot(&RequestAssignPilot{FlightId: second.ID, PilotId: pilot.ID}).Ok())

	res := env.flights.RescheduleFlight(&RequestRescheduleFlight{FlightId: second.ID, DepartureTime: at(1, 10, 0)})
	assert.Equal(t, ErrPilotUnavailable.StatusName, res.Code)
	assert.Contains(t, res.Message, "NY100")

	// 仅与自身重叠不算冲突
	res = env.flights.RescheduleFlight(&RequestRescheduleFlight{FlightId: second.ID, DepartureTime: at(1, 15, 0)})
	assert.True(t, res.Ok(), res.Message)
}

func TestCancelFlight(t *testing.T) {
	env := newTestEnv(t, nil)
	flight := env.schedule(t, "NY100", at(1, 10, 0), 1, 0)

	res := env.flights.CancelFlight(&RequestCancelFlight{FlightId: flight.ID})
	require.True(t, res.Ok(), res.Message)
	assert.Equal(t, operation.Cancelled, res.Data.Status)

	res = env.flights.CancelFlight(&RequestCancelFlight{FlightId: flight.ID})
	assert.Equal(t, ErrFlightAlreadyCancelled.StatusName, res.Code)

	res = env.flights.RescheduleFlight(&RequestRescheduleFlight{FlightId: flight.ID, DepartureTime: at(2, 10, 0)})
	assert.Equal(t, ErrFlightCancelled.StatusName, res.Code)

	list := env.flights.GetFlights(&RequestFlightList{View: ViewCancelled})
	require.True(t, list.Ok())
	assert.Len(t, list.Data.Items, 1)
	list = env.flights.GetFlights(&RequestFlightList{View: ViewUpcoming})
	require.True(t, list.Ok())
	assert.Empty(t, list.Data.Items)
}

func TestAssignPilot(t *testing.T) {
	env := newTestEnv(t, nil)
	amelia := env.pilot(t, "Amelia", "Earhart", "LIC-1")
	charles := env.pilot(t, "Charles", "Lindbergh", "LIC-2")
	busy := env.schedule(t, "NY100", at(1, 9, 0), 2, 0)
	flight := env.schedule(t, "NY200", at(1, 10, 0), 2, 0)

	require.True(t, env.flights.AssignPilot(&RequestAssignPilot{FlightId: busy.ID, PilotId: amelia.ID}).Ok())

	eligible := env.flights.GetEligiblePilots(&RequestFlight{FlightId: flight.ID})
	require.True(t, eligible.Ok())
	require.Len(t, eligible.Data.Items, 1)
	assert.Equal(t, charles.ID, eligible.Data.Items[0].ID)

	res := env.flights.AssignPilot(&RequestAssignPilot{FlightId: flight.ID, PilotId: amelia.ID})
	assert.Equal(t, ErrPilotUnavailable.StatusName, res.Code)

	res = env.flights.AssignPilot(&RequestAssignPilot{FlightId: flight.ID, PilotId: charles.ID})
	require.True(t, res.Ok(), res.Message)

	res = env.flights.AssignPilot(&RequestAssignPilot{FlightId: flight.ID, PilotId: charles.ID})
	assert.Equal(t, ErrPilotAlreadyAssigned.StatusName, res.Code)

	res = env.flights.AssignPilot(&RequestAssignPilot{FlightId: busy.ID, PilotId: charles.ID})
	assert.Equal(t, ConfirmRequired, res.Kind)
	require.NotNil(t, res.Data)
	assert.Contains(t, res.Message, "Amelia Earhart")

	// 未确认时不做修改
	stored, err := env.operations.FlightOperation().GetFlightById(busy.ID)
	require.NoError(t, err)
	assert.Equal(t, amelia.ID, *stored.PilotId)

	res = env.flights.AssignPilot(&RequestAssignPilot{FlightId: busy.ID, PilotId: charles.ID, Overwrite: true})
	assert.Equal(t, ErrPilotUnavailable.StatusName, res.Code)

	spare := env.pilot(t, "Bessie", "Coleman", "LIC-3")
	res = env.flights.AssignPilot(&RequestAssignPilot{FlightId: busy.ID, PilotId: spare.ID, Overwrite: true})
	require.True(t, res.Ok(), res.Message)
	assert.Equal(t, spare.ID, *res.Data.PilotId)
}

func TestCancelledFlightOccupancy(t *testing.T) {
	tests := []struct {
		name            string
		cancelledBlocks bool
		expected        string
	}{
		{"cancelled flight frees pilot", false, SuccessAssignPilot.StatusName},
		{"cancelled flight still blocks pilot", true, ErrPilotUnavailable.StatusName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, func(cfg *config.Config) { cfg.Schedule.CancelledBlocksPilot = tt.cancelledBlocks })
			amelia := env.pilot(t, "Amelia", "Earhart", "LIC-1")
			cancelled := env.schedule(t, "NY100", at(1, 9, 0), 2, 0)
			flight := env.schedule(t, "NY200", at(1, 10, 0), 2, 0)
			require.True(t, env.flights.AssignPilot(&RequestAssignPilot{FlightId: cancelled.ID, PilotId: amelia.ID}).Ok())
			require.True(t, env.flights.CancelFlight(&RequestCancelFlight{FlightId: cancelled.ID}).Ok())

			res := env.flights.AssignPilot(&RequestAssignPilot{FlightId: flight.ID, PilotId: amelia.ID})
			assert.Equal(t, tt.expected, res.Code)
		})
	}
}

func TestChangeDestination(t *testing.T) {
	env := newTestEnv(t, nil)
	ory := env.destinations.AddAirport(&RequestAddAirport{DestinationId: env.paris.ID, Name: "Orly", IataCode: "ORY"})
	require.True(t, ory.Ok())
	flight := env.schedule(t, "NY100", at(1, 10, 0), 1, 0)

	assert.Equal(t, ErrInvalidRoute.StatusName,
		env.flights.ChangeDestination(&RequestChangeDestination{FlightId: flight.ID, ArrivalAirportId: env.cdg.ID}).Code)
	assert.Equal(t, ErrSameArrival.StatusName,
		env.flights.ChangeDestination(&RequestChangeDestination{FlightId: flight.ID, ArrivalAirportId: env.lhr.ID}).Code)

	res := env.flights.ChangeDestination(&RequestChangeDestination{FlightId: flight.ID, ArrivalAirportId: ory.Data.ID})
	require.True(t, res.Ok(), res.Message)
	assert.Equal(t, ory.Data.ID, res.Data.ArrivalAirportId)

	candidates := env.flights.GetArrivalCandidates(&RequestArrivalCandidates{DepartureAirportId: env.cdg.ID})
	require.True(t, candidates.Ok())
	for _, airport := range candidates.Data.Items {
		assert.NotEqual(t, env.cdg.ID, airport.ID)
	}
	assert.Len(t, candidates.Data.Items, 2)
}

func TestLazyReconcile(t *testing.T) {
	env := newTestEnv(t, func(cfg *config.Config) { cfg.Schedule.Reconcile = string(config.ReconcileLazy) })
	flight := env.schedule(t, "NY100", at(1, 10, 0), 1, 0)

	env.now = at(1, 10, 30)
	res := env.flights.GetFlight(&RequestFlight{FlightId: flight.ID})
	require.True(t, res.Ok())
	assert.Equal(t, operation.Departed, res.Data.Status)

	cancel := env.flights.CancelFlight(&RequestCancelFlight{FlightId: flight.ID})
	assert.Equal(t, ErrFlightDeparted.StatusName, cancel.Code)
}

func TestStartupReconcile(t *testing.T) {
	env := newTestEnv(t, nil)
	flight := env.schedule(t, "NY100", at(1, 10, 0), 1, 0)
	cancelled := env.schedule(t, "NY200", at(1, 12, 0), 1, 0)
	require.True(t, env.flights.CancelFlight(&RequestCancelFlight{FlightId: cancelled.ID}).Ok())

	env.now = at(2, 0, 0)
	// startup 模式下读取不会触发同步
	res := env.flights.GetFlight(&RequestFlight{FlightId: flight.ID})
	require.True(t, res.Ok())
	assert.Equal(t, operation.Scheduled, res.Data.Status)

	reconcile := env.flights.ReconcileStatuses()
	require.True(t, reconcile.Ok())
	assert.Equal(t, int64(1), reconcile.Data.Departed)

	res = env.flights.GetFlight(&RequestFlight{FlightId: cancelled.ID})
	require.True(t, res.Ok())
	assert.Equal(t, operation.Cancelled, res.Data.Status)
}

func TestFlightViews(t *testing.T) {
	env := newTestEnv(t, nil)
	pilot := env.pilot(t, "Amelia", "Earhart", "LIC-1")
	short := env.schedule(t, "NY100", at(1, 10, 0), 1, 0)
	long := env.schedule(t, "NY200", at(2, 10, 0), 5, 0)
	require.True(t, env.flights.AssignPilot(&RequestAssignPilot{FlightId: short.ID, PilotId: pilot.ID}).Ok())

	byDuration := env.flights.GetFlights(&RequestFlightList{View: ViewByDuration})
	require.True(t, byDuration.Ok())
	require.Len(t, byDuration.Data.Items, 2)
	assert.Equal(t, long.ID, byDuration.Data.Items[0].ID)

	byPilot := env.flights.GetFlights(&RequestFlightList{View: ViewByPilot, PilotId: pilot.ID})
	require.True(t, byPilot.Ok())
	assert.Len(t, byPilot.Data.Items, 1)
	assert.Equal(t, ErrPilotNotFound.StatusName, env.flights.GetFlights(&RequestFlightList{View: ViewByPilot, PilotId: 999}).Code)

	toLondon := env.flights.GetFlights(&RequestFlightList{View: ViewToDestination, Location: " lond "})
	require.True(t, toLondon.Ok())
	assert.Len(t, toLondon.Data.Items, 2)
	toParis := env.flights.GetFlights(&RequestFlightList{View: ViewToDestination, Location: "Paris"})
	require.True(t, toParis.Ok())
	assert.Empty(t, toParis.Data.Items)
	assert.Equal(t, locationValidator.ErrShort.StatusName,
		env.flights.GetFlights(&RequestFlightList{View: ViewToDestination, Location: "  "}).Code)

	onDay := env.flights.GetFlights(&RequestFlightList{View: ViewOnDay, Day: at(2, 0, 0)})
	require.True(t, onDay.Ok())
	require.Len(t, onDay.Data.Items, 1)
	assert.Equal(t, long.ID, onDay.Data.Items[0].ID)
}

func TestPilotService(t *testing.T) {
	env := newTestEnv(t, nil)
	pilot := env.pilot(t, " Amelia ", "Earhart", "LIC-1")
	assert.Equal(t, "Amelia", pilot.FirstName)

	dup := env.pilots.AddPilot(&RequestAddPilot{FirstName: "Other", LastName: "Pilot", LicenseNumber: "LIC-1"})
	assert.Equal(t, ErrLicenseTaken.StatusName, dup.Code)
	assert.Equal(t, firstNameValidator.ErrShort.StatusName,
		env.pilots.AddPilot(&RequestAddPilot{FirstName: "", LastName: "x", LicenseNumber: "y"}).Code)

	renamed := env.pilots.UpdatePilotName(&RequestUpdatePilotName{PilotId: pilot.ID, FirstName: "Amy", LastName: "Johnson"})
	require.True(t, renamed.Ok())
	assert.Equal(t, "Amy Johnson", renamed.Data.FullName())

	other := env.pilot(t, "Bessie", "Coleman", "LIC-2")
	taken := env.pilots.UpdatePilotLicense(&RequestUpdatePilotLicense{PilotId: other.ID, LicenseNumber: "LIC-1"})
	assert.Equal(t, ErrLicenseTaken.StatusName, taken.Code)
	stored := env.pilots.GetPilot(&RequestPilot{PilotId: other.ID})
	require.True(t, stored.Ok())
	assert.Equal(t, "LIC-2", stored.Data.LicenseNumber)

	flight := env.schedule(t, "NY100", at(1, 10, 0), 1, 0)
	require.True(t, env.flights.AssignPilot(&RequestAssignPilot{FlightId: flight.ID, PilotId: pilot.ID}).Ok())
	schedule := env.pilots.GetPilotSchedule(&RequestPilot{PilotId: pilot.ID})
	require.True(t, schedule.Ok())
	assert.Len(t, schedule.Data.Items, 1)
	assigned := env.pilots.GetAssignedFlights()
	require.True(t, assigned.Ok())
	assert.Len(t, assigned.Data.Items, 1)

	deleted := env.pilots.DeletePilot(&RequestPilot{PilotId: pilot.ID})
	require.True(t, deleted.Ok())
	assert.Equal(t, int64(1), deleted.Data.ReleasedFlights)
	released, err := env.operations.FlightOperation().GetFlightById(flight.ID)
	require.NoError(t, err)
	assert.Nil(t, released.PilotId)
	assert.Equal(t, ErrPilotNotFound.StatusName, env.pilots.GetPilot(&RequestPilot{PilotId: pilot.ID}).Code)

	pilots := env.pilots.GetPilots()
	require.True(t, pilots.Ok())
	assert.Len(t, pilots.Data.Items, 1)
}

func TestCountPilotsFlownTo(t *testing.T) {
	env := newTestEnv(t, nil)
	pilot := env.pilot(t, "Amelia", "Earhart", "LIC-1")
	flight := env.schedule(t, "NY100", at(1, 10, 0), 1, 0)
	require.True(t, env.flights.AssignPilot(&RequestAssignPilot{FlightId: flight.ID, PilotId: pilot.ID}).Ok())

	res := env.pilots.CountPilotsFlownTo(&RequestPilotsFlownTo{Location: "london"})
	require.True(t, res.Ok())
	assert.Equal(t, int64(0), res.Data.Total)

	env.now = at(2, 0, 0)
	require.True(t, env.flights.ReconcileStatuses().Ok())
	res = env.pilots.CountPilotsFlownTo(&RequestPilotsFlownTo{Location: "kingdom"})
	require.True(t, res.Ok())
	assert.Equal(t, int64(1), res.Data.Total)
}

func TestDestinationService(t *testing.T) {
	env := newTestEnv(t, nil)

	dup := env.destinations.AddDestination(&RequestAddDestination{City: "Paris", Country: "France"})
	assert.Equal(t, ErrDestinationExists.StatusName, dup.Code)
	list := env.destinations.GetDestinations()
	require.True(t, list.Ok())
	assert.Len(t, list.Data.Items, 2)

	assert.Equal(t, ErrIataCodeTaken.StatusName,
		env.destinations.AddAirport(&RequestAddAirport{DestinationId: env.paris.ID, Name: "Other", IataCode: "CDG"}).Code)
	assert.Equal(t, ErrDestinationNotFound.StatusName,
		env.destinations.AddAirport(&RequestAddAirport{DestinationId: 999, Name: "Other", IataCode: "XXX"}).Code)

	flight := env.schedule(t, "NY100", at(1, 10, 0), 1, 0)
	assert.Equal(t, ErrDestinationInUse.StatusName,
		env.destinations.DeleteDestination(&RequestDestination{DestinationId: env.paris.ID}).Code)
	assert.Equal(t, ErrAirportInUse.StatusName,
		env.destinations.DeleteAirport(&RequestAirport{AirportId: env.cdg.ID}).Code)

	require.True(t, env.flights.CancelFlight(&RequestCancelFlight{FlightId: flight.ID}).Ok())
	ranked := env.destinations.GetAirportsByCancelledDepartures()
	require.True(t, ranked.Ok())
	require.NotEmpty(t, ranked.Data.Items)
	assert.Equal(t, "CDG", ranked.Data.Items[0].IataCode)
	assert.Equal(t, int64(1), ranked.Data.Items[0].Flights)

	rome := env.destinations.AddDestination(&RequestAddDestination{City: "Rome", Country: "Italy"})
	require.True(t, rome.Ok())
	assert.True(t, env.destinations.DeleteDestination(&RequestDestination{DestinationId: rome.Data.ID}).Ok())
	assert.Equal(t, ErrDestinationNotFound.StatusName,
		env.destinations.DeleteDestination(&RequestDestination{DestinationId: rome.Data.ID}).Code)

	counts := env.destinations.GetFlightCountPerDestination()
	require.True(t, counts.Ok())
	assert.Len(t, counts.Data.Items, 2)
}

func TestAuditTrail(t *testing.T) {
	env := newTestEnv(t, nil)
	flight := env.schedule(t, "NY100", at(1, 10, 0), 1, 0)
	require.True(t, env.flights.RescheduleFlight(&RequestRescheduleFlight{FlightId: flight.ID, DepartureTime: at(2, 10, 0)}).Ok())

	res := env.audit.GetAuditLogPage(&RequestGetAuditLog{Page: 1, PageSize: 2})
	require.True(t, res.Ok())
	// 2个目的地, 2个机场, 1次创建, 1次改期
	assert.Equal(t, int64(6), res.Data.Total)
	assert.Equal(t, 3, res.Data.TotalPages())
	require.Len(t, res.Data.Items, 2)
	assert.Equal(t, string(operation.FlightRescheduled), res.Data.Items[0].EventType)
	require.NotNil(t, res.Data.Items[0].ChangeDetails)
	assert.Equal(t, "2025-06-02 10:00:00 UTC", res.Data.Items[0].ChangeDetails.NewValue)

	assert.Equal(t, ErrIllegalParam.StatusName, env.audit.GetAuditLogPage(&RequestGetAuditLog{Page: 0, PageSize: 2}).Code)
}
