// Package console
package console

import (
	"fmt"
	"github.com/half-nothing/simple-fms/internal/interfaces/operation"
	. "github.com/half-nothing/simple-fms/internal/interfaces/service"
	"github.com/half-nothing/simple-fms/internal/schedule"
	"github.com/half-nothing/simple-fms/internal/utils"
	"math"
	"strconv"
	"time"
)

func airportLabel(airport *operation.Airport) string {
	if airport == nil {
		return "-"
	}
	return fmt.Sprintf("%s (%s)", airport.Name, airport.IataCode)
}

func (console *Console) renderFlights(flights []*operation.Flight, now time.Time) {
	rows := utils.Map(flights, func(flight *operation.Flight) []string {
		pilot := "-"
		if flight.Pilot != nil {
			pilot = flight.Pilot.FullName()
		}
		return []string{
			strconv.FormatUint(uint64(flight.ID), 10),
			flight.FlightNumber,
			airportLabel(flight.DepartureAirport),
			console.formatTime(flight.DepartureTime),
			airportLabel(flight.ArrivalAirport),
			console.formatTime(flight.ArrivalTime),
			formatDuration(flight.Duration()),
			pilot,
			schedule.ResolveStatus(flight, now).String(),
		}
	})
	console.printer.Table([]string{"ID", "Flight", "From", "Departure", "To", "Arrival", "Duration", "Pilot", "Status"}, rows)
}

// selectFlight 显示航班并读取其中一个, 列表为空时返回nil
func (console *Console) selectFlight(purpose string, flights []*operation.Flight, now time.Time) (*operation.Flight, error) {
	if len(flights) == 0 {
		console.printer.Warning("No matching flights found.")
		return nil, nil
	}
	console.renderFlights(flights, now)
	ids := utils.Map(flights, func(flight *operation.Flight) uint { return flight.ID })
	id, err := console.prompter.Choose(fmt.Sprintf("\nPlease enter the Flight ID of the flight you'd like to %s: ", purpose), ids)
	if err != nil {
		return nil, err
	}
	return utils.Find(flights, func(flight *operation.Flight) bool { return flight.ID == id }), nil
}

// selectUpcomingFlight 从尚未起飞且未取消的航班中选择一个
func (console *Console) selectUpcomingFlight(purpose string) (*operation.Flight, error) {
	console.printer.Heading("Upcoming Flights")
	res := console.flightService.GetFlights(&RequestFlightList{View: ViewUpcoming})
	if reportFailure(console.printer, res) {
		return nil, nil
	}
	return console.selectFlight(purpose, res.Data.Items, res.Data.Now)
}

func (console *Console) renderAirports(airports []*operation.Airport) {
	rows := utils.Map(airports, func(airport *operation.Airport) []string {
		city, country := "-", "-"
		if airport.Destination != nil {
			city, country = airport.Destination.City, airport.Destination.Country
		}
		return []string{strconv.FormatUint(uint64(airport.ID), 10), airport.Name, airport.IataCode, city, country}
	})
	console.printer.Table([]string{"ID", "Airport", "IATA", "City", "Country"}, rows)
}

func (console *Console) selectAirport(prompt string, airports []*operation.Airport) (*operation.Airport, error) {
	if len(airports) == 0 {
		console.printer.Warning("No airports available. Add a destination and an airport first.")
		return nil, nil
	}
	console.renderAirports(airports)
	ids := utils.Map(airports, func(airport *operation.Airport) uint { return airport.ID })
	id, err := console.prompter.Choose(prompt, ids)
	if err != nil {
		return nil, err
	}
	return utils.Find(airports, func(airport *operation.Airport) bool { return airport.ID == id }), nil
}

// readDuration 读取小时与分钟, 不合法时重新提示
func (console *Console) readDuration() (int, int, error) {
	console.printer.Println("\nTo enter the duration of the flight, please enter the hours first, then the minutes.")
	for {
		hours, err := console.prompter.Int("Please enter flight duration (hours): ", 0, math.MaxInt)
		if err != nil {
			return 0, 0, err
		}
		minutes, err := console.prompter.Int("Please enter the additional minutes: ", 0, math.MaxInt)
		if err != nil {
			return 0, 0, err
		}
		if _, err := schedule.FlightDuration(hours, minutes, console.config.Schedule.MaxFlightDuration); err != nil {
			console.printer.Warning("Provided flight duration: %d hours, %d minutes\nInvalid duration, %v.", hours, minutes, err)
			continue
		}
		return hours, minutes, nil
	}
}

func (console *Console) scheduleFlight() error {
	console.printer.Heading("Schedule a flight")
	airports := console.destinationService.GetAirports(&RequestAirportList{})
	if reportFailure(console.printer, airports) {
		return nil
	}
	departure, err := console.selectAirport("\nPlease enter the Airport ID of the airport to depart from: ", airports.Data.Items)
	if departure == nil || err != nil {
		return err
	}
	departureTime, err := console.prompter.DateTime(
		fmt.Sprintf("\nPlease enter the departure time for the flight from %s (YYYY-MM-DD HH:MM:SS): ", departure.Name),
		console.now())
	if err != nil {
		return err
	}

	candidates := console.flightService.GetArrivalCandidates(&RequestArrivalCandidates{DepartureAirportId: departure.ID})
	if reportFailure(console.printer, candidates) {
		return nil
	}
	console.printer.Heading("Choose Arrival Airport")
	arrival, err := console.selectAirport("\nPlease enter the Airport ID of the arrival airport: ", candidates.Data.Items)
	if arrival == nil || err != nil {
		return err
	}
	hours, minutes, err := console.readDuration()
	if err != nil {
		return err
	}

	res := console.flightService.ScheduleFlight(&RequestScheduleFlight{
		DepartureAirportId: departure.ID,
		ArrivalAirportId:   arrival.ID,
		DepartureTime:      departureTime,
		Hours:              hours,
		Minutes:            minutes,
	})
	console.printer.Clear()
	if reportFailure(console.printer, res) {
		return nil
	}
	flight := res.Data
	console.printer.Success("Flight %s scheduled successfully.\nDeparting from %s at %s\nArriving at %s at %s",
		flight.FlightNumber, departure.Name, console.formatTime(flight.DepartureTime),
		arrival.Name, console.formatTime(flight.ArrivalTime))
	return nil
}

func (console *Console) changeDeparture() error {
	flight, err := console.selectUpcomingFlight("change the departure time for")
	if flight == nil || err != nil {
		return err
	}
	departureTime, err := console.prompter.DateTime(
		fmt.Sprintf("\nPlease enter a new departure time for flight %s (YYYY-MM-DD HH:MM:SS): ", flight.FlightNumber),
		console.now())
	if err != nil {
		return err
	}
	res := console.flightService.RescheduleFlight(&RequestRescheduleFlight{FlightId: flight.ID, DepartureTime: departureTime})
	console.printer.Clear()
	if reportFailure(console.printer, res) {
		return nil
	}
	console.printer.Success("Flight %s departure time updated to %s. Arrival time updated to %s accordingly.",
		res.Data.FlightNumber, console.formatTime(res.Data.DepartureTime), console.formatTime(res.Data.ArrivalTime))
	return nil
}

func (console *Console) cancelFlight() error {
	flight, err := console.selectUpcomingFlight("cancel")
	if flight == nil || err != nil {
		return err
	}
	confirmed, err := console.prompter.Confirm(fmt.Sprintf("\nPlease confirm that you wish to cancel flight %s", flight.FlightNumber))
	if err != nil {
		return err
	}
	console.printer.Clear()
	if !confirmed {
		console.printer.Warning("Cancellation aborted.")
		return nil
	}
	res := console.flightService.CancelFlight(&RequestCancelFlight{FlightId: flight.ID})
	if reportFailure(console.printer, res) {
		return nil
	}
	console.printer.Success("Flight %s has been cancelled.", res.Data.FlightNumber)
	return nil
}

func (console *Console) assignPilot() error {
	flight, err := console.selectUpcomingFlight("assign a pilot to")
	if flight == nil || err != nil {
		return err
	}
	eligible := console.flightService.GetEligiblePilots(&RequestFlight{FlightId: flight.ID})
	if reportFailure(console.printer, eligible) {
		return nil
	}
	if len(eligible.Data.Items) == 0 {
		console.printer.Warning("No pilots are available for flight %s.", flight.FlightNumber)
		return nil
	}
	console.printer.Heading(fmt.Sprintf("Pilots available for flight %s", flight.FlightNumber))
	pilot, err := console.selectPilot(eligible.Data.Items)
	if err != nil {
		return err
	}

	req := &RequestAssignPilot{FlightId: flight.ID, PilotId: pilot.ID}
	res := console.flightService.AssignPilot(req)
	if res.Kind == ConfirmRequired {
		confirmed, err := console.prompter.Confirm("\n" + res.Message)
		if err != nil {
			return err
		}
		if !confirmed {
			console.printer.Clear()
			console.printer.Warning("Pilot assignment aborted.")
			return nil
		}
		req.Overwrite = true
		res = console.flightService.AssignPilot(req)
	}
	console.printer.Clear()
	if reportFailure(console.printer, res) {
		return nil
	}
	console.printer.Success("%s assigned to flight %s.", pilot.FullName(), res.Data.FlightNumber)
	return nil
}

func (console *Console) changeDestination() error {
	flight, err := console.selectUpcomingFlight("change the destination for")
	if flight == nil || err != nil {
		return err
	}
	candidates := console.flightService.GetArrivalCandidates(&RequestArrivalCandidates{DepartureAirportId: flight.DepartureAirportId})
	if reportFailure(console.printer, candidates) {
		return nil
	}
	console.printer.Heading("Choose Arrival Airport")
	arrival, err := console.selectAirport("\nPlease enter the Airport ID of the new arrival airport: ", candidates.Data.Items)
	if arrival == nil || err != nil {
		return err
	}
	res := console.flightService.ChangeDestination(&RequestChangeDestination{FlightId: flight.ID, ArrivalAirportId: arrival.ID})
	console.printer.Clear()
	if reportFailure(console.printer, res) {
		return nil
	}
	destination := ""
	if arrival.Destination != nil {
		destination = fmt.Sprintf(", %s, %s", arrival.Destination.City, arrival.Destination.Country)
	}
	console.printer.Success("Flight %s destination updated to %s%s.", res.Data.FlightNumber, airportLabel(arrival), destination)
	return nil
}

func (console *Console) refreshStatuses() error {
	res := console.flightService.ReconcileStatuses()
	if reportFailure(console.printer, res) {
		return nil
	}
	console.printer.Success("Flight statuses refreshed: %d departed, %d scheduled.", res.Data.Departed, res.Data.Scheduled)
	return nil
}

func (console *Console) showFlights(title string, req *RequestFlightList) {
	console.printer.Heading(title)
	res := console.flightService.GetFlights(req)
	if reportFailure(console.printer, res) {
		return
	}
	if len(res.Data.Items) == 0 {
		console.printer.Warning("No matching flights found.")
		return
	}
	console.renderFlights(res.Data.Items, res.Data.Now)
}

func (console *Console) viewFlights(view FlightView, title string) func() error {
	return func() error {
		console.showFlights(title, &RequestFlightList{View: view})
		return nil
	}
}

func (console *Console) viewFlightsByPilot() error {
	pilot, err := console.choosePilot()
	if pilot == nil || err != nil {
		return err
	}
	console.printer.Clear()
	console.showFlights(fmt.Sprintf("Flights assigned to %s", pilot.FullName()), &RequestFlightList{View: ViewByPilot, PilotId: pilot.ID})
	return nil
}

func (console *Console) viewFlightsToDestination() error {
	location, err := console.prompter.NonEmpty("Please enter a city or country to view any existing flights to that location: ")
	if err != nil {
		return err
	}
	console.printer.Clear()
	console.showFlights(fmt.Sprintf("Flights to %s", location), &RequestFlightList{View: ViewToDestination, Location: location})
	return nil
}

func (console *Console) viewFlightsOnDay() error {
	day, err := console.prompter.Date("Please enter the departure date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	console.printer.Clear()
	console.showFlights(fmt.Sprintf("Flights departing on %s", day.Format(dateLayout)), &RequestFlightList{View: ViewOnDay, Day: day})
	return nil
}
