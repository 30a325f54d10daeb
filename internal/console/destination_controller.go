// Package console
package console

import (
	"fmt"
	"github.com/half-nothing/simple-fms/internal/interfaces/operation"
	. "github.com/half-nothing/simple-fms/internal/interfaces/service"
	"github.com/half-nothing/simple-fms/internal/utils"
	"strconv"
)

func (console *Console) renderDestinations(destinations []*operation.Destination) {
	rows := utils.Map(destinations, func(destination *operation.Destination) []string {
		return []string{strconv.FormatUint(uint64(destination.ID), 10), destination.City, destination.Country}
	})
	console.printer.Table([]string{"ID", "City", "Country"}, rows)
}

// chooseDestination 从全部目的地中选择一个, 没有目的地时返回nil
func (console *Console) chooseDestination() (*operation.Destination, error) {
	console.printer.Heading("Destinations")
	res := console.destinationService.GetDestinations()
	if reportFailure(console.printer, res) {
		return nil, nil
	}
	destinations := res.Data.Items
	if len(destinations) == 0 {
		console.printer.Warning("No destinations found. Add a destination first.")
		return nil, nil
	}
	console.renderDestinations(destinations)
	ids := utils.Map(destinations, func(destination *operation.Destination) uint { return destination.ID })
	id, err := console.prompter.Choose("\nPlease enter the Destination ID: ", ids)
	if err != nil {
		return nil, err
	}
	return utils.Find(destinations, func(destination *operation.Destination) bool { return destination.ID == id }), nil
}

func (console *Console) addDestination() error {
	console.printer.Heading("Add a destination")
	city, err := console.prompter.NonEmpty("City: ")
	if err != nil {
		return err
	}
	country, err := console.prompter.NonEmpty("Country: ")
	if err != nil {
		return err
	}
	res := console.destinationService.AddDestination(&RequestAddDestination{City: city, Country: country})
	console.printer.Clear()
	if reportFailure(console.printer, res) {
		return nil
	}
	destination := res.Data
	console.printer.Success("Destination %s, %s added.", destination.City, destination.Country)
	confirmed, err := console.prompter.Confirm(fmt.Sprintf("Would you like to add an airport in %s now?", destination.City))
	if err != nil || !confirmed {
		return err
	}
	return console.addAirportTo(destination)
}

func (console *Console) listDestinations() error {
	console.printer.Heading("Destinations")
	res := console.destinationService.GetDestinations()
	if reportFailure(console.printer, res) {
		return nil
	}
	if len(res.Data.Items) == 0 {
		console.printer.Warning("No destinations found.")
		return nil
	}
	console.renderDestinations(res.Data.Items)
	return nil
}

func (console *Console) deleteDestination() error {
	destination, err := console.chooseDestination()
	if destination == nil || err != nil {
		return err
	}
	confirmed, err := console.prompter.Confirm(fmt.Sprintf("\nDelete destination %s, %s?", destination.City, destination.Country))
	if err != nil {
		return err
	}
	console.printer.Clear()
	if !confirmed {
		console.printer.Warning("Deletion aborted.")
		return nil
	}
	res := console.destinationService.DeleteDestination(&RequestDestination{DestinationId: destination.ID})
	if reportFailure(console.printer, res) {
		return nil
	}
	console.printer.Success("Destination %s, %s deleted.", res.Data.City, res.Data.Country)
	return nil
}

func (console *Console) addAirport() error {
	destination, err := console.chooseDestination()
	if destination == nil || err != nil {
		return err
	}
	return console.addAirportTo(destination)
}

func (console *Console) addAirportTo(destination *operation.Destination) error {
	name, err := console.prompter.NonEmpty(fmt.Sprintf("\nName of the airport in %s: ", destination.City))
	if err != nil {
		return err
	}
	iataCode, err := console.prompter.NonEmpty("IATA code: ")
	if err != nil {
		return err
	}
	res := console.destinationService.AddAirport(&RequestAddAirport{DestinationId: destination.ID, Name: name, IataCode: iataCode})
	console.printer.Clear()
	if reportFailure(console.printer, res) {
		return nil
	}
	console.printer.Success("Airport %s added to %s, %s.", airportLabel(res.Data), destination.City, destination.Country)
	return nil
}

func (console *Console) listAirports() error {
	console.printer.Heading("Airports")
	res := console.destinationService.GetAirports(&RequestAirportList{})
	if reportFailure(console.printer, res) {
		return nil
	}
	if len(res.Data.Items) == 0 {
		console.printer.Warning("No airports found.")
		return nil
	}
	console.renderAirports(res.Data.Items)
	return nil
}

func (console *Console) deleteAirport() error {
	console.printer.Heading("Delete an airport")
	airports := console.destinationService.GetAirports(&RequestAirportList{})
	if reportFailure(console.printer, airports) {
		return nil
	}
	airport, err := console.selectAirport("\nPlease enter the Airport ID of the airport to delete: ", airports.Data.Items)
	if airport == nil || err != nil {
		return err
	}
	confirmed, err := console.prompter.Confirm(fmt.Sprintf("\nDelete airport %s?", airportLabel(airport)))
	if err != nil {
		return err
	}
	console.printer.Clear()
	if !confirmed {
		console.printer.Warning("Deletion aborted.")
		return nil
	}
	res := console.destinationService.DeleteAirport(&RequestAirport{AirportId: airport.ID})
	if reportFailure(console.printer, res) {
		return nil
	}
	console.printer.Success("Airport %s deleted.", airportLabel(res.Data))
	return nil
}

func (console *Console) flightsPerDestination() error {
	console.printer.Heading("Flights to each destination")
	res := console.destinationService.GetFlightCountPerDestination()
	if reportFailure(console.printer, res) {
		return nil
	}
	rows := utils.Map(res.Data.Items, func(count *operation.DestinationFlightCount) []string {
		return []string{count.City, count.Country, strconv.FormatInt(count.Flights, 10)}
	})
	console.printer.Table([]string{"City", "Country", "Flights"}, rows)
	return nil
}

func (console *Console) airportsByCancellations() error {
	console.printer.Heading("Airports by cancelled departing flights")
	res := console.destinationService.GetAirportsByCancelledDepartures()
	if reportFailure(console.printer, res) {
		return nil
	}
	if len(res.Data.Items) == 0 {
		console.printer.Warning("No cancelled flights found.")
		return nil
	}
	rows := utils.Map(res.Data.Items, func(count *operation.AirportFlightCount) []string {
		return []string{count.Name, count.IataCode, strconv.FormatInt(count.Flights, 10)}
	})
	console.printer.Table([]string{"Airport", "IATA", "Cancelled"}, rows)
	return nil
}
