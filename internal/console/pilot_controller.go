// Package console
package console

import (
	"fmt"
	"github.com/half-nothing/simple-fms/internal/interfaces/operation"
	. "github.com/half-nothing/simple-fms/internal/interfaces/service"
	"github.com/half-nothing/simple-fms/internal/utils"
	"strconv"
)

func (console *Console) renderPilots(pilots []*operation.Pilot) {
	rows := utils.Map(pilots, func(pilot *operation.Pilot) []string {
		return []string{strconv.FormatUint(uint64(pilot.ID), 10), pilot.FirstName, pilot.LastName, pilot.LicenseNumber}
	})
	console.printer.Table([]string{"ID", "First Name", "Last Name", "License"}, rows)
}

func (console *Console) selectPilot(pilots []*operation.Pilot) (*operation.Pilot, error) {
	console.renderPilots(pilots)
	ids := utils.Map(pilots, func(pilot *operation.Pilot) uint { return pilot.ID })
	id, err := console.prompter.Choose("\nPlease enter the Pilot ID: ", ids)
	if err != nil {
		return nil, err
	}
	return utils.Find(pilots, func(pilot *operation.Pilot) bool { return pilot.ID == id }), nil
}

// choosePilot 从全部飞行员中选择一个, 没有飞行员时返回nil
func (console *Console) choosePilot() (*operation.Pilot, error) {
	console.printer.Heading("Pilots")
	res := console.pilotService.GetPilots()
	if reportFailure(console.printer, res) {
		return nil, nil
	}
	if len(res.Data.Items) == 0 {
		console.printer.Warning("No pilots found. Add a pilot first.")
		return nil, nil
	}
	return console.selectPilot(res.Data.Items)
}

func (console *Console) viewPilotSchedule() error {
	pilot, err := console.choosePilot()
	if pilot == nil || err != nil {
		return err
	}
	console.printer.Clear()
	console.printer.Heading(fmt.Sprintf("Schedule for %s", pilot.FullName()))
	res := console.pilotService.GetPilotSchedule(&RequestPilot{PilotId: pilot.ID})
	if reportFailure(console.printer, res) {
		return nil
	}
	if len(res.Data.Items) == 0 {
		console.printer.Warning("%s has no upcoming flights.", pilot.FullName())
		return nil
	}
	console.renderFlights(res.Data.Items, res.Data.Now)
	return nil
}

func (console *Console) viewAssignedFlights() error {
	console.printer.Heading("Flights with an assigned pilot")
	res := console.pilotService.GetAssignedFlights()
	if reportFailure(console.printer, res) {
		return nil
	}
	if len(res.Data.Items) == 0 {
		console.printer.Warning("No matching flights found.")
		return nil
	}
	console.renderFlights(res.Data.Items, res.Data.Now)
	return nil
}

func (console *Console) listPilots() error {
	console.printer.Heading("Pilots")
	res := console.pilotService.GetPilots()
	if reportFailure(console.printer, res) {
		return nil
	}
	if len(res.Data.Items) == 0 {
		console.printer.Warning("No pilots found.")
		return nil
	}
	console.renderPilots(res.Data.Items)
	return nil
}

func (console *Console) addPilot() error {
	console.printer.Heading("Add a new pilot")
	firstName, err := console.prompter.NonEmpty("First name: ")
	if err != nil {
		return err
	}
	lastName, err := console.prompter.NonEmpty("Last name: ")
	if err != nil {
		return err
	}
	license, err := console.prompter.NonEmpty("License number: ")
	if err != nil {
		return err
	}
	res := console.pilotService.AddPilot(&RequestAddPilot{FirstName: firstName, LastName: lastName, LicenseNumber: license})
	console.printer.Clear()
	if reportFailure(console.printer, res) {
		return nil
	}
	console.printer.Success("Pilot %s (%s) added with ID %d.", res.Data.FullName(), res.Data.LicenseNumber, res.Data.ID)
	return nil
}

func (console *Console) deletePilot() error {
	pilot, err := console.choosePilot()
	if pilot == nil || err != nil {
		return err
	}
	confirmed, err := console.prompter.Confirm(fmt.Sprintf("\nDelete pilot %s? Their flights will be left without a pilot", pilot.FullName()))
	if err != nil {
		return err
	}
	console.printer.Clear()
	if !confirmed {
		console.printer.Warning("Deletion aborted.")
		return nil
	}
	res := console.pilotService.DeletePilot(&RequestPilot{PilotId: pilot.ID})
	if reportFailure(console.printer, res) {
		return nil
	}
	console.printer.Success("Pilot %s deleted. %d flight(s) no longer have a pilot assigned.",
		res.Data.Pilot.FullName(), res.Data.ReleasedFlights)
	return nil
}

func (console *Console) updatePilot() error {
	pilot, err := console.choosePilot()
	if pilot == nil || err != nil {
		return err
	}
	console.printer.Println("\n1. Name\n2. License number")
	choice, err := console.prompter.Int("Which detail would you like to update? ", 1, 2)
	if err != nil {
		return err
	}
	var res *Result[operation.Pilot]
	if choice == 1 {
		firstName, err := console.prompter.NonEmpty("New first name: ")
		if err != nil {
			return err
		}
		lastName, err := console.prompter.NonEmpty("New last name: ")
		if err != nil {
			return err
		}
		res = console.pilotService.UpdatePilotName(&RequestUpdatePilotName{PilotId: pilot.ID, FirstName: firstName, LastName: lastName})
	} else {
		license, err := console.prompter.NonEmpty("New license number: ")
		if err != nil {
			return err
		}
		res = console.pilotService.UpdatePilotLicense(&RequestUpdatePilotLicense{PilotId: pilot.ID, LicenseNumber: license})
	}
	console.printer.Clear()
	if reportFailure(console.printer, res) {
		return nil
	}
	console.printer.Success("Pilot details updated: %s (%s).", res.Data.FullName(), res.Data.LicenseNumber)
	return nil
}

func (console *Console) countPilotsFlownTo() error {
	location, err := console.prompter.NonEmpty("Please enter a city or country: ")
	if err != nil {
		return err
	}
	res := console.pilotService.CountPilotsFlownTo(&RequestPilotsFlownTo{Location: location})
	console.printer.Clear()
	if reportFailure(console.printer, res) {
		return nil
	}
	console.printer.Success("%d pilot(s) have flown to %s.", res.Data.Total, res.Data.Location)
	return nil
}
