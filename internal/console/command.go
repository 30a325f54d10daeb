// Package console
package console

// Command 菜单项对应的操作
type Command int

const (
	CmdBack Command = iota
	CmdExit

	CmdFlightMenu
	CmdPilotMenu
	CmdDestinationMenu
	CmdChangeHistory

	CmdUpdateFlightMenu
	CmdScheduleFlight
	CmdViewFlightsMenu
	CmdRefreshStatuses

	CmdChangeDeparture
	CmdCancelFlight
	CmdAssignPilot
	CmdChangeDestination

	CmdViewAllFlights
	CmdViewUpcomingFlights
	CmdViewFlightsByPilot
	CmdViewFlightsToDestination
	CmdViewCancelledFlights
	CmdViewFlightsByDuration
	CmdViewFlightsOnDay

	CmdViewPilotSchedule
	CmdViewAssignedFlights
	CmdListPilots
	CmdAddPilot
	CmdDeletePilot
	CmdUpdatePilot
	CmdCountPilotsFlownTo

	CmdAddDestination
	CmdListDestinations
	CmdDeleteDestination
	CmdAddAirport
	CmdListAirports
	CmdDeleteAirport
	CmdFlightsPerDestination
	CmdAirportsByCancellations
)

type menuEntry struct {
	command Command
	label   string
}

type Menu struct {
	title   string
	entries []menuEntry
}

var mainMenu = &Menu{
	title: "Main Menu",
	entries: []menuEntry{
		{CmdFlightMenu, "Flight Management"},
		{CmdPilotMenu, "Pilot Scheduling & Information"},
		{CmdDestinationMenu, "Destination Management"},
		{CmdChangeHistory, "Change History"},
		{CmdExit, "Exit"},
	},
}

var flightMenu = &Menu{
	title: "Flight Management Menu",
	entries: []menuEntry{
		{CmdUpdateFlightMenu, "Update a flight"},
		{CmdScheduleFlight, "Schedule a flight"},
		{CmdViewFlightsMenu, "View flights by criteria"},
		{CmdRefreshStatuses, "Refresh flight statuses"},
		{CmdBack, "Return to Previous Menu"},
	},
}

var updateFlightMenu = &Menu{
	title: "Update a Flight Menu",
	entries: []menuEntry{
		{CmdChangeDeparture, "Change the departure time of a flight"},
		{CmdCancelFlight, "Cancel a flight"},
		{CmdAssignPilot, "Assign a pilot to a flight"},
		{CmdChangeDestination, "Update flight destination"},
		{CmdBack, "Return to Previous Menu"},
	},
}

var viewFlightsMenu = &Menu{
	title: "View Flights by Criteria Menu",
	entries: []menuEntry{
		{CmdViewAllFlights, "View all flights"},
		{CmdViewUpcomingFlights, "View upcoming flights"},
		{CmdViewFlightsByPilot, "View flights assigned to a pilot"},
		{CmdViewFlightsToDestination, "View flights to a specific destination"},
		{CmdViewCancelledFlights, "View all cancelled flights"},
		{CmdViewFlightsByDuration, "Sort flights by duration"},
		{CmdViewFlightsOnDay, "View flights departing on a given day"},
		{CmdBack, "Return to Previous Menu"},
	},
}

var pilotMenu = &Menu{
	title: "Pilot Scheduling & Information Menu",
	entries: []menuEntry{
		{CmdAssignPilot, "Assign a pilot to a flight"},
		{CmdViewPilotSchedule, "View a pilot's schedule"},
		{CmdViewAssignedFlights, "View all flights with an assigned pilot"},
		{CmdListPilots, "View all pilots"},
		{CmdAddPilot, "Add a new pilot to the system"},
		{CmdDeletePilot, "Delete a pilot from the system"},
		{CmdUpdatePilot, "Update a pilot's details"},
		{CmdCountPilotsFlownTo, "View the number of pilots that have flown to a given destination"},
		{CmdBack, "Return to Previous Menu"},
	},
}

var destinationMenu = &Menu{
	title: "Destination Management Menu",
	entries: []menuEntry{
		{CmdAddDestination, "Add a destination to the system"},
		{CmdListDestinations, "View all destinations"},
		{CmdDeleteDestination, "Delete a destination from the system"},
		{CmdAddAirport, "Add an airport to an existing destination"},
		{CmdListAirports, "View all airports"},
		{CmdDeleteAirport, "Delete an airport from the system"},
		{CmdFlightsPerDestination, "View the number of flights to each destination"},
		{CmdAirportsByCancellations, "Sort airports by the number of cancelled departing flights"},
		{CmdBack, "Return to Previous Menu"},
	},
}
