// Package console
package console

import (
	"errors"
	"fmt"
	. "github.com/half-nothing/simple-fms/internal/interfaces"
	"github.com/half-nothing/simple-fms/internal/interfaces/config"
	"github.com/half-nothing/simple-fms/internal/interfaces/log"
	. "github.com/half-nothing/simple-fms/internal/interfaces/service"
	"github.com/half-nothing/simple-fms/internal/schedule"
	impl "github.com/half-nothing/simple-fms/internal/service"
	"io"
	"time"
)

type Console struct {
	logger             log.LoggerInterface
	config             *config.Config
	now                func() time.Time
	printer            *Printer
	prompter           *Prompter
	flightService      FlightServiceInterface
	pilotService       PilotServiceInterface
	destinationService DestinationServiceInterface
	auditService       AuditServiceInterface
	handlers           map[Command]func() error
}

func NewConsole(applicationContent *ApplicationContent, in io.Reader, out io.Writer, generator schedule.FlightNumberGenerator) *Console {
	cfg := applicationContent.Config()
	logger := applicationContent.Logger()
	operations := applicationContent.Operations()

	printer := NewPrinter(out, cfg.Console.Color, cfg.Console.ClearScreen)
	console := &Console{
		logger:             logger,
		config:             cfg,
		now:                applicationContent.Now,
		printer:            printer,
		prompter:           NewPrompter(in, printer, cfg.Console.Location),
		flightService:      impl.NewFlightService(logger, cfg.Schedule, operations, generator, applicationContent.Now),
		pilotService:       impl.NewPilotService(logger, cfg.Schedule, operations, applicationContent.Now),
		destinationService: impl.NewDestinationService(logger, operations),
		auditService:       impl.NewAuditService(logger, operations.AuditLogOperation()),
	}
	console.handlers = map[Command]func() error{
		CmdFlightMenu:      func() error { return console.runMenu(flightMenu) },
		CmdPilotMenu:       func() error { return console.runMenu(pilotMenu) },
		CmdDestinationMenu: func() error { return console.runMenu(destinationMenu) },
		CmdChangeHistory:   console.showChangeHistory,

		CmdUpdateFlightMenu: func() error { return console.runMenu(updateFlightMenu) },
		CmdScheduleFlight:   console.scheduleFlight,
		CmdViewFlightsMenu:  func() error { return console.runMenu(viewFlightsMenu) },
		CmdRefreshStatuses:  console.refreshStatuses,

		CmdChangeDeparture:   console.changeDeparture,
		CmdCancelFlight:      console.cancelFlight,
		CmdAssignPilot:       console.assignPilot,
		CmdChangeDestination: console.changeDestination,

		CmdViewAllFlights:           console.viewFlights(ViewAllFlights, "All flights"),
		CmdViewUpcomingFlights:      console.viewFlights(ViewUpcoming, "Upcoming flights"),
		CmdViewFlightsByPilot:       console.viewFlightsByPilot,
		CmdViewFlightsToDestination: console.viewFlightsToDestination,
		CmdViewCancelledFlights:     console.viewFlights(ViewCancelled, "Cancelled flights"),
		CmdViewFlightsByDuration:    console.viewFlights(ViewByDuration, "Flights - longest to shortest duration"),
		CmdViewFlightsOnDay:         console.viewFlightsOnDay,

		CmdViewPilotSchedule:   console.viewPilotSchedule,
		CmdViewAssignedFlights: console.viewAssignedFlights,
		CmdListPilots:          console.listPilots,
		CmdAddPilot:            console.addPilot,
		CmdDeletePilot:         console.deletePilot,
		CmdUpdatePilot:         console.updatePilot,
		CmdCountPilotsFlownTo:  console.countPilotsFlownTo,

		CmdAddDestination:          console.addDestination,
		CmdListDestinations:        console.listDestinations,
		CmdDeleteDestination:       console.deleteDestination,
		CmdAddAirport:              console.addAirport,
		CmdListAirports:            console.listAirports,
		CmdDeleteAirport:           console.deleteAirport,
		CmdFlightsPerDestination:   console.flightsPerDestination,
		CmdAirportsByCancellations: console.airportsByCancellations,
	}
	return console
}

// Run 运行主菜单直到操作员选择退出或输入流结束
func (console *Console) Run() error {
	console.printer.Clear()
	err := console.runMenu(mainMenu)
	console.printer.Println("Exiting...")
	if errors.Is(err, ErrInputClosed) {
		console.logger.Info("Console input closed")
		return nil
	}
	return err
}

func (console *Console) runMenu(menu *Menu) error {
	for {
		console.printer.Heading(menu.title)
		for i, entry := range menu.entries {
			console.printer.Printf("%d. %s\n", i+1, entry.label)
		}
		choice, err := console.prompter.Int("\nEnter the corresponding menu number to make a choice: ", 1, len(menu.entries))
		if err != nil {
			return err
		}
		command := menu.entries[choice-1].command
		console.printer.Clear()
		if command == CmdBack || command == CmdExit {
			return nil
		}
		handler, ok := console.handlers[command]
		if !ok {
			console.logger.ErrorF("No handler registered for command %d", command)
			console.printer.Failure("This option is not available.")
			continue
		}
		if err := handler(); err != nil {
			return err
		}
	}
}

func (console *Console) formatTime(t time.Time) string { return console.prompter.Format(t) }

func formatDuration(duration time.Duration) string {
	minutes := int(duration.Minutes())
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}
