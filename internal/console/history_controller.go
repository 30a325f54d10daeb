// Package console
package console

import (
	"github.com/half-nothing/simple-fms/internal/interfaces/operation"
	. "github.com/half-nothing/simple-fms/internal/interfaces/service"
	"github.com/half-nothing/simple-fms/internal/utils"
	"strconv"
	"strings"
)

func changeValues(log *operation.AuditLog) (string, string) {
	if log.ChangeDetails == nil {
		return "", ""
	}
	return log.ChangeDetails.OldValue, log.ChangeDetails.NewValue
}

// showChangeHistory 分页显示变更记录, n下一页, p上一页, q返回
func (console *Console) showChangeHistory() error {
	page := 1
	for {
		console.printer.Heading("Change History")
		res := console.auditService.GetAuditLogPage(&RequestGetAuditLog{Page: page, PageSize: console.config.Console.PageSize})
		if reportFailure(console.printer, res) {
			return nil
		}
		if res.Data.Total == 0 {
			console.printer.Warning("No changes recorded yet.")
			return nil
		}
		rows := utils.Map(res.Data.Items, func(log *operation.AuditLog) []string {
			oldValue, newValue := changeValues(log)
			return []string{
				console.formatTime(log.CreatedAt),
				log.EventType,
				strconv.FormatUint(uint64(log.Subject), 10),
				log.Object,
				oldValue,
				newValue,
			}
		})
		console.printer.Table([]string{"Time", "Event", "ID", "Object", "Old", "New"}, rows)
		totalPages := res.Data.TotalPages()
		console.printer.Printf("\nPage %d of %d (%d changes)\n", page, totalPages, res.Data.Total)

		input, err := console.prompter.Line("Enter n for next page, p for previous page, q to return: ")
		if err != nil {
			return err
		}
		console.printer.Clear()
		switch strings.ToLower(input) {
		case "n":
			if page < totalPages {
				page++
			} else {
				console.printer.Warning("Already on the last page.")
			}
		case "p":
			if page > 1 {
				page--
			} else {
				console.printer.Warning("Already on the first page.")
			}
		case "q", "":
			return nil
		default:
			console.printer.Warning("Invalid choice.")
		}
	}
}
