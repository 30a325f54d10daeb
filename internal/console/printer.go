// Package console
package console

import (
	"fmt"
	"github.com/fatih/color"
	. "github.com/half-nothing/simple-fms/internal/interfaces/service"
	"io"
	"strings"
	"text/tabwriter"
)

const clearSequence = "\033[H\033[2J"

// Printer 向操作员输出带颜色的提示与表格
type Printer struct {
	out     io.Writer
	clear   bool
	heading *color.Color
	success *color.Color
	warning *color.Color
	failure *color.Color
}

func NewPrinter(out io.Writer, colored bool, clear bool) *Printer {
	printer := &Printer{
		out:     out,
		clear:   clear,
		heading: color.New(color.FgCyan, color.Bold),
		success: color.New(color.FgGreen),
		warning: color.New(color.FgYellow),
		failure: color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{printer.heading, printer.success, printer.warning, printer.failure} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return printer
}

func (printer *Printer) Clear() {
	if printer.clear {
		_, _ = fmt.Fprint(printer.out, clearSequence)
	}
}

func (printer *Printer) Heading(title string) {
	_, _ = printer.heading.Fprintf(printer.out, "\n=== %s ===\n\n", title)
}

func (printer *Printer) Println(a ...interface{}) { _, _ = fmt.Fprintln(printer.out, a...) }

func (printer *Printer) Printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(printer.out, format, a...)
}

func (printer *Printer) Success(format string, a ...interface{}) {
	_, _ = printer.success.Fprintf(printer.out, format+"\n", a...)
}

func (printer *Printer) Warning(format string, a ...interface{}) {
	_, _ = printer.warning.Fprintf(printer.out, format+"\n", a...)
}

func (printer *Printer) Failure(format string, a ...interface{}) {
	_, _ = printer.failure.Fprintf(printer.out, format+"\n", a...)
}

// Table 以制表符对齐输出, 行内的制表符会被替换为空格
func (printer *Printer) Table(headers []string, rows [][]string) {
	writer := tabwriter.NewWriter(printer.out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(writer, strings.Join(headers, "\t"))
	separators := make([]string, len(headers))
	for i, header := range headers {
		separators[i] = strings.Repeat("-", len(header))
	}
	_, _ = fmt.Fprintln(writer, strings.Join(separators, "\t"))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = strings.ReplaceAll(cell, "\t", " ")
		}
		_, _ = fmt.Fprintln(writer, strings.Join(cells, "\t"))
	}
	_ = writer.Flush()
}

// reportFailure 输出失败结果并返回true, 成功时不输出
func reportFailure[T any](printer *Printer, result *Result[T]) bool {
	switch result.Kind {
	case Success:
		return false
	case InternalError:
		printer.Failure("%s", result.Message)
	default:
		printer.Warning("%s", result.Message)
	}
	return true
}
