// Package console
package console

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/half-nothing/simple-fms/internal/interfaces/global"
	"github.com/half-nothing/simple-fms/internal/utils"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"
)

var ErrInputClosed = errors.New("input closed")

const dateLayout = "2006-01-02"

// Prompter 读取操作员输入, 格式错误时重新提示, 输入流结束时返回 ErrInputClosed
type Prompter struct {
	scanner  *bufio.Scanner
	printer  *Printer
	location *time.Location
}

func NewPrompter(in io.Reader, printer *Printer, location *time.Location) *Prompter {
	if location == nil {
		location = time.Local
	}
	return &Prompter{
		scanner:  bufio.NewScanner(in),
		printer:  printer,
		location: location,
	}
}

func (prompter *Prompter) Line(prompt string) (string, error) {
	prompter.printer.Printf("%s", prompt)
	if !prompter.scanner.Scan() {
		prompter.printer.Println()
		if err := prompter.scanner.Err(); err != nil {
			return "", fmt.Errorf("%w: %w", ErrInputClosed, err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(prompter.scanner.Text()), nil
}

// NonEmpty 重复提示直到输入非空文本
func (prompter *Prompter) NonEmpty(prompt string) (string, error) {
	for {
		value, err := prompter.Line(prompt)
		if err != nil {
			return "", err
		}
		if value != "" {
			return value, nil
		}
		prompter.printer.Warning("Input must not be empty.")
	}
}

// Int 重复提示直到输入位于[minimum, maximum]的整数
func (prompter *Prompter) Int(prompt string, minimum, maximum int) (int, error) {
	for {
		value, err := prompter.Line(prompt)
		if err != nil {
			return 0, err
		}
		number, err := strconv.Atoi(value)
		if err != nil {
			prompter.printer.Warning("Your input: %s\nInvalid input. Please enter numbers only.", value)
			continue
		}
		if number < minimum || number > maximum {
			if maximum == math.MaxInt {
				prompter.printer.Warning("Your input: %d\nPlease enter a number of at least %d.", number, minimum)
			} else {
				prompter.printer.Warning("Your input: %d\nPlease enter a number between %d and %d.", number, minimum, maximum)
			}
			continue
		}
		return number, nil
	}
}

// Choose 重复提示直到输入的ID位于候选列表中
func (prompter *Prompter) Choose(prompt string, ids []uint) (uint, error) {
	for {
		value, err := prompter.Line(prompt)
		if err != nil {
			return 0, err
		}
		id, ok := utils.StrToUint(value)
		if !ok {
			prompter.printer.Warning("Your input: %s\nInvalid input. Please enter a valid ID.", value)
			continue
		}
		if !slices.Contains(ids, id) {
			prompter.printer.Warning("Your input: %d\nInvalid ID, please try again.", id)
			continue
		}
		return id, nil
	}
}

// DateTime 读取 YYYY-MM-DD HH:MM:SS 格式时间, after不为零值时要求输入晚于after
func (prompter *Prompter) DateTime(prompt string, after time.Time) (time.Time, error) {
	for {
		value, err := prompter.Line(prompt)
		if err != nil {
			return time.Time{}, err
		}
		t, err := time.ParseInLocation(global.DateTimeLayout, value, prompter.location)
		if err != nil {
			prompter.printer.Warning("Your input: %s\nInvalid time format. Please use the format 'YYYY-MM-DD HH:MM:SS'.", value)
			continue
		}
		if !after.IsZero() && !t.After(after) {
			prompter.printer.Warning("Your input: %s\nInvalid input. The provided time must be in the future.", value)
			continue
		}
		return t, nil
	}
}

func (prompter *Prompter) Date(prompt string) (time.Time, error) {
	for {
		value, err := prompter.Line(prompt)
		if err != nil {
			return time.Time{}, err
		}
		t, err := time.ParseInLocation(dateLayout, value, prompter.location)
		if err != nil {
			prompter.printer.Warning("Your input: %s\nInvalid date format. Please use the format 'YYYY-MM-DD'.", value)
			continue
		}
		return t, nil
	}
}

// Confirm 重复提示直到输入y或n
func (prompter *Prompter) Confirm(prompt string) (bool, error) {
	for {
		value, err := prompter.Line(prompt + " (y/n): ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(value) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		prompter.printer.Warning("Invalid choice, please enter 'y' or 'n'.")
	}
}

// Format 按操作员时区显示时间
func (prompter *Prompter) Format(t time.Time) string {
	return t.In(prompter.location).Format(global.DateTimeLayout)
}
