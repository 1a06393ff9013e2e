package main

import (
	"flag"
	"fmt"
	"github.com/davejbax/go-datetimepicker"
	"github.com/davejbax/go-datetimepicker/internal/calendar"
	"github.com/itchio/headway/counter"
	"github.com/sirupsen/logrus"
	"io"
	"os"
	"strings"
	"time"
)

func main() {
	configPath := flag.String("config", "", "YAML file holding picker options")
	year := flag.Int("year", 0, "Year of the month to print (defaults to the selection or today)")
	month := flag.Int("month", 0, "Month to print, 1-12")
	layout := flag.String("format", "", "Display layout, e.g. \"dd/MM/yyyy hh:mm a\"")
	twelveHour := flag.Bool("12h", false, "Use 12-hour times")
	parse := flag.String("parse", "", "Text to parse as if typed into the picker")
	times := flag.Bool("times", false, "List the time options")
	snapshot := flag.String("snapshot", "", "Write a binary snapshot of the picker to this file")
	verbose := flag.Bool("verbose", false, "Log picker actions")

	flag.Parse()

	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	opts, err := loadOptions(*configPath)
	if err != nil {
		logger.Fatal(err)
	}

	opts.Logger = logger
	if *layout != "" {
		opts.Format = *layout
	}
	if *twelveHour {
		opts.TimeFormat = datetimepicker.TwelveHour
	}

	picker, err := datetimepicker.New(opts)
	if err != nil {
		logger.Fatal(err)
	}

	if *parse != "" {
		v, ok := datetimepicker.ParseDateTime(*parse)
		if !ok || picker.IsDateDisabled(v.Date) {
			logger.Fatalf("could not parse %q as a selectable date", *parse)
		}
		fmt.Println(picker.Dispatch(datetimepicker.TypeText{Text: *parse}).Display)
	}

	if *year != 0 || *month != 0 {
		state := picker.State()
		target := state.Year
		if *year != 0 {
			target = *year
		}
		targetMonth := state.Month
		if *month != 0 {
			targetMonth = time.Month(*month)
		}

		delta := (target-state.Year)*12 + int(targetMonth-state.Month)
		picker.Dispatch(datetimepicker.NavigateMonth{Delta: delta})
	}

	out := counter.NewWriter(os.Stdout)
	printGrid(out, picker)
	logger.WithField("bytes", out.Count()).Debug("printed month grid")

	if *times {
		for _, option := range picker.TimeOptions() {
			marker := " "
			if option.Value == picker.SelectedTime() {
				marker = "*"
			}
			fmt.Printf("%s %s\n", marker, option.Display)
		}
	}

	if len(*snapshot) != 0 {
		if err := writeSnapshot(picker, *snapshot); err != nil {
			logger.Fatal(err)
		}
	}
}

func loadOptions(path string) (datetimepicker.Options, error) {
	if len(path) == 0 {
		return datetimepicker.DefaultOptions(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return datetimepicker.Options{}, fmt.Errorf("could not open config: %w", err)
	}
	defer f.Close()

	config, err := datetimepicker.LoadConfig(f)
	if err != nil {
		return datetimepicker.Options{}, err
	}

	return config.Options()
}

// printGrid renders the visible month as a table. Today is marked with *, the selection with [] and disabled days
// with -. Days of adjacent months are left blank.
func printGrid(w io.Writer, picker *datetimepicker.Picker) {
	fmt.Fprintln(w, picker.Title())
	fmt.Fprintln(w, strings.Join(calendar.WeekdayHeaders[:], "  "))

	for week := range calendar.Weeks(picker.Grid()) {
		var line strings.Builder
		for i, cell := range week {
			if i > 0 {
				line.WriteString(" ")
			}
			line.WriteString(renderCell(cell))
		}
		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}
}

func renderCell(cell datetimepicker.Cell) string {
	if !cell.IsCurrentMonth {
		return "    "
	}

	switch {
	case cell.Selected:
		return fmt.Sprintf("[%2d]", cell.DayOfMonth)
	case cell.Disabled:
		return fmt.Sprintf(" %2d-", cell.DayOfMonth)
	case cell.Today:
		return fmt.Sprintf(" %2d*", cell.DayOfMonth)
	default:
		return fmt.Sprintf(" %2d ", cell.DayOfMonth)
	}
}

func writeSnapshot(picker *datetimepicker.Picker, path string) error {
	outputFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("could not create snapshot file: %w", err)
	}
	defer outputFile.Close()

	n, err := picker.WriteTo(outputFile)
	if err != nil {
		return err
	}

	fmt.Printf("successfully wrote %d byte snapshot to %s\n", n, path)
	return nil
}
