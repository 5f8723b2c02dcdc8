package calendar

import "time"

// Cell is one slot in a month grid. Day is 0 for padding cells that
// fall outside the month. Today and Highlighted are render-time marks;
// they are not mutually exclusive and both may apply to one cell.
type Cell struct {
	Day         int  `json:"day"`
	Today       bool `json:"today,omitempty"`
	Highlighted bool `json:"highlighted,omitempty"`
	Weekend     bool `json:"weekend,omitempty"`
}

// Week is a Monday-first row of seven cells.
type Week [7]Cell

// MonthGrid is the derived weekly layout of a single month. It always
// consists of whole weeks, padded at the start and/or end.
type MonthGrid struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Weeks []Week `json:"weeks"`
}

// RenderMonth computes the grid for an already-validated (year, month)
// pair. It is a pure function: identical inputs always produce a
// structurally identical grid.
func RenderMonth(year, month int) MonthGrid {
	return RenderMonthWith(year, month, nil, nil)
}

// RenderMonthWith renders the same grid and additionally marks the
// cells matching today and highlighted. The engine holds no highlight
// state between calls; the caller owns both dates and re-supplies them
// on every render.
func RenderMonthWith(year, month int, today, highlighted *Date) MonthGrid {
	grid := MonthGrid{Year: year, Month: month}

	first := Date{Year: year, Month: month, Day: 1}
	col := mondayIndex(first.Weekday())
	days := DaysInMonth(year, month)

	var week Week
	for day := 1; day <= days; day++ {
		date := Date{Year: year, Month: month, Day: day}
		cell := Cell{Day: day, Weekend: col >= 5}
		if today != nil && *today == date {
			cell.Today = true
		}
		if highlighted != nil && *highlighted == date {
			cell.Highlighted = true
		}
		week[col] = cell
		col++
		if col == 7 {
			grid.Weeks = append(grid.Weeks, week)
			week = Week{}
			col = 0
		}
	}
	if col != 0 {
		grid.Weeks = append(grid.Weeks, week)
	}
	return grid
}

// mondayIndex maps time.Weekday (Sunday=0) onto the Monday-first
// column 0..6.
func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
