package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/teachloop/internal/client/models"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

const progressWidth = 20

func progressBar(p int32) string {
	p = max(0, min(100, p))
	filled := int(p) * progressWidth / 100
	return fmt.Sprintf("[%s%s] %3d%%", strings.Repeat("#", filled), strings.Repeat(".", progressWidth-filled), p)
}

func price(p *float64) string {
	if p == nil || *p == 0 {
		return "Free"
	}
	return "$" + humanize.CommafWithDigits(*p, 2)
}

func ago(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.Time(t)
}

// newTable returns a borderless, left-aligned table in the style of
// "kubectl get" listings.
func newTable(w io.Writer, header ...string) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	t.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	t.SetCenterSeparator("")
	t.SetColumnSeparator("")
	t.SetRowSeparator("")
	t.SetHeaderLine(false)
	t.SetBorder(false)
	t.SetTablePadding("  ")
	t.SetNoWhiteSpace(true)
	return t
}

func row(t *tablewriter.Table, cols ...any) {
	cells := make([]string, len(cols))
	for i, c := range cols {
		cells[i] = fmt.Sprint(c)
	}
	t.Append(cells)
}

func printCourses(w io.Writer, list []*models.Course) {
	tw := newTable(w, "ID", "TITLE", "CATEGORY", "LEVEL", "INSTRUCTOR", "PRICE", "STUDENTS")
	for _, c := range list {
		row(tw, c.ID, c.Title, c.Category, c.Level, orDash(c.InstructorName), price(c.Price), humanize.Comma(c.EnrollmentCount))
	}
	tw.Render()
}
