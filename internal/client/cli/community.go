package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) Connections(ctx context.Context) error {
	students, err := a.connections.Students(ctx)
	if err != nil {
		return err
	}
	teachers, err := a.connections.Teachers(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Students (%d)\n", len(students))
	if len(students) > 0 {
		tw := newTable(a.out, "NAME", "COURSE", "PROGRESS", "STATUS", "ENROLLED")
		for _, s := range students {
			row(tw, s.Name, s.CourseTitle, progressBar(s.Progress), s.Status, ago(s.EnrolledAt))
		}
		tw.Render()
	}

	fmt.Fprintf(a.out, "\nTeachers (%d)\n", len(teachers))
	if len(teachers) > 0 {
		tw := newTable(a.out, "NAME", "COURSES")
		for _, t := range teachers {
			row(tw, orDash(t.Name), strings.Join(t.Courses, ", "))
		}
		tw.Render()
	}
	return nil
}

func (a *App) Progress(ctx context.Context) error {
	o, err := a.progress.Overview(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Teaching")
	fmt.Fprintf(a.out, "  courses: %d (%d published)\n", o.Teaching.Courses, o.Teaching.Published)
	fmt.Fprintf(a.out, "  students: %d (%d active)\n", o.Teaching.Students, o.Teaching.ActiveStudents)

	fmt.Fprintln(a.out, "Learning")
	fmt.Fprintf(a.out, "  enrolled: %d, completed: %d\n", o.Learning.Enrolled, o.Learning.Completed)
	for _, c := range o.Learning.Courses {
		title := c.Title
		if title == "" {
			title = c.CourseID
		}
		fmt.Fprintf(a.out, "  %s %s\n", progressBar(c.Progress), title)
	}

	fmt.Fprintf(a.out, "Connections: %d\n", o.Connections)

	fmt.Fprintln(a.out, "Badges earned")
	for _, b := range o.Earned() {
		fmt.Fprintf(a.out, "  [x] %s: %s\n", b.Name, b.Description)
	}
	fmt.Fprintln(a.out, "Badges available")
	for _, b := range o.Available() {
		fmt.Fprintf(a.out, "  [ ] %s: %s\n", b.Name, b.Description)
	}
	return nil
}
