package cli

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/teachloop/internal/client/models"
	"github.com/dmitrijs2005/teachloop/internal/client/services"
)

var levels = []string{"Beginner", "Intermediate", "Advanced"}

// parseCourseArgs reads "courses [search...] [--category NAME]". The
// category takes every word after the flag so names with spaces work.
func parseCourseArgs(args []string) (services.Filter, error) {
	var f services.Filter

	i := slices.Index(args, "--category")
	if i < 0 {
		f.Search = strings.Join(args, " ")
		return f, nil
	}

	f.Search = strings.Join(args[:i], " ")
	name := strings.Join(args[i+1:], " ")
	if name == "" {
		return f, fmt.Errorf("--category needs a value (one of %s)", strings.Join(services.Categories, ", "))
	}

	cat, ok := pick(services.Categories, name)
	if !ok {
		return f, fmt.Errorf("unknown category %q (one of %s)", name, strings.Join(services.Categories, ", "))
	}
	f.Category = cat
	return f, nil
}

// pick finds v in options ignoring case.
func pick(options []string, v string) (string, bool) {
	for _, o := range options {
		if strings.EqualFold(o, v) {
			return o, true
		}
	}
	return "", false
}

func (a *App) Courses(ctx context.Context, args []string) error {
	f, err := parseCourseArgs(args)
	if err != nil {
		return err
	}

	list, err := a.courses.Browse(ctx, f)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No courses found. Try adjusting your search terms or filters.")
		return nil
	}

	printCourses(a.out, list)
	return nil
}

func (a *App) Enroll(ctx context.Context, courseID string) error {
	e, err := a.courses.Enroll(ctx, courseID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Enrolled in %s (enrollment %s).\n", e.CourseID, e.ID)
	return nil
}

func (a *App) Learning(ctx context.Context) error {
	items, err := a.courses.Learning(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "You are not enrolled in any course yet. Use 'courses' to find one.")
		return nil
	}

	tw := newTable(a.out, "COURSE", "PROGRESS", "ENROLLED")
	for _, it := range items {
		title := it.Enrollment.CourseID + " (removed)"
		if it.Course != nil {
			title = it.Course.Title
		}
		row(tw, title, progressBar(it.Enrollment.Progress), ago(it.Enrollment.EnrolledAt))
	}
	tw.Render()
	return nil
}

// Track records progress on an enrolled course; percent may end in "%".
func (a *App) Track(ctx context.Context, courseID, percent string) error {
	v, err := strconv.Atoi(strings.TrimSuffix(percent, "%"))
	if err != nil {
		return fmt.Errorf("invalid percent %q", percent)
	}

	e, err := a.courses.TrackProgress(ctx, courseID, int32(v))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s %s\n", progressBar(e.Progress), courseID)
	if e.Completed() {
		fmt.Fprintln(a.out, "Course completed!")
	}
	return nil
}

func (a *App) Teach(ctx context.Context) error {
	list, err := a.teaching.MyCourses(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "You are not teaching any course yet. Use 'newcourse' to create one.")
		return nil
	}

	tw := newTable(a.out, "ID", "TITLE", "STATUS", "STUDENTS", "CREATED")
	for _, c := range list {
		row(tw, c.ID, c.Title, c.Status, c.EnrollmentCount, ago(c.CreatedAt))
	}
	tw.Render()
	return nil
}

// NewCourse prompts for the course fields. Category and level must be one of
// the offered values; price and tags are optional.
func (a *App) NewCourse(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	if title == "" {
		return fmt.Errorf("title: %w", errEmptyInput)
	}

	description, err := getMultiline(a.reader, "Description", a.out)
	if err != nil {
		return err
	}

	categories := services.Categories[1:]
	answer, err := getSimpleText(a.reader, "Category ("+strings.Join(categories, ", ")+")", a.out)
	if err != nil {
		return err
	}
	category, ok := pick(categories, answer)
	if !ok {
		return fmt.Errorf("unknown category %q", answer)
	}

	answer, err = getSimpleText(a.reader, "Level ("+strings.Join(levels, ", ")+")", a.out)
	if err != nil {
		return err
	}
	level, ok := pick(levels, answer)
	if !ok {
		return fmt.Errorf("unknown level %q", answer)
	}

	answer, err = getSimpleText(a.reader, "Price (empty for free)", a.out)
	if err != nil {
		return err
	}
	var p *float64
	if answer != "" {
		v, err := strconv.ParseFloat(strings.TrimPrefix(answer, "$"), 64)
		if err != nil || v < 0 {
			return fmt.Errorf("invalid price %q", answer)
		}
		p = &v
	}

	answer, err = getSimpleText(a.reader, "Tags, comma separated", a.out)
	if err != nil {
		return err
	}
	tags := parseList(answer)

	answer, err = getSimpleText(a.reader, "Publish now? (y/N)", a.out)
	if err != nil {
		return err
	}
	status := models.CourseStatusDraft
	if strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes") {
		status = models.CourseStatusPublished
	}

	c, err := a.teaching.CreateCourse(ctx, models.NewCourse{
		Title:       title,
		Description: description,
		Category:    category,
		Level:       level,
		Price:       p,
		Status:      status,
		Tags:        tags,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created course %s (%s).\n", c.ID, c.Status)
	return nil
}
