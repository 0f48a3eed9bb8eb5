package services

import (
	"context"

	"github.com/dmitrijs2005/teachloop/internal/client/models"
)

const (
	BadgeFirstCourse      = "first-course"
	BadgeKnowledgeSeeker  = "knowledge-seeker"
	BadgeCommunityBuilder = "community-builder"
	BadgeExpertTeacher    = "expert-teacher"
)

const (
	knowledgeSeekerCompleted    = 5
	communityBuilderConnections = 50
	expertTeacherStudents       = 100
)

type Badge struct {
	ID          string
	Name        string
	Description string
	Earned      bool
}

type TeachingStats struct {
	Courses        int
	Published      int
	Students       int
	ActiveStudents int
}

type CourseProgress struct {
	CourseID string
	Title    string
	Progress int32
}

type LearningStats struct {
	Enrolled  int
	Completed int
	Courses   []CourseProgress
}

type Overview struct {
	Teaching    TeachingStats
	Learning    LearningStats
	Connections int
	Badges      []Badge
}

func (o *Overview) Earned() []Badge    { return o.filterBadges(true) }
func (o *Overview) Available() []Badge { return o.filterBadges(false) }

func (o *Overview) filterBadges(earned bool) []Badge {
	var out []Badge
	for _, b := range o.Badges {
		if b.Earned == earned {
			out = append(out, b)
		}
	}
	return out
}

// badges evaluates every badge rule against o.
func badges(o *Overview) []Badge {
	return []Badge{
		{
			ID:          BadgeFirstCourse,
			Name:        "First Course Created",
			Description: "Created your first teaching course",
			Earned:      o.Teaching.Courses >= 1,
		},
		{
			ID:          BadgeKnowledgeSeeker,
			Name:        "Knowledge Seeker",
			Description: "Completed 5 courses as a student",
			Earned:      o.Learning.Completed >= knowledgeSeekerCompleted,
		},
		{
			ID:          BadgeCommunityBuilder,
			Name:        "Community Builder",
			Description: "Connected with 50+ people",
			Earned:      o.Connections >= communityBuilderConnections,
		},
		{
			ID:          BadgeExpertTeacher,
			Name:        "Expert Teacher",
			Description: "Taught 100+ students",
			Earned:      o.Teaching.Students >= expertTeacherStudents,
		},
	}
}

type ProgressService interface {
	Overview(ctx context.Context) (*Overview, error)
}

type progressService struct {
	teaching    TeachingService
	courses     CourseService
	connections ConnectionsService
}

func NewProgressService(teaching TeachingService, courses CourseService, connections ConnectionsService) ProgressService {
	return &progressService{teaching: teaching, courses: courses, connections: connections}
}

func (s *progressService) Overview(ctx context.Context) (*Overview, error) {
	mine, err := s.teaching.MyCourses(ctx)
	if err != nil {
		return nil, err
	}
	students, err := s.connections.Students(ctx)
	if err != nil {
		return nil, err
	}
	teachers, err := s.connections.Teachers(ctx)
	if err != nil {
		return nil, err
	}
	learning, err := s.courses.Learning(ctx)
	if err != nil {
		return nil, err
	}

	o := &Overview{}

	o.Teaching.Courses = len(mine)
	for _, c := range mine {
		if c.Status == models.CourseStatusPublished {
			o.Teaching.Published++
		}
	}
	o.Teaching.Students = distinctStudents(students)
	active := map[string]struct{}{}
	for _, st := range students {
		if st.Status == StudentActive {
			active[st.UserID] = struct{}{}
		}
	}
	o.Teaching.ActiveStudents = len(active)

	o.Learning.Enrolled = len(learning)
	for _, it := range learning {
		if it.Enrollment.Completed() {
			o.Learning.Completed++
		}
		cp := CourseProgress{CourseID: it.Enrollment.CourseID, Progress: it.Enrollment.Progress}
		if it.Course != nil {
			cp.Title = it.Course.Title
		}
		o.Learning.Courses = append(o.Learning.Courses, cp)
	}

	o.Connections = o.Teaching.Students + len(teachers)
	o.Badges = badges(o)
	return o, nil
}
