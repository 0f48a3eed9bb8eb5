package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/teachloop/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func badgeIDs(list []Badge) []string {
	out := make([]string, 0, len(list))
	for _, b := range list {
		out = append(out, b.ID)
	}
	return out
}

func TestBadges_Thresholds(t *testing.T) {
	o := &Overview{}
	o.Badges = badges(o)
	assert.Empty(t, o.Earned())
	assert.Len(t, o.Available(), 4)

	o = &Overview{
		Teaching:    TeachingStats{Courses: 1, Students: 100},
		Learning:    LearningStats{Completed: 5},
		Connections: 50,
	}
	o.Badges = badges(o)
	assert.Equal(t, []string{BadgeFirstCourse, BadgeKnowledgeSeeker, BadgeCommunityBuilder, BadgeExpertTeacher}, badgeIDs(o.Earned()))
	assert.Empty(t, o.Available())

	o = &Overview{
		Teaching:    TeachingStats{Students: 99},
		Learning:    LearningStats{Completed: 4},
		Connections: 49,
	}
	o.Badges = badges(o)
	assert.Empty(t, o.Earned())
}

func TestProgressService_Overview(t *testing.T) {
	f := newFakeClient("me")
	f.addCourse(&models.Course{ID: "m1", Title: "Mine", InstructorID: "me", Status: models.CourseStatusPublished})
	f.addCourse(&models.Course{ID: "m2", Title: "Draft", InstructorID: "me", Status: models.CourseStatusDraft})
	f.addCourse(&models.Course{ID: "o1", Title: "Theirs", InstructorID: "t1", InstructorName: "Tess"})
	for i := 0; i < 3; i++ {
		f.addEnrollment(fmt.Sprintf("s%d", i), "m1", 100)
	}
	f.addEnrollment("s0", "m2", 20)
	f.addEnrollment("me", "o1", 100)

	sess := signedIn("me")
	courses := NewCourseService(f)
	s := NewProgressService(NewTeachingService(f, sess), courses, NewConnectionsService(f, sess))

	o, err := s.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, TeachingStats{Courses: 2, Published: 1, Students: 3, ActiveStudents: 1}, o.Teaching)
	assert.Equal(t, 1, o.Learning.Enrolled)
	assert.Equal(t, 1, o.Learning.Completed)
	assert.Equal(t, []CourseProgress{{CourseID: "o1", Title: "Theirs", Progress: 100}}, o.Learning.Courses)
	assert.Equal(t, 4, o.Connections)
	assert.Equal(t, []string{BadgeFirstCourse}, badgeIDs(o.Earned()))
}
