package grpc

import (
	"github.com/dmitrijs2005/teachloop/internal/api"
	"github.com/dmitrijs2005/teachloop/internal/server/models"
	"github.com/dmitrijs2005/teachloop/internal/server/services"
)

func toAPIPrincipal(u *models.User) *api.Principal {
	return &api.Principal{
		ID:            u.ID,
		DisplayName:   u.DisplayName,
		Email:         u.Email,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func toAPIProfile(p *models.Profile) *api.Profile {
	return &api.Profile{
		PrincipalID: p.UserID,
		DisplayName: p.DisplayName,
		Email:       p.Email,
		Bio:         p.Bio,
		TeachSkills: nonNil(p.TeachSkills),
		LearnSkills: nonNil(p.LearnSkills),
		Role:        p.Role,
		Avatar:      p.Avatar,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toAPICourse(c *models.Course) *api.Course {
	return &api.Course{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		InstructorID:    c.InstructorID,
		InstructorName:  c.InstructorName,
		Category:        c.Category,
		Level:           c.Level,
		Price:           c.Price,
		Thumbnail:       c.Thumbnail,
		Status:          c.Status,
		Tags:            nonNil(c.Tags),
		EnrollmentCount: c.EnrollmentCount,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func toAPICourses(list []*models.Course) []*api.Course {
	out := make([]*api.Course, 0, len(list))
	for _, c := range list {
		out = append(out, toAPICourse(c))
	}
	return out
}

func toAPIEnrollment(e *models.Enrollment) *api.Enrollment {
	return &api.Enrollment{
		ID:         e.ID,
		UserID:     e.UserID,
		CourseID:   e.CourseID,
		EnrolledAt: e.EnrolledAt,
		Progress:   e.Progress,
	}
}

func toAPIEnrollments(list []*models.Enrollment) []*api.Enrollment {
	out := make([]*api.Enrollment, 0, len(list))
	for _, e := range list {
		out = append(out, toAPIEnrollment(e))
	}
	return out
}

func fromAPIFields(f *api.ProfileFields) services.ProfileFields {
	return services.ProfileFields{
		DisplayName: f.DisplayName,
		Email:       f.Email,
		Bio:         f.Bio,
		TeachSkills: f.TeachSkills,
		LearnSkills: f.LearnSkills,
		Role:        f.Role,
		Avatar:      f.Avatar,
	}
}

func fromAPIPatch(p *api.ProfilePatch) services.ProfilePatch {
	if p == nil {
		return services.ProfilePatch{}
	}
	return services.ProfilePatch{
		DisplayName: p.DisplayName,
		Email:       p.Email,
		Bio:         p.Bio,
		TeachSkills: p.TeachSkills,
		LearnSkills: p.LearnSkills,
		Role:        p.Role,
		Avatar:      p.Avatar,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
