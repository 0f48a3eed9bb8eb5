package client

import (
	"github.com/dmitrijs2005/teachloop/internal/api"
	"github.com/dmitrijs2005/teachloop/internal/client/models"
)

func fromAPIPrincipal(p *api.Principal) *models.Principal {
	if p == nil {
		return nil
	}
	return &models.Principal{
		ID:            p.ID,
		DisplayName:   p.DisplayName,
		Email:         p.Email,
		EmailVerified: p.EmailVerified,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func fromAPIProfile(p *api.Profile) *models.Profile {
	if p == nil {
		return nil
	}
	return &models.Profile{
		PrincipalID: p.PrincipalID,
		DisplayName: p.DisplayName,
		Email:       p.Email,
		Bio:         p.Bio,
		TeachSkills: p.TeachSkills,
		LearnSkills: p.LearnSkills,
		Role:        p.Role,
		Avatar:      p.Avatar,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toAPIFields(f models.ProfileFields) *api.ProfileFields {
	return &api.ProfileFields{
		DisplayName: f.DisplayName,
		Email:       f.Email,
		Bio:         f.Bio,
		TeachSkills: f.TeachSkills,
		LearnSkills: f.LearnSkills,
		Role:        f.Role,
		Avatar:      f.Avatar,
	}
}

func toAPIPatch(p models.ProfilePatch) *api.ProfilePatch {
	return &api.ProfilePatch{
		DisplayName: p.DisplayName,
		Email:       p.Email,
		Bio:         p.Bio,
		TeachSkills: p.TeachSkills,
		LearnSkills: p.LearnSkills,
		Role:        p.Role,
		Avatar:      p.Avatar,
	}
}

func fromAPICourse(c *api.Course) *models.Course {
	if c == nil {
		return nil
	}
	return &models.Course{
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
		Tags:            c.Tags,
		EnrollmentCount: c.EnrollmentCount,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func fromAPICourses(list []*api.Course) []*models.Course {
	out := make([]*models.Course, 0, len(list))
	for _, c := range list {
		out = append(out, fromAPICourse(c))
	}
	return out
}

func fromAPIEnrollment(e *api.Enrollment) *models.Enrollment {
	if e == nil {
		return nil
	}
	return &models.Enrollment{
		ID:         e.ID,
		UserID:     e.UserID,
		CourseID:   e.CourseID,
		EnrolledAt: e.EnrolledAt,
		Progress:   e.Progress,
	}
}

func fromAPIEnrollments(list []*api.Enrollment) []*models.Enrollment {
	out := make([]*models.Enrollment, 0, len(list))
	for _, e := range list {
		out = append(out, fromAPIEnrollment(e))
	}
	return out
}
