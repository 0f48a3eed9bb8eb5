package api

import "time"

// Principal is the identity record owned by the account service.
type Principal struct {
	ID            string    `json:"id"`
	DisplayName   string    `json:"displayName"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Profile is the application-level record keyed by principal id.
type Profile struct {
	PrincipalID string    `json:"principalId"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
	Bio         *string   `json:"bio,omitempty"`
	TeachSkills []string  `json:"teachSkills"`
	LearnSkills []string  `json:"learnSkills"`
	Role        string    `json:"role"`
	Avatar      *string   `json:"avatar,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProfileFields are the values a profile is created with.
type ProfileFields struct {
	DisplayName string   `json:"displayName"`
	Email       string   `json:"email"`
	Bio         *string  `json:"bio,omitempty"`
	TeachSkills []string `json:"teachSkills"`
	LearnSkills []string `json:"learnSkills"`
	Role        string   `json:"role"`
	Avatar      *string  `json:"avatar,omitempty"`
}

// ProfilePatch carries a partial update: nil fields are left untouched.
type ProfilePatch struct {
	DisplayName *string   `json:"displayName,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Bio         *string   `json:"bio,omitempty"`
	TeachSkills *[]string `json:"teachSkills,omitempty"`
	LearnSkills *[]string `json:"learnSkills,omitempty"`
	Role        *string   `json:"role,omitempty"`
	Avatar      *string   `json:"avatar,omitempty"`
}

type Course struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	InstructorID    string    `json:"instructorId"`
	InstructorName  string    `json:"instructorName"`
	Category        string    `json:"category"`
	Level           string    `json:"level"`
	Price           *float64  `json:"price,omitempty"`
	Thumbnail       *string   `json:"thumbnail,omitempty"`
	Status          string    `json:"status"`
	Tags            []string  `json:"tags"`
	EnrollmentCount int64     `json:"enrollmentCount"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type Enrollment struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	CourseID   string    `json:"courseId"`
	EnrolledAt time.Time `json:"enrolledAt"`
	Progress   int32     `json:"progress"`
}

type PingResponse struct {
	Status string `json:"status"`
}

type CreateAccountRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

type PrincipalResponse struct {
	Principal *Principal `json:"principal"`
}

type StartSessionRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SessionResponse struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

type RefreshSessionRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type CreateProfileRequest struct {
	PrincipalID string         `json:"principalId"`
	Fields      *ProfileFields `json:"fields"`
}

type GetProfileRequest struct {
	PrincipalID string `json:"principalId"`
}

type UpdateProfileRequest struct {
	PrincipalID string        `json:"principalId"`
	Patch       *ProfilePatch `json:"patch"`
}

type ProfileResponse struct {
	Profile *Profile `json:"profile"`
}

type CreateCourseRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Level       string   `json:"level"`
	Price       *float64 `json:"price,omitempty"`
	Thumbnail   *string  `json:"thumbnail,omitempty"`
	Status      string   `json:"status"`
	Tags        []string `json:"tags"`
}

type ListCoursesRequest struct {
	Limit  int32 `json:"limit"`
	Offset int32 `json:"offset"`
}

type GetCourseRequest struct {
	CourseID string `json:"courseId"`
}

type ListInstructorCoursesRequest struct {
	InstructorID string `json:"instructorId"`
}

type CourseResponse struct {
	Course *Course `json:"course"`
}

type CoursesResponse struct {
	Courses []*Course `json:"courses"`
	Total   int64     `json:"total"`
}

type EnrollRequest struct {
	CourseID string `json:"courseId"`
}

type ListEnrollmentsRequest struct {
	UserID string `json:"userId"`
}

type ListCourseEnrollmentsRequest struct {
	CourseID string `json:"courseId"`
}

type UpdateProgressRequest struct {
	EnrollmentID string `json:"enrollmentId"`
	Progress     int32  `json:"progress"`
}

type EnrollmentResponse struct {
	Enrollment *Enrollment `json:"enrollment"`
}

type EnrollmentsResponse struct {
	Enrollments []*Enrollment `json:"enrollments"`
}

type UploadURLRequest struct {
	Bucket      string `json:"bucket"`
	ContentType string `json:"contentType"`
}

type UploadURLResponse struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type FileRequest struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}

type DownloadURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}
