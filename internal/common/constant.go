package common

const (
	// AccessTokenHeaderName is the gRPC metadata key used to carry the
	// access token on outbound requests.
	AccessTokenHeaderName = "access_token"

	// DefaultRole is assigned to every profile created at sign-up.
	DefaultRole = "student"

	// MinPasswordLength is enforced by the sign-up form and by the server.
	MinPasswordLength = 8
)

// Storage buckets.
const (
	BucketCourseMaterials = "course-materials"
	BucketProfilePictures = "profile-pictures"
)

// Buckets lists every bucket the storage service accepts.
var Buckets = []string{BucketCourseMaterials, BucketProfilePictures}
