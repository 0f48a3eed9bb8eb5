package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/teachloop/internal/client/models"
	"github.com/dmitrijs2005/teachloop/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeachingService(t *testing.T) {
	f := catalogue()
	s := NewTeachingService(f, signedIn("t1"))
	ctx := context.Background()

	mine, err := s.MyCourses(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Growth", "Advanced Python"}, titles(mine))

	c, err := s.CreateCourse(ctx, models.NewCourse{Title: "Go", Category: "Programming", Level: "Beginner"})
	require.NoError(t, err)
	assert.Equal(t, "Go", c.Title)
}

func TestTeachingService_RequiresSignIn(t *testing.T) {
	s := NewTeachingService(catalogue(), &fakeSession{})
	_, err := s.MyCourses(context.Background())
	require.ErrorIs(t, err, session.ErrNotAuthenticated)
	_, err = s.CreateCourse(context.Background(), models.NewCourse{Title: "x"})
	require.ErrorIs(t, err, session.ErrNotAuthenticated)
}
