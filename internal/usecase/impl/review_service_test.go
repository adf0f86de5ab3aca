package impl

import (
	"context"
	"testing"

	domainerrors "drugweb/internal/domain/errors"
	"drugweb/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewFixture() *reviewService {
	return &reviewService{
		reviewRepo: newMemReviewRepo(),
		logger:     testLogger(),
	}
}

func TestSubmitReview_AssignsID(t *testing.T) {
	service := newReviewFixture()

	review, err := service.Submit(context.Background(), &usecase.SubmitReviewInput{
		CustomerID: "CM001",
		Text:       "Fast delivery, well packed.",
	})
	require.NoError(t, err)

	assert.NotZero(t, review.ReviewID)
	assert.Equal(t, "CM001", review.CustomerID)
}

func TestSubmitReview_RequiresText(t *testing.T) {
	service := newReviewFixture()

	_, err := service.Submit(context.Background(), &usecase.SubmitReviewInput{
		CustomerID: "CM001",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestListReviews_ReturnsEverySubmission(t *testing.T) {
	service := newReviewFixture()

	for _, text := range []string{"Great service.", "Could be faster."} {
		_, err := service.Submit(context.Background(), &usecase.SubmitReviewInput{
			CustomerID: "CM001",
			Text:       text,
		})
		require.NoError(t, err)
	}

	reviews, err := service.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}
