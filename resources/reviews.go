package resources

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dev-saiful/go-storefront/core"
)

type ReviewsResource struct {
	client *core.Client
}

func NewReviews(client *core.Client) *ReviewsResource {
	return &ReviewsResource{client: client}
}

type SubmitReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

func (r *ReviewsResource) ListForProduct(ctx context.Context, productID int64, page int) (Page[Review], error) {
	if r == nil || r.client == nil {
		return Page[Review]{}, fmt.Errorf("resources: reviews resource is not configured")
	}
	if productID <= 0 {
		return Page[Review]{}, fmt.Errorf("resources: product id is required")
	}
	opts := []core.RequestOption{}
	if page > 0 {
		opts = append(opts, core.WithQueryParam("page", strconv.Itoa(page)))
	}
	envelope, err := r.client.Get(ctx, fmt.Sprintf("/products/%d/reviews", productID), opts...)
	if err != nil {
		return Page[Review]{}, err
	}
	return decodePage[Review](envelope)
}

func (r *ReviewsResource) Submit(ctx context.Context, productID int64, req SubmitReviewRequest) (Review, error) {
	if r == nil || r.client == nil {
		return Review{}, fmt.Errorf("resources: reviews resource is not configured")
	}
	if productID <= 0 {
		return Review{}, fmt.Errorf("resources: product id is required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return Review{}, fmt.Errorf("resources: rating must be between 1 and 5")
	}
	envelope, err := r.client.Post(ctx, fmt.Sprintf("/products/%d/reviews", productID), req)
	if err != nil {
		return Review{}, err
	}
	return decodeOne[Review](envelope)
}

func (r *ReviewsResource) Delete(ctx context.Context, reviewID int64) error {
	if r == nil || r.client == nil {
		return fmt.Errorf("resources: reviews resource is not configured")
	}
	if reviewID <= 0 {
		return fmt.Errorf("resources: review id is required")
	}
	_, err := r.client.Delete(ctx, fmt.Sprintf("/reviews/%d", reviewID))
	return err
}
