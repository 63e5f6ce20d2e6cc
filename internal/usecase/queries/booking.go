package queries

import (
	"context"

	"soundlight-quotes/internal/infra"
	"soundlight-quotes/internal/pkg/errs"
)

type BookingReadStore interface {
	FindByReference(ctx context.Context, reference string) (*BookingView, error)
}

type BookingQueries interface {
	GetByReference(ctx context.Context, reference string) (*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByReference(ctx context.Context, reference string) (*BookingView, error) {
	view, err := q.store.FindByReference(ctx, reference)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	return view, nil
}
