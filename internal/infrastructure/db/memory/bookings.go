package memory

import (
	"context"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
	"github.com/abkhaztransfer/transfer-client/internal/core/ports"
)

type BookingRepository struct {
	rows *table[domain.BookingRecord]
}

var _ ports.BookingRepository = (*BookingRepository)(nil)

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{
		rows: newTable(func(r *domain.BookingRecord) *int64 { return &r.ID }),
	}
}

func (r *BookingRepository) Create(_ context.Context, rec domain.BookingRecord) (*domain.BookingRecord, error) {
	created := r.rows.insert(rec)
	return &created, nil
}

func (r *BookingRepository) Get(_ context.Context, id int64) (*domain.BookingRecord, error) {
	rec, ok := r.rows.get(id)
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return &rec, nil
}

// List returns bookings newest first. A limit of zero means no limit.
func (r *BookingRepository) List(_ context.Context, userID int64, limit int) ([]domain.BookingRecord, error) {
	all := r.rows.all()
	out := make([]domain.BookingRecord, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		if userID != 0 && all[i].UserID != userID {
			continue
		}
		out = append(out, all[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *BookingRepository) Save(_ context.Context, rec domain.BookingRecord) error {
	if !r.rows.save(rec) {
		return domain.ErrBookingNotFound
	}
	return nil
}
