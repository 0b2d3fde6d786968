//go:build unit

package commands_test

import (
	"context"
	"maps"
	"slices"
	"time"

	"court-booking/internal/domain/court"
	"court-booking/internal/domain/reservation"
	"court-booking/internal/infra"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/usecase/shared"
)

// memStore is an in-memory unit of work. Within rolls back every change made by a
// callback that returns an error, like the Postgres implementation does.
type memStore struct {
	now          time.Time
	courts       map[int64]*court.Court
	reservations map[int64]*reservation.Reservation
	jobs         []memJob
	locks        []int64
	nextID       int64
	txCount      int

	createErr error
}

type memJob struct {
	Topic   string
	Payload []byte
}

func newMemStore(now time.Time) *memStore {
	return &memStore{
		now:          now,
		courts:       map[int64]*court.Court{},
		reservations: map[int64]*reservation.Reservation{},
		nextID:       100,
	}
}

func (s *memStore) addCourt(id int64, name string) {
	s.courts[id] = court.ReconstructCourt(id, name, false, s.now, s.now)
}

func (s *memStore) addReservation(r *reservation.Reservation) {
	s.reservations[r.ID()] = r
}

func (s *memStore) topics() []string {
	out := make([]string, 0, len(s.jobs))
	for _, j := range s.jobs {
		out = append(out, j.Topic)
	}
	return out
}

func (s *memStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.txCount++
	courts := maps.Clone(s.courts)
	reservations := maps.Clone(s.reservations)
	jobs := slices.Clone(s.jobs)
	nextID := s.nextID

	if err := fn(ctx, memTx{s}); err != nil {
		s.courts, s.reservations, s.jobs, s.nextID = courts, reservations, jobs, nextID
		return err
	}
	return nil
}

type memTx struct{ s *memStore }

func (t memTx) Courts() shared.CourtRepository             { return memCourts(t) }
func (t memTx) Reservations() shared.ReservationRepository { return memReservations(t) }
func (t memTx) Notifications() shared.NotificationRepository {
	return memNotifications(t)
}
func (t memTx) Reads() shared.CommandReads { return memReads(t) }
func (t memTx) DB() sqlc.DBTX              { return nil }

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

type memCourts memTx

func (r memCourts) Create(_ context.Context, _ sqlc.DBTX, c *court.Court) (*court.Court, error) {
	r.s.nextID++
	stored := court.ReconstructCourt(r.s.nextID, c.Name(), c.IsCovered(), r.s.now, r.s.now)
	r.s.courts[stored.ID()] = stored
	return stored, nil
}

func (r memCourts) Update(_ context.Context, _ sqlc.DBTX, c *court.Court) (*court.Court, error) {
	old, ok := r.s.courts[c.ID()]
	if !ok {
		return nil, notFound("court")
	}
	stored := court.ReconstructCourt(c.ID(), c.Name(), c.IsCovered(), old.CreatedAt(), r.s.now)
	r.s.courts[c.ID()] = stored
	return stored, nil
}

func (r memCourts) Delete(_ context.Context, _ sqlc.DBTX, courtID int64) error {
	if _, ok := r.s.courts[courtID]; !ok {
		return notFound("court")
	}
	delete(r.s.courts, courtID)
	return nil
}

func (r memCourts) CountReservations(_ context.Context, _ sqlc.DBTX, courtID int64) (int64, error) {
	var n int64
	for _, res := range r.s.reservations {
		if res.CourtID() == courtID {
			n++
		}
	}
	return n, nil
}

func (r memCourts) Lock(_ context.Context, _ sqlc.DBTX, courtID int64) error {
	r.s.locks = append(r.s.locks, courtID)
	return nil
}

type memReservations memTx

func (r memReservations) Create(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) (*reservation.Reservation, error) {
	if r.s.createErr != nil {
		return nil, r.s.createErr
	}
	r.s.nextID++
	stored := reservation.ReconstructReservation(r.s.nextID, res.CourtID(), res.Date(), res.StartTime(),
		res.Duration(), res.Contact(), r.s.now, r.s.now)
	r.s.reservations[stored.ID()] = stored
	return stored, nil
}

func (r memReservations) Update(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) (*reservation.Reservation, error) {
	old, ok := r.s.reservations[res.ID()]
	if !ok {
		return nil, notFound("reservation")
	}
	stored := reservation.ReconstructReservation(res.ID(), res.CourtID(), res.Date(), res.StartTime(),
		res.Duration(), res.Contact(), old.CreatedAt(), r.s.now)
	r.s.reservations[res.ID()] = stored
	return stored, nil
}

func (r memReservations) Delete(_ context.Context, _ sqlc.DBTX, id int64) error {
	if _, ok := r.s.reservations[id]; !ok {
		return notFound("reservation")
	}
	delete(r.s.reservations, id)
	return nil
}

func (r memReservations) FindInWindow(_ context.Context, _ sqlc.DBTX, courtID int64, from, to reservation.Date, excludeID int64) ([]*reservation.Reservation, error) {
	var out []*reservation.Reservation
	for _, res := range r.s.reservations {
		if res.CourtID() != courtID || res.ID() == excludeID {
			continue
		}
		if res.Date().Before(from) || to.Before(res.Date()) {
			continue
		}
		out = append(out, res)
	}
	return out, nil
}

type memNotifications memTx

func (r memNotifications) CreateJob(_ context.Context, _ sqlc.DBTX, _, topic string, payload []byte, _ time.Time) error {
	r.s.jobs = append(r.s.jobs, memJob{Topic: topic, Payload: payload})
	return nil
}

type memReads memTx

func (r memReads) CourtByID(_ context.Context, id int64) (*shared.CourtSnapshot, error) {
	c, ok := r.s.courts[id]
	if !ok {
		return nil, notFound("court")
	}
	return &shared.CourtSnapshot{ID: c.ID(), Name: c.Name(), IsCovered: c.IsCovered()}, nil
}

func (r memReads) ReservationByID(_ context.Context, id int64) (*shared.ReservationSnapshot, error) {
	res, ok := r.s.reservations[id]
	if !ok {
		return nil, notFound("reservation")
	}
	return &shared.ReservationSnapshot{ID: res.ID(), CourtID: res.CourtID()}, nil
}
