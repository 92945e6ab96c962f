package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/srgjo27/seat_reservation/internal/core/domain"
	"github.com/srgjo27/seat_reservation/internal/core/ports"
	"github.com/srgjo27/seat_reservation/internal/lib/logger/sl"
)

const (
	DefaultVenue              = "main"
	DefaultSeatMapTTL         = 30 * time.Second
	DefaultCompactionInterval = time.Minute
	DefaultHistoryRetention   = 24 * time.Hour
)

type BookRequest struct {
	FirstName  string
	LastName   string
	Date       domain.Date
	SeatNumber int
}

type Option func(*ReservationService)

func WithVenue(venue string) Option {
	return func(s *ReservationService) {
		if venue != "" {
			s.venue = venue
		}
	}
}

func WithSeatMapTTL(ttl time.Duration) Option {
	return func(s *ReservationService) {
		if ttl > 0 {
			s.seatMapTTL = ttl
		}
	}
}

func WithCompaction(interval, retention time.Duration) Option {
	return func(s *ReservationService) {
		if interval > 0 {
			s.compactionInterval = interval
		}
		if retention > 0 {
			s.historyRetention = retention
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *ReservationService) {
		if now != nil {
			s.now = now
		}
	}
}

// ReservationService fronts a single registry. The Redis client and the
// publisher are optional; a nil value disables that side effect.
type ReservationService struct {
	repo      ports.ReservationRepository
	cache     *redis.Client
	publisher ports.EventPublisher
	log       *slog.Logger

	venue              string
	seatMapTTL         time.Duration
	compactionInterval time.Duration
	historyRetention   time.Duration
	now                func() time.Time
}

func NewReservationService(repo ports.ReservationRepository, cache *redis.Client, publisher ports.EventPublisher, log *slog.Logger, opts ...Option) *ReservationService {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &ReservationService{
		repo:               repo,
		cache:              cache,
		publisher:          publisher,
		log:                log,
		venue:              DefaultVenue,
		seatMapTTL:         DefaultSeatMapTTL,
		compactionInterval: DefaultCompactionInterval,
		historyRetention:   DefaultHistoryRetention,
		now:                time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *ReservationService) SeatMapKey() string {
	return fmt.Sprintf("seats:%s", s.venue)
}

func (s *ReservationService) Book(ctx context.Context, req BookRequest) (*domain.Reservation, error) {
	const op = "services.ReservationService.Book"

	res, err := s.repo.Register(ctx, req.FirstName, req.LastName, req.Date, req.SeatNumber)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("seat booked",
		slog.String("venue", s.venue),
		slog.Int("seat", res.SeatNumber),
		slog.String("reservation_id", res.ID.String()),
	)

	s.invalidateSeatMap(ctx)
	s.publish(ctx, domain.EventReservationBooked, res)

	return &res, nil
}

func (s *ReservationService) Cancel(ctx context.Context, seat int) (*domain.Reservation, error) {
	const op = "services.ReservationService.Cancel"

	res, err := s.repo.Cancel(ctx, seat)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("reservation cancelled",
		slog.String("venue", s.venue),
		slog.Int("seat", res.SeatNumber),
		slog.String("reservation_id", res.ID.String()),
	)

	s.invalidateSeatMap(ctx)
	s.publish(ctx, domain.EventReservationCancelled, res)

	return &res, nil
}

func (s *ReservationService) IsSeatOccupied(ctx context.Context, seat int) bool {
	return s.repo.IsSeatOccupied(ctx, seat)
}

func (s *ReservationService) Reservations(ctx context.Context) []domain.Reservation {
	return s.repo.List(ctx)
}

func (s *ReservationService) Reservation(ctx context.Context, seat int) (*domain.Reservation, bool) {
	res, ok := s.repo.Reservation(ctx, seat)
	if !ok {
		return nil, false
	}

	return &res, true
}

// SeatMap reports occupancy for every seat. A cached map is served only while
// its version matches the registry, so a write that lands after an
// invalidation can never be served as current.
func (s *ReservationService) SeatMap(ctx context.Context) []domain.SeatStatus {
	key := s.SeatMapKey()

	if s.cache != nil {
		if cached, ok := s.cachedSeatMap(ctx, key); ok && cached.Version == s.repo.Version(ctx) {
			return cached.Seats
		}
	}

	snapshot := s.repo.Snapshot(ctx)

	if s.cache != nil {
		data, err := json.Marshal(snapshot)
		if err != nil {
			s.log.Error("failed to encode seat map", sl.Err(err))
			return snapshot.Seats
		}

		if err := s.cache.Set(ctx, key, string(data), s.seatMapTTL).Err(); err != nil {
			s.log.Warn("failed to cache seat map", sl.Err(err))
		}
	}

	return snapshot.Seats
}

func (s *ReservationService) cachedSeatMap(ctx context.Context, key string) (domain.SeatMap, bool) {
	data, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn("failed to read seat map from cache", sl.Err(err))
		}
		return domain.SeatMap{}, false
	}

	var cached domain.SeatMap
	if err := json.Unmarshal(data, &cached); err != nil {
		s.log.Warn("discarding malformed seat map", slog.String("key", key))
		return domain.SeatMap{}, false
	}

	return cached, true
}

func (s *ReservationService) invalidateSeatMap(ctx context.Context) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Del(ctx, s.SeatMapKey()).Err(); err != nil {
		s.log.Warn("failed to invalidate seat map", slog.String("key", s.SeatMapKey()), sl.Err(err))
	}
}

// publish never fails the caller; the registry mutation has already happened.
func (s *ReservationService) publish(ctx context.Context, t domain.EventType, res domain.Reservation) {
	if s.publisher == nil {
		return
	}

	event := domain.NewReservationEvent(t, s.venue, res, s.now())
	if err := s.publisher.PublishReservationEvent(ctx, event); err != nil {
		s.log.Error("failed to publish reservation event",
			slog.String("type", string(t)),
			slog.Int("seat", res.SeatNumber),
			sl.Err(err),
		)
	}
}

func (s *ReservationService) RunHistoryCompaction(ctx context.Context) {
	ticker := time.NewTicker(s.compactionInterval)
	defer ticker.Stop()

	s.log.Info("history compaction started",
		slog.Duration("interval", s.compactionInterval),
		slog.Duration("retention", s.historyRetention),
	)

	for {
		select {
		case <-ctx.Done():
			s.log.Info("history compaction stopped")
			return
		case <-ticker.C:
			s.CompactHistory(ctx)
		}
	}
}

// CompactHistory purges cancelled reservations older than the retention
// window and returns how many were removed.
func (s *ReservationService) CompactHistory(ctx context.Context) int {
	purged := s.repo.Compact(ctx, s.now().Add(-s.historyRetention))
	if purged > 0 {
		s.log.Info("purged cancelled reservations", slog.Int("count", purged))
	}

	return purged
}
