package slots

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/m04kA/SMC-CareSlotService/internal/domain"
	"github.com/m04kA/SMC-CareSlotService/internal/infra/storage"
	"github.com/m04kA/SMC-CareSlotService/internal/service/slots/models"
)

const transitionCancel = "cancel"

// Service handles cancellation and the booking-oriented reads.
type Service struct {
	store    SlotStore
	recorder TransitionRecorder
	logger   Logger
}

func NewService(store SlotStore, recorder TransitionRecorder, logger Logger) *Service {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Service{
		store:    store,
		recorder: recorder,
		logger:   logger,
	}
}

// Cancel moves a Booked slot back to Free and removes the booking name.
// The record itself is kept.
func (s *Service) Cancel(ctx context.Context, req *models.CancelRequest) (*models.CancelResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", ErrInvalidInput)
	}

	key := req.Key()
	if err := domain.ValidateSlotKey(key); err != nil {
		s.logger.Warn("Cancel: validation failed: %v", err)
		s.recorder.RecordTransition(transitionCancel, "invalid")
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.logger.Info("Cancel: carer=%s, slot=%s", key.CarerID, key.DateTimeSlot())

	err := s.store.CompareAndSet(ctx, key, domain.AvailabilityBooked, domain.NewFreeSlot(key))
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrConditionFailed):
		s.logger.Info("Cancel: no active booking for carer=%s, slot=%s", key.CarerID, key.DateTimeSlot())
		s.recorder.RecordTransition(transitionCancel, "no_booking")
		return nil, ErrNoActiveBooking
	default:
		s.logger.Error("Cancel: store error for carer=%s, slot=%s: %v", key.CarerID, key.DateTimeSlot(), err)
		s.recorder.RecordTransition(transitionCancel, "error")
		return nil, fmt.Errorf("%w: Cancel - store error: %v", ErrInternal, err)
	}

	s.recorder.RecordTransition(transitionCancel, "success")
	s.logger.Info("Cancel: released carer=%s, slot=%s", key.CarerID, key.DateTimeSlot())

	return &models.CancelResponse{
		Success:      true,
		Message:      domain.MsgCancelled,
		CarerID:      key.CarerID,
		DateTimeSlot: key.DateTimeSlot(),
	}, nil
}

// GetSlot returns one slot by its full key.
func (s *Service) GetSlot(ctx context.Context, key domain.SlotKey) (*models.SlotResponse, error) {
	if err := domain.ValidateSlotKey(key); err != nil {
		s.logger.Warn("GetSlot: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	found, err := s.store.GetByPartitionAndPrefix(ctx, key.CarerID, key.DateTimeSlot())
	if err != nil {
		s.logger.Error("GetSlot: store error for %s: %v", key, err)
		return nil, fmt.Errorf("%w: GetSlot - store error: %v", ErrInternal, err)
	}

	for _, slot := range found {
		if slot.DateTimeSlot == key.DateTimeSlot() {
			return models.FromDomainSlot(slot), nil
		}
	}

	s.logger.Warn("GetSlot: slot %s not found", key)
	return nil, ErrSlotNotFound
}

// GetCarerBookings lists the Booked slots of a carer, optionally for one date.
func (s *Service) GetCarerBookings(ctx context.Context, carerID, date string) (*models.SlotListResponse, error) {
	carerID = strings.TrimSpace(carerID)
	date = strings.TrimSpace(date)

	if err := domain.ValidateCarerID(carerID); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var (
		found []*domain.Slot
		err   error
	)
	if date != "" {
		if verr := domain.ValidateDate(date); verr != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, verr)
		}
		found, err = s.store.GetByPartitionAndPrefix(ctx, carerID, date+domain.SortKeySeparator)
	} else {
		found, err = s.store.GetByPartition(ctx, carerID)
	}
	if err != nil {
		s.logger.Error("GetCarerBookings: store error for carer=%s: %v", carerID, err)
		return nil, fmt.Errorf("%w: GetCarerBookings - store error: %v", ErrInternal, err)
	}

	booked := onlyBooked(found, "")
	s.logger.Info("GetCarerBookings: carer=%s, date=%q, bookings=%d", carerID, date, len(booked))
	return models.FromDomainSlotList(booked), nil
}

// GetPersonBookings lists every slot booked under personName. It reads the
// whole store.
func (s *Service) GetPersonBookings(ctx context.Context, personName string) (*models.SlotListResponse, error) {
	personName = strings.TrimSpace(personName)
	if err := domain.ValidatePersonName(personName); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	all, err := s.store.ScanAll(ctx)
	if err != nil {
		s.logger.Error("GetPersonBookings: store error: %v", err)
		return nil, fmt.Errorf("%w: GetPersonBookings - store error: %v", ErrInternal, err)
	}

	booked := onlyBooked(all, personName)
	s.logger.Info("GetPersonBookings: person=%s, bookings=%d", personName, len(booked))
	return models.FromDomainSlotList(booked), nil
}

func onlyBooked(slots []*domain.Slot, personName string) []*domain.Slot {
	filter := domain.SlotFilter{Availability: domain.AvailabilityBooked, BookingPersonName: personName}

	out := make([]*domain.Slot, 0)
	for _, slot := range slots {
		if filter.Matches(slot) {
			out = append(out, slot)
		}
	}
	slices.SortFunc(out, func(a, b *domain.Slot) int {
		return cmp.Or(cmp.Compare(a.CarerID, b.CarerID), cmp.Compare(a.DateTimeSlot, b.DateTimeSlot))
	})
	return out
}

type nopRecorder struct{}

func (nopRecorder) RecordTransition(string, string) {}
