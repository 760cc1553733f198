package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"prenotazioni/internal/entities"
	"prenotazioni/internal/utils"
)

// AvailabilityProvider is the read side of the remote reservation
// service.
type AvailabilityProvider interface {
	GetResourceTypes(ctx context.Context, siteID string) ([]entities.ResourceType, error)
	GetAvailableSlots(ctx context.Context, siteID string, typeID int, date time.Time) ([]entities.ResourceAvailability, error)
}

// ReservationSubmitter is the write side of the remote reservation
// service. Any non-nil error is a per-item failure, never a reason to
// stop a run.
type ReservationSubmitter interface {
	Submit(ctx context.Context, reservation entities.Reservation, contact entities.ContactInfo) error
}

type PlannerService struct {
	provider AvailabilityProvider
}

func NewPlannerService(provider AvailabilityProvider) *PlannerService {
	return &PlannerService{provider: provider}
}

// Plan walks resource types in preference order and desired slots in
// their given order, querying availability one call at a time and
// claiming the first qualifying interval per slot. A slot satisfied at
// preference rank k is never reconsidered at a later rank, so the
// result is first-fit greedy, not globally optimal. The second return
// value is the residual set of slots no resource could satisfy.
//
// Availability failures for one (resource, date) query are logged and
// treated as "no intervals there"; the run continues.
func (s *PlannerService) Plan(ctx context.Context, siteID string, preferences []string, desired []entities.DesiredSlot) ([]entities.Reservation, []entities.DesiredSlot, error) {
	resourceTypes, err := s.resolvePreferences(ctx, siteID, preferences)
	if err != nil {
		return nil, nil, err
	}
	if len(resourceTypes) == 0 {
		log.Warn().Strs("preferences", preferences).Msg("no resource preference resolved to a known type, nothing to offer")
	}

	var reservations []entities.Reservation
	pending := make([]entities.DesiredSlot, len(desired))
	copy(pending, desired)

	for _, resourceType := range resourceTypes {
		// Iterate a snapshot and rebuild the pending set afterwards;
		// a slot is claimed at most once.
		remaining := pending[:0:0]
		for _, slot := range pending {
			interval, ok := s.findForSlot(ctx, siteID, resourceType, slot)
			if !ok {
				remaining = append(remaining, slot)
				continue
			}
			reservations = append(reservations, entities.Reservation{
				ResourceID:   interval.ResourceID,
				ResourceType: resourceType.Name,
				ResourceName: interval.ResourceName,
				Date:         slot.Date,
				Start:        slot.Start,
				Duration:     slot.Duration,
			})
		}
		pending = remaining
		if len(pending) == 0 {
			break
		}
	}

	for _, slot := range pending {
		log.Warn().Stringer("slot", slot).Msg("no resource could satisfy desired slot")
	}

	return reservations, pending, nil
}

func (s *PlannerService) findForSlot(ctx context.Context, siteID string, resourceType entities.ResourceType, slot entities.DesiredSlot) (entities.Interval, bool) {
	availabilities, err := s.provider.GetAvailableSlots(ctx, siteID, resourceType.TypeID, slot.Date)
	if err != nil {
		log.Warn().Err(err).
			Str("resource_type", resourceType.Name).
			Stringer("slot", slot).
			Msg("availability query failed, skipping")
		return entities.Interval{}, false
	}

	compressed := CompressAvailabilities(availabilities)
	return FindSlot(compressed, slot.Duration, slot.Start)
}

// resolvePreferences maps preference names to concrete resource types,
// preserving preference order. Names the site does not know are
// silently dropped.
func (s *PlannerService) resolvePreferences(ctx context.Context, siteID string, preferences []string) ([]entities.ResourceType, error) {
	siteTypes, err := s.provider.GetResourceTypes(ctx, siteID)
	if err != nil {
		return nil, err
	}

	var resolved []entities.ResourceType
	for _, preference := range preferences {
		for _, siteType := range siteTypes {
			if utils.SameResourceName(siteType.Name, preference) {
				resolved = append(resolved, siteType)
				break
			}
		}
	}
	return resolved, nil
}
