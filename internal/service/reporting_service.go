package service

import (
	"context"
	"time"

	"github.com/teleassist/ticketing-service/internal/repository"
	"github.com/teleassist/ticketing-service/pkg/util"
)

// volumeLabelLayout renders report labels like "Aug 31".
const volumeLabelLayout = "Jan 02"

// VolumeEntry is one labeled day of the ticket volume report. Days with
// no tickets are absent.
type VolumeEntry struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// SatisfactionEntry is one rating bucket of the satisfaction report.
type SatisfactionEntry struct {
	Rating int   `json:"rating"`
	Count  int64 `json:"count"`
}

// ReportingService aggregates ticket data for managers and executives.
type ReportingService struct {
	tickets  repository.TicketRepository
	feedback repository.FeedbackRepository
}

func NewReportingService(tickets repository.TicketRepository, feedback repository.FeedbackRepository) *ReportingService {
	return &ReportingService{tickets: tickets, feedback: feedback}
}

// TicketVolume reports tickets filed per day over the trailing window.
func (s *ReportingService) TicketVolume(ctx context.Context, days int) ([]VolumeEntry, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)
	points, err := s.tickets.VolumeByDay(ctx, since)
	if err != nil {
		return nil, util.ToDomainError(err)
	}

	entries := make([]VolumeEntry, 0, len(points))
	for _, point := range points {
		entries = append(entries, VolumeEntry{
			Label: point.Date.Format(volumeLabelLayout),
			Count: point.Count,
		})
	}
	return entries, nil
}

// AverageResolutionHours reports the mean hours from creation to
// resolution over the trailing window. Zero when nothing resolved.
func (s *ReportingService) AverageResolutionHours(ctx context.Context, days int) (float64, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)
	avg, err := s.tickets.AverageResolutionHours(ctx, since)
	if err != nil {
		return 0, util.ToDomainError(err)
	}
	return avg, nil
}

// SatisfactionDistribution reports feedback counts per rating, ascending
// by rating.
func (s *ReportingService) SatisfactionDistribution(ctx context.Context) ([]SatisfactionEntry, error) {
	buckets, err := s.feedback.SatisfactionDistribution(ctx)
	if err != nil {
		return nil, util.ToDomainError(err)
	}
	entries := make([]SatisfactionEntry, 0, len(buckets))
	for _, bucket := range buckets {
		entries = append(entries, SatisfactionEntry{Rating: bucket.Rating, Count: bucket.Count})
	}
	return entries, nil
}
