package digest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/lawncare/internal/domain/models"
	"github.com/mamadbah2/lawncare/internal/observability"
	"github.com/mamadbah2/lawncare/internal/timing"
	"github.com/mamadbah2/lawncare/pkg/clients/webhook"
)

const dateLayout = "2006-01-02"

// Planner is the subset of the planner service the digest needs.
type Planner interface {
	ActivitiesForMonth(region string, month int) ([]timing.TimingWindow, error)
	NextWindows(region string, from time.Time) ([]timing.NextWindow, error)
}

// Service builds and publishes the monthly lawn care digest.
type Service struct {
	planner  Planner
	notifier webhook.Notifier
	regions  []timing.Region
	logger   *zap.Logger
}

// NewService wires a new digest service instance.
func NewService(planner Planner, notifier webhook.Notifier, regions []timing.Region, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(regions) == 0 {
		regions = timing.Regions()
	}
	return &Service{planner: planner, notifier: notifier, regions: regions, logger: logger}
}

// Compose builds the digest for region covering the month of at.
func (s *Service) Compose(region timing.Region, at time.Time) (models.DigestMessage, error) {
	inSeason, err := s.planner.ActivitiesForMonth(region.String(), int(at.Month()))
	if err != nil {
		return models.DigestMessage{}, fmt.Errorf("activities for %s: %w", region, err)
	}

	upcoming, err := s.planner.NextWindows(region.String(), at)
	if err != nil {
		return models.DigestMessage{}, fmt.Errorf("next windows for %s: %w", region, err)
	}

	nextMonth := time.Date(at.Year(), at.Month()+1, 1, 0, 0, 0, 0, at.Location())
	title := fmt.Sprintf("Lawn care for %s %d (%s)", at.Month(), at.Year(), region.Title())

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\nIn season:\n")
	if len(inSeason) == 0 {
		b.WriteString("- nothing recommended this month\n")
	}
	for _, w := range inSeason {
		fmt.Fprintf(&b, "- %s (%s): %s\n", w.Activity.Title(), w.Temperature, w.Description)
	}

	var opening []timing.NextWindow
	for _, w := range upcoming {
		if w.Start.Year() == nextMonth.Year() && w.Start.Month() == nextMonth.Month() {
			opening = append(opening, w)
		}
	}
	if len(opening) > 0 {
		fmt.Fprintf(&b, "\nOpening in %s:\n", nextMonth.Month())
		for _, w := range opening {
			fmt.Fprintf(&b, "- %s from %s to %s (%s)\n",
				w.Activity.Title(), w.Start.Format(dateLayout), w.End.Format(dateLayout), w.Temperature)
		}
	}

	return models.DigestMessage{
		Region:      region.String(),
		Month:       int(at.Month()),
		Title:       title,
		Text:        strings.TrimRight(b.String(), "\n"),
		GeneratedAt: at,
	}, nil
}

// Publish composes and sends the digest of every configured region. A failing region does not
// stop the others; all failures are returned joined.
func (s *Service) Publish(ctx context.Context, at time.Time) error {
	var errs []error
	for _, region := range s.regions {
		if err := s.publishRegion(ctx, region, at); err != nil {
			observability.RecordDigest(region.String(), observability.OutcomeError)
			s.logger.Error("failed to publish digest", zap.Stringer("region", region), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		observability.RecordDigest(region.String(), observability.OutcomeOK)
		s.logger.Info("digest published", zap.Stringer("region", region), zap.Stringer("month", at.Month()))
	}
	return errors.Join(errs...)
}

func (s *Service) publishRegion(ctx context.Context, region timing.Region, at time.Time) error {
	msg, err := s.Compose(region, at)
	if err != nil {
		return err
	}
	if err := s.notifier.Notify(ctx, msg); err != nil {
		return fmt.Errorf("notify %s digest: %w", region, err)
	}
	return nil
}
