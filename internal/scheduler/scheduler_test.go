package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/lawncare/internal/config"
)

type fakePublisher struct {
	calls []time.Time
	err   error
}

func (p *fakePublisher) Publish(_ context.Context, at time.Time) error {
	p.calls = append(p.calls, at)
	return p.err
}

func TestStartRegistersMonthlyDigest(t *testing.T) {
	cfg := config.DigestConfig{CronSchedule: "0 7 1 * *", Timezone: "UTC"}
	s := NewScheduler(cfg, &fakePublisher{}, nil)

	require.NoError(t, s.Start())
	defer s.Stop()

	entries := s.Entries()
	require.Len(t, entries, 1)

	next := entries[0].Schedule.Next(time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, time.July, 1, 7, 0, 0, 0, time.UTC), next)
}

func TestStartRejectsInvalidSchedule(t *testing.T) {
	s := NewScheduler(config.DigestConfig{CronSchedule: "every month", Timezone: "UTC"}, &fakePublisher{}, nil)

	err := s.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "every month")
}

func TestSendMonthlyDigestUsesConfiguredZone(t *testing.T) {
	pub := &fakePublisher{}
	s := NewScheduler(config.DigestConfig{CronSchedule: "0 7 1 * *", Timezone: "UTC"}, pub, nil)

	s.sendMonthlyDigest()
	require.Len(t, pub.calls, 1)
	assert.Equal(t, time.UTC, pub.calls[0].Location())
}

func TestSendMonthlyDigestSwallowsErrors(t *testing.T) {
	pub := &fakePublisher{err: errors.New("webhook down")}
	s := NewScheduler(config.DigestConfig{CronSchedule: "0 7 1 * *", Timezone: "UTC"}, pub, nil)

	assert.NotPanics(t, s.sendMonthlyDigest)
	assert.Len(t, pub.calls, 1)
}
