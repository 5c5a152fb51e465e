package service

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/placement-service/internal/domain"
	"github.com/spec-kit/placement-service/internal/events"
)

func TestActivityServiceWithoutLogger(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	NewActivityService(dispatcher, nil).RegisterHandlers()

	err := dispatcher.Publish(context.Background(), events.Event{
		Type:    events.EventJobPosted,
		Payload: events.JobPostedPayload{Title: "Engineer"},
	})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
}

func TestActivityServiceLogsEvents(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	dispatcher := events.NewInMemoryDispatcher()
	NewActivityService(dispatcher, zap.New(core)).RegisterHandlers()

	err := dispatcher.Publish(context.Background(), events.Event{
		ID:         "evt-1",
		Type:       events.EventApplicationStatusChanged,
		ResourceID: "app-1",
		Actor:      events.Actor{UserID: "u1", Role: domain.RoleOfficer},
		Payload: events.ApplicationStatusChangedPayload{
			OldStatus: domain.ApplicationStatusApplied,
			NewStatus: domain.ApplicationStatusAccepted,
		},
	})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}

	entries := logs.FilterMessage("ApplicationStatusChanged").All()
	if len(entries) != 1 {
		t.Fatalf("expected one audit entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["resource_id"] != "app-1" || fields["new_status"] != "accepted" || fields["actor_role"] != "officer" {
		t.Fatalf("unexpected fields %v", fields)
	}
}
