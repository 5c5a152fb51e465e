package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []string
	d.Subscribe(EventJobPosted, func(_ context.Context, e Event) error {
		got = append(got, "first:"+e.ResourceID)
		return errors.New("handler failed")
	})
	d.Subscribe(EventJobPosted, func(_ context.Context, e Event) error {
		got = append(got, "second:"+e.ResourceID)
		return nil
	})
	d.Subscribe(EventApplicationCreated, func(_ context.Context, e Event) error {
		got = append(got, "other")
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventJobPosted, ResourceID: "job-1"})
	if err == nil {
		t.Fatal("expected the first handler error to be returned")
	}
	if len(got) != 2 || got[0] != "first:job-1" || got[1] != "second:job-1" {
		t.Fatalf("unexpected deliveries %v", got)
	}
}

func TestPublishWithoutSubscribers(t *testing.T) {
	if err := NewInMemoryDispatcher().Publish(context.Background(), Event{Type: EventUserRegistered}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}
