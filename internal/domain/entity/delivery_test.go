package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition_ValidEdges(t *testing.T) {
	valid := [][2]DeliveryStatus{
		{DeliveryStatusPending, DeliveryStatusAccepted},
		{DeliveryStatusPending, DeliveryStatusCancelled},
		{DeliveryStatusAccepted, DeliveryStatusPickup},
		{DeliveryStatusAccepted, DeliveryStatusCancelled},
		{DeliveryStatusPickup, DeliveryStatusInTransit},
		{DeliveryStatusPickup, DeliveryStatusCancelled},
		{DeliveryStatusInTransit, DeliveryStatusDelivered},
		{DeliveryStatusDelivered, DeliveryStatusCompleted},
	}

	for _, edge := range valid {
		assert.True(t, CanTransition(edge[0], edge[1]), "%s -> %s should be allowed", edge[0], edge[1])
	}
}

func TestCanTransition_GraphClosure(t *testing.T) {
	all := []DeliveryStatus{
		DeliveryStatusPending,
		DeliveryStatusAccepted,
		DeliveryStatusPickup,
		DeliveryStatusInTransit,
		DeliveryStatusDelivered,
		DeliveryStatusCompleted,
		DeliveryStatusCancelled,
	}

	validEdges := map[[2]DeliveryStatus]bool{
		{DeliveryStatusPending, DeliveryStatusAccepted}:    true,
		{DeliveryStatusPending, DeliveryStatusCancelled}:   true,
		{DeliveryStatusAccepted, DeliveryStatusPickup}:     true,
		{DeliveryStatusAccepted, DeliveryStatusCancelled}:  true,
		{DeliveryStatusPickup, DeliveryStatusInTransit}:    true,
		{DeliveryStatusPickup, DeliveryStatusCancelled}:    true,
		{DeliveryStatusInTransit, DeliveryStatusDelivered}: true,
		{DeliveryStatusDelivered, DeliveryStatusCompleted}: true,
	}

	// Every pair outside the edge table must be rejected, including
	// stage-skipping shortcuts and self transitions.
	for _, from := range all {
		for _, to := range all {
			expected := validEdges[[2]DeliveryStatus{from, to}]
			assert.Equal(t, expected, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestCanTransition_TerminalStates(t *testing.T) {
	assert.True(t, DeliveryStatusCompleted.IsTerminal())
	assert.True(t, DeliveryStatusCancelled.IsTerminal())
	assert.False(t, DeliveryStatusDelivered.IsTerminal())
}

func TestDeliveryStatus_Progress(t *testing.T) {
	cases := map[DeliveryStatus]int{
		DeliveryStatusPending:   0,
		DeliveryStatusAccepted:  20,
		DeliveryStatusPickup:    40,
		DeliveryStatusInTransit: 70,
		DeliveryStatusDelivered: 90,
		DeliveryStatusCompleted: 100,
	}
	for status, want := range cases {
		assert.Equal(t, want, status.Progress(), "progress of %s", status)
	}
}
