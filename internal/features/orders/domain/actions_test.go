package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvailableAction(t *testing.T) {
	tests := []struct {
		name        string
		fulfillment FulfillmentType
		status      Status
		scope       ShippingScope
		expected    Action
	}{
		{"PickupCreatedTown", FulfillmentPickup, StatusCreated, ScopeTown, ActionRequestApproval},
		{"PickupCreatedRegional", FulfillmentPickup, StatusCreated, ScopeRegional, ActionAcceptDropoff},
		{"PickupCreatedInternational", FulfillmentPickup, StatusCreated, ScopeInternational, ActionAcceptDropoff},
		{"DropoffCreatedTown", FulfillmentDropoff, StatusCreated, ScopeTown, ActionRequestApproval},
		{"DropoffCreatedRegional", FulfillmentDropoff, StatusCreated, ScopeRegional, ActionRequestApproval},
		{"DropoffApproved", FulfillmentDropoff, StatusApproved, ScopeTown, ActionNone},
		{"PickupApproved", FulfillmentPickup, StatusApproved, ScopeTown, ActionNone},
		{"PickupPending", FulfillmentPickup, StatusPending, ScopeTown, ActionNone},
		{"DropoffDispatched", FulfillmentDropoff, StatusDispatched, ScopeRegional, ActionNone},
		{"UnknownFulfillment", "", StatusCreated, ScopeTown, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Order{FulfillmentType: tt.fulfillment, Status: tt.status, ShippingScope: tt.scope}
			assert.Equal(t, tt.expected, AvailableAction(o))
		})
	}
}

func TestAction_Label(t *testing.T) {
	assert.Equal(t, "Request Approval", ActionRequestApproval.Label())
	assert.Equal(t, "Accept Dropoff", ActionAcceptDropoff.Label())
	assert.Empty(t, ActionNone.Label())
}
