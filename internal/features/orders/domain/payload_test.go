package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payloadKeys(t *testing.T, p Payload) map[string]json.RawMessage {
	t.Helper()
	data, err := json.Marshal(p)
	require.NoError(t, err)

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &keys))
	return keys
}

func TestToPayload_Addresses(t *testing.T) {
	p := ToPayload(validDraft())

	assert.Equal(t, Address{Address: "12 Marina Rd, Lagos", Latitude: 6.4541, Longitude: 3.3947}, p.PickupAddress)
	assert.Equal(t, Address{Address: "4 Allen Ave, Ikeja", Latitude: 6.6018, Longitude: 3.3515}, p.DeliveryAddress)
	assert.Equal(t, Receiver{Name: "Ada Obi", Email: "ada@example.com", Phone: "+2348000000000"}, p.Receiver)

	keys := payloadKeys(t, p)
	assert.NotContains(t, keys, "pickupLatitude")
	assert.NotContains(t, keys, "deliveryLongitude")
}

func TestToPayload_DimensionsOnlyForParcels(t *testing.T) {
	for _, shipment := range []ShipmentType{ShipmentParcel, ShipmentDocument, ""} {
		t.Run(string(shipment), func(t *testing.T) {
			d := validDraft()
			d.ShipmentType = shipment

			keys := payloadKeys(t, ToPayload(d))
			for _, dim := range []string{"length", "width", "height"} {
				if shipment == ShipmentParcel {
					assert.Contains(t, keys, dim)
				} else {
					assert.NotContains(t, keys, dim)
				}
			}
		})
	}

	t.Run("ParcelKeepsZeroDimensions", func(t *testing.T) {
		d := validDraft()
		d.Length, d.Width, d.Height = 0, 0, 0
		keys := payloadKeys(t, ToPayload(d))
		assert.JSONEq(t, "0", string(keys["length"]))
	})
}

func TestToPayload_Defaults(t *testing.T) {
	d := validDraft()
	d.Category = nil
	d.Quantity = 0
	d.UnusualReason = "stale reason"

	p := ToPayload(d)
	assert.Equal(t, []string{}, p.Category)
	assert.Equal(t, 1, p.Quantity)
	assert.Empty(t, p.UnusualReason)

	d.IsUnusual = true
	assert.Equal(t, "stale reason", ToPayload(d).UnusualReason)
}
