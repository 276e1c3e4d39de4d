package domain

// Address is a resolved location in the backend's request shape.
type Address struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Receiver identifies who collects the shipment.
type Receiver struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Payload is the body sent to both the pricing and the order-creation endpoints.
type Payload struct {
	CustomerID      string          `json:"customerId"`
	PickupAddress   Address         `json:"pickupAddress"`
	DeliveryAddress Address         `json:"deliveryAddress"`
	Receiver        Receiver        `json:"receiver"`
	ServiceType     ServiceType     `json:"serviceType"`
	FulfillmentType FulfillmentType `json:"fulfillmentType"`
	ShipmentType    ShipmentType    `json:"shipmentType"`
	Weight          float64         `json:"weight"`
	Length          *float64        `json:"length,omitempty"`
	Width           *float64        `json:"width,omitempty"`
	Height          *float64        `json:"height,omitempty"`
	Category        []string        `json:"category"`
	IsFragile       bool            `json:"isFragile"`
	IsUnusual       bool            `json:"isUnusual"`
	UnusualReason   string          `json:"unusualReason,omitempty"`
	Destination     ShippingScope   `json:"destination"`
	Quantity        int             `json:"quantity"`
}

// ToPayload nests the draft's coordinates into address objects. Dimensions are sent
// only for parcels, and the unusual reason only for unusual items.
func ToPayload(d Draft) Payload {
	p := Payload{
		CustomerID:      d.CustomerID,
		PickupAddress:   address(d.PickupAddress, d.PickupLatitude, d.PickupLongitude),
		DeliveryAddress: address(d.DeliveryAddress, d.DeliveryLatitude, d.DeliveryLongitude),
		Receiver: Receiver{
			Name:  d.ReceiverName,
			Email: d.ReceiverEmail,
			Phone: d.ReceiverPhone,
		},
		ServiceType:     d.ServiceType,
		FulfillmentType: d.FulfillmentType,
		ShipmentType:    d.ShipmentType,
		Weight:          d.Weight,
		Category:        d.Category,
		IsFragile:       d.IsFragile,
		IsUnusual:       d.IsUnusual,
		Destination:     d.Destination,
		Quantity:        d.Quantity,
	}

	if p.Category == nil {
		p.Category = []string{}
	}
	if p.Quantity == 0 {
		p.Quantity = 1
	}
	if d.IsUnusual {
		p.UnusualReason = d.UnusualReason
	}
	if d.ShipmentType == ShipmentParcel {
		length, width, height := d.Length, d.Width, d.Height
		p.Length = &length
		p.Width = &width
		p.Height = &height
	}

	return p
}

func address(text string, lat, lng *float64) Address {
	a := Address{Address: text}
	if lat != nil {
		a.Latitude = *lat
	}
	if lng != nil {
		a.Longitude = *lng
	}
	return a
}
