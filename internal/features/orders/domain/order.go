package domain

// ServiceType is the delivery speed tier.
type ServiceType string

const (
	ServiceTypeStandard  ServiceType = "STANDARD"
	ServiceTypeExpress   ServiceType = "EXPRESS"
	ServiceTypeSameDay   ServiceType = "SAME_DAY"
	ServiceTypeOvernight ServiceType = "OVERNIGHT"
)

// FulfillmentType says whether a courier collects the goods or the sender brings them in.
type FulfillmentType string

const (
	FulfillmentPickup  FulfillmentType = "PICKUP"
	FulfillmentDropoff FulfillmentType = "DROPOFF"
)

// ShippingScope is how far the shipment travels.
type ShippingScope string

const (
	ScopeTown          ShippingScope = "TOWN"
	ScopeRegional      ShippingScope = "REGIONAL"
	ScopeInternational ShippingScope = "INTERNATIONAL"
)

// ShipmentType describes the physical shipment. Only parcels carry dimensions.
type ShipmentType string

const (
	ShipmentParcel   ShipmentType = "PARCEL"
	ShipmentDocument ShipmentType = "DOCUMENT"
)

// Status is the backend-owned lifecycle state of an order.
type Status string

const (
	StatusCreated    Status = "CREATED"
	StatusPending    Status = "PENDING"
	StatusAssigned   Status = "ASSIGNED"
	StatusApproved   Status = "APPROVED"
	StatusDispatched Status = "DISPATCHED"
)

// Draft is an order being composed in the console. Coordinates are pointers so an
// unresolved address is distinguishable from (0, 0).
type Draft struct {
	CustomerID string `json:"customerId" validate:"required"`

	PickupAddress   string   `json:"pickupAddress" validate:"required"`
	PickupLatitude  *float64 `json:"pickupLatitude" validate:"required,latitude"`
	PickupLongitude *float64 `json:"pickupLongitude" validate:"required,longitude"`

	ReceiverName  string `json:"receiverName" validate:"required"`
	ReceiverEmail string `json:"receiverEmail" validate:"required,email"`
	ReceiverPhone string `json:"receiverPhone" validate:"required"`

	DeliveryAddress   string   `json:"deliveryAddress" validate:"required"`
	DeliveryLatitude  *float64 `json:"deliveryLatitude" validate:"required,latitude"`
	DeliveryLongitude *float64 `json:"deliveryLongitude" validate:"required,longitude"`

	ServiceType     ServiceType     `json:"serviceType" validate:"required,oneof=STANDARD EXPRESS SAME_DAY OVERNIGHT"`
	FulfillmentType FulfillmentType `json:"fulfillmentType" validate:"required,oneof=PICKUP DROPOFF"`
	ShipmentType    ShipmentType    `json:"shipmentType" validate:"required,oneof=PARCEL DOCUMENT"`

	Weight float64 `json:"weight" validate:"gt=0"`
	Length float64 `json:"length,omitempty" validate:"required_if=ShipmentType PARCEL,gte=0"`
	Width  float64 `json:"width,omitempty" validate:"required_if=ShipmentType PARCEL,gte=0"`
	Height float64 `json:"height,omitempty" validate:"required_if=ShipmentType PARCEL,gte=0"`

	Category      []string `json:"category"`
	IsFragile     bool     `json:"isFragile"`
	IsUnusual     bool     `json:"isUnusual"`
	UnusualReason string   `json:"unusualReason,omitempty" validate:"required_if=IsUnusual true"`

	Destination ShippingScope `json:"destination" validate:"required,oneof=TOWN REGIONAL INTERNATIONAL"`
	Quantity    int           `json:"quantity" validate:"gte=0"`
}

// Order is the backend's view of a submitted order.
type Order struct {
	ID              string          `json:"id"`
	TrackingCode    string          `json:"trackingCode"`
	CustomerID      string          `json:"customerId"`
	Status          Status          `json:"status"`
	FulfillmentType FulfillmentType `json:"fulfillmentType"`
	ShippingScope   ShippingScope   `json:"shippingScope"`
	ServiceType     ServiceType     `json:"serviceType,omitempty"`
	Weight          float64         `json:"weight"`
	IsFragile       bool            `json:"isFragile"`
	IsUnusual       bool            `json:"isUnusual"`
	UnusualReason   string          `json:"unusualReason,omitempty"`
	Cost            float64         `json:"cost,omitempty"`
	FinalPrice      float64         `json:"finalPrice,omitempty"`
}

// Verification is the staff-checked physical description sent before approving a drop-off.
type Verification struct {
	Weight        float64 `json:"weight" validate:"gt=0"`
	IsFragile     bool    `json:"isFragile"`
	IsUnusual     bool    `json:"isUnusual"`
	UnusualReason string  `json:"unusualReason" validate:"required_if=IsUnusual true"`
}

// VerificationOf returns the order's current physical description.
func VerificationOf(o Order) Verification {
	return Verification{
		Weight:        o.Weight,
		IsFragile:     o.IsFragile,
		IsUnusual:     o.IsUnusual,
		UnusualReason: o.UnusualReason,
	}
}

// Actor is the signed-in caller of a workflow operation.
type Actor struct {
	SessionID string
	Token     string
}
