package domain

// Action is an operational transition the console may offer for an order.
type Action string

const (
	ActionNone            Action = ""
	ActionRequestApproval Action = "REQUEST_APPROVAL"
	ActionAcceptDropoff   Action = "ACCEPT_DROPOFF"
)

// Label is the button text for the action.
func (a Action) Label() string {
	switch a {
	case ActionRequestApproval:
		return "Request Approval"
	case ActionAcceptDropoff:
		return "Accept Dropoff"
	default:
		return ""
	}
}

type actionRule struct {
	fulfillment FulfillmentType
	status      Status
	scope       func(ShippingScope) bool
	action      Action
}

func anyScope(ShippingScope) bool { return true }

func inTown(s ShippingScope) bool { return s == ScopeTown }

func beyondTown(s ShippingScope) bool { return s != ScopeTown }

// actionTable maps (fulfillment, status, scope) to the single action offered.
// Combinations not listed offer nothing.
var actionTable = []actionRule{
	{fulfillment: FulfillmentPickup, status: StatusCreated, scope: inTown, action: ActionRequestApproval},
	{fulfillment: FulfillmentDropoff, status: StatusCreated, scope: anyScope, action: ActionRequestApproval},
	// The backend accepts out-of-town pickups through the drop-off acceptance endpoint.
	{fulfillment: FulfillmentPickup, status: StatusCreated, scope: beyondTown, action: ActionAcceptDropoff},
}

// AvailableAction returns the action offered for o, or ActionNone.
func AvailableAction(o Order) Action {
	for _, rule := range actionTable {
		if rule.fulfillment == o.FulfillmentType && rule.status == o.Status && rule.scope(o.ShippingScope) {
			return rule.action
		}
	}
	return ActionNone
}
