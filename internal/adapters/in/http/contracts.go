package http

import "time"

// Error is the JSON body returned on every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PartyPayload carries one side of a shipment in requests and responses.
type PartyPayload struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CreateShipmentRequest is the body of POST /api/v1/shipments.
type CreateShipmentRequest struct {
	Sender         PartyPayload `json:"sender"`
	Receiver       PartyPayload `json:"receiver"`
	PackageDetails string       `json:"package_details"`
	WeightKg       float64      `json:"weight_kg"`
	LengthCm       float64      `json:"length_cm"`
	WidthCm        float64      `json:"width_cm"`
	HeightCm       float64      `json:"height_cm"`
	ServiceType    string       `json:"service_type"`
	Cost           float64      `json:"cost"`
	HubKey         string       `json:"hub_key,omitempty"`
	RouteKey       string       `json:"route_key,omitempty"`
	PickupDate     *time.Time   `json:"pickup_date,omitempty"`
}

// CreateShipmentResponse returns the generated tracking number.
type CreateShipmentResponse struct {
	TrackingNumber string `json:"tracking_number"`
}

// UpdateShipmentRequest is the body of PATCH /api/v1/shipments/{trackingNumber}.
// Absent fields are left unchanged.
type UpdateShipmentRequest struct {
	Sender         *PartyPayload `json:"sender,omitempty"`
	Receiver       *PartyPayload `json:"receiver,omitempty"`
	PackageDetails *string       `json:"package_details,omitempty"`
	WeightKg       *float64      `json:"weight_kg,omitempty"`
	LengthCm       *float64      `json:"length_cm,omitempty"`
	WidthCm        *float64      `json:"width_cm,omitempty"`
	HeightCm       *float64      `json:"height_cm,omitempty"`
	ServiceType    *string       `json:"service_type,omitempty"`
	Cost           *float64      `json:"cost,omitempty"`
	PickupDate     *time.Time    `json:"pickup_date,omitempty"`
	HubKey         *string       `json:"hub_key,omitempty"`
	RouteKey       *string       `json:"route_key,omitempty"`
}

// TransitionShipmentRequest is the body of POST /api/v1/shipments/{trackingNumber}/transition.
type TransitionShipmentRequest struct {
	Status      string `json:"status"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

// AddShipmentEventRequest is the body of POST /api/v1/shipments/{trackingNumber}/events.
type AddShipmentEventRequest struct {
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

// ShipmentEvent is one checkpoint in a shipment's history.
type ShipmentEvent struct {
	Seq         int       `json:"seq"`
	Status      string    `json:"status"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// ShipmentResponse is the full read model of one shipment.
type ShipmentResponse struct {
	TrackingNumber    string          `json:"tracking_number"`
	Sender            PartyPayload    `json:"sender"`
	Receiver          PartyPayload    `json:"receiver"`
	PackageDetails    string          `json:"package_details"`
	WeightKg          float64         `json:"weight_kg"`
	LengthCm          float64         `json:"length_cm"`
	WidthCm           float64         `json:"width_cm"`
	HeightCm          float64         `json:"height_cm"`
	ServiceType       string          `json:"service_type"`
	Cost              float64         `json:"cost"`
	HubKey            string          `json:"hub_key,omitempty"`
	RouteKey          string          `json:"route_key,omitempty"`
	PickupDate        *time.Time      `json:"pickup_date,omitempty"`
	EstimatedDelivery *time.Time      `json:"estimated_delivery,omitempty"`
	ActualDelivery    *time.Time      `json:"actual_delivery,omitempty"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	Events            []ShipmentEvent `json:"events"`
}

// ShipmentListItem is the compact row shape of the shipment list.
type ShipmentListItem struct {
	TrackingNumber    string     `json:"tracking_number"`
	SenderName        string     `json:"sender_name"`
	ReceiverName      string     `json:"receiver_name"`
	ServiceType       string     `json:"service_type"`
	Status            string     `json:"status"`
	HubKey            string     `json:"hub_key,omitempty"`
	RouteKey          string     `json:"route_key,omitempty"`
	EstimatedDelivery *time.Time `json:"estimated_delivery,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// ShipmentListResponse is one page of shipments.
type ShipmentListResponse struct {
	Shipments []ShipmentListItem `json:"shipments"`
	HasMore   bool               `json:"has_more"`
}

// LoginRequest is the body of POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse returns the bearer token and the authenticated user's profile.
type LoginResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// RegisterUserRequest is the body of POST /api/v1/users.
type RegisterUserRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

// RegisterUserResponse returns the new user's identifier.
type RegisterUserResponse struct {
	ID string `json:"id"`
}

// UpdateUserProfileRequest is the body of PUT /api/v1/users/{id}/profile.
type UpdateUserProfileRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
}

// ChangeUserPasswordRequest is the body of PUT /api/v1/users/{id}/password.
type ChangeUserPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// ChangeUserRoleRequest is the body of PUT /api/v1/users/{id}/role.
type ChangeUserRoleRequest struct {
	Role string `json:"role"`
}

// UserListItem is one row of the user list. Credential material is never
// part of any response.
type UserListItem struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// UserListResponse is one page of users.
type UserListResponse struct {
	Users   []UserListItem `json:"users"`
	HasMore bool           `json:"has_more"`
}

// CreateHubRequest is the body of POST /api/v1/hubs.
type CreateHubRequest struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone,omitempty"`
	Capacity int    `json:"capacity"`
}

// CreateRouteRequest is the body of POST /api/v1/routes.
type CreateRouteRequest struct {
	Key     string   `json:"key"`
	Name    string   `json:"name"`
	HubKeys []string `json:"hub_keys"`
}

// CreatedResponse returns the identifier of a newly created directory entry.
type CreatedResponse struct {
	ID string `json:"id"`
}

// DashboardStatsResponse is the operational snapshot served to back-office
// dashboards.
type DashboardStatsResponse struct {
	TotalShipments     int            `json:"total_shipments"`
	ShipmentsByStatus  map[string]int `json:"shipments_by_status"`
	InTransitShipments int            `json:"in_transit_shipments"`
	DeliveredShipments int            `json:"delivered_shipments"`
	ActiveUsers        int            `json:"active_users"`
	Hubs               int            `json:"hubs"`
	Routes             int            `json:"routes"`
}
