// Package http exposes the shipment lifecycle, user management and
// directory operations over a JSON REST API.
package http

import (
	"net/http"
	"strconv"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the use case handlers the server dispatches to.
type Handlers struct {
	CreateShipment     commands.CreateShipmentCommandHandler
	UpdateShipment     commands.UpdateShipmentCommandHandler
	TransitionShipment commands.TransitionShipmentCommandHandler
	AddShipmentEvent   commands.AddShipmentEventCommandHandler
	DeleteShipment     commands.DeleteShipmentCommandHandler

	RegisterUser       commands.RegisterUserCommandHandler
	ChangeUserPassword commands.ChangeUserPasswordCommandHandler
	UpdateUserProfile  commands.UpdateUserProfileCommandHandler
	ChangeUserRole     commands.ChangeUserRoleCommandHandler
	DeactivateUser     commands.DeactivateUserCommandHandler

	CreateHub   commands.CreateHubCommandHandler
	CreateRoute commands.CreateRouteCommandHandler

	AuthenticateUser  queries.AuthenticateUserQueryHandler
	GetShipment       queries.GetShipmentQueryHandler
	ListShipments     queries.ListShipmentsQueryHandler
	ListUsers         queries.ListUsersQueryHandler
	GetDashboardStats queries.GetDashboardStatsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates an HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts the API under /api/v1. Shipment lookup and login are
// public; everything else requires a bearer token, and user and directory
// management additionally require an admin or operations role.
func (s *Server) RegisterRoutes(e *echo.Echo, signer ports.TokenSigner) {
	api := e.Group("/api/v1")

	api.POST("/auth/login", s.Login)
	api.GET("/shipments/:trackingNumber", s.GetShipment)

	authed := api.Group("", AuthMiddleware(signer))
	authed.POST("/shipments", s.CreateShipment)
	authed.GET("/shipments", s.ListShipments)
	authed.PATCH("/shipments/:trackingNumber", s.UpdateShipment)
	authed.DELETE("/shipments/:trackingNumber", s.DeleteShipment)
	authed.POST("/shipments/:trackingNumber/transition", s.TransitionShipment)
	authed.POST("/shipments/:trackingNumber/events", s.AddShipmentEvent)
	authed.GET("/dashboard/stats", s.GetDashboardStats)
	authed.PUT("/users/:id/profile", s.UpdateUserProfile)
	authed.PUT("/users/:id/password", s.ChangeUserPassword)

	admin := authed.Group("", RequireRoles("admin"))
	admin.POST("/users", s.RegisterUser)
	admin.GET("/users", s.ListUsers)
	admin.PUT("/users/:id/role", s.ChangeUserRole)
	admin.DELETE("/users/:id", s.DeactivateUser)

	directory := authed.Group("", RequireRoles("admin", "operations"))
	directory.POST("/hubs", s.CreateHub)
	directory.POST("/routes", s.CreateRoute)
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req CreateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	sender, err := shipment.NewParty(req.Sender.Name, req.Sender.Phone, req.Sender.Address)
	if err != nil {
		return writeError(ctx, err)
	}
	receiver, err := shipment.NewParty(req.Receiver.Name, req.Receiver.Phone, req.Receiver.Address)
	if err != nil {
		return writeError(ctx, err)
	}
	weight, err := shipment.NewWeight(req.WeightKg)
	if err != nil {
		return writeError(ctx, err)
	}
	dimensions, err := shipment.NewDimensions(req.LengthCm, req.WidthCm, req.HeightCm)
	if err != nil {
		return writeError(ctx, err)
	}
	serviceType, err := shipment.ServiceTypeFromString(req.ServiceType)
	if err != nil {
		return writeError(ctx, err)
	}
	cost, err := kernel.NewMoneyFromFloat(req.Cost)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateShipmentCommand(
		sender, receiver, req.PackageDetails, weight, dimensions,
		serviceType, cost, req.HubKey, req.RouteKey, req.PickupDate)
	if err != nil {
		return writeError(ctx, err)
	}

	trackingNumber, err := s.handlers.CreateShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateShipmentResponse{
		TrackingNumber: trackingNumber.String(),
	})
}

// GetShipment handles GET /api/v1/shipments/{trackingNumber}. The endpoint
// is public so receivers can track their packages.
func (s *Server) GetShipment(ctx echo.Context) error {
	trackingNumber, err := kernel.NewTrackingNumber(ctx.Param("trackingNumber"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetShipmentQuery(trackingNumber)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.handlers.GetShipment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	events := make([]ShipmentEvent, len(result.Events))
	for i, event := range result.Events {
		events[i] = ShipmentEvent{
			Seq:         event.Seq,
			Status:      event.Status,
			Location:    event.Location,
			Description: event.Description,
			OccurredAt:  event.OccurredAt,
		}
	}

	return ctx.JSON(http.StatusOK, ShipmentResponse{
		TrackingNumber:    result.TrackingNumber,
		Sender:            PartyPayload{Name: result.SenderName, Phone: result.SenderPhone, Address: result.SenderAddress},
		Receiver:          PartyPayload{Name: result.ReceiverName, Phone: result.ReceiverPhone, Address: result.ReceiverAddress},
		PackageDetails:    result.PackageDetails,
		WeightKg:          result.WeightKg,
		LengthCm:          result.LengthCm,
		WidthCm:           result.WidthCm,
		HeightCm:          result.HeightCm,
		ServiceType:       result.ServiceType,
		Cost:              result.Cost,
		HubKey:            result.HubKey,
		RouteKey:          result.RouteKey,
		PickupDate:        result.PickupDate,
		EstimatedDelivery: result.EstimatedDelivery,
		ActualDelivery:    result.ActualDelivery,
		Status:            result.Status,
		CreatedAt:         result.CreatedAt,
		Events:            events,
	})
}

// ListShipments handles GET /api/v1/shipments.
func (s *Server) ListShipments(ctx echo.Context) error {
	skip, ok := intQueryParam(ctx, "skip")
	if !ok {
		return badRequest(ctx, "skip must be an integer")
	}
	limit, ok := intQueryParam(ctx, "limit")
	if !ok {
		return badRequest(ctx, "limit must be an integer")
	}

	query, err := queries.NewListShipmentsQuery(skip, limit, ctx.QueryParam("status"))
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.handlers.ListShipments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]ShipmentListItem, len(result.Shipments))
	for i, item := range result.Shipments {
		items[i] = ShipmentListItem{
			TrackingNumber:    item.TrackingNumber,
			SenderName:        item.SenderName,
			ReceiverName:      item.ReceiverName,
			ServiceType:       item.ServiceType,
			Status:            item.Status,
			HubKey:            item.HubKey,
			RouteKey:          item.RouteKey,
			EstimatedDelivery: item.EstimatedDelivery,
			CreatedAt:         item.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, ShipmentListResponse{
		Shipments: items,
		HasMore:   result.HasMore,
	})
}

// UpdateShipment handles PATCH /api/v1/shipments/{trackingNumber}.
func (s *Server) UpdateShipment(ctx echo.Context) error {
	trackingNumber, err := kernel.NewTrackingNumber(ctx.Param("trackingNumber"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateShipmentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	changes, err := changesFromRequest(req)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateShipmentCommand(trackingNumber, changes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.UpdateShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteShipment handles DELETE /api/v1/shipments/{trackingNumber}. The
// tracking number stays burned after deletion.
func (s *Server) DeleteShipment(ctx echo.Context) error {
	trackingNumber, err := kernel.NewTrackingNumber(ctx.Param("trackingNumber"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteShipmentCommand(trackingNumber)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.DeleteShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// TransitionShipment handles POST /api/v1/shipments/{trackingNumber}/transition.
func (s *Server) TransitionShipment(ctx echo.Context) error {
	trackingNumber, err := kernel.NewTrackingNumber(ctx.Param("trackingNumber"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req TransitionShipmentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := shipment.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewTransitionShipmentCommand(trackingNumber, target, req.Location, req.Description)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.TransitionShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AddShipmentEvent handles POST /api/v1/shipments/{trackingNumber}/events.
func (s *Server) AddShipmentEvent(ctx echo.Context) error {
	trackingNumber, err := kernel.NewTrackingNumber(ctx.Param("trackingNumber"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req AddShipmentEventRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAddShipmentEventCommand(trackingNumber, req.Location, req.Description)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.AddShipmentEvent.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

// Login handles POST /api/v1/auth/login. Failures are uniform: unknown
// email, wrong password and deactivated account all produce the same
// response.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	query, err := queries.NewAuthenticateUserQuery(req.Email, req.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.handlers.AuthenticateUser.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token:    result.Token,
		UserID:   result.UserID,
		Email:    result.Email,
		FullName: result.FullName,
		Role:     result.Role,
	})
}

// RegisterUser handles POST /api/v1/users.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var req RegisterUserRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	role, err := account.RoleFromString(req.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(userID, req.Email, req.FullName, role, req.Phone, req.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.RegisterUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, RegisterUserResponse{ID: userID.String()})
}

// ListUsers handles GET /api/v1/users.
func (s *Server) ListUsers(ctx echo.Context) error {
	skip, ok := intQueryParam(ctx, "skip")
	if !ok {
		return badRequest(ctx, "skip must be an integer")
	}
	limit, ok := intQueryParam(ctx, "limit")
	if !ok {
		return badRequest(ctx, "limit must be an integer")
	}

	query, err := queries.NewListUsersQuery(skip, limit)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.handlers.ListUsers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	users := make([]UserListItem, len(result.Users))
	for i, user := range result.Users {
		users[i] = UserListItem{
			ID:        user.ID.String(),
			Email:     user.Email,
			FullName:  user.FullName,
			Role:      user.Role,
			Phone:     user.Phone,
			IsActive:  user.IsActive,
			CreatedAt: user.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, UserListResponse{
		Users:   users,
		HasMore: result.HasMore,
	})
}

// UpdateUserProfile handles PUT /api/v1/users/{id}/profile.
func (s *Server) UpdateUserProfile(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateUserProfileRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateUserProfileCommand(userID, req.FullName, req.Phone)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.UpdateUserProfile.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ChangeUserPassword handles PUT /api/v1/users/{id}/password. The plaintext
// lives only in the request; it is hashed before anything is persisted.
func (s *Server) ChangeUserPassword(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req ChangeUserPasswordRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewChangeUserPasswordCommand(userID, req.NewPassword)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.ChangeUserPassword.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ChangeUserRole handles PUT /api/v1/users/{id}/role.
func (s *Server) ChangeUserRole(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req ChangeUserRoleRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	role, err := account.RoleFromString(req.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeUserRoleCommand(userID, role)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.ChangeUserRole.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeactivateUser handles DELETE /api/v1/users/{id}. Accounts are
// deactivated, never removed, so their history stays intact.
func (s *Server) DeactivateUser(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeactivateUserCommand(userID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.DeactivateUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CreateHub handles POST /api/v1/hubs.
func (s *Server) CreateHub(ctx echo.Context) error {
	var req CreateHubRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	hubID := kernel.NewUUID()
	cmd, err := commands.NewCreateHubCommand(hubID, req.Key, req.Name, req.Address, req.Phone, req.Capacity)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CreateHub.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: hubID.String()})
}

// CreateRoute handles POST /api/v1/routes.
func (s *Server) CreateRoute(ctx echo.Context) error {
	var req CreateRouteRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	routeID := kernel.NewUUID()
	cmd, err := commands.NewCreateRouteCommand(routeID, req.Key, req.Name, req.HubKeys)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CreateRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: routeID.String()})
}

// GetDashboardStats handles GET /api/v1/dashboard/stats.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	result, err := s.handlers.GetDashboardStats.Handle(
		ctx.Request().Context(), queries.NewGetDashboardStatsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DashboardStatsResponse{
		TotalShipments:     result.TotalShipments,
		ShipmentsByStatus:  result.ShipmentsByStatus,
		InTransitShipments: result.InTransitShipments,
		DeliveredShipments: result.DeliveredShipments,
		ActiveUsers:        result.ActiveUsers,
		Hubs:               result.Hubs,
		Routes:             result.Routes,
	})
}

// changesFromRequest validates the populated fields of an update request and
// converts them to domain values. Dimension fields travel together because
// the aggregate replaces them as one value.
func changesFromRequest(req UpdateShipmentRequest) (commands.ShipmentChanges, error) {
	var changes commands.ShipmentChanges

	if req.Sender != nil {
		sender, err := shipment.NewParty(req.Sender.Name, req.Sender.Phone, req.Sender.Address)
		if err != nil {
			return commands.ShipmentChanges{}, err
		}
		changes.Sender = &sender
	}
	if req.Receiver != nil {
		receiver, err := shipment.NewParty(req.Receiver.Name, req.Receiver.Phone, req.Receiver.Address)
		if err != nil {
			return commands.ShipmentChanges{}, err
		}
		changes.Receiver = &receiver
	}
	changes.PackageDetails = req.PackageDetails
	if req.WeightKg != nil {
		weight, err := shipment.NewWeight(*req.WeightKg)
		if err != nil {
			return commands.ShipmentChanges{}, err
		}
		changes.Weight = &weight
	}
	if req.LengthCm != nil || req.WidthCm != nil || req.HeightCm != nil {
		if req.LengthCm == nil || req.WidthCm == nil || req.HeightCm == nil {
			return commands.ShipmentChanges{}, errs.NewValueIsRequiredError("dimensions")
		}
		dimensions, err := shipment.NewDimensions(*req.LengthCm, *req.WidthCm, *req.HeightCm)
		if err != nil {
			return commands.ShipmentChanges{}, err
		}
		changes.Dimensions = &dimensions
	}
	if req.ServiceType != nil {
		serviceType, err := shipment.ServiceTypeFromString(*req.ServiceType)
		if err != nil {
			return commands.ShipmentChanges{}, err
		}
		changes.ServiceType = &serviceType
	}
	if req.Cost != nil {
		cost, err := kernel.NewMoneyFromFloat(*req.Cost)
		if err != nil {
			return commands.ShipmentChanges{}, err
		}
		changes.Cost = &cost
	}
	changes.PickupDate = req.PickupDate
	changes.HubKey = req.HubKey
	changes.RouteKey = req.RouteKey

	return changes, nil
}

// intQueryParam parses an optional integer query parameter; absence means zero.
func intQueryParam(ctx echo.Context, name string) (int, bool) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return value, true
}
