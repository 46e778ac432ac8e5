package commands_test

import (
	"context"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/directory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDirectoryUoW struct{ mock.Mock }

func (m *MockDirectoryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDirectoryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDirectoryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDirectoryUoW) HubRepository() ports.HubRepository {
	args := m.Called()
	return args.Get(0).(ports.HubRepository)
}

func (m *MockDirectoryUoW) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}

type MockDirectoryUoWFactory struct{ mock.Mock }

func (m *MockDirectoryUoWFactory) Create() commands.DirectoryUoW {
	args := m.Called()
	return args.Get(0).(commands.DirectoryUoW)
}

func TestCreateRouteCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateRouteCommand(
		kernel.NewUUID(), "RT-SEA-PDX", "Seattle to Portland", []string{"HUB-SEA-01", "HUB-PDX-01"})
	require.NoError(t, err)

	seattle, err := directory.NewHub(kernel.NewUUID(), "HUB-SEA-01", "Seattle North", "400 Pine St", "", 500)
	require.NoError(t, err)
	portland, err := directory.NewHub(kernel.NewUUID(), "HUB-PDX-01", "Portland East", "88 Oak St", "", 300)
	require.NoError(t, err)

	hubRepo := new(MockCreateHubRepository)
	routeRepo := new(MockCreateRouteRepository)
	uow := new(MockDirectoryUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("HubRepository").Return(hubRepo).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		hubRepo.On("GetByKey", ctx, "HUB-SEA-01").Return(seattle, nil).Once(),
		hubRepo.On("GetByKey", ctx, "HUB-PDX-01").Return(portland, nil).Once(),
		routeRepo.On("Add", ctx, mock.AnythingOfType("*directory.Route")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDirectoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateRouteCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	hubRepo.AssertExpectations(t)
	routeRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateRouteCommandHandler_Handle_UnknownHub(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateRouteCommand(
		kernel.NewUUID(), "RT-SEA-PDX", "Seattle to Portland", []string{"HUB-NOWHERE"})
	require.NoError(t, err)

	hubRepo := new(MockCreateHubRepository)
	routeRepo := new(MockCreateRouteRepository)
	uow := new(MockDirectoryUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("HubRepository").Return(hubRepo).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		hubRepo.On("GetByKey", ctx, "HUB-NOWHERE").Return(nil, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDirectoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateRouteCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnknownReference)
	routeRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}
