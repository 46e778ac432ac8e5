package commands_test

import (
	"context"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const registeredHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type MockRegisterUserRepository struct{ mock.Mock }

func (m *MockRegisterUserRepository) Add(ctx context.Context, u *account.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRegisterUserRepository) Update(ctx context.Context, u *account.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRegisterUserRepository) Get(ctx context.Context, id kernel.UUID) (*account.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

func (m *MockRegisterUserRepository) GetByEmail(ctx context.Context, email string) (*account.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

type MockRegisterUserUoW struct{ mock.Mock }

func (m *MockRegisterUserUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRegisterUserUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRegisterUserUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRegisterUserUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockRegisterUserUoWFactory struct{ mock.Mock }

func (m *MockRegisterUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(plaintext string) (string, error) {
	args := m.Called(plaintext)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Verify(hash, candidate string) (bool, error) {
	args := m.Called(hash, candidate)
	return args.Bool(0), args.Error(1)
}

func TestRegisterUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(
		userID, "ops@example.com", "Sam Carter", account.RoleOperations, "", "s3cret-pass")
	require.NoError(t, err)

	hasher := new(MockPasswordHasher)
	userRepo := new(MockRegisterUserRepository)
	uow := new(MockRegisterUserUoW)

	mock.InOrder(
		hasher.On("Hash", "s3cret-pass").Return(registeredHash, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Add", ctx, mock.AnythingOfType("*account.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRegisterUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterUserCommandHandler(factory, hasher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	added := userRepo.Calls[0].Arguments.Get(1).(*account.User)
	assert.True(t, added.ID().IsEqual(userID))
	assert.Equal(t, registeredHash, added.Credential().Hash())
	assert.True(t, added.IsActive())
	hasher.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(), "ops@example.com", "Sam Carter", account.RoleOperations, "", "s3cret-pass")
	require.NoError(t, err)

	hasher := new(MockPasswordHasher)
	userRepo := new(MockRegisterUserRepository)
	uow := new(MockRegisterUserUoW)

	mock.InOrder(
		hasher.On("Hash", "s3cret-pass").Return(registeredHash, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Add", ctx, mock.AnythingOfType("*account.User")).
			Return(errs.NewDuplicateValueError("email", "ops@example.com")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRegisterUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterUserCommandHandler(factory, hasher)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrDuplicateValue)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestRegisterUserCommandHandler_Handle_WeakInput(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(), "ops@example.com", "Sam Carter", account.RoleOperations, "", "x")
	require.NoError(t, err)

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "x").Return("", errs.NewInvalidCredentialInputError(assert.AnError)).Once()

	factory := new(MockRegisterUserUoWFactory)
	handler := commands.NewRegisterUserCommandHandler(factory, hasher)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidCredentialInput)
	factory.AssertNotCalled(t, "Create")
}
