package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	identityMocks "studyspot/internal/domains/identity/mocks"
	"studyspot/internal/domains/identity/model"
	"studyspot/internal/domains/identity/model/dto"
	"studyspot/internal/domains/identity/service"
	"studyspot/infras/otel/mocks"
	"studyspot/shared/failure"
	"studyspot/shared/timezone"
)

func TestIdentityService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := identityMocks.NewMockIdentity(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	tests := []struct {
		name      string
		req       dto.RegisterRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful registration sets session",
			req: dto.RegisterRequest{
				Name:  "Maria Reyes",
				Email: "maria@example.com",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					GetAccounts(gomock.Any()).
					Return([]model.Account{}, nil)
				mockRepo.EXPECT().
					SaveAccounts(gomock.Any(), gomock.Any()).
					Return(nil)
				mockRepo.EXPECT().
					SetSession(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "duplicate email rejected",
			req: dto.RegisterRequest{
				Name:  "Maria Reyes",
				Email: "maria@example.com",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					GetAccounts(gomock.Any()).
					Return([]model.Account{
						{ID: "acc-1", Name: "Maria Reyes", Email: "maria@example.com", CreatedAt: timezone.Now()},
					}, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "email is trimmed before the duplicate check",
			req: dto.RegisterRequest{
				Name:  "Maria Reyes",
				Email: "  maria@example.com  ",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					GetAccounts(gomock.Any()).
					Return([]model.Account{
						{ID: "acc-1", Name: "Maria Reyes", Email: "maria@example.com", CreatedAt: timezone.Now()},
					}, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "registry load error",
			req: dto.RegisterRequest{
				Name:  "Maria Reyes",
				Email: "maria@example.com",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					GetAccounts(gomock.Any()).
					Return(nil, errors.New("storage error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Register(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.ID)
				assert.Equal(t, tt.req.Name, res.Name)
				assert.False(t, res.IsDemo)
			}
		})
	}
}

func TestIdentityService_RegisterAssignsUniqueIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := identityMocks.NewMockIdentity(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().GetAccounts(gomock.Any()).Return([]model.Account{}, nil).Times(2)
	mockRepo.EXPECT().SaveAccounts(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	mockRepo.EXPECT().SetSession(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	first, err := svc.Register(context.Background(), dto.RegisterRequest{Name: "A", Email: "a@example.com"})
	assert.NoError(t, err)

	second, err := svc.Register(context.Background(), dto.RegisterRequest{Name: "B", Email: "b@example.com"})
	assert.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestIdentityService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := identityMocks.NewMockIdentity(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	registered := []model.Account{
		{ID: "acc-1", Name: "Maria Reyes", Email: "maria@example.com", CreatedAt: timezone.Now()},
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   bool
		wantCode  int
		wantID    string
	}{
		{
			name: "known email adopts account as session",
			req:  dto.LoginRequest{Email: "maria@example.com"},
			setupMock: func() {
				mockRepo.EXPECT().GetAccounts(gomock.Any()).Return(registered, nil)
				mockRepo.EXPECT().SetSession(gomock.Any(), registered[0]).Return(nil)
			},
			wantID: "acc-1",
		},
		{
			name: "unknown email fails with not found",
			req:  dto.LoginRequest{Email: "nobody@example.com"},
			setupMock: func() {
				mockRepo.EXPECT().GetAccounts(gomock.Any()).Return(registered, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "empty registry fails with not found",
			req:  dto.LoginRequest{Email: "maria@example.com"},
			setupMock: func() {
				mockRepo.EXPECT().GetAccounts(gomock.Any()).Return([]model.Account{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, res.ID)
			}
		})
	}
}

func TestIdentityService_LoginMissThenRegisterSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := identityMocks.NewMockIdentity(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	ctx := context.Background()

	mockRepo.EXPECT().GetAccounts(gomock.Any()).Return([]model.Account{}, nil)

	_, err := svc.Login(ctx, dto.LoginRequest{Email: "new@example.com"})
	assert.Equal(t, 404, failure.GetCode(err))

	mockRepo.EXPECT().GetAccounts(gomock.Any()).Return([]model.Account{}, nil)
	mockRepo.EXPECT().SaveAccounts(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().SetSession(gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.Register(ctx, dto.RegisterRequest{Name: "New User", Email: "new@example.com"})
	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", res.Email)
}

func TestIdentityService_QuickLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := identityMocks.NewMockIdentity(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	req := dto.QuickLoginRequest{
		ID:     "demo-1",
		Name:   "Maria Reyes",
		Email:  "maria@studyspot.demo",
		IsDemo: true,
	}

	// the account object is adopted as-is, no registry lookup happens
	mockRepo.EXPECT().
		SetSession(gomock.Any(), model.Account{ID: "demo-1", Name: "Maria Reyes", Email: "maria@studyspot.demo", IsDemo: true}).
		Return(nil)

	res, err := svc.QuickLogin(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, "demo-1", res.ID)
	assert.True(t, res.IsDemo)
}

func TestIdentityService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := identityMocks.NewMockIdentity(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	// logout clears the session record and nothing else
	mockRepo.EXPECT().ClearSession(gomock.Any()).Return(nil)

	assert.NoError(t, svc.Logout(context.Background()))
}

func TestIdentityService_Session(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := identityMocks.NewMockIdentity(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantAuth  bool
	}{
		{
			name: "active session",
			setupMock: func() {
				mockRepo.EXPECT().
					GetSession(gomock.Any()).
					Return(model.Account{ID: "acc-1", Name: "Maria", Email: "maria@example.com"}, true, nil)
			},
			wantAuth: true,
		},
		{
			name: "no session",
			setupMock: func() {
				mockRepo.EXPECT().
					GetSession(gomock.Any()).
					Return(model.Account{}, false, nil)
			},
			wantAuth: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Session(context.Background())

			assert.NoError(t, err)
			assert.Equal(t, tt.wantAuth, res.Authenticated)
			if tt.wantAuth {
				assert.NotNil(t, res.Account)
			} else {
				assert.Nil(t, res.Account)
			}
		})
	}
}

func TestIdentityService_GetAllUsersIncludesDemoSeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := identityMocks.NewMockIdentity(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().GetAccounts(gomock.Any()).Return([]model.Account{
		{ID: "acc-1", Name: "Maria", Email: "maria@example.com"},
	}, nil)

	res, err := svc.GetAllUsers(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, len(model.DemoAccounts())+1, res.TotalData)
}

func TestIdentityService_GetDemoUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := identityMocks.NewMockIdentity(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	res, err := svc.GetDemoUsers(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, len(model.DemoAccounts()), res.TotalData)
	for _, account := range res.Accounts {
		assert.True(t, account.IsDemo)
	}
}
