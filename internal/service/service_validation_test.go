package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/messagely/internal/mock"
	"github.com/MKhiriev/messagely/internal/validators"
	"github.com/MKhiriev/messagely/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserValidationService_RejectsBeforeInner(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockUserService(ctrl)
	svc := NewUserValidationService().Wrap(inner)
	ctx := context.Background()

	req := registerReq()
	req.Phone = ""
	_, err := svc.Register(ctx, req)
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, validators.ErrEmptyPhone)

	_, err = svc.Authenticate(ctx, "alice", "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Get(ctx, " ")
	assert.ErrorIs(t, err, ErrValidation)

	assert.ErrorIs(t, svc.RecordLogin(ctx, ""), ErrValidation)
}

func TestUserValidationService_PassesValidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockUserService(ctrl)
	svc := NewUserValidationService().Wrap(inner)
	ctx := context.Background()

	inner.EXPECT().Register(ctx, registerReq()).Return(models.User{Username: "alice"}, nil)
	inner.EXPECT().Authenticate(ctx, "alice", "secret").Return(true, nil)
	inner.EXPECT().ListAll(ctx).Return(nil, nil)

	user, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	ok, err := svc.Authenticate(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = svc.ListAll(ctx)
	require.NoError(t, err)
}

func TestMessageValidationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockMessageService(ctrl)
	svc := NewMessageValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.NewMessage{FromUsername: "alice", ToUsername: "bob"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, validators.ErrEmptyBody)

	_, err = svc.GetForPrincipal(ctx, "alice", 0)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.MarkReadForPrincipal(ctx, "bob", -1)
	assert.ErrorIs(t, err, ErrNotFound)

	valid := models.NewMessage{FromUsername: "alice", ToUsername: "bob", Body: "hi"}
	inner.EXPECT().Create(ctx, valid).Return(models.Message{ID: 1}, nil)
	inner.EXPECT().MarkReadForPrincipal(ctx, "bob", int64(1)).Return(models.ReadReceipt{ID: 1}, nil)

	msg, err := svc.Create(ctx, valid)
	require.NoError(t, err)
	assert.Equal(t, int64(1), msg.ID)

	receipt, err := svc.MarkReadForPrincipal(ctx, "bob", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), receipt.ID)
}
