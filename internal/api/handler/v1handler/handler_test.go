package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"uuid62/internal/api/handler/v1handler"
	"uuid62/pkg/logger"
	"uuid62/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newHandler() *v1handler.Handler {
	return v1handler.New(v1handler.Deps{}, v1handler.DefaultOptions())
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	res := newHandler().NewError(context.Background(), errors.New("boom"))
	require.NotNil(t, res)
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	// Pass the Kind sentinel directly
	res := newHandler().NewError(context.Background(), serrors.ErrNotFound)
	require.Equal(t, 404, res.StatusCode)
	require.Equal(t, serrors.ErrNotFound.Error(), res.Response.Code)
	require.Equal(t, "resource not found", res.Response.Message)
}

func TestNewError_SemanticWithMessage_BadRequest(t *testing.T) {
	err := serrors.With(serrors.ErrBadRequest, "invalid id %q", "abc")
	res := newHandler().NewError(context.Background(), err)
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Response.Code)
	require.Equal(t, `invalid id "abc"`, res.Response.Message)
}

func TestNewError_WrappedConflict(t *testing.T) {
	cause := errors.New("duplicate key")
	err := fmt.Errorf("could not add entry: %w",
		serrors.Wrap(serrors.ErrConflict, cause, "entry 45u546Dsoz0Tm4GxDxj9qZ already exists"))
	res := newHandler().NewError(context.Background(), err)
	require.Equal(t, 409, res.StatusCode)
	require.Equal(t, serrors.ErrConflict.Error(), res.Response.Code)
	// Should include provided message, not the cause
	require.Equal(t, "entry 45u546Dsoz0Tm4GxDxj9qZ already exists", res.Response.Message)
}

func TestNewError_InternalKind_GeneratesInternal(t *testing.T) {
	res := newHandler().NewError(context.Background(),
		serrors.Wrap(serrors.ErrInternal, errors.New("secret detail"), "storage exploded"))
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_DeadlineExceeded(t *testing.T) {
	res := newHandler().NewError(context.Background(), fmt.Errorf("could not list entries: %w", context.DeadlineExceeded))
	require.Equal(t, 504, res.StatusCode)
	require.Equal(t, serrors.ErrTimeout.Error(), res.Response.Code)
}
