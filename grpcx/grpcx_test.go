package grpcx

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"github.com/eyalz800/maybe"
	"github.com/eyalz800/maybe/category"
	"github.com/eyalz800/maybe/mapper"
)

type authError int

const (
	authOK authError = iota
	authBadToken
	authExpired
)

var authCategory = category.New("auth.jwt", func(c authError) string {
	switch c {
	case authOK:
		return category.NoError
	case authBadToken:
		return "token signature invalid"
	case authExpired:
		return "token expired"
	default:
		return "unknown auth error"
	}
})

func (authError) Category() *category.Category { return &authCategory }

func newInterceptor(t *testing.T) grpc.UnaryServerInterceptor {
	t.Helper()
	m, err := mapper.New(
		mapper.WithGRPCDefault("auth.jwt", int(codes.Unauthenticated)),
		mapper.WithGRPCOverride("auth.jwt", int(authExpired), int(codes.PermissionDenied)),
	)
	require.NoError(t, err)
	return UnaryServerInterceptor(m)
}

func invoke(t *testing.T, icept grpc.UnaryServerInterceptor, handlerErr error) (any, error) {
	t.Helper()
	handler := func(ctx context.Context, req any) (any, error) {
		if handlerErr != nil {
			return nil, handlerErr
		}
		return "ok", nil
	}
	return icept(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/auth.v1.Auth/Verify"}, handler)
}

func TestInterceptor_MapsDescribedError(t *testing.T) {
	icept := newInterceptor(t)

	_, err := invoke(t, icept, maybe.NewError(authBadToken))
	require.Error(t, err)

	st, ok := gstatus.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Unauthenticated, st.Code())
	assert.Equal(t, "token signature invalid", st.Message())

	info, ok := ExtractErrorInfo(err)
	require.True(t, ok)
	assert.Equal(t, "CODE_1", info.GetReason())
	assert.Equal(t, "auth.jwt", info.GetDomain())
	assert.Equal(t, "1", info.GetMetadata()["code"])
}

func TestInterceptor_OverrideWins(t *testing.T) {
	icept := newInterceptor(t)

	_, err := invoke(t, icept, maybe.NewError(authExpired))
	require.Error(t, err)
	assert.Equal(t, codes.PermissionDenied, gstatus.Code(err))
}

func TestInterceptor_ForeignErrorPassesThrough(t *testing.T) {
	icept := newInterceptor(t)

	boom := errors.New("boom")
	_, err := invoke(t, icept, boom)
	assert.Same(t, boom, err)

	_, ok := ExtractErrorInfo(err)
	assert.False(t, ok)
}

func TestInterceptor_SuccessPassesThrough(t *testing.T) {
	icept := newInterceptor(t)

	resp, err := invoke(t, icept, nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}

func TestExtractErrorInfo_Negative(t *testing.T) {
	_, ok := ExtractErrorInfo(nil)
	assert.False(t, ok)

	bare := gstatus.Error(codes.Internal, "no details")
	_, ok = ExtractErrorInfo(bare)
	assert.False(t, ok)
}
