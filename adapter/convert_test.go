package adapter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"github.com/eyalz800/maybe"
	"github.com/eyalz800/maybe/apis"
	"github.com/eyalz800/maybe/category"
)

type dialError int

const (
	dialOK dialError = iota
	dialRefused
	dialTimeout
)

var dialCategory = category.New("net.dial", func(c dialError) string {
	switch c {
	case dialOK:
		return category.NoError
	case dialRefused:
		return "connection refused"
	case dialTimeout:
		return "connection timed out"
	default:
		return "unknown dial error"
	}
})

func (dialError) Category() *category.Category { return &dialCategory }

func TestToDescriptor(t *testing.T) {
	e := maybe.NewError(dialRefused)
	st := apis.Status{HTTP: 502, GRPC: codes.Unavailable}

	d := ToDescriptor(e, st)
	assert.Equal(t, apis.ErrorDescriptor{
		Domain:     "net.dial",
		Code:       int(dialRefused),
		Message:    "connection refused",
		HTTPStatus: 502,
		GRPCCode:   int(codes.Unavailable),
	}, d)
}

func TestToDescriptor_NilError(t *testing.T) {
	d := ToDescriptor(nil, apis.Status{HTTP: 500, GRPC: codes.Internal})
	assert.Equal(t, apis.ErrorDescriptor{}, d)
}

func TestToView(t *testing.T) {
	v := ToView(maybe.NewError(dialTimeout))
	assert.Equal(t, apis.ErrorView{
		Domain:  "net.dial",
		Code:    int(dialTimeout),
		Message: "connection timed out",
	}, v)

	assert.Equal(t, apis.ErrorView{}, ToView(nil))
}

func TestToView_JSONShape(t *testing.T) {
	b, err := json.Marshal(ToView(maybe.NewError(dialRefused)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"domain":"net.dial","code":1,"message":"connection refused"}`, string(b))
}
