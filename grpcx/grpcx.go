/*
   Copyright 2025 The Maybe Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package grpcx maps errors flowing out of gRPC handlers into status
// errors carrying a google.rpc.ErrorInfo detail, with the status code
// resolved through an apis.Mapper.
package grpcx

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"

	"github.com/eyalz800/maybe/apis"
	"github.com/eyalz800/maybe/domain"
)

// UnaryServerInterceptor returns a gRPC interceptor that converts any
// returned apis.DescribedError (maybe.Error included) into a gRPC status
// error. The detail carries the error family as ErrorInfo.Domain and the
// raw integer code in the metadata, so clients can recover the full
// (domain, code) identity.
//
// Errors that do not implement apis.DescribedError pass through untouched.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var de apis.DescribedError
		if !errors.As(err, &de) {
			// Not ours — return as-is.
			return nil, err
		}

		st := m.Status(domain.FromName(de.Domain()), de.Code())
		base := gstatus.New(st.GRPC, de.Message())

		detail := &errdetails.ErrorInfo{
			Reason:   codeReason(de.Code()),
			Domain:   de.Domain(),
			Metadata: map[string]string{"code": strconv.Itoa(de.Code())},
		}

		// Attach the detail when possible; fall back to the bare status.
		if with, werr := base.WithDetails(detail); werr == nil {
			return nil, with.Err()
		}
		return nil, base.Err()
	}
}

// ExtractErrorInfo pulls the google.rpc.ErrorInfo detail out of a gRPC
// error, if present. Useful in clients and tests.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info, true
		}
	}
	return nil, false
}

// codeReason renders a raw code as an AIP-193 style UPPER_SNAKE reason
// identifier. Codes are plain integers, so the identifier is synthetic.
func codeReason(code int) string {
	return fmt.Sprintf("CODE_%d", code)
}
