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

// Package httpx renders errors as HTTP responses in the google.rpc.Status
// JSON shape, with the status code resolved through an apis.Mapper.
package httpx

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/durationpb"

	"github.com/eyalz800/maybe"
	"github.com/eyalz800/maybe/apis"
	"github.com/eyalz800/maybe/domain"
)

// Meta carries extra context the HTTP layer can add on top of the error.
// All fields are optional and typically come from request context, headers
// or rate-limiter output.
type Meta struct {
	// Correlation is a client/server correlation token (request ID,
	// idempotency key). Added to the ErrorInfo metadata when set.
	Correlation string

	// RetryAfterSeconds, when positive, emits a Retry-After header and a
	// google.rpc.RetryInfo detail.
	RetryAfterSeconds int32
}

// Writer is a thin adapter that turns a maybe.Error into an HTTP response
// using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write serializes the error as google.rpc.Status JSON and writes it to
// the response writer. The HTTP status is resolved via the Mapper; the
// embedded grpc code mirrors what the gRPC edge would return for the same
// error, so clients see one consistent classification on both transports.
//
// Successful errors produce no output: there is nothing to report.
//
// No redaction is performed here — whatever the error and Meta contain is
// exposed as-is. Higher-level handlers apply policy if needed.
func (w Writer) Write(rw http.ResponseWriter, e maybe.Error, meta Meta) {
	if e.Success() {
		return
	}

	st := w.Mapper.Status(domain.FromName(e.Domain()), e.Code())

	pb := &spb.Status{
		Code:    int32(st.GRPC),
		Message: e.Message(),
	}

	info := &errdetails.ErrorInfo{
		Reason:   codeReason(e.Code()),
		Domain:   e.Domain(),
		Metadata: map[string]string{"code": strconv.Itoa(e.Code())},
	}
	if meta.Correlation != "" {
		info.Metadata["correlation"] = meta.Correlation
	}
	if detail, err := anypb.New(info); err == nil {
		pb.Details = append(pb.Details, detail)
	}

	if meta.RetryAfterSeconds > 0 {
		retry := &errdetails.RetryInfo{
			RetryDelay: durationpb.New(time.Duration(meta.RetryAfterSeconds) * time.Second),
		}
		if detail, err := anypb.New(retry); err == nil {
			pb.Details = append(pb.Details, detail)
		}
	}

	rw.Header().Set("Content-Type", "application/json")
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(int(meta.RetryAfterSeconds)))
	}
	rw.WriteHeader(st.HTTP)

	// protojson must be used here: encoding/json would not serialize the
	// Any-typed details or well-known types correctly.
	b, _ := (protojson.MarshalOptions{
		EmitUnpopulated: false,
		UseProtoNames:   false, // use json_name
	}).Marshal(pb)
	_, _ = rw.Write(b)
}

// codeReason renders a raw code as an AIP-193 style UPPER_SNAKE reason
// identifier. Codes are plain integers, so the identifier is synthetic.
func codeReason(code int) string {
	return fmt.Sprintf("CODE_%d", code)
}
