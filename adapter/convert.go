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

// Package adapter converts errors and resolved transport statuses into the
// portable view types of the apis package.
package adapter

import (
	"github.com/eyalz800/maybe/apis"
)

// ToDescriptor combines an error with its resolved transport statuses into
// a flat ErrorDescriptor, suitable for structured logging, tracing or
// message-bus propagation.
func ToDescriptor(e apis.DescribedError, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	return apis.ErrorDescriptor{
		Domain:     e.Domain(),
		Code:       e.Code(),
		Message:    e.Message(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
	}
}

// ToView projects an error onto the public ErrorView shape. No redaction
// or filtering is performed; it exposes exactly what the error reports.
func ToView(e apis.DescribedError) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	return apis.ErrorView{
		Domain:  e.Domain(),
		Code:    e.Code(),
		Message: e.Message(),
	}
}
