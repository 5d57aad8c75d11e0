// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrEmptyAuthorizationHeader is written into the 401 response body by the
// auth middleware when the request carries no "Authorization" header at all.
// Every other header-shape failure comes from utils.ParseBearerToken.
var ErrEmptyAuthorizationHeader = errors.New("missing `Authorization` header")
