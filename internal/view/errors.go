// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package view

import "errors"

var ErrUnknownPage = errors.New("unknown page")
