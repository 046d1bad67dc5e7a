// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// movie browser handlers.
//
// All Msg* constants are human-readable message strings that are written into
// response bodies or rendered forms to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording across pages.
package app

const (
	// MsgRequestFailed is the plain-text body answered when the movie
	// catalogue cannot serve a page.
	MsgRequestFailed = "Request failed"

	// MsgInvalidInformation is shown on the login form when the
	// username/password pair does not match a registered user.
	MsgInvalidInformation = "Invalid Information"

	// MsgUsernameTaken is shown on the signup form when the username is
	// already registered.
	MsgUsernameTaken = "Username already taken"

	// MsgInvalidSignup is shown on the signup form when the username or
	// password does not pass validation.
	MsgInvalidSignup = "Username must be 1 to 20 characters and password must not be empty"

	// MsgInvalidForm is returned when a form body cannot be parsed.
	MsgInvalidForm = "Invalid form was passed"
)
