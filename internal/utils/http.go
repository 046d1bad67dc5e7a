// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
)

// WritePlainText writes body as an undecorated text/plain response with the
// given status code.
//
// Returns the number of bytes written and the write error, if any.
//
// Example usage:
//
//	utils.WritePlainText(w, "Request failed", http.StatusOK)
func WritePlainText(w http.ResponseWriter, body string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)

	return w.Write([]byte(body))
}

// Redirect answers with 302 Found pointing at location.
func Redirect(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusFound)
}
