// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Azimov

package models

// LoginResponse is the successful login payload: a signed bearer token
// plus the safe projection of the authenticated account.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// DeleteResponse confirms an account deletion.
type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

// HealthResponse is returned by the root health-check endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// ErrorResponse is the single outbound error shape of the API.
// Details carries per-field validation messages when applicable and is
// omitted otherwise.
type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
