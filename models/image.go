// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Azimov

package models

// StoredImage is the result of uploading an avatar to object storage.
type StoredImage struct {
	// URL is the durable public URL of the uploaded object.
	URL string

	// Key is the opaque storage-side identifier required to delete the
	// object later. Never exposed to clients.
	Key string
}
