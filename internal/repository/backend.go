// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package repository

import "github.com/MKhiriev/arcent/models"

// ResolveBackend maps a profile to the backend serving it. Only an explicit
// local provider stays on the device; a missing profile goes remote.
func ResolveBackend(profile *models.UserProfile) models.Backend {
	if profile != nil && profile.Provider == models.ProviderLocal {
		return models.BackendLocal
	}
	return models.BackendRemote
}
