package dto

// SettingsResponse never exposes the secret password.
type SettingsResponse struct {
	LowStockThreshold int64 `json:"lowStockThreshold"`
	TotalInventory    int64 `json:"totalInventory"`
	TotalProduction   int64 `json:"totalProduction"`
}

// UpdateSettingsRequest body for PUT /api/settings (owner only).
// Nil fields are left unchanged.
type UpdateSettingsRequest struct {
	OwnerSecretPassword *string `json:"ownerSecretPassword"`
	LowStockThreshold   *int64  `json:"lowStockThreshold" validate:"omitempty,gte=0"`
}

// VerifySecretRequest body for POST /api/settings/verify-secret.
type VerifySecretRequest struct {
	SecretPassword string `json:"secretPassword" validate:"required"`
}

// VerifySecretResponse result of the secret check.
type VerifySecretResponse struct {
	Success bool `json:"success"`
}
