package response_models

import "schoolpay/internal/models/db_models"

type AuthResponse struct {
	User  *db_models.User `json:"user"`
	Token string          `json:"token"`
}
