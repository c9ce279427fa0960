package user

import "github.com/BruksfildServices01/gobarber/internal/httperr"

var (
	errUserNotFound       = httperr.NotFound("user_not_found", "User not found.")
	errEmailUsed          = httperr.Conflict("email_already_used", "E-mail already in use.")
	errInvalidCredentials = httperr.Unauthorized("invalid_credentials", "Incorrect email/password combination.")
	errOldPasswordMissing = httperr.Validation("old_password_required", "You need to inform the old password to set a new password.")
	errOldPasswordWrong   = httperr.Validation("old_password_mismatch", "Old password does not match.")
	errAvatarUnauthorized = httperr.Unauthorized("avatar_unauthorized", "Only authenticated users can change avatar.")
	errInvalidImage       = httperr.Validation("invalid_image", "Avatar must be a PNG, JPEG or WebP image.")
)
