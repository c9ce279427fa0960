package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/gobarber/internal/dto"
	"github.com/BruksfildServices01/gobarber/internal/httperr"
	"github.com/BruksfildServices01/gobarber/internal/httpresp"
	"github.com/BruksfildServices01/gobarber/internal/middleware"
	ucUser "github.com/BruksfildServices01/gobarber/internal/usecase/user"
	"github.com/BruksfildServices01/gobarber/internal/validators"
)

type ProfileHandler struct {
	show      *ucUser.ShowProfile
	update    *ucUser.UpdateProfile
	validator *validators.Validator
	urls      dto.AvatarURLer
	log       *zap.Logger
}

func NewProfileHandler(
	show *ucUser.ShowProfile,
	update *ucUser.UpdateProfile,
	validator *validators.Validator,
	urls dto.AvatarURLer,
	log *zap.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		show:      show,
		update:    update,
		validator: validator,
		urls:      urls,
		log:       log,
	}
}

// UpdateProfileRequest leaves name and email unchanged when omitted.
type UpdateProfileRequest struct {
	Name                 *string `json:"name"`
	Email                *string `json:"email"`
	OldPassword          string  `json:"old_password"`
	Password             string  `json:"password"`
	PasswordConfirmation string  `json:"password_confirmation"`
}

func (h *ProfileHandler) Show(c *gin.Context) {
	u, err := h.show.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.NewUser(u, h.urls))
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := bindJSON(c, h.validator, validators.UpdateProfileSchema, &req); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	u, err := h.update.Execute(c.Request.Context(), ucUser.UpdateProfileInput{
		UserID:      middleware.UserID(c),
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		OldPassword: req.OldPassword,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.NewUser(u, h.urls))
}
