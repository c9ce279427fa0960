package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/gobarber/internal/dto"
	"github.com/BruksfildServices01/gobarber/internal/httperr"
	"github.com/BruksfildServices01/gobarber/internal/httpresp"
	"github.com/BruksfildServices01/gobarber/internal/imaging"
	"github.com/BruksfildServices01/gobarber/internal/middleware"
	ucUser "github.com/BruksfildServices01/gobarber/internal/usecase/user"
	"github.com/BruksfildServices01/gobarber/internal/validators"
)

// multipart framing on top of the largest accepted image
const maxAvatarRequestBytes = imaging.MaxUploadBytes + 1<<20

type UserHandler struct {
	createUser   *ucUser.CreateUser
	updateAvatar *ucUser.UpdateUserAvatar
	validator    *validators.Validator
	urls         dto.AvatarURLer
	log          *zap.Logger
}

func NewUserHandler(
	createUser *ucUser.CreateUser,
	updateAvatar *ucUser.UpdateUserAvatar,
	validator *validators.Validator,
	urls dto.AvatarURLer,
	log *zap.Logger,
) *UserHandler {
	return &UserHandler{
		createUser:   createUser,
		updateAvatar: updateAvatar,
		validator:    validator,
		urls:         urls,
		log:          log,
	}
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := bindJSON(c, h.validator, validators.CreateUserSchema, &req); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	u, err := h.createUser.Execute(c.Request.Context(), ucUser.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.Created(c, dto.NewUser(u, h.urls))
}

// UpdateAvatar expects a multipart form with the image in the "avatar" field.
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxAvatarRequestBytes)

	file, err := c.FormFile("avatar")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.Respond(c, h.log, httperr.Validation("avatar_too_large", "Avatar upload is too large."))
			return
		}
		httperr.Respond(c, h.log, httperr.ValidationFields(
			"invalid_request",
			"avatar: is required",
			map[string]string{"avatar": "is required"},
		))
		return
	}

	f, err := file.Open()
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	defer f.Close()

	u, err := h.updateAvatar.Execute(c.Request.Context(), middleware.UserID(c), f)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.NewUser(u, h.urls))
}
