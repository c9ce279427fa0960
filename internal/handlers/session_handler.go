package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/gobarber/internal/dto"
	"github.com/BruksfildServices01/gobarber/internal/httperr"
	"github.com/BruksfildServices01/gobarber/internal/httpresp"
	ucUser "github.com/BruksfildServices01/gobarber/internal/usecase/user"
	"github.com/BruksfildServices01/gobarber/internal/validators"
)

type SessionHandler struct {
	authenticate *ucUser.AuthenticateUser
	validator    *validators.Validator
	urls         dto.AvatarURLer
	log          *zap.Logger
}

func NewSessionHandler(
	authenticate *ucUser.AuthenticateUser,
	validator *validators.Validator,
	urls dto.AvatarURLer,
	log *zap.Logger,
) *SessionHandler {
	return &SessionHandler{
		authenticate: authenticate,
		validator:    validator,
		urls:         urls,
		log:          log,
	}
}

type CreateSessionRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *SessionHandler) Create(c *gin.Context) {
	var req CreateSessionRequest
	if err := bindJSON(c, h.validator, validators.CreateSessionSchema, &req); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	out, err := h.authenticate.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.SessionDTO{
		User:  dto.NewUser(out.User, h.urls),
		Token: out.Token,
	})
}
