package rest

import (
	"errors"

	domainSession "github.com/dfjacobs/tropo-gateway/domains/session"
	pkgError "github.com/dfjacobs/tropo-gateway/pkg/error"
	"github.com/dfjacobs/tropo-gateway/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type SessionController struct {
	Service domainSession.ISessionUsecase
}

func InitRestSession(app fiber.Router, service domainSession.ISessionUsecase) (SessionController, error) {
	rest := SessionController{Service: service}

	name, err := utils.RouteName(&rest)
	if err != nil {
		return rest, err
	}
	group := app.Group("/" + name)

	group.Post("/", rest.CreateSession)
	group.Post("/:session_id/signal", rest.Signal)
	group.Post("/:session_id/signal/async", rest.SignalAsync)
	group.Get("/:session_id/signal/url", rest.SignalURL)
	return rest, nil
}

func (controller *SessionController) Signal(c *fiber.Ctx) error {
	var request domainSession.SignalRequest
	if err := c.BodyParser(&request); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return c.Status(400).JSON(utils.ResponseData{Status: 400, Code: "INVALID_REQUEST", Message: err.Error()})
	}

	request.SessionID = c.Params("session_id")
	if request.Event == "" {
		request.Event = c.Query("event")
	}

	response, err := controller.Service.Signal(c.UserContext(), request)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Signal " + response.Event + " sent to session " + response.SessionID,
		Results: response,
	})
}

func (controller *SessionController) SignalAsync(c *fiber.Ctx) error {
	var request domainSession.SignalRequest
	if err := c.BodyParser(&request); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return c.Status(400).JSON(utils.ResponseData{Status: 400, Code: "INVALID_REQUEST", Message: err.Error()})
	}

	request.SessionID = c.Params("session_id")
	if request.Event == "" {
		request.Event = c.Query("event")
	}

	response, err := controller.Service.SignalAsync(c.UserContext(), request)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Signal " + response.Event + " sent to session " + response.SessionID,
		Results: response,
	})
}

func (controller *SessionController) SignalURL(c *fiber.Ctx) error {
	request := domainSession.SignalRequest{
		SessionID: c.Params("session_id"),
		Event:     c.Query("event"),
	}

	response, err := controller.Service.SignalURL(c.UserContext(), request)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Signal URL built",
		Results: response,
	})
}

func (controller *SessionController) CreateSession(c *fiber.Ctx) error {
	var request domainSession.CreateRequest
	if err := c.BodyParser(&request); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return c.Status(400).JSON(utils.ResponseData{Status: 400, Code: "INVALID_REQUEST", Message: err.Error()})
	}

	handle, err := controller.Service.CreateSession(c.UserContext(), request)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Session created",
		Results: handle,
	})
}

func errorResponse(c *fiber.Ctx, err error) error {
	var generic pkgError.GenericError
	if errors.As(err, &generic) {
		return c.Status(generic.StatusCode()).JSON(utils.ResponseData{
			Status:  generic.StatusCode(),
			Code:    generic.ErrCode(),
			Message: generic.Error(),
		})
	}
	return c.Status(500).JSON(utils.ResponseData{Status: 500, Code: "INTERNAL_SERVER_ERROR", Message: err.Error()})
}
