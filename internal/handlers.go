package internal

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"github.com/hbenali/comptoir/internal/model"
)

type Handlers struct {
	Service IService
	secret  string
	logger  *zap.SugaredLogger
}

func NewHandlers(service IService, secret string, logger *zap.SugaredLogger) *Handlers {
	return &Handlers{Service: service, secret: secret, logger: logger}
}

type statusUpdateInput struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	Notes         string `json:"notes"`
}

type cancelInput struct {
	Reason string `json:"reason"`
}

func (h *Handlers) UpdateOrderStatus(c *fiber.Ctx) error {
	orderID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	var i statusUpdateInput
	if err = c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on update status request: %s", err.Error())
		return c.SendStatus(fiber.StatusBadRequest)
	}

	req := TransitionRequest{
		Status:        i.Status,
		PaymentStatus: i.PaymentStatus,
		Notes:         i.Notes,
		Actor:         model.ActorSystem,
	}
	if _, err = h.accountIDFromToken(c); err == nil {
		req.Actor = model.ActorAdmin
	}

	res, err := h.Service.UpdateOrderStatus(c.Context(), orderID, req)
	if err != nil {
		return h.statusError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *Handlers) CancelOrder(c *fiber.Ctx) error {
	orderID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	var i cancelInput
	if err = c.BodyParser(&i); err != nil && len(c.Body()) > 0 {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	res, err := h.Service.CancelOrder(c.Context(), orderID, i.Reason)
	if err != nil {
		return h.statusError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *Handlers) GetOrders(c *fiber.Ctx) error {
	accountID, err := h.accountIDFromToken(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	orders, err := h.Service.GetOrders(c.Context(), accountID)
	if err != nil {
		if errors.Is(err, ErrNoRecords) {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Error on orders request", "data": err})
	}

	return c.Status(fiber.StatusOK).JSON(orders)
}

func (h *Handlers) GetOrder(c *fiber.Ctx) error {
	orderID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	detail, err := h.Service.GetOrderDetail(c.Context(), orderID)
	if err != nil {
		return h.statusError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(detail)
}

func (h *Handlers) GetBalance(c *fiber.Ctx) error {
	accountID, err := h.accountIDFromToken(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	balance, err := h.Service.GetRemiseBalance(c.Context(), accountID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Error on balance request", "data": err})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"remise_balance": balance})
}

func (h *Handlers) statusError(c *fiber.Ctx, err error) error {
	h.logger.Errorf("Error on order request: %s", err.Error())
	switch {
	case errors.Is(err, ErrOrderNotFound):
		return c.SendStatus(fiber.StatusNotFound)
	case errors.Is(err, ErrNoChangeRequested):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "No change requested"})
	case errors.Is(err, ErrCancelNotAllowed):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"status": "error", "message": "Order can no longer be cancelled"})
	case errors.Is(err, ErrContention):
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Error on order request", "data": err})
}

// accountIDFromToken identifies the caller for audit attribution only;
// authorization itself is enforced upstream.
func (h *Handlers) accountIDFromToken(c *fiber.Ctx) (int64, error) {
	tokenString := c.Cookies("token")
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(h.secret), nil
	})
	if err != nil {
		return 0, err
	}

	id, ok := claims["id"].(string)
	if !ok {
		return 0, errors.New("token misses id claim")
	}
	return strconv.ParseInt(id, 10, 64)
}
