package walletValidator

import (
	"elswallet/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateWalletRequest is the optional body of POST /wallet/create/:userId.
type CreateWalletRequest struct {
	Name           string  `json:"name" validate:"omitempty,max=100"`
	Email          string  `json:"email" validate:"omitempty,email"`
	InitialBalance float64 `json:"initialBalance" validate:"omitempty,gte=0"`
}

// AddMoneyRequest is the body of POST /wallet/add-money.
type AddMoneyRequest struct {
	UserID        uint    `json:"userId" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod string  `json:"paymentMethod" validate:"required"`
}

// SendMoneyRequest is the body of POST /wallet/send-money.
type SendMoneyRequest struct {
	SenderWalletID uint    `json:"senderWalletId" validate:"required"`
	Recipientor    string  `json:"recipientor" validate:"required"`
	Amount         float64 `json:"amount" validate:"required,gt=0"`
	Description    string  `json:"description" validate:"omitempty,max=500"`
}

// CreateWallet validates the create wallet request. The body is optional;
// an empty body falls back to default display attributes and zero balance.
func CreateWallet() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateWalletRequest)

		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
		}

		if errors := validateStruct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateWallet", reqData)
		return c.Next()
	}
}

// AddMoney validates the deposit request.
func AddMoney() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AddMoneyRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validateStruct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAddMoney", reqData)
		return c.Next()
	}
}

// SendMoney validates the transfer request.
func SendMoney() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SendMoneyRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validateStruct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSendMoney", reqData)
		return c.Next()
	}
}

// validateStruct runs the struct tags and flattens failures into the
// field -> message map the envelope expects.
func validateStruct(reqData interface{}) map[string]string {
	err := validate.Struct(reqData)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["body"] = "Invalid request data!"
		return errors
	}

	for _, fieldErr := range validationErrors {
		switch fieldErr.Tag() {
		case "required":
			errors[fieldErr.Field()] = fieldErr.Field() + " is required!"
		case "gt":
			errors[fieldErr.Field()] = "Amount must be greater than 0!"
		case "gte":
			errors[fieldErr.Field()] = fieldErr.Field() + " must not be negative!"
		case "email":
			errors[fieldErr.Field()] = "Invalid email address!"
		case "max":
			errors[fieldErr.Field()] = fieldErr.Field() + " is too long!"
		default:
			errors[fieldErr.Field()] = fieldErr.Field() + " is invalid!"
		}
	}
	return errors
}
