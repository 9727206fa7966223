package helper

import "github.com/gofiber/fiber/v2"

// FromFiberError converte o erro vindo de uma Transaction (normalmente *fiber.Error)
// em response JSON consistente via helper.Error.
// Se não for *fiber.Error, cai no 500 com a mensagem original.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return Error(c, fe.Code, fe.Message)
	}
	return Error(c, fiber.StatusInternalServerError, err.Error())
}
