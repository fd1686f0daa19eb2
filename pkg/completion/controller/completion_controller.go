package controller

import "github.com/labstack/echo/v4"

type CompletionController interface {
	Compute(c echo.Context) error
}
