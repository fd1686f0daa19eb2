package controller

import "github.com/labstack/echo/v4"

type NcController interface {
	UpsertAction(c echo.Context) error
	AssignUser(c echo.Context) error
	ReassignDepartment(c echo.Context) error
	List(c echo.Context) error
}
