package router

import (
	"github.com/labstack/echo/v4"

	"audir/pkg/middleware"
)

func New(
	e *echo.Echo,
	jwtSecret string,
	authCtrl interface {
		Login(echo.Context) error
		WhoAmI(echo.Context) error
	},
	answerCtrl interface {
		Upsert(echo.Context) error
		List(echo.Context) error
	},
	ncCtrl interface {
		UpsertAction(echo.Context) error
		AssignUser(echo.Context) error
		ReassignDepartment(echo.Context) error
		List(echo.Context) error
	},
	exportDownload func(echo.Context) error,
	planCtrl interface {
		List(echo.Context) error
		Create(echo.Context) error
		Update(echo.Context) error
	},
	completionCompute func(echo.Context) error,
	tmplCtrl interface {
		List(echo.Context) error
		Create(echo.Context) error
	},
	deptCtrl interface {
		List(echo.Context) error
		Create(echo.Context) error
	},
	userList func(echo.Context) error,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.POST("/auth/login", authCtrl.Login)
	e.GET("/health", healthCtrl.Health)

	api := e.Group("", middleware.RequireIdentity(jwtSecret))

	api.GET("/whoami", authCtrl.WhoAmI)

	api.POST("/audit-answers", answerCtrl.Upsert)
	api.GET("/audit-answers", answerCtrl.List)

	api.POST("/nc-actions", ncCtrl.UpsertAction)
	api.POST("/nc-assign", ncCtrl.AssignUser)
	api.POST("/nc-department", ncCtrl.ReassignDepartment)
	api.GET("/nc-records", ncCtrl.List)
	api.GET("/nc-records/export", exportDownload)

	api.GET("/audit-plans", planCtrl.List)
	api.POST("/audit-plans", planCtrl.Create)
	api.PUT("/audit-plans/:id", planCtrl.Update)
	api.GET("/audit-plans/:id/completion", completionCompute)

	api.GET("/templates", tmplCtrl.List)
	api.POST("/templates", tmplCtrl.Create)

	api.GET("/departments", deptCtrl.List)
	api.POST("/departments", deptCtrl.Create)

	api.GET("/users", userList)

	return e
}
