package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"audir/config"
	"audir/database"
	"audir/router"

	// Auth
	authCtrlImp "audir/pkg/auth/controllerImp"

	// Answer ledger
	answerCtrlImp "audir/pkg/answer/controllerImp"
	answerRepoImp "audir/pkg/answer/repositoryImp"
	answerSvcImp "audir/pkg/answer/serviceImp"

	// Non-conformance workflow
	ncCtrlImp "audir/pkg/nc/controllerImp"
	ncRepoImp "audir/pkg/nc/repositoryImp"
	ncSvc "audir/pkg/nc/service"
	ncSvcImp "audir/pkg/nc/serviceImp"

	// Completion
	complCtrlImp "audir/pkg/completion/controllerImp"
	complSvcImp "audir/pkg/completion/serviceImp"

	// Plans / templates / reference data
	deptCtrlImp "audir/pkg/department/controllerImp"
	deptRepoImp "audir/pkg/department/repositoryImp"
	planCtrlImp "audir/pkg/plan/controllerImp"
	planRepoImp "audir/pkg/plan/repositoryImp"
	tmplCtrlImp "audir/pkg/template/controllerImp"
	tmplRepoImp "audir/pkg/template/repositoryImp"
	userCtrlImp "audir/pkg/userdir/controllerImp"
	userRepoImp "audir/pkg/userdir/repositoryImp"

	// Export + health
	"audir/pkg/export"
	healthCtrlImp "audir/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + migrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Repos
	answerRepo := answerRepoImp.New(db)
	ncRepo := ncRepoImp.New(db)
	planRepo := planRepoImp.New(db)
	tmplRepo := tmplRepoImp.New(db)
	userRepo := userRepoImp.New(db)
	deptRepo := deptRepoImp.New(db)

	// 4) Services
	answerSvc := answerSvcImp.New(answerRepo, ncRepo, planRepo)
	ncService := ncSvcImp.New(ncRepo, answerRepo, planRepo, userRepo, ncSvc.Policy(cfg.NcPolicy))
	complSvc := complSvcImp.New(planRepo, tmplRepo, answerRepo, ncRepo)

	// 5) Controllers
	authCtrl := authCtrlImp.New(userRepo, cfg.JWTSecret, cfg.TokenTTLMin)
	answerCtrl := answerCtrlImp.New(answerSvc)
	ncCtrl := ncCtrlImp.New(ncService)
	complCtrl := complCtrlImp.New(complSvc)
	planCtrl := planCtrlImp.New(planRepo)
	tmplCtrl := tmplCtrlImp.New(tmplRepo)
	userCtrl := userCtrlImp.New(userRepo)
	deptCtrl := deptCtrlImp.New(deptRepo)
	exportCtrl := export.NewCtrl(ncService)
	healthCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 6) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())

	r := router.New(
		e,
		cfg.JWTSecret,
		authCtrl,
		answerCtrl,
		ncCtrl,
		exportCtrl.Download,
		planCtrl,
		complCtrl.Compute,
		tmplCtrl,
		deptCtrl,
		userCtrl.List,
		healthCtrl,
	)

	// 7) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
