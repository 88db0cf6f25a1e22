// Package app wires configuration, infrastructure, and the conversation
// state machine into a runnable Telegram application.
package app

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/jmoiron/sqlx"

	corebootstrap "github.com/anassar/mudeer/core/bootstrap"
	corecmd "github.com/anassar/mudeer/core/cmd"
	"github.com/anassar/mudeer/core/logger"
	coretelegram "github.com/anassar/mudeer/core/telegram"
	"github.com/anassar/mudeer/core/telegram/commands"
	"github.com/anassar/mudeer/core/telegram/middleware"
	"github.com/anassar/mudeer/core/telegram/router"
	"github.com/anassar/mudeer/core/telegram/state"
	"github.com/anassar/mudeer/internal/ai"
	"github.com/anassar/mudeer/internal/config"
	"github.com/anassar/mudeer/internal/fsm"
	"github.com/anassar/mudeer/internal/mailer"
	"github.com/anassar/mudeer/internal/service"
	"github.com/anassar/mudeer/internal/storage"
)

// App holds everything needed to serve the bot.
type App struct {
	cfg *config.Config
	db  *sqlx.DB
	tg  *fsm.Telegram
}

// Bootstrap initializes the logger, database, and conversation stack.
func Bootstrap(carrier corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
	cfg, ok := carrier.(*config.Config)
	if !ok {
		return nil, fmt.Errorf("app: unexpected config type %T", carrier)
	}

	res, err := corebootstrap.Run(corebootstrap.Options{
		Config:   cfg.CoreConfig(),
		Database: cfg.Database,
	})
	if err != nil {
		return nil, err
	}

	store := storage.NewPostgres(res.DB)
	dispatcher := fsm.New(fsm.Deps{
		Sessions: state.NewMemoryManager(fsm.StateMain),
		Contacts: service.NewContacts(store.Contacts()),
		Folders:  service.NewFolders(store.Folders()),
		Files:    service.NewLibrary(store.Files(), store.Folders(), logger.SVCFiles),
		Images:   service.NewLibrary(store.Images(), store.Folders(), logger.SVCImages),
		Report:   service.NewReport(store.Contacts(), store.Files(), store.Images()),
		Mail:     mailer.New(cfg.SMTP),
		AI:       ai.New(cfg.AI),
	})

	return &App{
		cfg: cfg,
		db:  res.DB,
		tg:  fsm.NewTelegram(dispatcher),
	}, nil
}

// TelegramRunOptions assembles the registry, routes, and middleware chain.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := coretelegram.NewRegistry()
	reg.RegisterCommand("/start", commands.Command{
		Handler:     a.tg.StartHandler,
		Description: "بدء المحادثة",
	})

	recoverOpts := middleware.RecoverOptions{OnPanic: a.tg.PanicHandler}

	routes := router.TextRoutes(a.tg, reg, router.TextOptions{Recover: recoverOpts})
	routes = append(routes, router.CommandRoutes(reg, router.CommandRouteOptions{
		Recover: recoverOpts,
		AdminID: a.cfg.Core.Telegram.AdminID,
	})...)

	return coretelegram.RunOptions{
		Config:      a.cfg.CoreConfig(),
		Registry:    reg,
		Middlewares: coretelegram.DefaultMiddlewares(a.cfg.CoreConfig(), a.tg.PanicHandler, nil),
		Routes:      routes,
		OnStop: func(_ context.Context, _ coretelegram.Runtime) error {
			if err := a.db.Close(); err != nil {
				logger.DB.Error("close failed", slog.String("err", err.Error()))
				return err
			}
			return nil
		},
	}, nil
}
