package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/IT-Nick/bitwise-tutor/internal/app/handlers/console/answer_handler"
	"github.com/IT-Nick/bitwise-tutor/internal/app/handlers/console/menu_handler"
	"github.com/IT-Nick/bitwise-tutor/internal/app/handlers/console/quiz_handler"
	"github.com/IT-Nick/bitwise-tutor/internal/app/handlers/console/start_handler"
	"github.com/IT-Nick/bitwise-tutor/internal/app/middleware"
	"github.com/IT-Nick/bitwise-tutor/internal/domain/codec"
	"github.com/IT-Nick/bitwise-tutor/internal/domain/model"
	"github.com/IT-Nick/bitwise-tutor/internal/infra/config"
	"github.com/IT-Nick/bitwise-tutor/internal/infra/console"
	"github.com/IT-Nick/bitwise-tutor/internal/infra/random"

	msgRepo "github.com/IT-Nick/bitwise-tutor/internal/domain/messages/repository"
	msgService "github.com/IT-Nick/bitwise-tutor/internal/domain/messages/service"
	quizRepo "github.com/IT-Nick/bitwise-tutor/internal/domain/quiz/repository"
	quizService "github.com/IT-Nick/bitwise-tutor/internal/domain/quiz/service"
)

// Точки входа консоли, кроме тем викторин (они регистрируются под именем темы).
const (
	startEndpoint = "start"
	menuEndpoint  = "menu"
)

// IO потоки приложения: ввод ответов, вывод викторины и лог.
type IO struct {
	In  io.Reader
	Out io.Writer
	Log io.Writer
}

type Services struct {
	messageService *msgService.MessageService
	quizService    *quizService.QuizService
}

type App struct {
	config  *config.Config
	logger  *log.Logger
	console *console.Console

	Services
}

func NewApp(cfg *config.Config, streams IO) (*App, error) {
	const op = "app.NewApp"

	theme := model.Theme(cfg.Quiz.Theme)
	if theme != "" && !theme.Valid() {
		return nil, fmt.Errorf("%s: %w: %q", op, quizService.ErrUnknownTheme, cfg.Quiz.Theme)
	}

	if err := codec.SelfCheck(); err != nil {
		return nil, fmt.Errorf("%s: codec self-check failed: %w", op, err)
	}

	app := &App{
		config:  cfg,
		logger:  log.New(streams.Log, cfg.Log.Prefix, log.LstdFlags),
		console: console.New(streams.In, streams.Out, cfg.Console.Prompt),
	}

	if err := app.initServices(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	app.bootstrapHandlers()

	return app, nil
}

// Функция для инициализации сервисов и репозиториев
func (app *App) initServices() error {
	messageRepo, err := msgRepo.NewMessageRepository()
	if err != nil {
		return err
	}
	demoRepo, err := quizRepo.NewDemoRepository()
	if err != nil {
		return err
	}

	rng, seed, err := random.NewRand(app.config.Quiz.Seed)
	if err != nil {
		return err
	}
	if app.config.Log.Debug {
		app.logger.Printf("quiz seed: %d", seed)
	}

	app.messageService = msgService.NewMessageService(messageRepo)
	app.quizService = quizService.NewQuizService(demoRepo, rng)
	return nil
}

// bootstrapHandlers регистрирует middleware и обработчики консоли
func (app *App) bootstrapHandlers() {
	if app.config.Log.Debug {
		app.console.Use(
			middleware.Logger(app.logger),
			middleware.DebugUserActions(true, app.logger),
		)
	}
	app.console.Use(middleware.Recover(func(err error, ctx context.Context) {
		app.logger.Printf("Recovered from panic in %s: %v", console.Endpoint(ctx), err)
	}))

	app.console.Handle(startEndpoint, start_handler.NewStartHandler(app.messageService).GetHandlerFunc())
	app.console.Handle(menuEndpoint, menu_handler.NewMenuHandler(app.messageService).GetHandlerFunc())

	quizHandler := quiz_handler.NewQuizHandler(app.quizService, answer_handler.NewAnswerHandler(app.messageService), nil)
	for _, theme := range model.Themes {
		app.console.Handle(string(theme), quizHandler.GetHandlerFunc(theme))
	}
}

// Run запускает главное меню или, если тема задана в конфигурации, одну викторину.
// Конец ввода считается штатным завершением.
func (app *App) Run(ctx context.Context) error {
	err := app.run(ctx)
	if errors.Is(err, io.EOF) {
		app.logger.Println("input closed")
		return nil
	}
	return err
}

func (app *App) run(ctx context.Context) error {
	if theme := app.config.Quiz.Theme; theme != "" {
		return app.console.Dispatch(ctx, theme)
	}

	if err := app.console.Dispatch(ctx, startEndpoint); err != nil {
		return err
	}
	return app.console.Dispatch(ctx, menuEndpoint)
}
