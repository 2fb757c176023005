package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/cardscan/internal/client/client"
	"github.com/dmitrijs2005/cardscan/internal/client/config"
	"github.com/dmitrijs2005/cardscan/internal/client/identity"
	"github.com/dmitrijs2005/cardscan/internal/client/imagestore"
	"github.com/dmitrijs2005/cardscan/internal/client/services"
	"github.com/dmitrijs2005/cardscan/internal/client/session"
	"github.com/dmitrijs2005/cardscan/internal/client/storage"
	"github.com/dmitrijs2005/cardscan/internal/client/views"
	"github.com/dmitrijs2005/cardscan/internal/logging"
)

type App struct {
	config       *config.Config
	log          logging.Logger
	db           *sql.DB
	authService  services.AuthService
	imageService services.ImageService
	cardService  services.CardService
	images       views.ImageDownloader

	router  *views.Router
	capture *views.CaptureScreen
	list    *views.ListScreen

	reader *bufio.Reader
	out    io.Writer
	sleep  func(time.Duration)
}

// NewApp opens the session database and builds every collaborator from c.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stderr, c.LogLevel)

	db, err := storage.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.SessionDBPath, "err", err)
		return nil, err
	}

	store, err := session.NewSQLiteStore(ctx, db, c.SessionPassphrase)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	provider, err := identity.NewCognito(ctx, identity.CognitoOptions{
		Region:   c.CognitoRegion,
		ClientID: c.ClientID,
		Endpoint: c.CognitoEndpoint,
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	backend := client.New(c.ServerURL,
		client.WithLogger(logger.With("component", "backend")),
		client.WithTokenSource(func(ctx context.Context) string {
			u, err := store.CurrentUser(ctx)
			if err != nil || u == nil {
				return ""
			}
			return u.AccessToken
		}),
	)

	imgs, err := imagestore.New(ctx, imagestore.Options{
		Region:      c.S3Region,
		Endpoint:    c.S3Endpoint,
		AccessKey:   c.S3AccessKey,
		SecretKey:   c.S3SecretKey,
		DownloadDir: c.DownloadDir,
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	as := services.NewAuthService(provider, store, logger.With("component", "auth"))
	is := services.NewImageService(backend, logger.With("component", "images"))
	cs := services.NewCardService(backend, store, logger.With("component", "cards"))

	a := newApp(c, logger, as, is, cs, imgs, bufio.NewReader(os.Stdin), os.Stdout)
	a.db = db
	return a, nil
}

func newApp(c *config.Config, logger logging.Logger, as services.AuthService, is services.ImageService,
	cs services.CardService, imgs views.ImageDownloader, reader *bufio.Reader, out io.Writer) *App {
	return &App{
		config:       c,
		log:          logger,
		authService:  as,
		imageService: is,
		cardService:  cs,
		images:       imgs,
		router:       views.NewRouter(as),
		capture:      views.NewCaptureScreen(as, is, cs),
		list:         views.NewListScreen(as, cs),
		reader:       reader,
		out:          out,
		sleep:        time.Sleep,
	}
}

// Run mounts the router from the stored session and serves the REPL until
// the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn(context.Background(), "closing session database", "err", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.router.State() == views.Authenticated
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) alert(err error) {
	a.println(views.Alert(err.Error()))
}
