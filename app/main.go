package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/okuznetsov/blogware/internal/accountservice"
	"github.com/okuznetsov/blogware/internal/blogservice"
	"github.com/okuznetsov/blogware/internal/commentservice"
	"github.com/okuznetsov/blogware/internal/common"
	"github.com/okuznetsov/blogware/internal/mailservice"
	"github.com/okuznetsov/blogware/internal/mediaservice"
	"github.com/okuznetsov/blogware/internal/postservice"
	"github.com/okuznetsov/blogware/internal/tokenservice"
)

const version = "1.0.0"

type application struct {
	config         *Config
	logger         *slog.Logger
	issuer         *tokenservice.Issuer
	tokenService   *tokenservice.TokenService
	accountService *accountservice.AccountService
	blogService    *blogservice.BlogService
	postService    *postservice.PostService
	commentService *commentservice.CommentService
	imageService   *mediaservice.ImageService
	mailService    *mailservice.MailService
	broker         *common.MessageBroker
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := loadConfig(".env")
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := common.NewDB(cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, 10, 5, 15*time.Minute)
	if err != nil {
		logger.Error("failed to connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer common.CloseDB(db)

	URI := fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.RabbitMQ.Host, cfg.RabbitMQ.Port)
	broker, err := common.NewMessageBroker(URI)
	if err != nil {
		logger.Error("failed to connect to the message broker", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer broker.Close()

	err = common.SetupCommentExchange(broker)
	if err != nil {
		logger.Error("failed to setup the comment exchange", slog.String("error", err.Error()))
		os.Exit(1)
	}

	clock := common.NewClock()

	issuer, err := tokenservice.NewIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience, time.Duration(cfg.JWT.AccessTTLMinutes)*time.Minute, clock)
	if err != nil {
		logger.Error("failed to create the token issuer", slog.String("error", err.Error()))
		os.Exit(1)
	}

	blobs, err := mediaservice.NewS3BlobStore(context.Background(), cfg.S3.Region, cfg.S3.Bucket, cfg.S3.Endpoint)
	if err != nil {
		logger.Error("failed to create the blob store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	cache := common.NewCache(5*time.Minute, 10*time.Minute)

	imageService := mediaservice.NewImageService(blobs)
	tokenService := tokenservice.NewTokenService(db, issuer, clock, time.Duration(cfg.JWT.RefreshTTLMinutes)*time.Minute)

	app := &application{
		config:         cfg,
		logger:         logger,
		issuer:         issuer,
		tokenService:   tokenService,
		accountService: accountservice.NewAccountService(db, tokenService, imageService, clock),
		blogService:    blogservice.NewBlogService(db, cache, imageService, clock),
		postService:    postservice.NewPostService(db, cache, clock),
		commentService: commentservice.NewCommentService(db, broker, logger, clock),
		imageService:   imageService,
		mailService:    mailservice.NewMailService(broker, cfg.Mail.Host, cfg.Mail.User, cfg.Mail.Password, cfg.Mail.Sender, cfg.Mail.Port, logger),
		broker:         broker,
	}

	app.mailService.SendCommentNotifications()
	defer app.mailService.Close()

	stopPurge := app.purgeExpiredTokens(1 * time.Hour)
	defer stopPurge()

	err = app.serve(cfg.Port)
	if err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// purgeExpiredTokens deletes expired refresh tokens on a fixed interval until
// the returned stop function is called.
func (app *application) purgeExpiredTokens(interval time.Duration) func() {
	ctx, cancel := context.WithCancel(context.Background())
	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				err := app.tokenService.PurgeExpired(ctx)
				if err != nil {
					app.logger.Error("failed to purge expired refresh tokens", slog.String("error", err.Error()))
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return cancel
}
