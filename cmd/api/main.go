package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/household-energy-calculator/internal/cache"
	"github.com/ANIKETSHETTY47/household-energy-calculator/internal/cloud"
	"github.com/ANIKETSHETTY47/household-energy-calculator/internal/config"
	"github.com/ANIKETSHETTY47/household-energy-calculator/internal/database"
	httpHandlers "github.com/ANIKETSHETTY47/household-energy-calculator/internal/http"
	"github.com/ANIKETSHETTY47/household-energy-calculator/internal/repository"
	"github.com/ANIKETSHETTY47/household-energy-calculator/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	ctx := context.Background()

	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	db, err := database.Connect(config.DBDSN())
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}
	defer db.Close()

	if config.AutoMigrate() {
		if err := database.Migrate(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("db migrate failed")
		}
	}

	opts := service.Options{CostAlertThreshold: config.CostAlertThreshold()}

	if addr := config.RedisAddr(); addr != "" {
		rdb, err := cache.NewRedisClient(addr, config.RedisPassword())
		if err != nil {
			log.Fatal().Err(err).Str("addr", addr).Msg("redis connect failed")
		}
		defer rdb.Close()
		opts.TariffCache = cache.NewTariffCache(rdb, config.TariffCacheTTL())
		log.Info().Str("addr", addr).Msg("tariff cache enabled")
	}

	if config.UseCloudServices() {
		wireCloud(ctx, &opts)
	}

	svcs := service.New(repository.New(db), opts)
	app := fiber.New(fiber.Config{ErrorHandler: httpHandlers.ErrorHandler})
	app.Use(httpHandlers.RequestLogger())

	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })

	httpHandlers.Register(app, svcs)

	addr := config.APIAddr()
	log.Info().Str("addr", addr).Msg("api listening")
	log.Fatal().Err(app.Listen(addr)).Msg("server exit")
}

func wireCloud(ctx context.Context, opts *service.Options) {
	region := config.AWSRegion()

	history, err := cloud.NewDynamoDBClient(ctx, region, config.DynamoDBTable())
	if err != nil {
		log.Fatal().Err(err).Msg("dynamodb client failed")
	}
	opts.History = history

	reports, err := cloud.NewS3Client(ctx, region, config.S3Bucket())
	if err != nil {
		log.Fatal().Err(err).Msg("s3 client failed")
	}
	opts.Reports = reports

	if arn := config.SNSTopicArn(); arn != "" {
		alerts, err := cloud.NewSNSClient(ctx, region, arn)
		if err != nil {
			log.Fatal().Err(err).Msg("sns client failed")
		}
		opts.Alerts = alerts
	}

	log.Info().Str("region", region).Msg("cloud services enabled")
}
