package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	bCtx "github.com/solmart/goapi/base/ctx"
	"github.com/solmart/goapi/base/database/mongoclient"
	"github.com/solmart/goapi/base/database/redisclient"
	"github.com/solmart/goapi/base/goroutine"
	"github.com/solmart/goapi/base/log"
	"github.com/solmart/goapi/base/metrics"
	"github.com/solmart/goapi/base/reconciler"
	mmiddleware "github.com/solmart/goapi/middleware"
	"github.com/solmart/goapi/service/notifier"
	"github.com/solmart/goapi/service/program"
	"github.com/solmart/goapi/service/query"
	"github.com/solmart/goapi/service/redis"
	lifecycle_usecase "github.com/solmart/goapi/stores/lifecycle/usecase"
	listing_repository "github.com/solmart/goapi/stores/listing/repository"
	listing_usecase "github.com/solmart/goapi/stores/listing/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/reconciler/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	ctx, cancel := bCtx.WithCancel(bCtx.Background())
	ctx = bCtx.WithValue(ctx, "runId", uuid.NewString())

	// health check endpoint for the scheduler
	startEchoServer()

	ctx.Info("init mongo")
	q := initMongo()

	ctx.Info("init redis cache")
	redisCache := initRedis()

	ctx.Info("init program client")
	programClient := program.New(&program.ClientCfg{
		RpcUrl: viper.GetString("solana.rpcUrl"),
	})

	listingRepo := listing_repository.New(q, redisCache)
	listingUsecase := listing_usecase.New(listingRepo)
	coordinator := lifecycle_usecase.New(programClient, listingUsecase)

	var notif notifier.Notifier
	if botKey := viper.GetString("discord.botKey"); botKey != "" {
		notif = notifier.NewDiscordNotifier(notifier.DiscordBotConfig{
			DiscordBotKey:    botKey,
			DiscordChannelId: viper.GetString("discord.channelId"),
			ExplorerUrl:      viper.GetString("discord.explorerUrl"),
		})
	}

	rec := reconciler.New(&reconciler.Cfg{
		Listing:     listingUsecase,
		Coordinator: coordinator,
		Interval:    viper.GetDuration("reconciler.interval"),
		BatchSize:   viper.GetInt("reconciler.batchSize"),
		Notifier:    notif,
	})

	done := make(chan struct{})
	goroutine.RecoverableGo(func() {
		defer close(done)
		if err := rec.Loop(ctx); err != nil {
			ctx.WithField("err", err).Info("sweep loop stopped")
		}
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	cancel()
	<-done
	log.Log().Info("shutdown reconciler successfully")
}

func startEchoServer() {
	context := bCtx.Background()

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())

	address := viper.GetString("server.address")
	context.WithField("address", address).Info("starting server")
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			context.Error("shutting down the server")
		}
	}()
}

func initMongo() query.Mongo {
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	return query.New(mongoClient, checkIndex)
}

func initRedis() redis.Service {
	name := viper.GetString("redis_cache.name")
	uri := viper.GetString("redis_cache.uri")
	pwd := viper.GetString("redis_cache.password")
	poolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	pool := redisclient.MustConnectRedis(uri, pwd, redisclient.RedisParam{
		PoolMultiplier: poolMultiplier,
		Retry:          true,
	})
	return redis.New(name, metrics.New(name), &redis.Pools{
		Src: pool,
	})
}
