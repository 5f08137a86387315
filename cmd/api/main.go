package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	config "draftorder-gateway/configs"
	"draftorder-gateway/internal/common/enum"
	"draftorder-gateway/internal/pkg/logger"
	"draftorder-gateway/internal/pkg/shopify"
	"draftorder-gateway/internal/pkg/validation"
	serverApp "draftorder-gateway/internal/server"

	"github.com/gin-gonic/gin"
)

// @title           Draft Order Gateway API
// @version         1.0
// @description     Single-endpoint gateway that forwards draft order mutations to the Shopify Admin GraphQL API with server-held credentials

// @BasePath        /api
func main() {
	logger.Setup()

	env, err := config.GetEnv()
	if err != nil {
		logger.Error.Println("Error getting environment", err)
		panic(err)
	}

	var wg sync.WaitGroup
	ctx, cancel := context.WithCancel(context.Background())

	// Setup Shopify client (shared transport; credentials resolve per request)
	shopifyClient := shopify.Setup()

	// Setup Server
	setupServer(&config.SetupServerDto{
		Env:     env,
		Ctx:     &ctx,
		Cancel:  cancel,
		Wg:      &wg,
		Shopify: shopifyClient,
	})
}

func setupServer(payload *config.SetupServerDto) {
	env := payload.Env
	ctx := payload.Ctx
	cancel := payload.Cancel
	wg := payload.Wg

	defer func() {
		cancel()
		wg.Wait()
	}()

	err := validation.Setup()
	if err != nil {
		logger.Error.Println("Failed to setup validation")
		panic(err)
	}

	if env.AppEnv == enum.PRODUCTION {
		gin.SetMode(gin.ReleaseMode)
	}
	e := gin.Default()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", env.AppPort),
		Handler: e,
	}

	serverApp.Setup(e, *ctx, wg, payload.Shopify, env.AppBaseURL)

	go func() {
		logger.HTTP.Println("========= Server Started =========")
		logger.HTTP.Println("=========", env.AppPort, "=========")
		if err := server.ListenAndServe(); err != nil {
			logger.Error.Println("Server error:", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan
	logger.HTTP.Println("========= Server Shutting Down =========")
	_ = server.Shutdown(*ctx)
}
