package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("api")

const shutdownTimeout = 5 * time.Second

type webServer struct {
	facade FacadeHandler
	server *http.Server
}

// NewWebServer creates the REST surface over the given facade
func NewWebServer(facade FacadeHandler, address string) (*webServer, error) {
	if check.IfNil(facade) {
		return nil, ErrNilFacadeHandler
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.Use(cors.Default())
	registerRoutes(router, facade)

	return &webServer{
		facade: facade,
		server: &http.Server{
			Addr:    address,
			Handler: router,
		},
	}, nil
}

// StartHttpServer starts serving requests. It returns after the listener stopped.
func (ws *webServer) StartHttpServer() error {
	log.Info("starting web server", "address", ws.server.Addr)

	err := ws.server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}

	return err
}

// Close gracefully shuts down the server
func (ws *webServer) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return ws.server.Shutdown(ctx)
}

// IsInterfaceNil returns true if underlying object is nil
func (ws *webServer) IsInterfaceNil() bool {
	return ws == nil
}
