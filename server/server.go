package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Daskott/clientdir/logger"
	"github.com/Daskott/clientdir/models"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

var logg = logger.NewLogger(false, "")

// Server exposes the client directory over a JSON http api
type Server struct {
	store  *models.Store
	router *mux.Router
}

// SetLogger replaces the package logger e.g. with one built from the app's log config
func SetLogger(logger *zap.SugaredLogger) {
	logg = logger
}

func NewServer(store *models.Store) *Server {
	srv := &Server{store: store, router: mux.NewRouter()}

	srv.router.Use(loggingMiddleware)
	srv.router.Use(contentTypeMiddleware)

	clientsRouter := srv.router.PathPrefix("/clients").Subrouter()
	clientsRouter.HandleFunc("", srv.createClient).Methods("POST")
	clientsRouter.HandleFunc("", srv.findClients).Methods("GET")
	clientsRouter.HandleFunc("/{id:[0-9]+}", srv.updateClient).Methods("PATCH")
	clientsRouter.HandleFunc("/{id:[0-9]+}", srv.deleteClient).Methods("DELETE")
	clientsRouter.HandleFunc("/{id:[0-9]+}/phones", srv.addPhone).Methods("POST")
	clientsRouter.HandleFunc("/{id:[0-9]+}/phones/{phone}", srv.deletePhone).Methods("DELETE")

	return srv
}

func (srv *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	srv.router.ServeHTTP(rw, r)
}

// Start serves the api on port until the process receives SIGINT or SIGTERM
func Start(store *models.Store, port int) {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%v", port),
		Handler:      NewServer(store),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go serve(server)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	cleanup(server)
}

func serve(server *http.Server) {
	logg.Infof("clientdir server is listening on port%v", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Fatal(err)
	}
}

func cleanup(server *http.Server) {
	// Shutdown server gracefully
	ctxShutDown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutDown); err != nil {
		logg.Fatalf("clientdir server shutdown failed:%+s", err)
	}

	logg.Infof("clientdir server stopped properly")
}
