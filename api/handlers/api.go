package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/openmotors/car-registry-api/api"
	"github.com/openmotors/car-registry-api/config"
	"github.com/openmotors/car-registry-api/databases"
	"github.com/openmotors/car-registry-api/models"
)

// requestTimeout bounds every request at the boundary; store calls inherit
// the deadline through the request context
const requestTimeout = 15 * time.Second

// App stores the router and db connection, so it can be reused
type App struct {
	Router   *mux.Router
	Config   config.Config
	dbHelper databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	// setup go-guardian for middleware
	m := api.MiddlewareDB{DB: databases.NewUserDatabase(a.dbHelper)}
	m.SetupGoGuardian()

	r := mux.NewRouter()
	r.Use(api.TimeoutMiddleware(requestTimeout))

	u := User{DB: databases.NewUserDatabase(a.dbHelper)}
	c := Car{DB: databases.NewCarDatabase(a.dbHelper)}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/auth/token", http.HandlerFunc(m.CreateToken)).Methods("POST")
	apiCreate.Handle("/auth/logout", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")

	apiCreate.Handle("/users", http.HandlerFunc(u.UserCreateHandler)).Methods("POST")
	apiCreate.Handle("/users/{username}", http.HandlerFunc(u.UserByUsernameHandler)).Methods("GET")

	apiCreate.Handle("/car", api.Middleware(http.HandlerFunc(c.CreateCarHandler))).Methods("POST")
	apiCreate.Handle("/car/{car_id}", api.Middleware(http.HandlerFunc(c.CarByIDHandler))).Methods("GET")
	apiCreate.Handle("/car/{car_id}", api.Middleware(http.HandlerFunc(c.UpdateCarHandler))).Methods("PUT")
	apiCreate.Handle("/car/{car_id}", api.Middleware(http.HandlerFunc(c.DeleteCarHandler))).Methods("DELETE")
	apiCreate.Handle("/cars", api.Middleware(http.HandlerFunc(c.CarHandler))).Methods("GET")

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("car-registry-api has connected to the database")

	// collection and index setup must succeed before we serve traffic
	ctx, cancel := api.WithQueryTimeout(context.Background())
	defer cancel()
	if err := databases.NewCarDatabase(a.dbHelper).EnsureCollection(ctx); err != nil {
		zap.S().With(err).Error("failed to ensure cars collection")
		return err
	}
	if err := databases.NewUserDatabase(a.dbHelper).EnsureUsernameIndex(ctx); err != nil {
		zap.S().With(err).Error("failed to ensure unique username index")
		return err
	}

	// initialize api router
	a.initializeRoutes()
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
