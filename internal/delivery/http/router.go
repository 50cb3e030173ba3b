package http

import (
	"net/http"

	"github.com/gorilla/mux"
	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

type Router struct {
	router *mux.Router
	schema *graphqlgo.Schema
}

func NewRouter(schema *graphqlgo.Schema) *Router {
	return &Router{
		router: mux.NewRouter(),
		schema: schema,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.Handle("/graphql", &relay.Handler{Schema: r.schema}).Methods(http.MethodPost)

	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
