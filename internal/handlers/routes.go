package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-entities/internal/schema"
)

// RecordService is the full set of record operations served for one entity.
type RecordService interface {
	RecordLister
	RecordGetter
	RecordCreator
	RecordUpdater
	RecordDeleter
}

// RegisterRecordRoutes mounts the CRUD routes of entity under /entities/<name>.
// Every route except /all requires auth.
func RegisterRecordRoutes(r chi.Router, entity *schema.Entity, svc RecordService, auth func(http.Handler) http.Handler) {
	r.Route("/entities/"+entity.Name, func(r chi.Router) {
		r.Get("/all", NewListAllRecordsHandler(svc, entity))

		r.Group(func(r chi.Router) {
			r.Use(auth)

			r.Get("/", NewListRecordsHandler(svc, entity))
			r.Post("/", NewCreateRecordHandler(svc, entity))

			r.Post("/batch", NewBatchCreateRecordsHandler(svc, entity))
			r.Put("/batch", NewBatchUpdateRecordsHandler(svc, entity))
			r.Delete("/batch", NewBatchDeleteRecordsHandler(svc, entity))

			r.Get("/{id}", NewGetRecordHandler(svc, entity))
			r.Put("/{id}", NewUpdateRecordHandler(svc, entity))
			r.Delete("/{id}", NewDeleteRecordHandler(svc, entity))
		})
	})
}
