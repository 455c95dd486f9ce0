package locale

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Mountable interface {
	Handle() http.Handler
}

// Router mounts svc at the module root.
//
//	r.Mount("/locale", locale.Router(locale.NewService(tr, errorHandler)))
func Router(svc Mountable) chi.Router {
	r := chi.NewRouter()
	if svc != nil {
		r.Mount("/", svc.Handle())
	}
	return r
}
