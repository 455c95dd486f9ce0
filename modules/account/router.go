package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures which services to mount in the account module.
// Each service is optional and will only be mounted if provided.
type RouterOptions struct {
	Registration Mountable
}

// Router creates the account module router.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Mount("/account", account.Router(account.RouterOptions{
//	    Registration: account.NewRegistrationService(tr, log),
//	}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	if opts.Registration != nil {
		r.Mount("/registration", opts.Registration.Handle())
	}

	return r
}
