package middleware

import (
	"net/http"
	"strings"
)

const methodParam = "_method"

// MethodOverride lets HTML forms issue PUT and DELETE through a hidden
// _method field. It must wrap the router, since gin matches on the verb
// before any gin middleware runs.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			switch strings.ToUpper(r.PostFormValue(methodParam)) {
			case http.MethodPut:
				r.Method = http.MethodPut
			case http.MethodDelete:
				r.Method = http.MethodDelete
			}
		}

		next.ServeHTTP(w, r)
	})
}
