package rest

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type ServerInformation interface {
	GetBaseURL() string
	GetPrefix() string
}

type HandlerDependency struct {
	l   logrus.FieldLogger
	ctx context.Context
}

func (h HandlerDependency) Logger() logrus.FieldLogger {
	return h.l
}

func (h HandlerDependency) Context() context.Context {
	return h.ctx
}

type HandlerContext struct {
	si ServerInformation
}

func (h HandlerContext) ServerInformation() ServerInformation {
	return h.si
}

type GetHandler func(d *HandlerDependency, c *HandlerContext) http.HandlerFunc

type InputHandler[M any] func(d *HandlerDependency, c *HandlerContext, input M) http.HandlerFunc

func RegisterHandler(l logrus.FieldLogger) func(si ServerInformation) func(handlerName string, handler GetHandler) http.HandlerFunc {
	return func(si ServerInformation) func(handlerName string, handler GetHandler) http.HandlerFunc {
		return func(handlerName string, handler GetHandler) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				fl := l.WithFields(logrus.Fields{"originator": handlerName, "type": "rest_handler"})
				handler(&HandlerDependency{l: fl, ctx: r.Context()}, &HandlerContext{si: si})(w, r)
			}
		}
	}
}

func RegisterInputHandler[M any](l logrus.FieldLogger) func(si ServerInformation) func(handlerName string, handler InputHandler[M]) http.HandlerFunc {
	return func(si ServerInformation) func(handlerName string, handler InputHandler[M]) http.HandlerFunc {
		return func(handlerName string, handler InputHandler[M]) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				fl := l.WithFields(logrus.Fields{"originator": handlerName, "type": "rest_handler"})

				var input M
				if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
					fl.WithError(err).Errorf("Unable to decode request body.")
					w.WriteHeader(http.StatusBadRequest)
					return
				}
				handler(&HandlerDependency{l: fl, ctx: r.Context()}, &HandlerContext{si: si}, input)(w, r)
			}
		}
	}
}

type UuidHandler func(id uuid.UUID) http.HandlerFunc

func parseUuid(l logrus.FieldLogger, name string, next UuidHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(mux.Vars(r)[name])
		if err != nil {
			l.WithError(err).Errorf("Unable to properly parse [%s] from path.", name)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		next(id)(w, r)
	}
}

func ParseContainerId(l logrus.FieldLogger, next UuidHandler) http.HandlerFunc {
	return parseUuid(l, "containerId", next)
}

func ParseActorId(l logrus.FieldLogger, next UuidHandler) http.HandlerFunc {
	return parseUuid(l, "actorId", next)
}

func MarshalResponse[A any](l logrus.FieldLogger) func(w http.ResponseWriter) func(status int) func(a A) {
	return func(w http.ResponseWriter) func(status int) func(a A) {
		return func(status int) func(a A) {
			return func(a A) {
				w.WriteHeader(status)
				if err := json.NewEncoder(w).Encode(a); err != nil {
					l.WithError(err).Errorf("Unable to encode response.")
				}
			}
		}
	}
}
