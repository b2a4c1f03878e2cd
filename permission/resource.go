package permission

import (
	"atlas-sorter/model"
	"atlas-sorter/rest"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func InitResource(si rest.ServerInformation) func(db *gorm.DB) rest.RouteInitializer {
	return func(db *gorm.DB) rest.RouteInitializer {
		return func(router *mux.Router, l logrus.FieldLogger) {
			registerGet := rest.RegisterHandler(l)(si)
			registerInput := rest.RegisterInputHandler[InputRestModel](l)(si)
			r := router.PathPrefix("/actors/{actorId}/permissions").Subrouter()
			r.HandleFunc("/{name}", registerGet("get_permission", handleGetPermission(db))).Methods(http.MethodGet)
			r.HandleFunc("/{name}", registerInput("set_permission", handleSetPermission(db))).Methods(http.MethodPut)
			r.HandleFunc("/{name}", registerGet("clear_permission", handleClearPermission(db))).Methods(http.MethodDelete)
		}
	}
}

func handleGetPermission(db *gorm.DB) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseActorId(d.Logger(), func(actorId uuid.UUID) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				name := mux.Vars(r)["name"]
				rm, err := model.Map(Transform)(NewProcessor(d.Logger(), d.Context(), db).ByActorIdAndNameProvider(actorId, name))()
				if errors.Is(err, gorm.ErrRecordNotFound) {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				if err != nil {
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				rest.MarshalResponse[RestModel](d.Logger())(w)(http.StatusOK)(rm)
			}
		})
	}
}

func handleSetPermission(db *gorm.DB) rest.InputHandler[InputRestModel] {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext, input InputRestModel) http.HandlerFunc {
		return rest.ParseActorId(d.Logger(), func(actorId uuid.UUID) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				name := mux.Vars(r)["name"]
				m, err := NewProcessor(d.Logger(), d.Context(), db).Set(actorId, name, input.Value)
				if err != nil {
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				rm, _ := Transform(m)
				rest.MarshalResponse[RestModel](d.Logger())(w)(http.StatusOK)(rm)
			}
		})
	}
}

func handleClearPermission(db *gorm.DB) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseActorId(d.Logger(), func(actorId uuid.UUID) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				name := mux.Vars(r)["name"]
				err := NewProcessor(d.Logger(), d.Context(), db).Unset(actorId, name)
				if errors.Is(err, gorm.ErrRecordNotFound) {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				if err != nil {
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				w.WriteHeader(http.StatusNoContent)
			}
		})
	}
}
