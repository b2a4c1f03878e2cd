package interaction

import (
	"atlas-sorter/rest"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func InitResource(si rest.ServerInformation) func(db *gorm.DB) rest.RouteInitializer {
	return func(db *gorm.DB) rest.RouteInitializer {
		return func(router *mux.Router, l logrus.FieldLogger) {
			register := rest.RegisterInputHandler[RestModel](l)(si)
			r := router.PathPrefix("/interactions").Subrouter()
			r.HandleFunc("", register("handle_interaction", handleInteraction(db))).Methods(http.MethodPost)
		}
	}
}

func handleInteraction(db *gorm.DB) rest.InputHandler[RestModel] {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext, input RestModel) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			e, v, err := Extract(input)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			handled, err := NewProcessor(d.Logger(), d.Context(), db).TrySortAndEmit(e, v)
			if err != nil {
				d.Logger().WithError(err).Errorf("Unable to handle interaction [%s].", e.Id())
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			rest.MarshalResponse[ResultRestModel](d.Logger())(w)(http.StatusOK)(ResultRestModel{
				EventId:   e.Id(),
				Handled:   handled,
				Cancelled: e.Cancelled(),
			})
		}
	}
}
