package container

import (
	"atlas-sorter/item"
	"atlas-sorter/model"
	"atlas-sorter/rest"
	"atlas-sorter/stackable"
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
			registerCreate := rest.RegisterInputHandler[CreateRestModel](l)(si)
			registerContents := rest.RegisterInputHandler[ContentsRestModel](l)(si)
			r := router.PathPrefix("/containers").Subrouter()
			r.HandleFunc("", registerCreate("create_container", handleCreateContainer(db))).Methods(http.MethodPost)
			r.HandleFunc("/{containerId}", registerGet("get_container", handleGetContainer(db))).Methods(http.MethodGet)
			r.HandleFunc("/{containerId}", registerGet("delete_container", handleDeleteContainer(db))).Methods(http.MethodDelete)
			r.HandleFunc("/{containerId}/slots", registerContents("set_container_contents", handleSetContents(db))).Methods(http.MethodPut)
			r.HandleFunc("/{containerId}/sort", registerGet("sort_container", handleSortContainer(db))).Methods(http.MethodPost)
		}
	}
}

func writeModel(d *rest.HandlerDependency, w http.ResponseWriter, status int, m Model) {
	rm, err := model.Map(Transform)(model.FixedProvider(m))()
	if err != nil {
		d.Logger().WithError(err).Errorf("Creating REST model.")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	rest.MarshalResponse[RestModel](d.Logger())(w)(status)(rm)
}

func handleCreateContainer(db *gorm.DB) rest.InputHandler[CreateRestModel] {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext, input CreateRestModel) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			k, err := ParseKind(input.Kind)
			if err != nil {
				d.Logger().WithError(err).Errorf("Unable to create container of kind [%s].", input.Kind)
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			m, err := NewProcessor(d.Logger(), d.Context(), db).CreateAndEmit(k, input.Capacity)
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			writeModel(d, w, http.StatusCreated, m)
		}
	}
}

func handleGetContainer(db *gorm.DB) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseContainerId(d.Logger(), func(containerId uuid.UUID) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				m, err := NewProcessor(d.Logger(), d.Context(), db).GetById(containerId)
				if errors.Is(err, gorm.ErrRecordNotFound) {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				if err != nil {
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				writeModel(d, w, http.StatusOK, m)
			}
		})
	}
}

func handleDeleteContainer(db *gorm.DB) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseContainerId(d.Logger(), func(containerId uuid.UUID) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				err := NewProcessor(d.Logger(), d.Context(), db).Delete(containerId)
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

func handleSetContents(db *gorm.DB) rest.InputHandler[ContentsRestModel] {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext, input ContentsRestModel) http.HandlerFunc {
		return rest.ParseContainerId(d.Logger(), func(containerId uuid.UUID) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				contents, err := ExtractContents(input)
				if err != nil {
					d.Logger().WithError(err).Errorf("Unable to extract contents for container [%s].", containerId)
					w.WriteHeader(http.StatusBadRequest)
					return
				}
				err = NewProcessor(d.Logger(), d.Context(), db).SetContentsAndEmit(containerId, contents)
				if errors.Is(err, gorm.ErrRecordNotFound) {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				if errors.Is(err, ErrContentsSize) || errors.Is(err, item.ErrZeroQuantity) || errors.Is(err, item.ErrOverStacked) {
					w.WriteHeader(http.StatusBadRequest)
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

func handleSortContainer(db *gorm.DB) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseContainerId(d.Logger(), func(containerId uuid.UUID) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				p := NewProcessor(d.Logger(), d.Context(), db)
				sorted, err := p.SortAndEmit(uuid.Nil, containerId)
				if errors.Is(err, gorm.ErrRecordNotFound) {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				if errors.Is(err, stackable.ErrScratchOverflow) || errors.Is(err, stackable.ErrQuantityMismatch) {
					d.Logger().WithError(err).Errorf("Sort of container [%s] violated an item invariant.", containerId)
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				if err != nil {
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				if !sorted {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				m, err := p.GetById(containerId)
				if err != nil {
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				writeModel(d, w, http.StatusOK, m)
			}
		})
	}
}
