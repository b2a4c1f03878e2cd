package permission

import "github.com/google/uuid"

type RestModel struct {
	ActorId uuid.UUID `json:"actorId"`
	Name    string    `json:"name"`
	Value   bool      `json:"value"`
}

func Transform(m Model) (RestModel, error) {
	return RestModel{
		ActorId: m.ActorId(),
		Name:    m.Name(),
		Value:   m.Value(),
	}, nil
}

type InputRestModel struct {
	Value bool `json:"value"`
}
