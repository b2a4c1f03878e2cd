package container

import (
	"atlas-sorter/item"

	"github.com/google/uuid"
)

type RestModel struct {
	Id       uuid.UUID         `json:"id"`
	Kind     string            `json:"kind"`
	Capacity uint32            `json:"capacity"`
	Slots    []*item.RestModel `json:"slots"`
}

func Transform(m Model) (RestModel, error) {
	slots := make([]*item.RestModel, 0, len(m.Slots()))
	for _, s := range m.Slots() {
		rs, err := item.Transform(s)
		if err != nil {
			return RestModel{}, err
		}
		slots = append(slots, rs)
	}
	return RestModel{
		Id:       m.Id(),
		Kind:     string(m.Kind()),
		Capacity: m.Capacity(),
		Slots:    slots,
	}, nil
}

type CreateRestModel struct {
	Kind     string `json:"kind"`
	Capacity uint32 `json:"capacity"`
}

type ContentsRestModel struct {
	Slots []*item.RestModel `json:"slots"`
}

func ExtractContents(rm ContentsRestModel) ([]item.Model, error) {
	contents := make([]item.Model, 0, len(rm.Slots))
	for _, rs := range rm.Slots {
		i, err := item.Extract(rs)
		if err != nil {
			return nil, err
		}
		contents = append(contents, i)
	}
	return contents, nil
}
