package slot

import "atlas-sorter/item"

type Model struct {
	index uint32
	item  item.Model
}

func (m Model) Index() uint32 {
	return m.index
}

func (m Model) Item() item.Model {
	return m.item
}

func NewModel(index uint32, i item.Model) Model {
	return Model{index: index, item: i}
}
