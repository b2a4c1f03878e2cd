package item

type RestModel struct {
	Type          string  `json:"type"`
	Data          int32   `json:"data,omitempty"`
	DisplayName   *string `json:"displayName,omitempty"`
	LocalizedName *string `json:"localizedName,omitempty"`
	Damage        int32   `json:"damage,omitempty"`
	Quantity      uint32  `json:"quantity"`
}

// Transform renders an entry for the wire. Empty entries render as nil.
func Transform(m Model) (*RestModel, error) {
	if m.IsEmpty() {
		return nil, nil
	}
	rm := &RestModel{
		Type:     m.itemType,
		Data:     m.data,
		Damage:   m.damage,
		Quantity: m.quantity,
	}
	if m.hasDisplayName {
		n := m.displayName
		rm.DisplayName = &n
	}
	if m.hasLocalizedName {
		n := m.localizedName
		rm.LocalizedName = &n
	}
	return rm, nil
}

func Extract(rm *RestModel) (Model, error) {
	if rm == nil {
		return Empty(), nil
	}
	b := NewBuilder(rm.Type, rm.Quantity).SetData(rm.Data).SetDamage(rm.Damage)
	if rm.DisplayName != nil {
		b.SetDisplayName(*rm.DisplayName)
	}
	if rm.LocalizedName != nil {
		b.SetLocalizedName(*rm.LocalizedName)
	}
	m := b.Build()
	if m.IsEmpty() {
		return Empty(), nil
	}
	return m, Validate(m)
}
