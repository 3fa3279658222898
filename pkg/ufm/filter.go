package ufm

// Filter selects ports client-side. UFM has no partition scoped port query,
// so the port list is always fetched in full and narrowed here.
//
// A nil GUIDs slice means no GUID restriction. A non-nil slice, even an empty
// one, only admits the listed GUIDs.
type Filter struct {
	GUIDs []string
}

// NewFilter creates a filter admitting only the given GUIDs.
func NewFilter(guids ...string) *Filter {
	list := make([]string, 0, len(guids))
	list = append(list, guids...)

	return &Filter{GUIDs: list}
}

// FilterFromBindings creates a filter admitting only the ports bound to a
// partition.
func FilterFromBindings(bindings []PortBinding) *Filter {
	guids := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		guids = append(guids, binding.GUID)
	}

	return &Filter{GUIDs: guids}
}

// Valid reports whether the port passes the filter.
func (f *Filter) Valid(port *Port) bool {
	if f == nil || f.GUIDs == nil {
		return true
	}

	for _, guid := range f.GUIDs {
		if port.GUID == guid {
			return true
		}
	}

	return false
}
