// Package team holds the developer records tasks are assigned to.
package team

// Developer is a member of the release team. The scheduling core never
// mutates developers; they serve as grouping keys for conflict detection.
type Developer struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

func (d Developer) String() string {
	if d.Role == "" {
		return d.Name
	}
	return d.Name + " (" + d.Role + ")"
}
