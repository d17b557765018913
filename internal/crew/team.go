package crew

// Role is the informal job role of a person.
type Role string

const (
	RoleFitter Role = "fitter"
	RoleSales  Role = "sales"
	RoleAdmin  Role = "admin"
	RoleOther  Role = "other"
)

// ParseRole converts a string to a Role. Unknown and empty input map to RoleOther.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleFitter, RoleSales, RoleAdmin:
		return Role(s)
	default:
		return RoleOther
	}
}

// Person is an employee who can be a team member, crew member or salesperson.
type Person struct {
	ID    string
	Name  string
	Role  Role
	Phone string
}

// Team is the schedulable resource column: a crew unit with a lead and members.
type Team struct {
	ID         string
	Name       string
	TeamLeadID string
	MemberIDs  []string

	// Members carries resolved Person records when the store enriches the
	// team for display. Nil when only ids were loaded.
	Members []*Person
}

// Normalize deduplicates member ids and guarantees the lead is a member.
// Order of first appearance is preserved.
func (t *Team) Normalize() {
	seen := make(map[string]bool, len(t.MemberIDs))
	clean := t.MemberIDs[:0]
	for _, id := range t.MemberIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		clean = append(clean, id)
	}
	t.MemberIDs = clean

	if t.TeamLeadID != "" && !seen[t.TeamLeadID] {
		t.MemberIDs = append(t.MemberIDs, t.TeamLeadID)
	}
}

// HasMember reports whether the person is a member of the team.
func (t *Team) HasMember(personID string) bool {
	for _, id := range t.MemberIDs {
		if id == personID {
			return true
		}
	}
	return false
}

// Clone returns an independent deep copy of the team.
func (t *Team) Clone() *Team {
	if t == nil {
		return nil
	}
	dup := *t
	dup.MemberIDs = append([]string(nil), t.MemberIDs...)
	if t.Members != nil {
		dup.Members = make([]*Person, len(t.Members))
		for i, p := range t.Members {
			cp := *p
			dup.Members[i] = &cp
		}
	}
	return &dup
}

// Product is a catalogue item that can appear on a booking's line items.
type Product struct {
	ID       string
	Name     string
	Category string
}
