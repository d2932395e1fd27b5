package models

// OwnerKind identifies what a Task or Assignment belongs to
type OwnerKind string

const (
	OwnerUnassigned OwnerKind = "unassigned"
	OwnerProject    OwnerKind = "project"
	OwnerNonProject OwnerKind = "non_project"
)

// Owner is the parent of a Task or Assignment. Exactly one kind is set;
// the ID is meaningful only for OwnerProject and OwnerNonProject.
type Owner struct {
	Kind OwnerKind `json:"kind"`
	ID   uint      `json:"id,omitempty"`
}

// ProjectOwner returns an owner pointing at a project
func ProjectOwner(id uint) Owner {
	return Owner{Kind: OwnerProject, ID: id}
}

// NonProjectOwner returns an owner pointing at a non-project activity
func NonProjectOwner(id uint) Owner {
	return Owner{Kind: OwnerNonProject, ID: id}
}

// Unassigned returns the empty owner
func Unassigned() Owner {
	return Owner{Kind: OwnerUnassigned}
}

// ownerFromColumns rebuilds the owner from the two nullable foreign key columns.
// Rows written before exclusivity was enforced may carry both; the project wins.
func ownerFromColumns(projectID, nonProjectID *uint) Owner {
	switch {
	case projectID != nil:
		return ProjectOwner(*projectID)
	case nonProjectID != nil:
		return NonProjectOwner(*nonProjectID)
	default:
		return Unassigned()
	}
}

// columns splits the owner back into the foreign key columns
func (o Owner) columns() (projectID, nonProjectID *uint) {
	id := o.ID
	switch o.Kind {
	case OwnerProject:
		return &id, nil
	case OwnerNonProject:
		return nil, &id
	}
	return nil, nil
}
