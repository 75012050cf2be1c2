package graph

// ProjectStatus represents the lifecycle state of a Project.
type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCancelled ProjectStatus = "cancelled"
)

// DefaultProjectStatus is applied when a project is created without an
// explicit status.
const DefaultProjectStatus = ProjectPlanning

// IsValid returns true if the status is one of the defined constants.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectPlanning, ProjectActive, ProjectCompleted, ProjectCancelled:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s ProjectStatus) String() string {
	return string(s)
}
