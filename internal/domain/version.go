package domain

import "time"

// Version is a planned release with its derived schedule.
type Version struct {
	VersionID string
	Name      string
	Schedule  ReleaseSchedule
	CreatedAt *time.Time
}

// NewVersion builds a version whose schedule is derived from releaseDate.
func NewVersion(id, name string, releaseDate time.Time) *Version {
	return &Version{
		VersionID: id,
		Name:      name,
		Schedule:  ComputeSchedule(releaseDate),
	}
}

// ReleaseDate returns the release date the schedule was computed from.
func (v *Version) ReleaseDate() time.Time {
	return v.Schedule.ReleaseDate
}
