// Package repositories gives each collection a typed facade over the flat
// JSON files. Every method is a whole-collection read (and write, for
// mutations); filtering happens in the services, in memory.
package repositories

// Repositories bundles every collection repository.
type Repositories struct {
	UserRepository     *UserRepository
	NoticeRepository   *NoticeRepository
	EventRepository    *EventRepository
	MaterialRepository *MaterialRepository
	ResumeRepository   *ResumeRepository
}

// NewRepositories creates all repositories over one data directory.
func NewRepositories(dataDir string) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(dataDir),
		NoticeRepository:   NewNoticeRepository(dataDir),
		EventRepository:    NewEventRepository(dataDir),
		MaterialRepository: NewMaterialRepository(dataDir),
		ResumeRepository:   NewResumeRepository(dataDir),
	}
}
