package repositories

// RepositoryProvider bundles all repository implementations for dependency
// injection into the service container.
type RepositoryProvider struct {
	JobRepo          JobRepository
	UserRepo         UserRepository
	NotificationRepo NotificationRepository
	SearchRepo       SearchRepository
}
