package repository

import "github.com/jmoiron/sqlx"

type Repositories struct {
	User         UserRepository
	Group        GroupRepository
	Notification NotificationRepository
	Comment      CommentRepository
	Session      SessionRepository
	AuditLog     AuditLogRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Group:        NewGroupRepository(db),
		Notification: NewNotificationRepository(db),
		Comment:      NewCommentRepository(db),
		Session:      NewSessionRepository(db),
		AuditLog:     NewAuditLogRepository(db),
	}
}
