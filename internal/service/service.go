package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"celula-igreja/internal/config"
	"celula-igreja/internal/repository"
	"celula-igreja/internal/service/access"
	"celula-igreja/internal/service/audit"
	"celula-igreja/internal/service/auth"
	"celula-igreja/internal/service/comment"
	"celula-igreja/internal/service/email"
	"celula-igreja/internal/service/group"
	"celula-igreja/internal/service/media"
	"celula-igreja/internal/service/membership"
	"celula-igreja/internal/service/notification"
	"celula-igreja/internal/service/roster"
	"celula-igreja/internal/service/workflow"
)

type Services struct {
	Auth         auth.Service
	Access       access.Service
	Group        group.Service
	Roster       roster.Service
	Notification notification.Service
	Membership   membership.Service
	Workflow     *workflow.Service
	Comment      comment.Service
	Media        media.Service
	Email        email.Service
	Audit        audit.Service
}

func NewServices(repos *repository.Repositories, redisClient *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	emailService := email.NewService(cfg)
	rosterService := roster.NewService(repos.User, redisClient, cfg.RosterCacheTTL)
	notificationService := notification.NewService(repos.Notification)
	accessService := access.NewService(repos.User, repos.Group, repos.Session)
	authService := auth.NewService(repos.User, repos.Group, repos.Session, accessService, notificationService, cfg)
	membershipService := membership.NewService(repos.User, repos.Group, repos.AuditLog, rosterService, emailService)
	workflowService := workflow.NewService(notificationService, rosterService, membershipService)
	commentService := comment.NewService(repos.Comment, notificationService)
	mediaService := media.NewService(repos.User, rosterService, minioClient, cfg)
	auditService := audit.NewService(repos.AuditLog)
	groupService := group.NewService(repos.Group)

	return &Services{
		Auth:         authService,
		Access:       accessService,
		Group:        groupService,
		Roster:       rosterService,
		Notification: notificationService,
		Membership:   membershipService,
		Workflow:     workflowService,
		Comment:      commentService,
		Media:        mediaService,
		Email:        emailService,
		Audit:        auditService,
	}
}
