// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/vendagame/backend/internal/application/adapter"
	"github.com/vendagame/backend/internal/domain/entity"
	domainerror "github.com/vendagame/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueueGoalAchievedEmail queues a congratulation email for a seller who
// just reached their monthly goal.
func (s *Service) QueueGoalAchievedEmail(ctx context.Context, input adapter.QueueGoalAchievedInput) error {
	templateType := entity.TemplateGoalAchieved
	subject := fmt.Sprintf("Meta batida! %s - VendaGame", input.ReferenceMonth)
	if input.SuperTarget {
		templateType = entity.TemplateGoalSuperTarget
		subject = fmt.Sprintf("Modo Deus ativado! %s - VendaGame", input.ReferenceMonth)
	}

	templateData := map[string]interface{}{
		"seller_name":     input.SellerName,
		"reference_month": input.ReferenceMonth,
		"target_amount":   input.TargetAmount,
		"realized_amount": input.RealizedAmount,
		"percent":         input.Percent,
		"dashboard_url":   s.appBaseURL + "/dashboard",
	}

	job := entity.NewEmailJob(
		templateType,
		input.SellerEmail,
		input.SellerName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue goal achievement email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
