package service

import (
	"context"
	"log"

	"consultly-be/internal/dto"
	"consultly-be/internal/entity"
	"consultly-be/internal/normalizer"
	"consultly-be/internal/pkg/apperror"
	"consultly-be/internal/pkg/mailer"
	"consultly-be/internal/repository/specification"
	"consultly-be/internal/repository/unitofwork"
	"consultly-be/pkg/events"
	pktNats "consultly-be/pkg/nats"

	"github.com/google/uuid"
)

type IContactService interface {
	Submit(ctx context.Context, req *dto.SubmitContactRequest) (*dto.SubmitContactResponse, error)
	GetAll(ctx context.Context, handledFilter *bool) ([]*dto.ContactSubmissionResponse, error)
	MarkHandled(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type contactService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
	ownerEmail     string
}

func NewContactService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
	ownerEmail string,
) IContactService {
	return &contactService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		ownerEmail:     ownerEmail,
	}
}

// Submit persists the submission, then notifies asynchronously. Persistence
// is the only step allowed to fail the request; mail and event delivery are
// best-effort.
func (s *contactService) Submit(ctx context.Context, req *dto.SubmitContactRequest) (*dto.SubmitContactResponse, error) {
	submission, err := normalizer.Contact(normalizer.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Service: req.Service,
		Message: req.Message,
	})
	if err != nil {
		return nil, err
	}
	submission.Id = uuid.New()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ContactRepository().Create(ctx, submission); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		err := s.eventPublisher.Publish(ctx, events.New(events.TypeContactSubmitted, map[string]interface{}{
			"submission_id": submission.Id.String(),
			"name":          submission.Name,
			"email":         submission.Email,
			"service":       submission.Service,
		}))
		if err != nil {
			log.Printf("[WARN] Failed to publish contact event: %v", err)
		}
	}

	go s.sendMails(submission)

	return &dto.SubmitContactResponse{Id: submission.Id}, nil
}

func (s *contactService) sendMails(submission *entity.ContactSubmission) {
	if s.emailService == nil {
		return
	}

	if s.ownerEmail != "" {
		err := s.emailService.SendContactNotification(
			s.ownerEmail,
			submission.Name,
			submission.Email,
			submission.Company,
			submission.Service,
			submission.Message,
		)
		if err != nil {
			log.Printf("[WARN] Contact notification mail failed: %v", err)
		}
	}

	if err := s.emailService.SendContactAcknowledgement(submission.Email, submission.Name); err != nil {
		log.Printf("[WARN] Contact acknowledgement mail failed: %v", err)
	}
}

func (s *contactService) GetAll(ctx context.Context, handledFilter *bool) ([]*dto.ContactSubmissionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.OrderBy{Field: "created_at", Desc: true}}
	if handledFilter != nil {
		specs = append(specs, specification.ByHandled{Handled: *handledFilter})
	}

	submissions, err := uow.ContactRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ContactSubmissionResponse, 0, len(submissions))
	for _, submission := range submissions {
		result = append(result, &dto.ContactSubmissionResponse{
			Id:        submission.Id,
			Name:      submission.Name,
			Email:     submission.Email,
			Company:   submission.Company,
			Service:   submission.Service,
			Message:   submission.Message,
			Handled:   submission.Handled,
			CreatedAt: submission.CreatedAt,
			UpdatedAt: submission.UpdatedAt,
		})
	}
	return result, nil
}

func (s *contactService) MarkHandled(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	submission, err := uow.ContactRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if submission == nil {
		return apperror.NotFound("contact submission", id.String())
	}

	submission.Handled = true
	return uow.ContactRepository().Update(ctx, submission)
}

func (s *contactService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ContactRepository().Delete(ctx, id)
}
