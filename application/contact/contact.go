package contact

import (
	"context"

	"github.com/muhammadheryan/contacts-api/constant"
	"github.com/muhammadheryan/contacts-api/model"
	contactrepo "github.com/muhammadheryan/contacts-api/repository/contact"
	"github.com/muhammadheryan/contacts-api/utils/errors"
	"github.com/muhammadheryan/contacts-api/utils/logger"
	"go.uber.org/zap"
)

type ContactApp interface {
	ListContacts(ctx context.Context) ([]model.ContactEntity, error)
	GetContact(ctx context.Context, id uint64) (*model.ContactEntity, error)
	CreateContact(ctx context.Context, req *model.ContactRequest) (*model.ContactEntity, error)
	UpdateContact(ctx context.Context, id uint64, req *model.ContactRequest) (*model.ContactEntity, error)
	DeleteContact(ctx context.Context, id uint64) error
	UpdateFavorite(ctx context.Context, id uint64, favorite bool) (*model.ContactEntity, error)
}

type contactAppImpl struct {
	contactRepo contactrepo.ContactRepository
}

func NewContactApp(contactRepo contactrepo.ContactRepository) ContactApp {
	return &contactAppImpl{contactRepo: contactRepo}
}

func (s *contactAppImpl) ListContacts(ctx context.Context) ([]model.ContactEntity, error) {
	contacts, err := s.contactRepo.List(ctx)
	if err != nil {
		logger.Error("[ListContacts] err contactRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return contacts, nil
}

func (s *contactAppImpl) GetContact(ctx context.Context, id uint64) (*model.ContactEntity, error) {
	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetContact] err contactRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if contact == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return contact, nil
}

func (s *contactAppImpl) CreateContact(ctx context.Context, req *model.ContactRequest) (*model.ContactEntity, error) {
	entity := &model.ContactEntity{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Favorite: false,
	}

	entity, err := s.contactRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateContact] err contactRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return entity, nil
}

func (s *contactAppImpl) UpdateContact(ctx context.Context, id uint64, req *model.ContactRequest) (*model.ContactEntity, error) {
	entity := &model.ContactEntity{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}

	updated, err := s.contactRepo.Update(ctx, id, entity)
	if err != nil {
		logger.Error("[UpdateContact] err contactRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if updated == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return updated, nil
}

func (s *contactAppImpl) DeleteContact(ctx context.Context, id uint64) error {
	deleted, err := s.contactRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[DeleteContact] err contactRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	return nil
}

func (s *contactAppImpl) UpdateFavorite(ctx context.Context, id uint64, favorite bool) (*model.ContactEntity, error) {
	updated, err := s.contactRepo.UpdateFavorite(ctx, id, favorite)
	if err != nil {
		logger.Error("[UpdateFavorite] err contactRepo.UpdateFavorite", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if updated == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return updated, nil
}
