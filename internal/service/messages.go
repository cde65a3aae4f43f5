package service

import (
	"context"
	"strings"

	"github.com/mmeshcher/smartfold-lms/internal/model"
)

// SendMessage сохраняет сообщение между двумя существующими пользователями.
// Время отправки назначает сервер.
func (s *Service) SendMessage(ctx context.Context, fromUserID, toUserID int64, body string) (*model.Message, error) {
	if strings.TrimSpace(body) == "" {
		return nil, ErrBlankBody
	}
	if _, err := s.repo.GetUserByID(ctx, fromUserID); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetUserByID(ctx, toUserID); err != nil {
		return nil, err
	}

	return s.repo.CreateMessage(ctx, fromUserID, toUserID, body, s.now().UTC())
}

// GetThread возвращает переписку с пользователем withUserID.
// Если currentUserID не указан, возвращаются все сообщения, где участвует withUserID.
func (s *Service) GetThread(ctx context.Context, withUserID int64, currentUserID *int64) ([]model.Message, error) {
	if _, err := s.repo.GetUserByID(ctx, withUserID); err != nil {
		return nil, err
	}

	if currentUserID == nil {
		return s.repo.GetMessagesByUser(ctx, withUserID)
	}

	if _, err := s.repo.GetUserByID(ctx, *currentUserID); err != nil {
		return nil, err
	}
	return s.repo.GetConversation(ctx, *currentUserID, withUserID)
}
