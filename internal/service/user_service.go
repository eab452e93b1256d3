package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"mindwell_backend/internal/model"
	"mindwell_backend/internal/repository"
	"path/filepath"
	"time"
)

type UserService struct {
	UserRepo *repository.UserRepository
	Storage  *StorageService
}

func NewUserService(userRepo *repository.UserRepository, storage *StorageService) *UserService {
	return &UserService{UserRepo: userRepo, Storage: storage}
}

type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Language string `json:"language"`
}

func (s *UserService) UpdateProfile(userID uint, req UpdateProfileRequest) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Language != "" {
		user.Language = req.Language
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UploadAvatar(ctx context.Context, userID uint, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	filename := fmt.Sprintf("avatars/%d_%d%s", userID, time.Now().UnixNano(), ext)

	url, err := s.Storage.Upload(ctx, filename, file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return "", err
	}
	user.Avatar = url
	if err := s.UserRepo.Update(user); err != nil {
		return "", err
	}

	return url, nil
}
