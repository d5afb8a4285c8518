package usecase

import (
	"strings"
	"time"

	"github.com/opphub/opphub/internal/model"
)

type UserUsecase struct {
	userRepo UserStore
	now      func() time.Time
}

func NewUserUsecase(userRepo UserStore) *UserUsecase {
	return &UserUsecase{userRepo: userRepo, now: time.Now}
}

// EnsureProfile returns the profile for the authenticated identity, creating
// it with default preferences on first sight.
func (uc *UserUsecase) EnsureProfile(userID, email, displayName string) (*model.User, error) {
	existing, err := uc.userRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	if displayName == "" {
		if at := strings.Index(email, "@"); at > 0 {
			displayName = email[:at]
		} else {
			displayName = "User"
		}
	}

	now := uc.now()
	user := &model.User{
		UserID:      userID,
		Email:       email,
		DisplayName: displayName,
		Preferences: model.DefaultPreferences,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}
