// Package users persists profile records for identities handed over by
// the authentication provider. Authentication itself happens upstream;
// this service only tags personalization data with a profile.
package users

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"cineflix/internal/storage"
	"cineflix/models"
)

const storageKeyPrefix = "user_profile:"

var ErrStoreRequired = errors.New("storage is required")

type Service struct {
	mu    sync.Mutex
	store storage.Store
	now   func() time.Time
}

func NewService(store storage.Store) (*Service, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	return &Service{store: store, now: time.Now}, nil
}

// EnsureProfile returns the stored profile for the identity, creating
// it on first sight. Identities without a uid get a generated one
// (guest sessions). A corrupt stored profile is replaced.
func (s *Service) EnsureProfile(user models.User) (models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	uid := strings.TrimSpace(user.UID)
	if uid == "" {
		uid = uuid.NewString()
	}
	key := storageKeyPrefix + uid

	if data, ok, err := s.store.Get(key); err == nil && ok {
		var profile models.UserProfile
		if err := json.Unmarshal(data, &profile); err == nil {
			return profile, nil
		}
		log.Printf("[users] replacing corrupt profile record for %s", uid)
	}

	displayName := user.DisplayName
	if displayName == "" {
		displayName = "Guest"
	}
	profile := models.UserProfile{
		UID:         uid,
		Email:       user.Email,
		DisplayName: displayName,
		PhotoURL:    user.PhotoURL,
		CreatedAt:   s.now(),
		XP:          0,
		Level:       1,
	}

	data, err := json.Marshal(profile)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("encode profile: %w", err)
	}
	if err := s.store.Set(key, data); err != nil {
		return models.UserProfile{}, fmt.Errorf("persist profile: %w", err)
	}
	return profile, nil
}

// Profile returns a stored profile by uid.
func (s *Service) Profile(uid string) (models.UserProfile, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok, err := s.store.Get(storageKeyPrefix + uid)
	if err != nil {
		return models.UserProfile{}, false, err
	}
	if !ok {
		return models.UserProfile{}, false, nil
	}
	var profile models.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return models.UserProfile{}, false, nil
	}
	return profile, true, nil
}
